package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"SUNBURST_WIDTH", "SUNBURST_HEIGHT", "SUNBURST_TPS", "SUNBURST_DEBUG",
		"SUNBURST_DECOR", "SUNBURST_SVG", "SUNBURST_SVG_AT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_DefaultsWithoutEnvFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, WindowWidth, cfg.Window.Width)
	assert.Equal(t, WindowHeight, cfg.Window.Height)
	assert.Equal(t, DefaultTPS, cfg.Window.TPS)
	assert.False(t, cfg.Window.Debug)
	assert.Empty(t, cfg.Decor.Path)
	assert.Empty(t, cfg.Snapshot.Path)
	assert.Positive(t, cfg.Snapshot.Step)
}

func TestLoad_MissingEnvFileIsNotFatal(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, WindowWidth, cfg.Window.Width)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUNBURST_WIDTH", "800")
	t.Setenv("SUNBURST_HEIGHT", "1040")
	t.Setenv("SUNBURST_DEBUG", "true")
	t.Setenv("SUNBURST_DECOR", "type.svg")
	t.Setenv("SUNBURST_SVG", "out.svg")
	t.Setenv("SUNBURST_SVG_AT", "0.25")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 1040, cfg.Window.Height)
	assert.True(t, cfg.Window.Debug)
	assert.Equal(t, "type.svg", cfg.Decor.Path)
	assert.Equal(t, "out.svg", cfg.Snapshot.Path)
	assert.InDelta(t, 0.25, cfg.Snapshot.At, 1e-12)
}

func TestLoad_DotenvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("SUNBURST_TPS")
	t.Cleanup(func() { os.Unsetenv("SUNBURST_TPS") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SUNBURST_TPS=120\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Window.TPS)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUNBURST_WIDTH", "wide")

	_, err := Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), "SUNBURST_WIDTH")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Window.Height = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Snapshot.At = -1
	assert.Error(t, cfg.Validate())
}
