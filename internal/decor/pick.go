package decor

import (
	"errors"

	"github.com/ncruces/zenity"
)

// Pick asks the user for a decorative block. A cancelled dialog returns an
// empty path and no error.
func Pick() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Select decorative text"),
		zenity.FileFilters{{
			Name:     "Decorative text",
			Patterns: []string{"*.svg", "*.png", "*.jpg", "*.jpeg"},
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
