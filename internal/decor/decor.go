// Package decor loads the optional decorative text block drawn beside the
// rings. A vector block is an SVG fragment embedded as-is in snapshots; a
// raster block is a PNG or JPEG drawn in the window and linked from
// snapshots.
package decor

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports that the decorative block is missing. Callers treat it
// as a warning and render the rings alone.
var ErrNotFound = errors.New("decorative text not found")

// Kind tells how a block is drawn.
type Kind int

const (
	Vector Kind = iota
	Raster
)

func (k Kind) String() string {
	switch k {
	case Vector:
		return "vector"
	case Raster:
		return "raster"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Decor is a loaded decorative block.
type Decor struct {
	Path string
	Kind Kind

	// Fragment holds the markup from the first element on, without any XML
	// declaration or doctype. Set for Vector.
	Fragment []byte

	// Image is set for Raster.
	Image image.Image
}

// Bounds is the block's size in its own units.
func (d *Decor) Bounds() image.Rectangle {
	if d == nil || d.Image == nil {
		return image.Rectangle{}
	}
	return d.Image.Bounds()
}

// Load reads the block at path. An empty path or a missing file yields
// ErrNotFound.
func Load(path string) (*Decor, error) {
	if path == "" {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading decor: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		frag, err := Fragment(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &Decor{Path: path, Kind: Vector, Fragment: frag}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &Decor{Path: path, Kind: Raster, Image: img}, nil
}

// Fragment checks that data is well-formed XML with a single root element
// and returns it from that element on.
func Fragment(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	start := int64(-1)
	depth := 0
	roots := 0
	for {
		offset := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid svg: %w", err)
		}
		switch tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if start < 0 {
					start = offset
				}
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if roots == 0 {
		return nil, errors.New("invalid svg: no element")
	}
	if roots > 1 {
		return nil, fmt.Errorf("invalid svg: %d root elements", roots)
	}
	return bytes.TrimSpace(data[start:]), nil
}
