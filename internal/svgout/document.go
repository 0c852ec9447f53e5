// Package svgout renders the poster as a standalone SVG document. It is the
// headless host of the engine: paths are collected through the renderer port
// and written out in the authored layering.
package svgout

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/iburimskiy/sunburst/internal/config"
	"github.com/iburimskiy/sunburst/internal/decor"
	"github.com/iburimskiy/sunburst/internal/engine"
	"github.com/iburimskiy/sunburst/internal/geometry"
	"github.com/iburimskiy/sunburst/internal/rings"
)

// Document holds the latest path descriptor of every segment.
type Document struct {
	View  geometry.Size
	Whole geometry.Placement
	Text  geometry.Placement
	Group string
	Decor *decor.Decor

	paths [][]string
}

// NewDocument prepares a document for the rings in opts. d may be nil.
func NewDocument(opts engine.Options, d *decor.Decor) *Document {
	view := geometry.Size{W: config.ViewWidth, H: config.ViewHeight}
	scale := geometry.BaseScale(view, opts.Center, rings.MaxRadius(opts.Rings))

	paths := make([][]string, len(opts.Rings))
	for i, r := range opts.Rings {
		paths[i] = make([]string, len(r.Segments))
	}
	return &Document{
		View:  view,
		Whole: geometry.WholePlacement(),
		Text:  geometry.TextPlacement(),
		Group: geometry.GroupTransform(opts.Center, scale),
		Decor: d,
		paths: paths,
	}
}

// SetSegmentPath implements engine.Renderer.
func (d *Document) SetSegmentPath(ring, seg int, s geometry.Sector) {
	if ring < 0 || ring >= len(d.paths) || seg < 0 || seg >= len(d.paths[ring]) {
		return
	}
	d.paths[ring][seg] = s.String()
}

// Path returns the descriptor last set for a segment.
func (d *Document) Path(ring, seg int) string {
	if ring < 0 || ring >= len(d.paths) || seg < 0 || seg >= len(d.paths[ring]) {
		return ""
	}
	return d.paths[ring][seg]
}

// WriteTo writes the document. A raster decor is linked by its path as
// given, relative to the working directory.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.write(w, "")
}

func (d *Document) write(w io.Writer, dir string) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %s %s" preserveAspectRatio="xMidYMid meet">`+"\n",
		num(d.View.W), num(d.View.H))
	fmt.Fprintf(bw, `<rect width="%s" height="%s" fill="#fff"/>`+"\n", num(d.View.W), num(d.View.H))
	bw.WriteString(`<g id="whole"` + transformAttr(d.Whole.String()) + ">\n")

	bw.WriteString(`<g id="rings" fill="#000"` + transformAttr(d.Group) + ">\n")
	for i, ring := range d.paths {
		for j, p := range ring {
			if p == "" {
				continue
			}
			fmt.Fprintf(bw, `<path id="r%d-s%d" d="%s"/>`+"\n", i, j, p)
		}
	}
	bw.WriteString("</g>\n")

	if d.Decor != nil {
		bw.WriteString(`<g id="text" fill="#000"` + transformAttr(d.Text.String()) + ">\n")
		switch d.Decor.Kind {
		case decor.Vector:
			bw.Write(d.Decor.Fragment)
			bw.WriteString("\n")
		case decor.Raster:
			b := d.Decor.Bounds()
			bw.WriteString(`<image href="`)
			xml.EscapeText(bw, []byte(imageHref(d.Decor.Path, dir)))
			fmt.Fprintf(bw, `" width="%d" height="%d"/>`+"\n", b.Dx(), b.Dy())
		}
		bw.WriteString("</g>\n")
	}

	bw.WriteString("</g>\n</svg>\n")
	if err := bw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// WriteFile writes the document to path. A raster decor is linked relative
// to the directory of path so the snapshot can be opened from anywhere.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := d.write(f, filepath.Dir(path)); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// imageHref links src from a document in dir. With no dir, or when no
// relative path exists, src is used as is or made absolute.
func imageHref(src, dir string) string {
	if dir == "" {
		return filepath.ToSlash(src)
	}
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return filepath.ToSlash(src)
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return filepath.ToSlash(absSrc)
	}
	rel, err := filepath.Rel(absDir, absSrc)
	if err != nil {
		return filepath.ToSlash(absSrc)
	}
	return filepath.ToSlash(rel)
}

func transformAttr(t string) string {
	if t == "" {
		return ""
	}
	return ` transform="` + t + `"`
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
