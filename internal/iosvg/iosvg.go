// Package iosvg draws frames as SVG documents.
package iosvg

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/gnames/gnradial/internal/iofs"
)

// Options set the size of the tree picture.
type Options struct {
	Width  int
	Height int
}

const (
	textColor   = "#3b4245"
	labelColor  = "#1c1b1b"
	buttonColor = "#b7c1c4"
	fontFamily  = "font-family:Helvetica, sans-serif"
)

// Save creates a file at path and draws into it.
func Save(path string, draw func(io.Writer) error) error {
	f, err := iofs.CreateOutput(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = draw(f); err != nil {
		return iofs.WriteFileError(path, err)
	}
	return nil
}

// attr formats a single SVG attribute. svgo writes arguments that
// contain '=' as attributes and the rest as style.
func attr(name string, v any) string {
	return fmt.Sprintf(`%s="%v"`, name, v)
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// rotation places an element at a polar position, the same way for
// nodes and labels.
func rotation(angle, radius float64, flip bool) string {
	res := fmt.Sprintf("rotate(%.2f) translate(%.2f,0)", degrees(angle)-90, radius)
	if flip {
		res += " rotate(180)"
	}
	return attr("transform", res)
}

// canvas is a thin wrapper that remembers the first write error.
type canvas struct {
	*svg.SVG
	ew *errWriter
}

func newCanvas(w io.Writer) *canvas {
	ew := &errWriter{w: w}
	return &canvas{SVG: svg.New(ew), ew: ew}
}

func (c *canvas) err() error {
	return c.ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
