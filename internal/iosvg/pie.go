package iosvg

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/gnames/gnradial/pkg/radial"
	"github.com/gnames/gnradial/pkg/species"
	"github.com/gnames/gnradial/pkg/view"
	"github.com/lucasb-eyer/go-colorful"
)

// spectral are the stops of a diverging red-yellow-blue color scheme.
var spectral = []string{
	"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf",
	"#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2",
}

// Arcs wider than these angles get labels inside or just outside of
// the pie.
const (
	largeArc = 0.25
	smallArc = 0.1
)

// Spectral returns n colors spread over the middle 80% of the spectral
// scheme, from blue to red.
func Spectral(n int) []string {
	if n <= 0 {
		return nil
	}
	stops := make([]colorful.Color, len(spectral))
	for i, s := range spectral {
		stops[i], _ = colorful.Hex(s)
	}

	// one extra color is generated and dropped, so the first and the
	// last slices never share a hue
	total := n + 1
	res := make([]string, total)
	for i := range total {
		var t float64
		if total > 1 {
			t = float64(i) / float64(total-1)
		}
		res[i] = interpolate(stops, t*0.8+0.1).Hex()
	}
	slices.Reverse(res)
	return res[:n]
}

func interpolate(stops []colorful.Color, t float64) colorful.Color {
	t = max(0, min(1, t))
	pos := t * float64(len(stops)-1)
	i := int(math.Floor(pos))
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].BlendLab(stops[i+1], pos-float64(i)).Clamped()
}

// Pie draws the distribution of species among children of the display
// root as a pie chart of the given size.
func Pie(w io.Writer, f view.Frame, size int) error {
	if size <= 0 {
		return fmt.Errorf("wrong chart size %d", size)
	}
	cx := size / 2
	radius := float64(size)/3 - 1

	c := newCanvas(w)
	c.Start(size, size,
		attr("viewBox", fmt.Sprintf("%d %d %d %d", -cx, -cx, size, size)),
		attr("style", "font: 10px sans-serif"),
	)
	title := "Number of Species Descending From " + f.Root.Name + "'s Children"
	c.Title(title)

	colors := Spectral(len(f.Distribution))
	c.Group(attr("class", "slices"), attr("stroke", "white"))
	for i, a := range f.Distribution {
		d := arcPath(a, radius)
		if d == "" {
			continue
		}
		c.Group()
		c.Title(a.Name + ": " + strconv.Itoa(a.Count) + " species")
		c.Path(d, attr("fill", colors[i]))
		c.Gend()
	}
	c.Gend()

	c.Group(attr("class", "slice-labels"), attr("text-anchor", "middle"))
	for _, a := range f.Distribution {
		width := a.EndAngle - a.StartAngle
		var r float64
		switch {
		case width > largeArc:
			r = radius * 0.8
		case width > smallArc:
			r = radius * 1.1
		default:
			continue
		}
		x, y := centroid(a, r)
		c.Gtransform(fmt.Sprintf("translate(%.2f,%.2f)", x, y))
		c.Text(0, -4, a.Name, attr("font-weight", "bold"))
		c.Text(0, 7, strconv.Itoa(a.Count), attr("fill-opacity", 0.7))
		c.Gend()
	}
	c.Gend()

	c.Text(0, -cx+20, title,
		attr("text-anchor", "middle"),
		attr("dominant-baseline", "middle"),
		attr("fill", textColor),
		fontFamily+";font-size:16px;font-weight:bold",
	)
	if len(f.Distribution) == 1 && f.Distribution[0].Name == species.NoChildren {
		c.Text(0, 0, species.NoChildren,
			attr("text-anchor", "middle"),
			attr("fill", textColor),
		)
	}

	c.End()
	return c.err()
}

// arcPath returns path data of a pie slice. Empty slices give an empty
// string.
func arcPath(a species.Arc, r float64) string {
	width := a.EndAngle - a.StartAngle
	if width <= 0 {
		return ""
	}
	if width >= 2*math.Pi-1e-9 {
		// a full circle cannot be drawn by a single arc command
		return fmt.Sprintf("M0,%.2fA%.2f,%.2f,0,1,1,0,%.2fA%.2f,%.2f,0,1,1,0,%.2fZ",
			-r, r, r, r, r, r, -r)
	}
	x0, y0 := radial.Point(a.StartAngle, r)
	x1, y1 := radial.Point(a.EndAngle, r)
	large := 0
	if width > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M%.2f,%.2fA%.2f,%.2f,0,%d,1,%.2f,%.2fL0,0Z",
		x0, y0, r, r, large, x1, y1)
}

func centroid(a species.Arc, r float64) (float64, float64) {
	return radial.Point((a.StartAngle+a.EndAngle)/2, r)
}
