package radial

import (
	"math"
	"strconv"
	"strings"
)

// Point returns cartesian coordinates of a polar point given as an angle
// clockwise from 12 o'clock and a radius.
func Point(angle, radius float64) (x, y float64) {
	return radius * math.Sin(angle), -radius * math.Cos(angle)
}

// Path returns SVG path data of a radial bump curve from the parent to
// the child. The curve leaves the parent along its ray, bends at the
// middle radius and enters the child along the child's ray.
func (e Edge) Path() string {
	a0, r0 := e.Parent.Angle, e.Parent.Radius
	a1, r1 := e.Child.Angle, e.Child.Radius
	mid := (r0 + r1) / 2

	pts := make([]float64, 0, 8)
	for _, p := range [][2]float64{{a0, r0}, {a0, mid}, {a1, mid}, {a1, r1}} {
		x, y := Point(p[0], p[1])
		pts = append(pts, x, y)
	}

	var b strings.Builder
	b.WriteString("M")
	b.WriteString(num(pts[0]) + "," + num(pts[1]))
	b.WriteString("C")
	for i := 2; i < len(pts); i += 2 {
		if i > 2 {
			b.WriteString(",")
		}
		b.WriteString(num(pts[i]) + "," + num(pts[i+1]))
	}
	return b.String()
}

// num formats a coordinate with at most two decimals, without negative
// zero.
func num(f float64) string {
	f = math.Round(f*100) / 100
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
