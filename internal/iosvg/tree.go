package iosvg

import (
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gnradial/pkg/rank"
	"github.com/gnames/gnradial/pkg/view"
)

const (
	rootRadius = 6
	nodeRadius = 3
	edgeWidth  = 0.63
)

// IntroMessage is shown instead of the drill-up caption at the global
// root.
const IntroMessage = "You are viewing the top of the classification. " +
	"Choose any taxon to view a more specific taxonomy."

// Tree draws the radial tree of a frame with its title, path caption
// and a rank legend. The center of the tree is the origin of the view
// box, shifted to the right by a quarter of the width to leave room for
// the legend.
func Tree(w io.Writer, f view.Frame, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("wrong picture size %dx%d", opts.Width, opts.Height)
	}
	cx, cy := opts.Width/2, opts.Height/2

	c := newCanvas(w)
	viewBox := fmt.Sprintf("%d %d %d %d", -cx+opts.Width/4, -cy, opts.Width, opts.Height)
	c.Start(opts.Width, opts.Height,
		attr("viewBox", viewBox),
		attr("style", "font: 8px sans-serif"),
	)
	c.Title(f.Title)

	drawLegend(c, f, -450, -300)
	drawEdges(c, f)
	drawNodes(c, f)
	drawLabels(c, f)
	drawHeader(c, f, cy)

	c.End()
	return c.err()
}

func drawEdges(c *canvas, f view.Frame) {
	c.Group(attr("class", "paths"), attr("fill", "none"))
	for _, e := range f.Edges {
		c.Path(e.Path,
			attr("stroke", e.Color),
			attr("stroke-width", edgeWidth),
		)
	}
	c.Gend()
}

func drawNodes(c *canvas, f view.Frame) {
	c.Group(attr("class", "nodes"))
	for _, n := range f.Nodes {
		r := nodeRadius
		if n.IsRoot {
			r = rootRadius
		}
		c.Group(attr("data-key", n.Key))
		c.Title(tooltip(n))
		c.Circle(0, 0, r,
			attr("fill", n.Color),
			rotation(n.Angle, n.Radius, false),
		)
		c.Gend()
	}
	c.Gend()
}

// tooltip has the scientific name, the common name and the rank. Species
// also show their area.
func tooltip(n view.NodeView) string {
	lines := []string{
		n.Name,
		"Common Name: " + n.CommonName,
		"Taxonomic Rank: " + n.Rank.String(),
	}
	if n.Rank == rank.Species {
		lines = append(lines, "Location: "+n.Area)
	}
	return strings.Join(lines, "\n")
}

func drawLabels(c *canvas, f view.Frame) {
	c.Group(
		attr("class", "labels"),
		attr("paint-order", "stroke"),
		attr("stroke", "#ffffff"),
		attr("stroke-width", 5),
		attr("fill", labelColor),
	)
	for _, n := range f.Nodes {
		if !n.ShowLabel {
			continue
		}
		c.Text(n.LabelDX, 0, n.Name,
			rotation(n.Angle, n.Radius, n.Flip),
			attr("dy", "0.31em"),
			attr("text-anchor", n.Anchor),
		)
	}
	c.Gend()
}

func drawHeader(c *canvas, f view.Frame, cy int) {
	center := []string{
		attr("text-anchor", "middle"),
		attr("dominant-baseline", "middle"),
		attr("fill", textColor),
	}

	c.Group(attr("class", "title"))
	c.Text(0, -cy+30, f.Title,
		append(center, fontFamily+";font-size:39px;font-weight:bold")...)
	c.Text(0, -cy+65, "Common Name: "+f.CommonName,
		append(center, fontFamily+";font-size:16px;font-weight:bold")...)
	c.Text(0, -cy+90, "Taxonomic path: "+f.PathString,
		append(center, fontFamily+";font-size:18px")...)
	c.Gend()

	c.Group(attr("class", "button"))
	caption := IntroMessage
	if f.CanDrillUp {
		caption = "Go Up One Rank"
		c.Roundrect(-100, cy-70, 200, 25, 3, 3, attr("fill", buttonColor))
	}
	c.Text(0, cy-55, caption,
		append(center, fontFamily+";font-size:16px;font-weight:bold")...)
	c.Gend()
}

// drawLegend lists colors of ranks that are present in the frame.
func drawLegend(c *canvas, f view.Frame, x, y int) {
	var shown [rank.Count]bool
	for _, n := range f.Nodes {
		if n.Tier >= 0 && n.Tier < rank.Count {
			shown[n.Tier] = true
		}
	}

	c.Gtransform(fmt.Sprintf("translate(%d,%d)", x, y))
	c.Group(attr("class", "legend"))
	var row int
	for t, ok := range shown {
		if !ok {
			continue
		}
		r, _ := rank.ByTier(t)
		yy := row * 20
		c.Circle(0, yy, 5, attr("fill", rank.TierColor(t)))
		c.Text(12, yy, r.String(),
			attr("dominant-baseline", "middle"),
			attr("fill", textColor),
			fontFamily+";font-size:14px",
		)
		row++
	}
	c.Gend()
	c.Gend()
}
