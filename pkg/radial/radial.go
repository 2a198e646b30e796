// Package radial places visible taxa on concentric rings.
//
// Angles come from a cluster layout: leaves are spread around the full
// circle and every parent sits at the mean angle of its children. Radii
// come from rank tiers, not from depth. Each distinct tier present in
// the picture gets its own ring, rings are evenly spaced, and the display
// root is always in the center.
package radial

import (
	"math"
	"slices"

	"github.com/gnames/gnradial/pkg/hierarchy"
	"github.com/gnames/gnradial/pkg/rank"
	"github.com/gnames/gnradial/pkg/visible"
)

// Label anchors.
const (
	AnchorStart = "start"
	AnchorEnd   = "end"
)

// labelOffset is the distance between a node mark and its label.
const labelOffset = 9

// Options control sizes and label thresholds of a layout.
type Options struct {
	// OuterRadius is the radius of the outermost ring.
	OuterRadius float64

	// LabelLimit hides all labels if more nodes are visible.
	LabelLimit int

	// InnerLabelLimit hides labels of all nodes except species if more
	// nodes are visible.
	InnerLabelLimit int
}

// DefaultOptions returns settings for a 2900x900 canvas.
func DefaultOptions() Options {
	return Options{
		OuterRadius:     262,
		LabelLimit:      400,
		InnerLabelLimit: 300,
	}
}

// Node is a visible taxon with its position.
type Node struct {
	Taxon *hierarchy.Node

	// Angle in radians, clockwise from 12 o'clock, in [0, 2π).
	Angle float64

	// Radius is the distance from the center.
	Radius float64

	// X and Y are cartesian coordinates with the center at (0,0) and
	// Y growing down.
	X, Y float64

	// Level is the ring index, 0 for the display root.
	Level int

	// IsRoot is true for the display root.
	IsRoot bool

	// IsLeaf is true when no children of the node are visible.
	IsLeaf bool

	// Color is the hex color of the node's rank.
	Color string

	ShowLabel bool

	// Anchor is the text-anchor of the label.
	Anchor string

	// LabelDX is the label shift along the ray.
	LabelDX int

	// Flip is true for labels that have to be turned by 180 degrees to
	// be read left to right.
	Flip bool

	Parent   *Node
	Children []*Node

	depth int
	x     float64
}

// Edge links a visible node to its visible parent.
type Edge struct {
	Parent *Node
	Child  *Node

	// Color is the color of the child's rank.
	Color string
}

// Result is a complete layout of a selection.
type Result struct {
	// Nodes in pre-order, starting with the root.
	Nodes []*Node
	Edges []Edge

	// Tiers present on the rings, ring 1 first.
	Tiers []int

	// ShowLabels is false when there are too many nodes for any labels.
	ShowLabels bool

	// ShowInnerLabels is false when only species are labeled.
	ShowInnerLabels bool

	byID map[string]*Node
}

// Root returns the positioned display root or nil for an empty layout.
func (r Result) Root() *Node {
	if len(r.Nodes) == 0 {
		return nil
	}
	return r.Nodes[0]
}

// ByID returns a positioned node by the taxon id.
func (r Result) ByID(id string) (*Node, bool) {
	n, ok := r.byID[id]
	return n, ok
}

// Layout positions every node of the selection. Zero fields of opts are
// replaced by defaults.
func Layout(sel visible.Selection, opts Options) Result {
	opts = withDefaults(opts)
	var res Result
	if sel.Root == nil || len(sel.Nodes) == 0 {
		return res
	}

	res.byID = make(map[string]*Node, len(sel.Nodes))
	idx := make(map[*hierarchy.Node]*Node, len(sel.Nodes))
	for _, v := range sel.Nodes {
		n := &Node{Taxon: v, Color: rank.TierColor(v.Tier)}
		idx[v] = n
		res.byID[v.ID] = n
		res.Nodes = append(res.Nodes, n)
	}
	root := res.Nodes[0]
	root.IsRoot = true

	for _, p := range sel.Paths {
		parent, child := idx[p.Parent], idx[p.Child]
		child.Parent = parent
		child.depth = parent.depth + 1
		parent.Children = append(parent.Children, child)
		res.Edges = append(res.Edges, Edge{
			Parent: parent,
			Child:  child,
			Color:  child.Color,
		})
	}

	cluster(res.Nodes)
	res.Tiers = rings(res.Nodes, opts.OuterRadius)

	for _, n := range res.Nodes {
		n.X = n.Radius * math.Sin(n.Angle)
		n.Y = -n.Radius * math.Cos(n.Angle)
	}

	res.ShowLabels = len(res.Nodes) <= opts.LabelLimit
	res.ShowInnerLabels = len(res.Nodes) <= opts.InnerLabelLimit
	for _, n := range res.Nodes {
		label(n, res.ShowLabels, res.ShowInnerLabels)
	}
	return res
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.OuterRadius <= 0 {
		opts.OuterRadius = def.OuterRadius
	}
	if opts.LabelLimit <= 0 {
		opts.LabelLimit = def.LabelLimit
	}
	if opts.InnerLabelLimit <= 0 {
		opts.InnerLabelLimit = def.InnerLabelLimit
	}
	return opts
}

// separation is the gap between neighboring leaves. Cousins get twice
// the gap of siblings, and gaps shrink with depth.
func separation(a, b *Node) float64 {
	gap := 2.0
	if a.Parent == b.Parent {
		gap = 1
	}
	return gap / float64(a.depth)
}

// cluster assigns angles. Nodes must be in pre-order.
func cluster(nodes []*Node) {
	root := nodes[0]
	if len(nodes) == 1 {
		root.IsLeaf = true
		root.Angle = 0
		return
	}

	var left, prev *Node
	var x float64
	for _, n := range nodes {
		if len(n.Children) > 0 {
			continue
		}
		n.IsLeaf = true
		if prev == nil {
			left = n
		} else {
			x += separation(n, prev)
		}
		n.x = x
		prev = n
	}
	right := prev

	// reversed pre-order visits children before their parent
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if len(n.Children) == 0 {
			continue
		}
		var sum float64
		for _, c := range n.Children {
			sum += c.x
		}
		n.x = sum / float64(len(n.Children))
	}

	x0 := left.x - separation(left, right)/2
	x1 := right.x + separation(right, left)/2
	for _, n := range nodes {
		n.Angle = (n.x - x0) / (x1 - x0) * 2 * math.Pi
	}
}

// rings assigns radii by tier and returns the tiers of the rings.
func rings(nodes []*Node, outer float64) []int {
	var tiers []int
	for _, n := range nodes[1:] {
		if !slices.Contains(tiers, n.Taxon.Tier) {
			tiers = append(tiers, n.Taxon.Tier)
		}
	}
	slices.Sort(tiers)

	step := 0.0
	if len(tiers) > 0 {
		step = outer / float64(len(tiers))
	}
	for _, n := range nodes[1:] {
		n.Level = slices.Index(tiers, n.Taxon.Tier) + 1
		n.Radius = step * float64(n.Level)
	}
	return tiers
}

func label(n *Node, all, inner bool) {
	n.ShowLabel = all && (inner || n.Taxon.IsSpecies())
	rightHalf := n.Angle < math.Pi
	n.Flip = !rightHalf
	if rightHalf == n.IsLeaf {
		n.Anchor = AnchorStart
		n.LabelDX = labelOffset
		return
	}
	n.Anchor = AnchorEnd
	n.LabelDX = -labelOffset
}
