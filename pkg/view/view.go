// Package view composes everything a drawing layer needs for one
// navigation state into a Frame.
//
// Compose is a pure function of the tree and the state. Drawing layers
// (SVG, terminal, JSON) consume frames and may diff consecutive frames by
// node keys.
package view

import (
	"github.com/gnames/gnradial/pkg/hierarchy"
	"github.com/gnames/gnradial/pkg/navigate"
	"github.com/gnames/gnradial/pkg/radial"
	"github.com/gnames/gnradial/pkg/rank"
	"github.com/gnames/gnradial/pkg/species"
	"github.com/gnames/gnradial/pkg/visible"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// Options are thresholds and sizes of a frame.
type Options struct {
	// Budget is passed to the visible subtree selection.
	Budget int

	Layout radial.Options
}

// DefaultOptions returns default thresholds.
func DefaultOptions() Options {
	return Options{
		Budget: visible.DefaultBudget,
		Layout: radial.DefaultOptions(),
	}
}

// Frame is a complete description of one render pass.
type Frame struct {
	// Title is the name and the rank of the display root.
	Title string `json:"title"`

	// CommonName of the display root as it is shown to users.
	CommonName string `json:"commonName"`

	// Path contains names from the global root to the display root.
	Path []string `json:"path"`

	PathString string `json:"pathString"`
	CanDrillUp bool   `json:"canDrillUp"`

	Root  NodeView   `json:"root"`
	Nodes []NodeView `json:"nodes"`
	Edges []EdgeView `json:"edges"`

	// HiddenRanks are ranks left out to keep the frame small.
	HiddenRanks []rank.Rank `json:"hiddenRanks"`
	// MaxRank is the most specific rank still drawn.
	MaxRank rank.Rank `json:"maxRank"`

	ShowLabels      bool `json:"showLabels"`
	ShowInnerLabels bool `json:"showInnerLabels"`

	// Distribution splits species of the display root by its children.
	Distribution []species.Arc `json:"distribution"`
	SpeciesTotal int           `json:"speciesTotal"`

	// Layout keeps positioned nodes with links to the tree.
	Layout radial.Result `json:"-"`
	// Selection tells which ranks of the display root are drawn.
	Selection visible.Selection `json:"-"`
}

// NodeView is a positioned visible taxon.
type NodeView struct {
	// Key identifies the taxon across frames.
	Key uuid.UUID `json:"key"`

	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CommonName string    `json:"commonName"`
	Rank       rank.Rank `json:"rank"`
	Tier       int       `json:"tier"`
	Area       string    `json:"area,omitempty"`

	Angle  float64 `json:"angle"`
	Radius float64 `json:"radius"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`

	IsRoot bool   `json:"isRoot"`
	IsLeaf bool   `json:"isLeaf"`
	Color  string `json:"color"`

	ShowLabel bool   `json:"showLabel"`
	Anchor    string `json:"anchor"`
	LabelDX   int    `json:"labelDx"`
	Flip      bool   `json:"flip"`

	// Species is the number of species in the subtree.
	Species int `json:"species"`
}

// EdgeView is a positioned link from a parent to a child.
type EdgeView struct {
	Source uuid.UUID `json:"source"`
	Target uuid.UUID `json:"target"`

	SourceAngle  float64 `json:"sourceAngle"`
	SourceRadius float64 `json:"sourceRadius"`
	TargetAngle  float64 `json:"targetAngle"`
	TargetRadius float64 `json:"targetRadius"`

	// Path is SVG path data of the link.
	Path  string `json:"path"`
	Color string `json:"color"`
}

// Key returns the identity of a taxon in frames.
func Key(n *hierarchy.Node) uuid.UUID {
	return gnuuid.New(n.ID + "|" + n.Name)
}

// Compose builds the frame of the current navigation state.
func Compose(state *navigate.State, opts Options) Frame {
	cur := state.Current()
	sel := visible.Select(cur, opts.Budget)
	lay := radial.Layout(sel, opts.Layout)

	dist := species.Distribution(cur)
	res := Frame{
		Title:           Title(cur),
		CommonName:      DisplayCommonName(cur, "Unknown"),
		Path:            state.Path(),
		PathString:      state.PathString(),
		CanDrillUp:      state.CanDrillUp(),
		HiddenRanks:     sel.HiddenRanks,
		ShowLabels:      lay.ShowLabels,
		ShowInnerLabels: lay.ShowInnerLabels,
		Distribution:    species.Shares(dist),
		SpeciesTotal:    species.CountLeaves(cur),
		Layout:          lay,
		Selection:       sel,
	}
	res.MaxRank, _ = rank.ByTier(sel.MaxTier())

	res.Nodes = make([]NodeView, len(lay.Nodes))
	for i, n := range lay.Nodes {
		res.Nodes[i] = nodeView(n)
	}
	if len(res.Nodes) > 0 {
		res.Root = res.Nodes[0]
	}

	res.Edges = make([]EdgeView, len(lay.Edges))
	for i, e := range lay.Edges {
		res.Edges[i] = EdgeView{
			Source:       Key(e.Parent.Taxon),
			Target:       Key(e.Child.Taxon),
			SourceAngle:  e.Parent.Angle,
			SourceRadius: e.Parent.Radius,
			TargetAngle:  e.Child.Angle,
			TargetRadius: e.Child.Radius,
			Path:         e.Path(),
			Color:        e.Color,
		}
	}
	return res
}

func nodeView(n *radial.Node) NodeView {
	t := n.Taxon
	return NodeView{
		Key:        Key(t),
		ID:         t.ID,
		Name:       t.Name,
		CommonName: DisplayCommonName(t, "unknown"),
		Rank:       t.Rank,
		Tier:       t.Tier,
		Area:       t.Area,
		Angle:      n.Angle,
		Radius:     n.Radius,
		X:          n.X,
		Y:          n.Y,
		IsRoot:     n.IsRoot,
		IsLeaf:     n.IsLeaf,
		Color:      n.Color,
		ShowLabel:  n.ShowLabel,
		Anchor:     n.Anchor,
		LabelDX:    n.LabelDX,
		Flip:       n.Flip,
		Species:    species.CountLeaves(t),
	}
}

// Title returns the scientific name followed by the rank.
func Title(n *hierarchy.Node) string {
	return n.Name + " " + n.Rank.String()
}

// DisplayCommonName returns the common name of n. Without it the parent's
// common name is used as "sub-rank of <name>". If the parent has no
// common name either, unknown is returned.
func DisplayCommonName(n *hierarchy.Node, unknown string) string {
	if n.CommonName != "" {
		return n.CommonName
	}
	if n.Parent == nil || n.Parent.CommonName == "" {
		return unknown
	}
	return "sub-rank of " + n.Parent.CommonName
}
