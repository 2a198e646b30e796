// Package gnradial ties a taxonomic tree, configuration and navigation
// state into a Viewer that produces frames of the radial tree.
package gnradial

import (
	"github.com/gnames/gnradial/pkg/config"
	"github.com/gnames/gnradial/pkg/hierarchy"
	"github.com/gnames/gnradial/pkg/navigate"
	"github.com/gnames/gnradial/pkg/radial"
	"github.com/gnames/gnradial/pkg/selector"
	"github.com/gnames/gnradial/pkg/view"
)

// Viewer is one viewing session over an immutable tree. It is not safe
// for concurrent use.
type Viewer struct {
	cfg   *config.Config
	tree  *hierarchy.Tree
	state *navigate.State
}

// New creates a Viewer that starts at the configured root name, or at
// the global root if that name is not in the tree.
func New(cfg *config.Config, tree *hierarchy.Tree) *Viewer {
	start, _ := selector.Resolve(tree, selector.Choice{}, cfg.View.RootName)
	return &Viewer{
		cfg:   cfg,
		tree:  tree,
		state: navigate.New(tree, start),
	}
}

// Config returns the configuration of the viewer.
func (v *Viewer) Config() *config.Config {
	return v.cfg
}

// Tree returns the tree the viewer shows.
func (v *Viewer) Tree() *hierarchy.Tree {
	return v.tree
}

// State returns the navigation state.
func (v *Viewer) State() *navigate.State {
	return v.state
}

// Select moves the display root to the taxon described by the choice.
// An empty choice moves to the configured root.
func (v *Viewer) Select(c selector.Choice) error {
	n, err := selector.Resolve(v.tree, c, v.cfg.View.RootName)
	if err != nil {
		return err
	}
	v.state.Reset(n)
	return nil
}

// DrillDown makes the taxon with the given id the display root. It
// returns false if nothing changed.
func (v *Viewer) DrillDown(id string) bool {
	n, ok := v.tree.ByID(id)
	if !ok {
		return false
	}
	return v.state.DrillDown(n)
}

// DrillUp moves the display root to its parent. It returns false if
// nothing changed.
func (v *Viewer) DrillUp() bool {
	return v.state.DrillUp()
}

// Options converts view settings of the configuration.
func (v *Viewer) Options() view.Options {
	vc := v.cfg.View
	return view.Options{
		Budget: vc.Budget,
		Layout: radial.Options{
			OuterRadius:     float64(vc.OuterRadius),
			LabelLimit:      vc.LabelLimit,
			InnerLabelLimit: vc.InnerLabelLimit,
		},
	}
}

// Frame composes the frame of the current state.
func (v *Viewer) Frame() view.Frame {
	return view.Compose(v.state, v.Options())
}
