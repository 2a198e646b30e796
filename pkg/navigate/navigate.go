// Package navigate keeps track of the display root while a user moves
// through the tree.
//
// The state only holds a borrowed reference to the current root. The
// path from the global root is recomputed from the ancestor chain every
// time it is requested, so it cannot drift away from the current root no
// matter in which order transitions arrive.
package navigate

import (
	"strings"

	"github.com/gnames/gnradial/pkg/hierarchy"
	"github.com/gnames/gnradial/pkg/rank"
)

// PathSeparator joins names in PathString.
const PathSeparator = " -> "

// State is the navigation state of one session. It is not safe for
// concurrent use.
type State struct {
	tree    *hierarchy.Tree
	current *hierarchy.Node
}

// New creates a state viewing start. If start is nil or does not belong
// to tree, the global root is used.
func New(tree *hierarchy.Tree, start *hierarchy.Node) *State {
	res := &State{tree: tree, current: tree.Root()}
	if tree.Contains(start) {
		res.current = start
	}
	return res
}

// Tree returns the tree the state navigates.
func (s *State) Tree() *hierarchy.Tree {
	return s.tree
}

// Current returns the display root.
func (s *State) Current() *hierarchy.Node {
	return s.current
}

// DrillDown makes n the display root. It does nothing and returns false
// if n is nil, is already the display root or belongs to another tree.
func (s *State) DrillDown(n *hierarchy.Node) bool {
	if n == nil || n == s.current || !s.tree.Contains(n) {
		return false
	}
	s.current = n
	return true
}

// CanDrillUp reports whether DrillUp would change the state. Drilling
// up stops at the global root and at phylum rank.
func (s *State) CanDrillUp() bool {
	return s.current.Parent != nil && s.current.Rank != rank.Phylum
}

// DrillUp makes the parent of the display root the new display root.
// It returns false when CanDrillUp is false.
func (s *State) DrillUp() bool {
	if !s.CanDrillUp() {
		return false
	}
	s.current = s.current.Parent
	return true
}

// Reset moves the display root to n regardless of the current one, for
// example after the user picked a new root from a list. A nil or foreign
// n resets to the global root.
func (s *State) Reset(n *hierarchy.Node) {
	if !s.tree.Contains(n) {
		n = s.tree.Root()
	}
	s.current = n
}

// Path returns names from the global root down to the display root.
func (s *State) Path() []string {
	lineage := s.current.Lineage()
	res := make([]string, len(lineage))
	for i := range lineage {
		res[i] = lineage[i].Name
	}
	return res
}

// PathString returns Path joined with PathSeparator.
func (s *State) PathString() string {
	return strings.Join(s.Path(), PathSeparator)
}
