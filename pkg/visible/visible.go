// Package visible chooses which part of a subtree gets rendered.
//
// Large subtrees are cut by rank: whole tiers are hidden starting from
// species and moving up, until the number of remaining nodes fits the
// display budget. The fringe of the picture therefore always consists of
// complete tiers.
package visible

import (
	"github.com/gnames/gnradial/pkg/hierarchy"
	"github.com/gnames/gnradial/pkg/rank"
)

// DefaultBudget is the approximate number of nodes a frame may hold.
const DefaultBudget = 1400

// Path is a rendered link between two visible nodes.
type Path struct {
	// Parent is the nearest visible ancestor of Child. With ranks that
	// grow more specific down the tree it is always Child.Parent.
	Parent *hierarchy.Node
	Child  *hierarchy.Node
}

// Selection is the outcome of Select.
type Selection struct {
	// Root is the display root.
	Root *hierarchy.Node

	// Nodes are the root and its visible descendants in pre-order.
	Nodes []*hierarchy.Node

	// Paths hold one link for every visible node except the root.
	Paths []Path

	// HiddenRanks are ranks excluded from the frame, from general to
	// specific. They always end with species when not empty.
	HiddenRanks []rank.Rank

	// Cutoff is the first hidden tier. It equals rank.Count when nothing
	// is hidden.
	Cutoff int

	// Budget used to compute the cutoff.
	Budget int
}

// MaxTier returns the most specific tier that is still shown.
func (s Selection) MaxTier() int {
	return s.Cutoff - 1
}

// IsHidden reports whether nodes of rank r are excluded.
func (s Selection) IsHidden(r rank.Rank) bool {
	t, err := rank.TierOf(r)
	if err != nil {
		return false
	}
	return t >= s.Cutoff
}

// Len returns the number of visible nodes.
func (s Selection) Len() int {
	return len(s.Nodes)
}

// Select computes the visible part of the subtree under root.
// A budget of zero or less means DefaultBudget.
func Select(root *hierarchy.Node, budget int) Selection {
	if budget <= 0 {
		budget = DefaultBudget
	}
	cutoff := Cutoff(root, budget)

	res := Selection{
		Root:   root,
		Cutoff: cutoff,
		Budget: budget,
	}
	for t := cutoff; t < rank.Count; t++ {
		r, _ := rank.ByTier(t)
		res.HiddenRanks = append(res.HiddenRanks, r)
	}

	// parents are visited before children, so the nearest visible
	// ancestor of any node is known when the node is reached
	anchor := map[*hierarchy.Node]*hierarchy.Node{root: root}
	root.Each(func(n *hierarchy.Node) {
		if n == root {
			res.Nodes = append(res.Nodes, n)
			return
		}
		up := anchor[n.Parent]
		if n.Tier >= cutoff {
			anchor[n] = up
			return
		}
		anchor[n] = n
		res.Nodes = append(res.Nodes, n)
		res.Paths = append(res.Paths, Path{Parent: up, Child: n})
	})

	return res
}

// Cutoff returns the first tier to hide under root.
//
// Nodes are counted tier by tier starting at the root's own tier. The
// tier at which the running total exceeds budget becomes the cutoff. If
// that would leave nothing but the root's tier, or the root's tier and
// the next one, the cutoff moves one tier further, so a root with a huge
// number of children still shows them.
func Cutoff(root *hierarchy.Node, budget int) int {
	var perTier [rank.Count]int
	root.Each(func(n *hierarchy.Node) {
		if n.Tier >= 0 && n.Tier < rank.Count {
			perTier[n.Tier]++
		}
	})

	t := root.Tier
	var total int
	for t < rank.Count {
		total += perTier[t]
		if total > budget {
			break
		}
		t++
	}

	if t > root.Tier+1 {
		return t
	}
	return min(t+1, rank.Count)
}
