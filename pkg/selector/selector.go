// Package selector finds a display root from user input: a common name
// search, a pick of a scientific name within a rank, or a configured
// default.
package selector

import (
	"slices"
	"strings"

	"github.com/gnames/gnradial/pkg/hierarchy"
	"github.com/gnames/gnradial/pkg/rank"
	"github.com/sahilm/fuzzy"
)

// Match is a taxon found by a common name search.
type Match struct {
	Node  *hierarchy.Node
	Score int
}

// Choice describes how the user asked for a root. Fields are checked in
// order: Common, then Rank with Name, then Name alone, then Rank alone.
// Rank alone picks the first name of that rank in alphabetical order.
type Choice struct {
	Common string
	Rank   rank.Rank
	Name   string
}

// IsEmpty is true when the choice has nothing to look for.
func (c Choice) IsEmpty() bool {
	return c.Common == "" && c.Name == "" && c.Rank == ""
}

// ByCommonName runs a fuzzy search of query over taxa that have a common
// name. Results are sorted by score, best first. A limit of zero or less
// returns all matches.
func ByCommonName(tree *hierarchy.Tree, query string, limit int) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var nodes []*hierarchy.Node
	var commons []string
	tree.Root().Each(func(n *hierarchy.Node) {
		if n.CommonName == "" {
			return
		}
		nodes = append(nodes, n)
		commons = append(commons, n.CommonName)
	})

	matches := fuzzy.Find(query, commons)
	res := make([]Match, 0, len(matches))
	for _, m := range matches {
		res = append(res, Match{Node: nodes[m.Index], Score: m.Score})
	}
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}

// NamesAtRank returns sorted scientific names of all taxa of rank r.
func NamesAtRank(tree *hierarchy.Tree, r rank.Rank) []string {
	var res []string
	tree.Root().Each(func(n *hierarchy.Node) {
		if n.Rank == r {
			res = append(res, n.Name)
		}
	})
	slices.Sort(res)
	return slices.Compact(res)
}

// FirstAtRank returns the taxon of rank r whose name comes first in
// alphabetical order.
func FirstAtRank(tree *hierarchy.Tree, r rank.Rank) (*hierarchy.Node, error) {
	if !r.IsValid() {
		return nil, rank.UnknownRankError(string(r))
	}
	names := NamesAtRank(tree, r)
	if len(names) == 0 {
		return nil, EmptyRankError(r)
	}
	return ByRankName(tree, r, names[0])
}

// ByRankName returns the taxon with the given rank and name.
func ByRankName(tree *hierarchy.Tree, r rank.Rank, name string) (*hierarchy.Node, error) {
	if _, err := rank.TierOf(r); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	var found []*hierarchy.Node
	tree.Root().Each(func(n *hierarchy.Node) {
		if n.Rank == r && n.Name == name {
			found = append(found, n)
		}
	})
	switch len(found) {
	case 0:
		return nil, hierarchy.NameNotFoundError(name)
	case 1:
		return found[0], nil
	default:
		ids := make([]string, len(found))
		for i := range found {
			ids[i] = found[i].ID
		}
		return nil, hierarchy.AmbiguousNameError(name, ids)
	}
}

// Resolve turns a choice into a node. An empty choice gives the node
// named defaultName, or the global root if there is no such node.
func Resolve(tree *hierarchy.Tree, c Choice, defaultName string) (*hierarchy.Node, error) {
	switch {
	case c.Common != "":
		ms := ByCommonName(tree, c.Common, 1)
		if len(ms) == 0 {
			return nil, CommonNameNotFoundError(c.Common)
		}
		return ms[0].Node, nil
	case c.Rank != "" && c.Name != "":
		return ByRankName(tree, c.Rank, c.Name)
	case c.Name != "":
		return tree.ByName(c.Name)
	case c.Rank != "":
		return FirstAtRank(tree, c.Rank)
	}

	if n, err := tree.ByName(defaultName); err == nil {
		return n, nil
	}
	return tree.Root(), nil
}
