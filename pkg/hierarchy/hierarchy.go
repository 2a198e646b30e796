// Package hierarchy builds the taxonomic tree out of flat records that
// reference their parents by id.
//
// The tree is built once and never changes afterwards. Everything that
// "moves" during navigation (display root, visible set, positions) is
// derived from it without mutating it, so the tree can be shared freely
// between render passes.
package hierarchy

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gnames/gnradial/pkg/rank"
	"github.com/gnames/gnradial/pkg/taxon"
)

// Node is a taxon placed in the tree.
type Node struct {
	// Record is the source data. Its Height field is the optional input
	// value; Node.Height below is the computed one.
	taxon.Record

	// Parent is nil for the global root. It is used to walk up the tree
	// and never owns anything.
	Parent *Node

	// Children are ordered by ascending Height, then by Name and ID.
	Children []*Node

	// Depth is the distance from the global root.
	Depth int

	// Height is the longest distance to a leaf.
	Height int

	// Tier is the position of Rank in the rank ordering.
	Tier int
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsSpecies reports whether the node has species rank.
func (n *Node) IsSpecies() bool {
	return n.Rank == rank.Species
}

// Ancestors returns the node itself followed by its parent, grandparent
// and so on up to the global root.
func (n *Node) Ancestors() []*Node {
	var res []*Node
	for cur := n; cur != nil; cur = cur.Parent {
		res = append(res, cur)
	}
	return res
}

// Lineage returns nodes from the global root down to n.
func (n *Node) Lineage() []*Node {
	res := n.Ancestors()
	slices.Reverse(res)
	return res
}

// Descendants returns n and all nodes below it in pre-order. It uses an
// explicit stack, so very deep taxonomies do not grow the call stack.
func (n *Node) Descendants() []*Node {
	var res []*Node
	n.Each(func(d *Node) {
		res = append(res, d)
	})
	return res
}

// Each calls fn for n and every node below it in pre-order.
func (n *Node) Each(fn func(*Node)) {
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(cur)
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
}

// Tree is the immutable result of Build.
type Tree struct {
	root   *Node
	byID   map[string]*Node
	byName map[string][]*Node
}

// Root returns the global root.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.byID)
}

// ByID returns the node with the given record id.
func (t *Tree) ByID(id string) (*Node, bool) {
	n, ok := t.byID[id]
	return n, ok
}

// ByName returns the only node with the given scientific name. Duplicate
// names in the data make such lookups ambiguous and return an error.
func (t *Tree) ByName(name string) (*Node, error) {
	name = strings.TrimSpace(name)
	nodes := t.byName[name]
	switch len(nodes) {
	case 0:
		return nil, NameNotFoundError(name)
	case 1:
		return nodes[0], nil
	default:
		ids := make([]string, len(nodes))
		for i := range nodes {
			ids[i] = nodes[i].ID
		}
		return nil, AmbiguousNameError(name, ids)
	}
}

// Contains reports whether n belongs to this tree.
func (t *Tree) Contains(n *Node) bool {
	if n == nil {
		return false
	}
	return t.byID[n.ID] == n
}

// Names returns sorted unique scientific names.
func (t *Tree) Names() []string {
	res := make([]string, 0, len(t.byName))
	for k := range t.byName {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Build converts records into a rooted tree.
//
// Validation happens in this order: duplicate ids, unknown ranks,
// dangling parent references, number of roots, reachability from the
// root. A record with a non-empty parent id that matches nothing is
// reported as a dangling parent even when it leaves the data without a
// root.
func Build(records []taxon.Record) (*Tree, error) {
	nodes := make([]*Node, len(records))
	byID := make(map[string]*Node, len(records))

	for i := range records {
		rec := records[i]
		if _, ok := byID[rec.ID]; ok {
			return nil, DuplicateIDError(rec.ID)
		}
		tier, err := rank.TierOf(rec.Rank)
		if err != nil {
			return nil, err
		}
		n := &Node{Record: rec, Tier: tier}
		nodes[i] = n
		byID[rec.ID] = n
	}

	var roots []*Node
	for _, n := range nodes {
		if n.ParentID == "" {
			roots = append(roots, n)
			continue
		}
		p, ok := byID[n.ParentID]
		if !ok {
			return nil, DanglingParentError(n.ID, n.ParentID)
		}
		n.Parent = p
		p.Children = append(p.Children, n)
	}

	switch len(roots) {
	case 0:
		return nil, NoRootError()
	case 1:
	default:
		ids := make([]string, len(roots))
		for i := range roots {
			ids[i] = roots[i].ID
		}
		return nil, MultipleRootsError(ids)
	}

	root := roots[0]
	reached := settle(root)
	if len(reached) != len(nodes) {
		var ids []string
		for _, n := range nodes {
			if _, ok := reached[n]; !ok {
				ids = append(ids, n.ID)
			}
		}
		slices.Sort(ids)
		return nil, UnreachableRecordsError(ids)
	}

	res := &Tree{
		root:   root,
		byID:   byID,
		byName: make(map[string][]*Node),
	}
	for _, n := range nodes {
		res.byName[n.Name] = append(res.byName[n.Name], n)
	}
	return res, nil
}

// settle walks the tree from root, assigning depth on the way down and
// height on the way up, then orders children. It returns the set of
// reached nodes.
func settle(root *Node) map[*Node]struct{} {
	reached := make(map[*Node]struct{})
	var order []*Node

	root.Depth = 0
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := reached[n]; ok {
			continue
		}
		reached[n] = struct{}{}
		order = append(order, n)
		for _, c := range n.Children {
			if _, ok := reached[c]; ok {
				continue
			}
			c.Depth = n.Depth + 1
			stack = append(stack, c)
		}
	}

	// children always follow their parent in order, so walking it
	// backwards is a post-order
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		n.Height = 0
		for _, c := range n.Children {
			n.Height = max(n.Height, c.Height+1)
		}
	}

	for _, n := range order {
		slices.SortStableFunc(n.Children, compareSiblings)
	}
	return reached
}

func compareSiblings(a, b *Node) int {
	return cmp.Or(
		cmp.Compare(a.Height, b.Height),
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.ID, b.ID),
	)
}

// Breadcrumbs returns the classification of n from the global root as
// three pipe-delimited strings: names, ranks and ids.
//
// Example: "Chordata|Mammalia|Homo sapiens", "phylum|class|species",
// "1|2|3".
func Breadcrumbs(n *Node) (names, ranks, ids string) {
	lineage := n.Lineage()
	nn := make([]string, len(lineage))
	rr := make([]string, len(lineage))
	ii := make([]string, len(lineage))
	for i, v := range lineage {
		nn[i] = v.Name
		rr[i] = v.Rank.String()
		ii[i] = v.ID
	}
	return strings.Join(nn, "|"),
		strings.Join(rr, "|"),
		strings.Join(ii, "|")
}
