// Package species counts species under the children of a taxon for the
// distribution pie chart.
package species

import (
	"math"

	"github.com/gnames/gnradial/pkg/hierarchy"
)

// NoChildren is the name of the only slice returned for a species.
const NoChildren = "Taxon Has No Children"

// Slice is a share of species that belongs to one child taxon.
type Slice struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Arc is a slice placed on a pie.
type Arc struct {
	Slice
	// StartAngle and EndAngle are in radians clockwise from 12 o'clock.
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

// CountLeaves returns the number of species in the subtree of n. A
// species counts as one regardless of anything placed below it. Other
// taxa without children count as zero.
func CountLeaves(n *hierarchy.Node) int {
	var res int
	stack := []*hierarchy.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.IsSpecies() {
			res++
			continue
		}
		stack = append(stack, cur.Children...)
	}
	return res
}

// Distribution returns one slice per direct child of root in the child
// order. A species root gives a single NoChildren slice with zero count,
// any other root without children gives an empty result.
func Distribution(root *hierarchy.Node) []Slice {
	if root.IsSpecies() {
		return []Slice{{Name: NoChildren}}
	}
	res := make([]Slice, len(root.Children))
	for i, c := range root.Children {
		res[i] = Slice{Name: c.Name, Count: CountLeaves(c)}
	}
	return res
}

// Total sums counts of all slices.
func Total(slices []Slice) int {
	var res int
	for _, v := range slices {
		res += v.Count
	}
	return res
}

// Shares lays slices out on a full circle in the given order. Each arc
// spans an angle proportional to its count. If all counts are zero all
// arcs are empty.
func Shares(slices []Slice) []Arc {
	total := Total(slices)
	res := make([]Arc, len(slices))
	var angle float64
	for i, v := range slices {
		res[i] = Arc{Slice: v, StartAngle: angle, EndAngle: angle}
		if total > 0 {
			angle += 2 * math.Pi * float64(v.Count) / float64(total)
			res[i].EndAngle = angle
		}
	}
	return res
}
