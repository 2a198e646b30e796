// Package rank holds the fixed, totally ordered taxonomic ranks used by
// gnradial. The position of a rank in the ordering is its tier. Tiers,
// not tree depth, drive both node color and radial placement.
package rank

import (
	"strings"
)

// Rank is a lowercase taxonomic rank label such as "genus".
type Rank string

const (
	Phylum      Rank = "phylum"
	Subphylum   Rank = "subphylum"
	Infraphylum Rank = "infraphylum"
	Parvphylum  Rank = "parvphylum"
	Megaclass   Rank = "megaclass"
	Class       Rank = "class"
	Subclass    Rank = "subclass"
	Infraclass  Rank = "infraclass"
	Order       Rank = "order"
	Suborder    Rank = "suborder"
	Infraorder  Rank = "infraorder"
	Superfamily Rank = "superfamily"
	Family      Rank = "family"
	Subfamily   Rank = "subfamily"
	Tribe       Rank = "tribe"
	Subtribe    Rank = "subtribe"
	Genus       Rank = "genus"
	Subgenus    Rank = "subgenus"
	Species     Rank = "species"
)

// ordered lists ranks from the most general (tier 0) to the most
// specific (tier 18).
var ordered = []Rank{
	Phylum, Subphylum, Infraphylum, Parvphylum, Megaclass,
	Class, Subclass, Infraclass,
	Order, Suborder, Infraorder,
	Superfamily, Family, Subfamily,
	Tribe, Subtribe,
	Genus, Subgenus,
	Species,
}

// palette is indexed by tier. General ranks are warm, specific ranks
// are cool.
var palette = []string{
	"#f59051", "#ffa44a", "#ffc547", "#f5db76", "#f2ef9b",
	"#e0f0dd", "#d1e7cb", "#a3d4a1", "#86c483", "#4eb86c",
	"#7ad5bb", "#4eb0c6", "#0868ac", "#084081", "#ccdcec",
	"#abbfd1", "#90acc8", "#a1a9d2", "#8856a7",
}

var tiers = func() map[Rank]int {
	res := make(map[Rank]int, len(ordered))
	for i, r := range ordered {
		res[r] = i
	}
	return res
}()

// Count is the number of ranks (and tiers) in the model.
const Count = 19

// All returns a copy of the ordered rank list.
func All() []Rank {
	res := make([]Rank, len(ordered))
	copy(res, ordered)
	return res
}

// Parse normalizes s and returns the matching Rank. The second value is
// false if s is not one of the known ranks.
func Parse(s string) (Rank, bool) {
	r := Rank(strings.ToLower(strings.TrimSpace(s)))
	_, ok := tiers[r]
	return r, ok
}

// IsValid reports whether r belongs to the rank enumeration.
func (r Rank) IsValid() bool {
	_, ok := tiers[r]
	return ok
}

func (r Rank) String() string {
	return string(r)
}

// TierOf returns the position of r in the rank ordering.
func TierOf(r Rank) (int, error) {
	t, ok := tiers[r]
	if !ok {
		return 0, UnknownRankError(string(r))
	}
	return t, nil
}

// ByTier returns the rank at tier t, or false if t is out of range.
func ByTier(t int) (Rank, bool) {
	if t < 0 || t >= len(ordered) {
		return "", false
	}
	return ordered[t], true
}

// ColorOf returns the hex color assigned to r. Every rank has its own
// color.
func ColorOf(r Rank) (string, error) {
	t, err := TierOf(r)
	if err != nil {
		return "", err
	}
	return palette[t], nil
}

// TierColor returns the color for tier t. Tiers out of range get a
// neutral grey.
func TierColor(t int) string {
	if t < 0 || t >= len(palette) {
		return "#999999"
	}
	return palette[t]
}
