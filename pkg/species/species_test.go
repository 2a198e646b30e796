package species_test

import (
	"math"
	"testing"

	"github.com/gnames/gnradial/internal/iotesting"
	"github.com/gnames/gnradial/pkg/hierarchy"
	"github.com/gnames/gnradial/pkg/navigate"
	"github.com/gnames/gnradial/pkg/rank"
	"github.com/gnames/gnradial/pkg/species"
	"github.com/gnames/gnradial/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountLeaves(t *testing.T) {
	tree := iotesting.Chordata(t)

	tests := []struct {
		name  string
		count int
	}{
		{"Chordata", 4},
		{"Mammalia", 4},
		{"Hominidae", 3},
		{"Pan", 2},
		{"Homo sapiens", 1},
		{"Aves", 0},
		{"Passeriformes", 0},
	}

	for _, tt := range tests {
		n := iotesting.Node(t, tree, tt.name)
		assert.Equal(t, tt.count, species.CountLeaves(n), tt.name)
	}
}

func TestCountLeavesSpeciesWithChildren(t *testing.T) {
	tree, err := hierarchy.Build([]taxon.Record{
		{ID: "1", Name: "G", Rank: rank.Genus},
		{ID: "2", ParentID: "1", Name: "G a", Rank: rank.Species},
		{ID: "3", ParentID: "2", Name: "G a b", Rank: rank.Species},
		{ID: "4", ParentID: "2", Name: "G a c", Rank: rank.Species},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, species.CountLeaves(tree.Root()))
}

func TestCountLeavesAdditive(t *testing.T) {
	tree := iotesting.Wide(t, 3, 4, 5)
	root := tree.Root()
	assert.Equal(t, 60, species.CountLeaves(root))

	var sum int
	for _, c := range root.Children {
		sum += species.CountLeaves(c)
	}
	assert.Equal(t, species.CountLeaves(root), sum)
}

func TestDistribution(t *testing.T) {
	tree := iotesting.Chordata(t)

	res := species.Distribution(tree.Root())
	assert.Equal(t, []species.Slice{
		{Name: "Aves", Count: 0},
		{Name: "Mammalia", Count: 4},
	}, res)
	assert.Equal(t, 4, species.Total(res))

	res = species.Distribution(iotesting.Node(t, tree, "Felis catus"))
	assert.Equal(t, []species.Slice{{Name: species.NoChildren, Count: 0}}, res)

	res = species.Distribution(iotesting.Node(t, tree, "Passeriformes"))
	assert.Empty(t, res)
}

func TestDistributionChain(t *testing.T) {
	tree, err := hierarchy.Build([]taxon.Record{
		{ID: "1", Name: "Chordata", Rank: rank.Phylum},
		{ID: "2", ParentID: "1", Name: "Mammalia", Rank: rank.Class},
		{ID: "3", ParentID: "2", Name: "Homo sapiens", Rank: rank.Species},
	})
	require.NoError(t, err)

	s := navigate.New(tree, nil)
	assert.Equal(t,
		[]species.Slice{{Name: "Mammalia", Count: 1}},
		species.Distribution(s.Current()),
	)

	mammalia, err := tree.ByName("Mammalia")
	require.NoError(t, err)
	require.True(t, s.DrillDown(mammalia))
	assert.Equal(t,
		[]species.Slice{{Name: "Homo sapiens", Count: 1}},
		species.Distribution(s.Current()),
	)
}

func TestShares(t *testing.T) {
	arcs := species.Shares([]species.Slice{
		{Name: "a", Count: 1},
		{Name: "b", Count: 0},
		{Name: "c", Count: 3},
	})
	require.Len(t, arcs, 3)
	assert.Equal(t, "a", arcs[0].Name)
	assert.InDelta(t, 0, arcs[0].StartAngle, 1e-9)
	assert.InDelta(t, math.Pi/2, arcs[0].EndAngle, 1e-9)
	assert.InDelta(t, math.Pi/2, arcs[1].StartAngle, 1e-9)
	assert.InDelta(t, math.Pi/2, arcs[1].EndAngle, 1e-9)
	assert.InDelta(t, 2*math.Pi, arcs[2].EndAngle, 1e-9)

	arcs = species.Shares([]species.Slice{{Name: species.NoChildren}})
	assert.Zero(t, arcs[0].EndAngle)
	assert.Empty(t, species.Shares(nil))
}
