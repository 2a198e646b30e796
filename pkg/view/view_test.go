package view_test

import (
	"testing"

	"github.com/gnames/gnradial/internal/iotesting"
	"github.com/gnames/gnradial/pkg/navigate"
	"github.com/gnames/gnradial/pkg/rank"
	"github.com/gnames/gnradial/pkg/species"
	"github.com/gnames/gnradial/pkg/view"
	"github.com/gnames/gnuuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	tree := iotesting.Chordata(t)
	state := navigate.New(tree, nil)
	fr := view.Compose(state, view.DefaultOptions())

	assert.Equal(t, "Chordata phylum", fr.Title)
	assert.Equal(t, "chordates", fr.CommonName)
	assert.Equal(t, []string{"Chordata"}, fr.Path)
	assert.Equal(t, "Chordata", fr.PathString)
	assert.False(t, fr.CanDrillUp)
	assert.Empty(t, fr.HiddenRanks)
	assert.True(t, fr.ShowLabels)

	assert.Len(t, fr.Nodes, 15)
	assert.Len(t, fr.Edges, 14)
	assert.True(t, fr.Root.IsRoot)
	assert.Zero(t, fr.Root.Radius)
	assert.Equal(t, 4, fr.Root.Species)
	assert.Equal(t, 4, fr.SpeciesTotal)

	require.Len(t, fr.Distribution, 2)
	assert.Equal(t, "Aves", fr.Distribution[0].Name)
	assert.Equal(t, 4, fr.Distribution[1].Count)

	keys := make(map[string]bool)
	for _, n := range fr.Nodes {
		keys[n.Key.String()] = true
	}
	for _, e := range fr.Edges {
		assert.True(t, keys[e.Source.String()])
		assert.True(t, keys[e.Target.String()])
		assert.NotEmpty(t, e.Path)
	}
}

func TestComposeAfterDrill(t *testing.T) {
	tree := iotesting.Chordata(t)
	state := navigate.New(tree, nil)
	before := view.Compose(state, view.DefaultOptions())

	require.True(t, state.DrillDown(iotesting.Node(t, tree, "Homo")))
	fr := view.Compose(state, view.DefaultOptions())
	assert.Equal(t, "Homo genus", fr.Title)
	assert.Equal(t, "sub-rank of great apes", fr.CommonName)
	assert.True(t, fr.CanDrillUp)
	assert.Len(t, fr.Nodes, 2)
	assert.Equal(t,
		[]species.Arc{{
			Slice:    species.Slice{Name: "Homo sapiens", Count: 1},
			EndAngle: fr.Distribution[0].EndAngle,
		}},
		fr.Distribution,
	)

	// frames are pure functions of the state
	require.True(t, state.DrillUp())
	for state.DrillUp() {
	}
	after := view.Compose(state, view.DefaultOptions())
	assert.Equal(t, before.Nodes, after.Nodes)
	assert.Equal(t, before.Edges, after.Edges)
}

func TestComposeSpeciesRoot(t *testing.T) {
	tree := iotesting.Chordata(t)
	state := navigate.New(tree, iotesting.Node(t, tree, "Pan paniscus"))
	fr := view.Compose(state, view.DefaultOptions())

	assert.Len(t, fr.Nodes, 1)
	assert.Empty(t, fr.Edges)
	require.Len(t, fr.Distribution, 1)
	assert.Equal(t, species.NoChildren, fr.Distribution[0].Name)
	assert.Equal(t, 1, fr.SpeciesTotal)
	assert.Empty(t, fr.HiddenRanks)
	assert.Equal(t, rank.Species, fr.MaxRank)
}

func TestComposeHidden(t *testing.T) {
	tree := iotesting.Wide(t, 5, 5, 10)
	state := navigate.New(tree, nil)
	opts := view.DefaultOptions()
	opts.Budget = 100
	fr := view.Compose(state, opts)

	assert.Equal(t, []rank.Rank{rank.Species}, fr.HiddenRanks)
	assert.Equal(t, rank.Subgenus, fr.MaxRank)
	assert.True(t, fr.Selection.IsHidden(rank.Species))
	assert.Len(t, fr.Nodes, 32)
	assert.Equal(t, 250, fr.SpeciesTotal)
}

func TestKey(t *testing.T) {
	tree := iotesting.Chordata(t)
	n := iotesting.Node(t, tree, "Felis")
	assert.Equal(t, gnuuid.New("12|Felis"), view.Key(n))
	assert.NotEqual(t, view.Key(n), view.Key(n.Parent))
}

func TestDisplayCommonName(t *testing.T) {
	tree := iotesting.Chordata(t)

	tests := []struct {
		name, res string
	}{
		{"Felis catus", "domestic cat"},
		{"Felis", "sub-rank of cats"},
		{"Homo sapiens", "human"},
		{"Homo", "sub-rank of great apes"},
	}
	for _, tt := range tests {
		n := iotesting.Node(t, tree, tt.name)
		assert.Equal(t, tt.res, view.DisplayCommonName(n, "unknown"), tt.name)
	}

	wide := iotesting.Wide(t, 1, 1, 1)
	assert.Equal(t, "Unknown", view.DisplayCommonName(wide.Root(), "Unknown"))
	cls := iotesting.Node(t, wide, "Testclass")
	assert.Equal(t, "unknown", view.DisplayCommonName(cls, "unknown"))
}
