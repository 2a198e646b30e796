package navigate_test

import (
	"testing"

	"github.com/gnames/gnradial/internal/iotesting"
	"github.com/gnames/gnradial/pkg/hierarchy"
	"github.com/gnames/gnradial/pkg/navigate"
	"github.com/gnames/gnradial/pkg/rank"
	"github.com/gnames/gnradial/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tree := iotesting.Chordata(t)

	s := navigate.New(tree, nil)
	assert.Same(t, tree.Root(), s.Current())
	assert.Same(t, tree, s.Tree())

	felis := iotesting.Node(t, tree, "Felis")
	s = navigate.New(tree, felis)
	assert.Same(t, felis, s.Current())

	other := iotesting.Chordata(t)
	s = navigate.New(tree, iotesting.Node(t, other, "Felis"))
	assert.Same(t, tree.Root(), s.Current())
}

func TestDrillDown(t *testing.T) {
	tree := iotesting.Chordata(t)
	s := navigate.New(tree, nil)
	mammalia := iotesting.Node(t, tree, "Mammalia")

	assert.True(t, s.DrillDown(mammalia))
	assert.Same(t, mammalia, s.Current())
	assert.Equal(t, []string{"Chordata", "Mammalia"}, s.Path())

	// no-ops
	assert.False(t, s.DrillDown(mammalia))
	assert.False(t, s.DrillDown(nil))
	other := iotesting.Chordata(t)
	assert.False(t, s.DrillDown(iotesting.Node(t, other, "Felis")))
	assert.Same(t, mammalia, s.Current())

	// any node in the tree may be chosen, not only children
	sapiens := iotesting.Node(t, tree, "Homo sapiens")
	assert.True(t, s.DrillDown(sapiens))
	assert.Equal(t,
		"Chordata -> Mammalia -> Primates -> Hominidae -> Homo -> Homo sapiens",
		s.PathString(),
	)
}

func TestDrillUp(t *testing.T) {
	tree := iotesting.Chordata(t)
	s := navigate.New(tree, iotesting.Node(t, tree, "Homo"))

	assert.True(t, s.CanDrillUp())
	assert.True(t, s.DrillUp())
	assert.Equal(t, "Hominidae", s.Current().Name)

	for s.DrillUp() {
	}
	assert.Same(t, tree.Root(), s.Current())
	assert.False(t, s.CanDrillUp())
	assert.False(t, s.DrillUp())
	assert.Equal(t, "Chordata", s.PathString())
}

func TestDrillUpStopsAtPhylum(t *testing.T) {
	// a phylum that is not the global root
	tree, err := hierarchy.Build([]taxon.Record{
		{ID: "1", Name: "Root", Rank: rank.Phylum},
		{ID: "2", ParentID: "1", Name: "Inner", Rank: rank.Phylum},
		{ID: "3", ParentID: "2", Name: "Cls", Rank: rank.Class},
	})
	require.NoError(t, err)

	inner, err := tree.ByName("Inner")
	require.NoError(t, err)
	s := navigate.New(tree, inner)
	assert.False(t, s.CanDrillUp())
	assert.False(t, s.DrillUp())
	assert.Same(t, inner, s.Current())
}

func TestDrillUpAtNonPhylumRoot(t *testing.T) {
	tree := iotesting.Wide(t, 1, 1, 1)
	s := navigate.New(tree, nil)
	assert.False(t, s.DrillUp())

	cls := iotesting.Node(t, tree, "Testclass")
	s.DrillDown(cls)
	assert.True(t, s.DrillUp())
}

func TestRoundTrip(t *testing.T) {
	tree := iotesting.Chordata(t)
	s := navigate.New(tree, nil)

	tree.Root().Each(func(n *hierarchy.Node) {
		if n == tree.Root() {
			return
		}
		s.Reset(n.Parent)
		before := s.Current()
		path := s.PathString()

		require.True(t, s.DrillDown(n), n.Name)
		require.True(t, s.DrillUp(), n.Name)
		assert.Same(t, before, s.Current(), n.Name)
		assert.Equal(t, path, s.PathString(), n.Name)
	})
}

func TestReset(t *testing.T) {
	tree := iotesting.Chordata(t)
	s := navigate.New(tree, nil)

	aves := iotesting.Node(t, tree, "Aves")
	s.Reset(aves)
	assert.Same(t, aves, s.Current())
	s.Reset(aves)
	assert.Same(t, aves, s.Current())

	s.Reset(nil)
	assert.Same(t, tree.Root(), s.Current())
}
