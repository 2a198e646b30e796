// Package iotesting provides shared fixtures for tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"fmt"
	"testing"

	"github.com/gnames/gnradial/pkg/config"
	"github.com/gnames/gnradial/pkg/hierarchy"
	"github.com/gnames/gnradial/pkg/rank"
	"github.com/gnames/gnradial/pkg/taxon"
	"github.com/stretchr/testify/require"
)

// GetTestConfig returns default configuration with HomeDir pointing to a
// temporary directory.
func GetTestConfig(t *testing.T) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(t.TempDir())})
	return cfg
}

// ChordataRecords returns a small but realistic classification:
//
//	Chordata (phylum)
//	├── Mammalia (class)
//	│   ├── Primates (order)
//	│   │   └── Hominidae (family)
//	│   │       ├── Homo (genus) -> Homo sapiens
//	│   │       └── Pan (genus) -> Pan troglodytes, Pan paniscus
//	│   └── Carnivora (order)
//	│       └── Felidae (family) -> Felis (genus) -> Felis catus
//	└── Aves (class)
//	    └── Passeriformes (order)
func ChordataRecords() []taxon.Record {
	return []taxon.Record{
		rec("1", "", "Chordata", "chordates", rank.Phylum),
		rec("2", "1", "Mammalia", "mammals", rank.Class),
		rec("3", "2", "Primates", "primates", rank.Order),
		rec("4", "3", "Hominidae", "great apes", rank.Family),
		rec("5", "4", "Homo", "", rank.Genus),
		rec("6", "5", "Homo sapiens", "human", rank.Species),
		rec("7", "4", "Pan", "", rank.Genus),
		rec("8", "7", "Pan troglodytes", "chimpanzee", rank.Species),
		rec("9", "7", "Pan paniscus", "bonobo", rank.Species),
		rec("10", "2", "Carnivora", "carnivores", rank.Order),
		rec("11", "10", "Felidae", "cats", rank.Family),
		rec("12", "11", "Felis", "", rank.Genus),
		rec("13", "12", "Felis catus", "domestic cat", rank.Species),
		rec("14", "1", "Aves", "birds", rank.Class),
		rec("15", "14", "Passeriformes", "perching birds", rank.Order),
	}
}

// Chordata builds the tree from ChordataRecords.
func Chordata(t *testing.T) *hierarchy.Tree {
	tree, err := hierarchy.Build(ChordataRecords())
	require.NoError(t, err)
	return tree
}

// WideRecords returns a phylum with one class holding the given number of
// families, each with genera, each with species.
func WideRecords(families, genera, species int) []taxon.Record {
	res := []taxon.Record{
		rec("p", "", "Testphylum", "", rank.Phylum),
		rec("c", "p", "Testclass", "", rank.Class),
	}
	for f := range families {
		fID := fmt.Sprintf("f%d", f)
		res = append(res, rec(fID, "c", "Family"+fID, "", rank.Family))
		for g := range genera {
			gID := fmt.Sprintf("%s-g%d", fID, g)
			res = append(res, rec(gID, fID, "Genus"+gID, "", rank.Genus))
			for s := range species {
				sID := fmt.Sprintf("%s-s%d", gID, s)
				res = append(res, rec(sID, gID, "Species"+sID, "", rank.Species))
			}
		}
	}
	return res
}

// Wide builds the tree from WideRecords.
func Wide(t *testing.T, families, genera, species int) *hierarchy.Tree {
	tree, err := hierarchy.Build(WideRecords(families, genera, species))
	require.NoError(t, err)
	return tree
}

// Node returns the node with the given name or fails the test.
func Node(t *testing.T, tree *hierarchy.Tree, name string) *hierarchy.Node {
	n, err := tree.ByName(name)
	require.NoError(t, err)
	return n
}

func rec(id, parent, name, common string, r rank.Rank) taxon.Record {
	return taxon.Record{
		ID:         id,
		ParentID:   parent,
		Name:       name,
		CommonName: common,
		Rank:       r,
	}
}
