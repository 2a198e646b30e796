package taxon_test

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnradial/pkg/errcode"
	"github.com/gnames/gnradial/pkg/rank"
	"github.com/gnames/gnradial/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	rows := []map[string]string{
		{"id": "1", "parent": "", "name": "Chordata", "rank": "phylum",
			"common_name": "chordates"},
		{"id": "2", "parent": "1", "name": "Mammalia", "rank": "Class",
			"height": "1"},
		{"id": "3", "parent": "2", "name": " Homo sapiens ", "rank": "species",
			"area": "Worldwide", "authority": "Linnaeus, 1758"},
	}

	recs, err := taxon.Load(rows)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.True(t, recs[0].IsRoot())
	assert.Equal(t, "chordates", recs[0].CommonName)
	assert.Equal(t, rank.Class, recs[1].Rank)
	assert.Equal(t, 1, recs[1].Height)
	assert.Equal(t, "Homo sapiens", recs[2].Name)
	assert.Equal(t, "2", recs[2].ParentID)
	assert.Equal(t, "Worldwide", recs[2].Area)
	assert.Equal(t, "Linnaeus, 1758", recs[2].Extra["authority"])
	assert.Nil(t, recs[0].Extra)
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		msg string
		row map[string]string
	}{
		{"missing id", map[string]string{"name": "X", "rank": "genus"}},
		{"missing name", map[string]string{"id": "1", "rank": "genus"}},
		{"missing rank", map[string]string{"id": "1", "name": "X"}},
		{"unknown rank", map[string]string{"id": "1", "name": "X", "rank": "kingdom"}},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			good := map[string]string{"id": "0", "name": "Chordata", "rank": "phylum"}
			recs, err := taxon.Load([]map[string]string{good, v.row})
			require.Error(t, err)
			assert.Nil(t, recs, "no partial dataset")

			var gnErr *gn.Error
			require.True(t, errors.As(err, &gnErr))
			assert.Equal(t, errcode.MalformedRecordError, gnErr.Code)
			assert.True(t, errors.Is(gnErr.Err, taxon.ErrMalformedRecord))
			assert.Contains(t, gnErr.Err.Error(), "row 2")
			assert.Contains(t, gnErr.Err.Error(), v.msg)
		})
	}
}

func TestLoadOddHeight(t *testing.T) {
	tests := []struct {
		msg, height string
	}{
		{"negative", "-2"},
		{"not a number", "tall"},
		{"float", "1.5"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			rows := []map[string]string{
				{"id": "1", "name": "Felis", "rank": "genus", "height": v.height},
			}
			recs, err := taxon.Load(rows)
			require.NoError(t, err)
			require.Len(t, recs, 1)
			assert.Equal(t, 0, recs[0].Height)
			assert.Equal(t, v.height, recs[0].Extra["height"])
		})
	}
}

func TestLoadDuplicateNamesAllowed(t *testing.T) {
	rows := []map[string]string{
		{"id": "1", "name": "Aus", "rank": "genus"},
		{"id": "2", "name": "Aus", "rank": "genus"},
	}
	recs, err := taxon.Load(rows)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}
