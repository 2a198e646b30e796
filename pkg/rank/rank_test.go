package rank_test

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnradial/pkg/errcode"
	"github.com/gnames/gnradial/pkg/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierOf(t *testing.T) {
	tests := []struct {
		msg  string
		rank rank.Rank
		tier int
	}{
		{"phylum", rank.Phylum, 0},
		{"class", rank.Class, 5},
		{"subclass", rank.Subclass, 6},
		{"infraclass", rank.Infraclass, 7},
		{"order", rank.Order, 8},
		{"family", rank.Family, 12},
		{"genus", rank.Genus, 16},
		{"species", rank.Species, 18},
	}

	for _, v := range tests {
		tier, err := rank.TierOf(v.rank)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.tier, tier, v.msg)
	}
}

func TestTierOfUnknown(t *testing.T) {
	_, err := rank.TierOf("kingdom")
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.UnknownRankError, gnErr.Code)
	assert.True(t, errors.Is(gnErr.Err, rank.ErrUnknownRank))
}

func TestParse(t *testing.T) {
	r, ok := rank.Parse("  Genus ")
	assert.True(t, ok)
	assert.Equal(t, rank.Genus, r)

	_, ok = rank.Parse("variety")
	assert.False(t, ok)
}

func TestAllOrdered(t *testing.T) {
	all := rank.All()
	require.Len(t, all, rank.Count)
	assert.Equal(t, rank.Phylum, all[0])
	assert.Equal(t, rank.Species, all[rank.Count-1])

	for i, r := range all {
		tier, err := rank.TierOf(r)
		require.NoError(t, err)
		assert.Equal(t, i, tier)

		byTier, ok := rank.ByTier(i)
		assert.True(t, ok)
		assert.Equal(t, r, byTier)
	}

	// All returns a copy.
	all[0] = "changed"
	assert.Equal(t, rank.Phylum, rank.All()[0])
}

func TestColorOfIsBijective(t *testing.T) {
	seen := make(map[string]rank.Rank)
	for _, r := range rank.All() {
		c, err := rank.ColorOf(r)
		require.NoError(t, err)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, c)
		prev, dup := seen[c]
		assert.False(t, dup, "%s shares color with %s", r, prev)
		seen[c] = r
	}
	assert.Len(t, seen, rank.Count)

	_, err := rank.ColorOf("domain")
	assert.Error(t, err)
}

func TestByTierOutOfRange(t *testing.T) {
	_, ok := rank.ByTier(-1)
	assert.False(t, ok)
	_, ok = rank.ByTier(rank.Count)
	assert.False(t, ok)
	assert.Equal(t, "#999999", rank.TierColor(42))
}
