// Package taxon converts raw tabular rows into validated taxon records.
// This is a pure package: rows come from an I/O layer (CSV, SFGA).
package taxon

import (
	"strconv"
	"strings"

	"github.com/gnames/gnradial/pkg/rank"
)

// Column names recognized in input rows. Any other column is kept in
// Record.Extra.
const (
	ColID         = "id"
	ColParent     = "parent"
	ColName       = "name"
	ColCommonName = "common_name"
	ColRank       = "rank"
	ColArea       = "area"
	ColHeight     = "height"
)

// Record is one immutable row of the taxonomy.
type Record struct {
	// ID is unique across the dataset.
	ID string
	// ParentID is empty for the single global root.
	ParentID string
	// Name is the scientific name.
	Name string
	// CommonName is the vernacular name, may be empty.
	CommonName string
	Rank       rank.Rank
	// Area is free-text locality information.
	Area string
	// Height is an optional precomputed height from the input. The
	// hierarchy builder computes its own and does not rely on it. Values
	// that are not non-negative integers are kept in Extra["height"].
	Height int
	// Extra keeps descriptive columns that have no dedicated field.
	Extra map[string]string
}

// IsRoot reports whether the record has no parent reference.
func (r Record) IsRoot() bool {
	return r.ParentID == ""
}

// Load parses rows into records. It fails on the first row that misses
// id, name or rank, or has a rank outside of the rank enumeration.
// Duplicate names are kept.
func Load(rows []map[string]string) ([]Record, error) {
	res := make([]Record, 0, len(rows))
	for i, row := range rows {
		rec, err := parseRow(i+1, row)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, nil
}

func parseRow(num int, row map[string]string) (Record, error) {
	get := func(col string) string {
		return strings.TrimSpace(row[col])
	}

	id, name, rnk := get(ColID), get(ColName), get(ColRank)
	switch {
	case id == "":
		return Record{}, MalformedRecordError(num, id, name, rnk, "missing id")
	case name == "":
		return Record{}, MalformedRecordError(num, id, name, rnk, "missing name")
	case rnk == "":
		return Record{}, MalformedRecordError(num, id, name, rnk, "missing rank")
	}

	r, ok := rank.Parse(rnk)
	if !ok {
		return Record{}, MalformedRecordError(num, id, name, rnk, "unknown rank")
	}

	res := Record{
		ID:         id,
		ParentID:   get(ColParent),
		Name:       name,
		CommonName: get(ColCommonName),
		Rank:       r,
		Area:       get(ColArea),
	}

	// height is informational, a value that is not a non-negative
	// integer stays in Extra as it is
	if h := get(ColHeight); h != "" {
		height, err := strconv.Atoi(h)
		if err == nil && height >= 0 {
			res.Height = height
		} else {
			res.Extra = map[string]string{ColHeight: h}
		}
	}

	for k, v := range row {
		if isKnownColumn(k) {
			continue
		}
		if res.Extra == nil {
			res.Extra = make(map[string]string)
		}
		res.Extra[k] = v
	}

	return res, nil
}

func isKnownColumn(col string) bool {
	switch col {
	case ColID, ColParent, ColName, ColCommonName, ColRank, ColArea, ColHeight:
		return true
	}
	return false
}
