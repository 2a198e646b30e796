package iotaxa

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/gnames/gnlib"
	"github.com/gnames/gnradial/internal/iofs"
	"github.com/gnames/gnradial/pkg/taxon"
)

// readCSV reads a CSV file with a header line into rows keyed by the
// lowercased header names. Empty lines are skipped.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}
	defer f.Close()

	res, err := parseCSV(f)
	if err != nil {
		return nil, CSVReadError(path, err)
	}
	return res, nil
}

func parseCSV(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("file is empty")
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		h := strings.ToLower(strings.TrimSpace(header[i]))
		header[i] = strings.TrimPrefix(h, "\ufeff")
	}
	if err = checkHeader(header); err != nil {
		return nil, err
	}

	var res []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlank(rec) {
			continue
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i >= len(rec) {
				break
			}
			row[h] = gnlib.FixUtf8(rec[i])
		}
		res = append(res, row)
	}
	return res, nil
}

func checkHeader(header []string) error {
	required := []string{taxon.ColID, taxon.ColParent, taxon.ColName, taxon.ColRank}
	var missing []string
	for _, col := range required {
		if !slices.Contains(header, col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return errors.New("header misses columns: " + strings.Join(missing, ", "))
	}
	return nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
