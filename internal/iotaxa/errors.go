package iotaxa

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnradial/pkg/errcode"
)

// NoDataPathError is returned when no input file is configured.
func NoDataPathError() error {
	msg := `No taxa file is given

<em>How to fix:</em>
  1. Use --data flag: gnradial render --data chordata.csv
  2. Or set data.path in config.yaml
  3. Or set GNRADIAL_DATA_PATH environment variable`
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DataFormatError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: data path is empty", fn),
	}
}

// DataFormatError is returned when the format of the input cannot be
// determined or is not supported.
func DataFormatError(path, format string) error {
	msg := `Cannot read <em>%s</em> as <em>%s</em>

Supported formats are 'csv' and 'sfga' (SQLite files with
.sqlite, .sqlite3 or .db extension, or SFGA archives ending with
.sqlite.zip, .sql.zip or .sql).`
	vars := []any{path, format}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DataFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unsupported format %q for %s",
			fn, format, path),
	}
}

// CSVReadError is returned when a CSV file is malformed.
func CSVReadError(path string, err error) error {
	msg := `Cannot parse CSV file <em>%s</em>

The first line must be a header with at least
<em>id,parent,name,rank</em> columns.`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DataFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse %s: %w", fn, path, err),
	}
}

// SFGAReadError is returned when an SFGA file cannot be opened or
// queried.
func SFGAReadError(path string, err error) error {
	msg := `Cannot read SFGA file <em>%s</em>

<em>Possible causes:</em>
  - the file is not an SQLite database
  - the file has no 'taxon' or 'name' tables`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.SFGAReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read SFGA %s: %w", fn, path, err),
	}
}
