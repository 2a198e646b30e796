package taxon

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnradial/pkg/errcode"
)

// ErrMalformedRecord is wrapped by errors about unusable input rows.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError creates an error for a row that cannot become a
// Record. The raw identifying fields are reported as they were read.
func MalformedRecordError(row int, id, name, rnk, reason string) error {
	msg := `Malformed taxon record at row <em>%d</em>: %s

<em>id:</em>   %q
<em>name:</em> %q
<em>rank:</em> %q

Required fields are id, name and rank (phylum ... species).`
	vars := []any{row, reason, id, name, rnk}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MalformedRecordError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %w: row %d (id=%q, name=%q, rank=%q): %s",
			fn.Name(), ErrMalformedRecord, row, id, name, rnk, reason),
	}
}
