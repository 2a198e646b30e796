package selector

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnradial/pkg/errcode"
	"github.com/gnames/gnradial/pkg/hierarchy"
	"github.com/gnames/gnradial/pkg/rank"
)

// CommonNameNotFoundError creates an error for a common name search
// without results.
func CommonNameNotFoundError(query string) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	msg := "No taxon has a common name like <em>%s</em>"
	return &gn.Error{
		Code: errcode.NameNotFoundError,
		Msg:  msg,
		Vars: []any{query},
		Err: fmt.Errorf("from %s: %w: common name %q",
			fn, hierarchy.ErrNameNotFound, query),
	}
}

// EmptyRankError creates an error for a rank that no taxon has.
func EmptyRankError(r rank.Rank) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	msg := "No taxa of rank <em>%s</em> in the classification"
	return &gn.Error{
		Code: errcode.NameNotFoundError,
		Msg:  msg,
		Vars: []any{r},
		Err: fmt.Errorf("from %s: %w: rank %q",
			fn, hierarchy.ErrNameNotFound, r),
	}
}
