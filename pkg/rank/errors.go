package rank

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnradial/pkg/errcode"
)

// ErrUnknownRank is wrapped by errors about ranks outside the
// enumeration.
var ErrUnknownRank = errors.New("unknown rank")

// UnknownRankError creates an error for a rank that has no tier.
func UnknownRankError(r string) error {
	msg := `Unknown rank <em>%q</em>

<em>Supported ranks:</em> phylum ... species (19 ranks)`
	vars := []any{r}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownRankError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w: %q", fn.Name(), ErrUnknownRank, r),
	}
}
