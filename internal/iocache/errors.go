package iocache

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnradial/pkg/errcode"
)

func CacheError(dir string, err error) error {
	msg := "Cannot use cache directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.CacheError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cache failure in %s: %w", fn, dir, err),
	}
}
