package hierarchy

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnradial/pkg/errcode"
)

var (
	ErrDuplicateID        = errors.New("duplicate id")
	ErrNoRoot             = errors.New("no root")
	ErrMultipleRoots      = errors.New("multiple roots")
	ErrDanglingParent     = errors.New("dangling parent")
	ErrUnreachableRecords = errors.New("unreachable records")
	ErrNameNotFound       = errors.New("name not found")
	ErrAmbiguousName      = errors.New("ambiguous name")
)

func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name()
}

// DuplicateIDError creates an error for an id shared by several records.
func DuplicateIDError(id string) error {
	msg := "Taxon id <em>%s</em> is used by more than one record"
	return &gn.Error{
		Code: errcode.DuplicateIDError,
		Msg:  msg,
		Vars: []any{id},
		Err:  fmt.Errorf("from %s: %w: %q", caller(), ErrDuplicateID, id),
	}
}

// NoRootError creates an error for data where every record has a parent.
func NoRootError() error {
	msg := `Cannot find the root taxon

Exactly one record must have an empty parent.`
	return &gn.Error{
		Code: errcode.NoRootError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: %w", caller(), ErrNoRoot),
	}
}

// MultipleRootsError creates an error for data with more than one
// record without a parent.
func MultipleRootsError(ids []string) error {
	msg := `Found %d root taxa, expected one

<em>Root ids:</em> %s`
	return &gn.Error{
		Code: errcode.MultipleRootsError,
		Msg:  msg,
		Vars: []any{len(ids), strings.Join(ids, ", ")},
		Err: fmt.Errorf("from %s: %w: %s",
			caller(), ErrMultipleRoots, strings.Join(ids, ",")),
	}
}

// DanglingParentError creates an error for a record whose parent id does
// not match any record.
func DanglingParentError(id, parentID string) error {
	msg := `Parent <em>%s</em> of taxon <em>%s</em> does not exist`
	return &gn.Error{
		Code: errcode.DanglingParentError,
		Msg:  msg,
		Vars: []any{parentID, id},
		Err: fmt.Errorf("from %s: %w: record %q refers to %q",
			caller(), ErrDanglingParent, id, parentID),
	}
}

// UnreachableRecordsError creates an error for records that cannot be
// reached from the root. They either form a cycle or a detached fragment.
func UnreachableRecordsError(ids []string) error {
	msg := `%d records are not connected to the root

<em>Ids:</em> %s

<em>Possible causes:</em>
  - circular parent references
  - a fragment detached from the main tree`
	return &gn.Error{
		Code: errcode.UnreachableRecordsError,
		Msg:  msg,
		Vars: []any{len(ids), strings.Join(ids, ", ")},
		Err: fmt.Errorf("from %s: %w: %s",
			caller(), ErrUnreachableRecords, strings.Join(ids, ",")),
	}
}

// NameNotFoundError creates an error for a lookup of an unknown name.
func NameNotFoundError(name string) error {
	msg := "Taxon <em>%s</em> is not in the data"
	return &gn.Error{
		Code: errcode.NameNotFoundError,
		Msg:  msg,
		Vars: []any{name},
		Err:  fmt.Errorf("from %s: %w: %q", caller(), ErrNameNotFound, name),
	}
}

// AmbiguousNameError creates an error for a lookup of a name that
// belongs to several records.
func AmbiguousNameError(name string, ids []string) error {
	msg := `Name <em>%s</em> is ambiguous

<em>Matching ids:</em> %s`
	return &gn.Error{
		Code: errcode.AmbiguousNameError,
		Msg:  msg,
		Vars: []any{name, strings.Join(ids, ", ")},
		Err: fmt.Errorf("from %s: %w: %q matches %s",
			caller(), ErrAmbiguousName, name, strings.Join(ids, ",")),
	}
}
