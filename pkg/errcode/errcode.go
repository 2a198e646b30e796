package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Input errors
	DataFormatError
	SFGAReadError
	CacheError

	// Taxon store errors
	MalformedRecordError

	// Rank errors
	UnknownRankError

	// Hierarchy errors
	DuplicateIDError
	NoRootError
	MultipleRootsError
	DanglingParentError
	UnreachableRecordsError

	// Lookup errors
	NameNotFoundError
	AmbiguousNameError
)
