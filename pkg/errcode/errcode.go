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
	CleanDirError

	// Configuration errors
	ClassesError

	// Logging errors
	CreateLogFileError

	// Archive errors
	ArchiveFetchError
	ArchiveOpenError
	ArchiveMemberError
	ArchivePackError

	// Store errors
	StoreOpenError
	StoreReadError
	StoreWriteError
	StoreDecodeError
	StoreClosedError

	// Ingest errors
	IngestReadError
	IngestKeyError
	IngestParentKeyError
	IngestHiddenFlagError
	IngestCancelledError

	// Export errors
	ExportCreateFileError
	ExportWriteError
	ExportMetaError

	// Metrics errors
	MetricsWriteError
)
