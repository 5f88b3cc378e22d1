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

	// Logging errors
	CreateLogFileError

	// Import errors
	ImportNoFileError
	ImportReadError
	ImportEmptyObservationsError
	ImportEmptyTaxonomyError
	ImportMissingColumnError

	// Corrections asset errors
	CorrectionsReadError
	CorrectionsParseError

	// Extract errors
	ExtractColumnError

	// Export errors
	ExportCreateDirError
	ExportWriteError
)
