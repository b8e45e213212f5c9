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

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBNotConnectedError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaCollationError
	SchemaConstraintError
	SchemaIndexError
	SchemaNotNullError
	SchemaSeedLanguagesError

	// Document errors
	DocumentReadError
	DocumentDecodeError
	DocumentValidationError

	// Assembly errors
	AssemblySectionOverflowError

	// Import errors
	ImportExecutionError
	ImportNoDocumentsError
	ImportAllFailedError
	ImportSomeFailedError

	// Reader errors
	ReaderSpeciesNotFoundError
	ReaderNameMismatchError
	ReaderQueryError
)
