package ioimport

import (
	"errors"
	"fmt"

	"github.com/avherb/herbdb/pkg/errcode"
	"github.com/gnames/gn"
)

// ErrNotConnected reports an import attempted without a database
// connection.
func ErrNotConnected() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Import attempted without database connection",
		Err:  errors.New("not connected to database"),
	}
}

// ErrDocumentRead reports an unreadable document file.
func ErrDocumentRead(path string, err error) error {
	return &gn.Error{
		Code: errcode.DocumentReadError,
		Msg:  "Cannot read document <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read document %s: %w", path, err),
	}
}

// ErrDocumentDecode reports a document file that is not valid JSON.
func ErrDocumentDecode(path string, err error) error {
	return &gn.Error{
		Code: errcode.DocumentDecodeError,
		Msg:  "Document <em>%s</em> is not valid JSON",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot decode document %s: %w", path, err),
	}
}

// ErrLanguagesLoad reports a failure reading the language vocabulary.
func ErrLanguagesLoad(err error) error {
	return &gn.Error{
		Code: errcode.ImportExecutionError,
		Msg:  "Cannot load the language vocabulary",
		Err:  fmt.Errorf("cannot load languages: %w", err),
	}
}

// ErrLanguagesMissing reports an empty languages table.
func ErrLanguagesMissing() error {
	return &gn.Error{
		Code: errcode.ImportExecutionError,
		Msg: "<err>The language vocabulary is empty.</err>\n" +
			"   Run <em>'herbdb create'</em> first to initialize the schema.",
		Err: errors.New("languages table is empty"),
	}
}

// ErrExecution reports a failed operation inside a species' batch.
// The whole transaction rolls back.
func ErrExecution(speciesID int, step string, err error) error {
	return &gn.Error{
		Code: errcode.ImportExecutionError,
		Msg:  "Import of species <em>%d</em> failed at step '%s'",
		Vars: []any{speciesID, step},
		Err: fmt.Errorf(
			"species %d: %s: %w", speciesID, step, err),
	}
}

// ErrNoDocuments reports an empty documents directory.
func ErrNoDocuments(dir string) error {
	return &gn.Error{
		Code: errcode.ImportNoDocumentsError,
		Msg: "<err>No documents found in <em>%s</em>.</err>\n" +
			"   Place scraped species files there or set " +
			"<em>import.documents_dir</em> in the config.",
		Vars: []any{dir},
		Err:  fmt.Errorf("no documents in %s", dir),
	}
}

// ErrAllFailed reports a bulk run in which no species committed.
func ErrAllFailed(total int) error {
	return &gn.Error{
		Code: errcode.ImportAllFailedError,
		Msg:  "<err>All %d species failed to import.</err>",
		Vars: []any{total},
		Err:  fmt.Errorf("all %d species failed", total),
	}
}

// ErrSomeFailed reports a bulk run with partial failures. The
// succeeded species stay committed.
func ErrSomeFailed(failed, total int) error {
	return &gn.Error{
		Code: errcode.ImportSomeFailedError,
		Msg: "<warning>%d of %d species failed to import.</warning>\n" +
			"   Successful species are committed; " +
			"check the log for details.",
		Vars: []any{failed, total},
		Err:  fmt.Errorf("%d of %d species failed", failed, total),
	}
}
