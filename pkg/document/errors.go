package document

import (
	"fmt"

	"github.com/avherb/herbdb/pkg/errcode"
	"github.com/gnames/gn"
)

// ErrValidation reports a document that cannot be imported. The field
// path uses the document's JSON names so the message can be matched
// against the raw file.
func ErrValidation(speciesID int, field, reason string) error {
	return &gn.Error{
		Code: errcode.DocumentValidationError,
		Msg: fmt.Sprintf(
			"<err>Document for species %d is invalid.</err>\n"+
				"   Field <em>%s</em> %s.",
			speciesID, field, reason,
		),
		Err: fmt.Errorf("invalid document %d: %s %s", speciesID, field, reason),
	}
}
