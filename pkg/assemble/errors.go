package assemble

import (
	"fmt"

	"github.com/avherb/herbdb/pkg/errcode"
	"github.com/gnames/gn"
)

// ErrSectionOverflow reports a species whose document produces more
// sections than the id scheme can encode. Silent wraparound would
// collide with the next species' id range, so the species fails
// instead.
func ErrSectionOverflow(speciesID int, title string) error {
	return &gn.Error{
		Code: errcode.AssemblySectionOverflowError,
		Msg: fmt.Sprintf(
			"<err>Species %d has too many content sections.</err>\n"+
				"   The section id scheme supports at most %d sections "+
				"per species; <em>%s</em> does not fit.",
			speciesID, MaxSectionsPerSpecies, title,
		),
		Err: fmt.Errorf(
			"species %d: section %q exceeds the %d-section cap",
			speciesID, title, MaxSectionsPerSpecies,
		),
	}
}
