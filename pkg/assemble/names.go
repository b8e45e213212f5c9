package assemble

import (
	"fmt"
	"sort"
	"strings"

	"github.com/avherb/herbdb/pkg/document"
	"github.com/avherb/herbdb/pkg/schema"
)

// Name is one common-name row to insert. The database assigns the
// primary key.
type Name struct {
	SpeciesID  int
	LanguageID int
	Name       string
}

// Names extracts common-name rows from the IR against the fixed
// language vocabulary. English names come first, split on commas;
// localized names follow in vocabulary order. Languages missing from
// the vocabulary, and English entries misfiled under the localized
// names, are skipped and reported as warnings so a bulk run can
// surface them without failing the species.
func Names(ir document.IR, vocab []schema.Language) ([]Name, []string) {
	var res []Name
	var warns []string

	english, enOK := schema.LanguageByName(vocab, "English")
	if enOK && ir.EnglishNames != "" {
		for _, part := range strings.Split(ir.EnglishNames, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			res = append(res, Name{
				SpeciesID:  ir.SpeciesID,
				LanguageID: english.ID,
				Name:       part,
			})
		}
	}

	type resolved struct {
		lang  schema.Language
		names []string
	}
	var locals []resolved
	for _, ln := range ir.IndianNames {
		lang, ok := schema.LanguageByName(vocab, ln.Language)
		if !ok {
			warns = append(warns, fmt.Sprintf(
				"species %d: unknown language %q, %d name(s) skipped",
				ir.SpeciesID, ln.Language, len(ln.Names),
			))
			continue
		}
		if enOK && lang.ID == english.ID {
			// english_names is the authoritative English list.
			warns = append(warns, fmt.Sprintf(
				"species %d: %d English name(s) under indian_names skipped, english_names is authoritative",
				ir.SpeciesID, len(ln.Names),
			))
			continue
		}
		locals = append(locals, resolved{lang: lang, names: ln.Names})
	}
	sort.Slice(locals, func(i, j int) bool {
		return locals[i].lang.ID < locals[j].lang.ID
	})

	for _, v := range locals {
		for _, name := range v.names {
			res = append(res, Name{
				SpeciesID:  ir.SpeciesID,
				LanguageID: v.lang.ID,
				Name:       name,
			})
		}
	}
	return res, warns
}
