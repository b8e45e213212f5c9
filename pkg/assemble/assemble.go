// Package assemble turns a validated species document into the
// ordered section and name records the database expects. It is pure:
// the same IR always yields the same records, and all counters are
// local state, so the package is safe to use from parallel imports.
package assemble

import (
	"strings"

	"github.com/avherb/herbdb/pkg/document"
)

// MaxSectionsPerSpecies is the hard cap imposed by the section id
// scheme: id = species_id*100 + n. Crossing it would collide with the
// next species' id range, so assembly fails instead.
const MaxSectionsPerSpecies = 100

// Section is one assembled content block, ready for planning.
// Empty Text/HTML mean NULL in the database.
type Section struct {
	ID        int
	SpeciesID int
	Title     string
	Order     int
	Text      string
	HTML      string
	Images    []Image
}

// Image is one section image with its 1-based order index.
type Image struct {
	URL     string
	Caption string
	Order   int
	Credit  string
}

// state threads the per-species id and order counters through
// assembly.
type state struct {
	speciesID int
	next      int
	sections  []Section
}

// Sections assembles the ordered section list for one species.
// Emission order is fixed: description subsections, the merged
// "Human Uses" block, then ecology, distribution, phenology,
// reproduction, conservation and etymology blocks, each only when
// present. Order indices are contiguous from 1; section ids are
// species_id*100+n in emission order.
func Sections(ir document.IR) ([]Section, error) {
	st := state{speciesID: ir.SpeciesID}

	for _, sub := range ir.Description {
		if sub.Content.IsEmpty() {
			continue
		}
		if err := st.emit(titleFor(sub.Key), sub.Content); err != nil {
			return nil, err
		}
	}

	if cnt, ok := mergeHumanUses(ir.HumanUses); ok {
		if err := st.emit("Human Uses", cnt); err != nil {
			return nil, err
		}
	}

	tail := []struct {
		title string
		cnt   *document.Content
	}{
		{"Ecology", ir.Ecology},
		{"Distribution", ir.Distribution},
		{"Phenology", ir.Phenology},
		{"Reproduction and Dispersal", ir.Reproduction},
		{"Conservation Status", ir.ConservationStatus},
		{"Reforestation", ir.Reforestation},
		{"Etymology", ir.Etymology},
	}
	for _, v := range tail {
		if v.cnt == nil || v.cnt.IsEmpty() {
			continue
		}
		if err := st.emit(v.title, *v.cnt); err != nil {
			return nil, err
		}
	}

	return st.sections, nil
}

// emit appends one section, assigning its id and order index.
func (st *state) emit(title string, cnt document.Content) error {
	if st.next >= MaxSectionsPerSpecies {
		return ErrSectionOverflow(st.speciesID, title)
	}
	sec := Section{
		ID:        st.speciesID*100 + st.next,
		SpeciesID: st.speciesID,
		Title:     title,
		Order:     st.next + 1,
		Text:      cnt.Text,
		HTML:      cnt.HTML,
	}
	for i, img := range cnt.Images {
		sec.Images = append(sec.Images, Image{
			URL:     img.URL,
			Caption: img.Caption,
			Order:   i + 1,
		})
	}
	st.next++
	st.sections = append(st.sections, sec)
	return nil
}

// mergeHumanUses folds all human-uses subsections into one content
// block. Text bodies join with a blank line, HTML bodies with a
// newline; images flatten in subsection order and get renumbered by
// the emitter. A block with no textual body anywhere is not emitted,
// even when images are present.
func mergeHumanUses(subs []document.Subsection) (document.Content, bool) {
	var texts, htmls []string
	var images []document.Image
	for _, sub := range subs {
		if sub.Content.Text != "" {
			texts = append(texts, sub.Content.Text)
		}
		if sub.Content.HTML != "" {
			htmls = append(htmls, sub.Content.HTML)
		}
		images = append(images, sub.Content.Images...)
	}
	cnt := document.Content{
		Text:   strings.Join(texts, "\n\n"),
		HTML:   strings.Join(htmls, "\n"),
		Images: images,
	}
	if cnt.IsEmpty() {
		return document.Content{}, false
	}
	return cnt, true
}

// titleFor converts a subsection key to a display title:
// "stem_bark" becomes "Stem Bark".
func titleFor(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
