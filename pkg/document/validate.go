package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gnames/gnlib"
)

// descriptionOrder is the canonical order of the fixed description
// subsections.
var descriptionOrder = []string{
	"habit", "stem_bark", "leaf", "flower", "fruit", "seed",
}

// humanUsesOrder places the well-known human-uses keys first; keys
// outside this list follow in alphabetical order. JSON objects carry
// no order, so the validator has to impose one.
var humanUsesOrder = []string{
	"medicinal", "culinary", "handicrafts", "veterinary", "others",
}

// Validate checks a raw document and converts it into the canonical
// intermediate representation. It is pure and deterministic: the same
// document always yields the same IR. On failure it returns a
// validation error naming the offending field.
func Validate(doc Document) (IR, error) {
	var res IR

	if doc.SpeciesID <= 0 {
		return res, ErrValidation(doc.SpeciesID, "species_id", "must be a positive integer")
	}
	res.SpeciesID = doc.SpeciesID

	res.URL = strings.TrimSpace(doc.URL)
	if res.URL == "" {
		return res, ErrValidation(doc.SpeciesID, "url", "is required")
	}

	res.ScientificName = cleanText(doc.BasicInfo.ScientificName)
	if res.ScientificName == "" {
		return res, ErrValidation(doc.SpeciesID, "basic_info.scientific_name", "is required")
	}
	res.Family = cleanText(doc.BasicInfo.Family)
	if res.Family == "" {
		return res, ErrValidation(doc.SpeciesID, "basic_info.family", "is required")
	}
	res.Authority = cleanTextPtr(doc.BasicInfo.Authority)

	res.MainImageURL = cleanTextPtr(doc.Images.MainSpecimen)
	res.HerbariumImageURL = cleanTextPtr(doc.Images.DryHerbarium)

	if cm := doc.CollectionMetadata; cm != nil {
		res.Collector = cleanTextPtr(cm.CollectedBy)
		res.CollectedDate = cleanTextPtr(cm.Date)
		res.Locality = cleanTextPtr(cm.Locality)
		if gps := cm.GPSCoordinates; gps != nil {
			res.Latitude = strings.TrimSpace(gps.Latitude)
			res.Longitude = strings.TrimSpace(gps.Longitude)
		}
	}

	res.EnglishNames = cleanTextPtr(doc.Nomenclature.EnglishNames)
	res.IndianNames = normalizeLocalNames(doc.Nomenclature.IndianNames)
	res.Synonyms = normalizeList(doc.Nomenclature.Synonyms)

	var err error
	res.Description, err = orderedSubsections(
		doc.SpeciesID, "description", doc.Description, descriptionOrder, nil,
	)
	if err != nil {
		return res, err
	}
	res.HumanUses, err = orderedSubsections(
		doc.SpeciesID, "human_uses", doc.HumanUses, humanUsesOrder, allKeys(doc.HumanUses),
	)
	if err != nil {
		return res, err
	}

	res.Ecology, err = contentAt(doc.SpeciesID, "ecology.ecology", doc.Ecology["ecology"])
	if err != nil {
		return res, err
	}
	res.Distribution, err = contentAt(doc.SpeciesID, "ecology.distribution", doc.Ecology["distribution"])
	if err != nil {
		return res, err
	}
	res.Phenology, err = contentAt(doc.SpeciesID, "ecology.phenology", doc.Ecology["phenology"])
	if err != nil {
		return res, err
	}
	res.Reproduction, err = contentAt(
		doc.SpeciesID, "ecology.reproduction_dispersal", doc.Ecology["reproduction_dispersal"],
	)
	if err != nil {
		return res, err
	}

	res.ConservationStatus, err = contentAt(doc.SpeciesID, "conservation.status", doc.Conservation["status"])
	if err != nil {
		return res, err
	}
	res.Reforestation, err = contentAt(
		doc.SpeciesID, "conservation.reforestation", doc.Conservation["reforestation"],
	)
	if err != nil {
		return res, err
	}

	res.Etymology = etymologyContent(doc.Nomenclature)

	return res, nil
}

// orderedSubsections extracts present subsections in canonical order.
// When extra is non-nil, keys beyond the preferred list are appended
// in alphabetical order; otherwise they are dropped.
func orderedSubsections(
	speciesID int,
	field string,
	sections map[string]*SectionLike,
	preferred []string,
	extra []string,
) ([]Subsection, error) {
	if len(sections) == 0 {
		return nil, nil
	}
	known := make(map[string]bool, len(preferred))
	keys := make([]string, 0, len(sections))
	for _, k := range preferred {
		known[k] = true
		if _, ok := sections[k]; ok {
			keys = append(keys, k)
		}
	}
	if extra != nil {
		var rest []string
		for _, k := range extra {
			if !known[k] {
				rest = append(rest, k)
			}
		}
		sort.Strings(rest)
		keys = append(keys, rest...)
	}

	var res []Subsection
	for _, k := range keys {
		cnt, err := contentAt(speciesID, field+"."+k, sections[k])
		if err != nil {
			return nil, err
		}
		if cnt == nil {
			continue
		}
		res = append(res, Subsection{Key: k, Content: *cnt})
	}
	return res, nil
}

// contentAt normalizes one SectionLike, checking that every image has
// a URL. A nil or fully empty block normalizes to nil.
func contentAt(speciesID int, field string, sec *SectionLike) (*Content, error) {
	if sec == nil {
		return nil, nil
	}
	cnt := Content{
		Text: cleanTextPtr(sec.Text),
		HTML: trimPtr(sec.TextHTML),
	}
	for i, img := range sec.Images {
		url := strings.TrimSpace(img.URL)
		if url == "" {
			return nil, ErrValidation(
				speciesID,
				fmt.Sprintf("%s.images[%d].url", field, i),
				"is required",
			)
		}
		cnt.Images = append(cnt.Images, Image{
			URL:     url,
			Caption: cleanTextPtr(img.Caption),
		})
	}
	if cnt.IsEmpty() && len(cnt.Images) == 0 {
		return nil, nil
	}
	return &cnt, nil
}

// etymologyContent folds the two etymology fields into one block.
func etymologyContent(nom Nomenclature) *Content {
	cnt := Content{
		Text: cleanTextPtr(nom.Etymology),
		HTML: trimPtr(nom.EtymologyHTML),
	}
	if cnt.IsEmpty() {
		return nil
	}
	return &cnt
}

// normalizeLocalNames trims, deduplicates and orders common names.
// Languages with no surviving names are dropped; languages come out
// alphabetically so the result does not depend on map iteration.
func normalizeLocalNames(names map[string][]string) []LocalNames {
	if len(names) == 0 {
		return nil
	}
	langs := make([]string, 0, len(names))
	for lang := range names {
		if strings.TrimSpace(lang) != "" {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)

	var res []LocalNames
	for _, lang := range langs {
		list := normalizeList(names[lang])
		if len(list) == 0 {
			continue
		}
		res = append(res, LocalNames{
			Language: strings.TrimSpace(lang),
			Names:    list,
		})
	}
	return res
}

// normalizeList trims entries, drops empties and removes duplicates
// while preserving the original order.
func normalizeList(list []string) []string {
	var res []string
	seen := make(map[string]bool, len(list))
	for _, s := range list {
		s = cleanText(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		res = append(res, s)
	}
	return res
}

func allKeys(sections map[string]*SectionLike) []string {
	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	return keys
}

// cleanText trims whitespace and repairs mangled UTF-8 from the
// scraper.
func cleanText(s string) string {
	return strings.TrimSpace(gnlib.FixUtf8(s))
}

func cleanTextPtr(s *string) string {
	if s == nil {
		return ""
	}
	return cleanText(*s)
}

func trimPtr(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
