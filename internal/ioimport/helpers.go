package ioimport

import (
	"path/filepath"
	"strconv"
	"strings"
)

// speciesIDFromFilename recovers the species id from a document
// filename such as "species-123.json" or "123.json". Returns 0 when
// the name carries no id; the id inside the document stays
// authoritative, this is only used to label failures of documents
// that never decoded.
func speciesIDFromFilename(path string) int {
	base := strings.TrimSuffix(filepath.Base(path), ".json")
	if i := strings.LastIndexByte(base, '-'); i >= 0 {
		base = base[i+1:]
	}
	id, err := strconv.Atoi(base)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
