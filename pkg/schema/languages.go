package schema

// DefaultLanguages returns the seed language vocabulary in its fixed
// order. Ids are assigned 1..9 and must stay stable once seeded,
// since names reference them. The vocabulary is injectable: callers
// that serve other categories pass their own slice instead.
func DefaultLanguages() []Language {
	return []Language{
		{ID: 1, Code: "en", Name: "English"},
		{ID: 2, Code: "bn", Name: "Bengali"},
		{ID: 3, Code: "hi", Name: "Hindi"},
		{ID: 4, Code: "kn", Name: "Kannada"},
		{ID: 5, Code: "ml", Name: "Malayalam"},
		{ID: 6, Code: "mr", Name: "Marathi"},
		{ID: 7, Code: "sa", Name: "Sanskrit"},
		{ID: 8, Code: "ta", Name: "Tamil"},
		{ID: 9, Code: "te", Name: "Telugu"},
	}
}

// LanguageByName resolves a display name ("Tamil") against a
// vocabulary. Returns false when the name is not in the vocabulary.
func LanguageByName(vocab []Language, name string) (Language, bool) {
	for _, l := range vocab {
		if l.Name == name {
			return l, true
		}
	}
	return Language{}, false
}
