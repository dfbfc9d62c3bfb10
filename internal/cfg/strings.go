package cfg

// Strings is the translated label table for the active language
type Strings map[string]string

// Get returns the translation for key, or the key itself when untranslated
func (t Strings) Get(key string) string {
	if v, ok := t[key]; ok {
		return v
	}
	return key
}

// LoadStrings reads the string table for the effective language through the
// resource shadowing rules. A missing table or an unresolvable language
// falls back to English; the fallback table missing too yields an empty
// table rather than an error.
func (s *Settings) LoadStrings() Strings {
	lang, err := s.GetLanguage()
	if err != nil {
		lang = LanguageEnglish
	}

	var table Strings
	if err := s.ReadJSONResource("strings/"+lang.Code()+".json", &table); err == nil && len(table) > 0 {
		return table
	}
	table = nil
	if err := s.ReadJSONResource("strings/en.json", &table); err != nil {
		return Strings{}
	}
	return table
}
