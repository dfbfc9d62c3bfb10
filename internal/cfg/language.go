package cfg

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Language identifies one of the translations shipped in the resource
// archive.
type Language int

const (
	LanguageEnglish Language = iota
	LanguageSpanish
	LanguageGerman
	LanguageFrench
	LanguageItalian
	LanguageDutch
	LanguageJapanese
	LanguagePortuguese
	LanguageKorean
	LanguageSimplifiedChinese
	LanguageTraditionalChinese
	LanguageRussian
)

// languageCodes and languageTags are ordered to match the Language constants
var languageCodes = [...]string{
	"en", "es", "de", "fr", "it", "nl", "ja", "pt", "ko", "zh-Hans", "zh-Hant", "ru",
}

var languageTags = []language.Tag{
	language.English,
	language.Spanish,
	language.German,
	language.French,
	language.Italian,
	language.Dutch,
	language.Japanese,
	language.Portuguese,
	language.Korean,
	language.SimplifiedChinese,
	language.TraditionalChinese,
	language.Russian,
}

var languageMatcher = language.NewMatcher(languageTags)

// Code returns the settings-file code for the language, e.g. "en"
func (l Language) Code() string {
	if l < 0 || int(l) >= len(languageCodes) {
		return languageCodes[LanguageEnglish]
	}
	return languageCodes[l]
}

func (l Language) String() string {
	return l.Code()
}

// LanguageByCode maps a settings-file code back to its Language. Unknown
// codes report ok == false.
func LanguageByCode(code string) (Language, bool) {
	for i, c := range languageCodes {
		if strings.EqualFold(c, code) {
			return Language(i), true
		}
	}
	return LanguageEnglish, false
}

// LanguageResolver resolves the system default language exactly once per
// process. Both the resolved value and a resolution failure are cached; the
// query is never retried.
type LanguageResolver struct {
	once  sync.Once
	lang  Language
	err   error
	query func() (Language, error)
}

// NewLanguageResolver creates a resolver around the given query. A nil query
// uses the host locale.
func NewLanguageResolver(query func() (Language, error)) *LanguageResolver {
	if query == nil {
		query = querySystemLocale
	}
	return &LanguageResolver{query: query}
}

// Resolve returns the cached system language, running the query on the first
// call only.
func (r *LanguageResolver) Resolve() (Language, error) {
	r.once.Do(func() {
		r.lang, r.err = r.query()
	})
	return r.lang, r.err
}

// querySystemLocale maps the host locale onto the closest supported
// Language. The error is deliberate: the original contract treats a failed
// system-language query as fatal, and the caller decides to abort.
func querySystemLocale() (Language, error) {
	locale := lookupLocale()
	if locale == "" {
		return LanguageEnglish, errors.New("system locale not set (checked LC_ALL, LC_MESSAGES, LANG)")
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return LanguageEnglish, fmt.Errorf("parsing system locale %q: %w", locale, err)
	}

	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return LanguageEnglish, fmt.Errorf("system locale %q matches no supported language", locale)
	}
	return Language(idx), nil
}

// lookupLocale reads the locale environment in POSIX priority order and
// strips the encoding suffix ("en_US.UTF-8" -> "en-US").
func lookupLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}
