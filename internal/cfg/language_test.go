package cfg

import (
	"errors"
	"testing"
)

func TestLanguageCodeRoundTrip(t *testing.T) {
	all := []Language{
		LanguageEnglish, LanguageSpanish, LanguageGerman, LanguageFrench,
		LanguageItalian, LanguageDutch, LanguageJapanese, LanguagePortuguese,
		LanguageKorean, LanguageSimplifiedChinese, LanguageTraditionalChinese,
		LanguageRussian,
	}
	for _, lang := range all {
		got, ok := LanguageByCode(lang.Code())
		if !ok {
			t.Errorf("LanguageByCode(%q) not found", lang.Code())
			continue
		}
		if got != lang {
			t.Errorf("LanguageByCode(%q) = %v, want %v", lang.Code(), got, lang)
		}
	}
}

func TestLanguageByCodeUnknown(t *testing.T) {
	if _, ok := LanguageByCode("xx"); ok {
		t.Error("unknown code should not resolve")
	}
	if _, ok := LanguageByCode(""); ok {
		t.Error("empty code should not resolve")
	}
}

func TestLanguageByCodeCaseInsensitive(t *testing.T) {
	got, ok := LanguageByCode("ZH-HANS")
	if !ok || got != LanguageSimplifiedChinese {
		t.Errorf("got %v ok=%v, want SimplifiedChinese", got, ok)
	}
}

func TestLanguageResolverCachesSuccess(t *testing.T) {
	calls := 0
	r := NewLanguageResolver(func() (Language, error) {
		calls++
		return LanguageFrench, nil
	})

	for i := 0; i < 5; i++ {
		lang, err := r.Resolve()
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if lang != LanguageFrench {
			t.Errorf("got %v, want French", lang)
		}
	}
	if calls != 1 {
		t.Errorf("query ran %d times, want 1", calls)
	}
}

func TestLanguageResolverCachesFailure(t *testing.T) {
	sentinel := errors.New("locale service down")
	calls := 0
	r := NewLanguageResolver(func() (Language, error) {
		calls++
		return LanguageEnglish, sentinel
	})

	for i := 0; i < 3; i++ {
		if _, err := r.Resolve(); !errors.Is(err, sentinel) {
			t.Errorf("Resolve err = %v, want sentinel", err)
		}
	}
	if calls != 1 {
		t.Errorf("query ran %d times, want 1 (failures are not retried)", calls)
	}
}

func TestQuerySystemLocale(t *testing.T) {
	cases := []struct {
		locale string
		want   Language
	}{
		{"en_US.UTF-8", LanguageEnglish},
		{"de_DE.UTF-8", LanguageGerman},
		{"ja_JP", LanguageJapanese},
		{"pt_BR.UTF-8", LanguagePortuguese},
		{"zh_CN.UTF-8", LanguageSimplifiedChinese},
		{"zh_TW.UTF-8", LanguageTraditionalChinese},
	}
	for _, tc := range cases {
		t.Setenv("LC_ALL", tc.locale)
		t.Setenv("LC_MESSAGES", "")
		t.Setenv("LANG", "")

		got, err := querySystemLocale()
		if err != nil {
			t.Errorf("locale %q: %v", tc.locale, err)
			continue
		}
		if got != tc.want {
			t.Errorf("locale %q resolved to %v, want %v", tc.locale, got, tc.want)
		}
	}
}

func TestQuerySystemLocaleUnset(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")

	if _, err := querySystemLocale(); err == nil {
		t.Error("an unset locale must be an explicit error, not a silent fallback")
	}

	t.Setenv("LANG", "C")
	if _, err := querySystemLocale(); err == nil {
		t.Error("the C locale carries no language and must be an error")
	}
}
