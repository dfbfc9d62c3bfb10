package cfg

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/satchel-hb/satchel/internal/fsx"
)

func newStringsExplorers(t *testing.T) (*fsx.SdCardExplorer, *fsx.RomFsExplorer, string) {
	t.Helper()
	root := t.TempDir()
	sd := fsx.NewSdCardExplorer(root)
	romfs := fsx.NewRomFsExplorer(fstest.MapFS{
		"strings/en.json": {Data: []byte(`{"save":"Save"}`)},
		"strings/de.json": {Data: []byte(`{"save":"Speichern"}`)},
	})
	return sd, romfs, root
}

func TestLoadStringsUsesConfiguredLanguage(t *testing.T) {
	sd, romfs, _ := newStringsExplorers(t)
	s := ProcessSettings(sd, romfs)
	lang := LanguageGerman
	s.CustomLanguage = &lang

	table := s.LoadStrings()
	if got := table.Get("save"); got != "Speichern" {
		t.Errorf("Get(save) = %q, want %q", got, "Speichern")
	}
}

func TestLoadStringsFallsBackToEnglish(t *testing.T) {
	sd, romfs, _ := newStringsExplorers(t)
	s := ProcessSettings(sd, romfs)
	lang := LanguageRussian // no ru table bundled here
	s.CustomLanguage = &lang

	table := s.LoadStrings()
	if got := table.Get("save"); got != "Save" {
		t.Errorf("Get(save) = %q, want English fallback", got)
	}
}

func TestLoadStringsExternalShadowing(t *testing.T) {
	sd, romfs, root := newStringsExplorers(t)
	s := ProcessSettings(sd, romfs)
	lang := LanguageEnglish
	s.CustomLanguage = &lang
	s.SetExternalRomFs("lang_override")

	override := filepath.Join(root, "lang_override", "strings", "en.json")
	if err := os.MkdirAll(filepath.Dir(override), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(override, []byte(`{"save":"Stash"}`), 0644); err != nil {
		t.Fatal(err)
	}

	table := s.LoadStrings()
	if got := table.Get("save"); got != "Stash" {
		t.Errorf("Get(save) = %q, want external override", got)
	}
}

func TestStringsGetUnknownKey(t *testing.T) {
	table := Strings{"save": "Save"}
	if got := table.Get("missing"); got != "missing" {
		t.Errorf("Get(missing) = %q, want the key itself", got)
	}
}
