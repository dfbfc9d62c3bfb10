package fsx

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestSdCardExplorerRoundTrip(t *testing.T) {
	e := NewSdCardExplorer(t.TempDir())

	type doc struct {
		Name string `json:"name"`
	}

	path := "sdmc:/satchel/test.json"
	if e.IsFile(path) {
		t.Fatal("file should not exist yet")
	}

	if err := e.WriteJSON(path, doc{Name: "hello"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !e.IsFile(path) {
		t.Fatal("file should exist after write")
	}

	var got doc
	if err := e.ReadJSON(path, &got); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.Name != "hello" {
		t.Errorf("got name %q, want %q", got.Name, "hello")
	}

	if err := e.DeleteFile(path); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if e.IsFile(path) {
		t.Fatal("file should be gone after delete")
	}
}

func TestSdCardExplorerDeleteMissingFile(t *testing.T) {
	e := NewSdCardExplorer(t.TempDir())
	if err := e.DeleteFile("sdmc:/no/such/file.json"); err != nil {
		t.Errorf("deleting a missing file should not error, got %v", err)
	}
}

func TestSdCardExplorerMakeAbsolute(t *testing.T) {
	e := NewSdCardExplorer(t.TempDir())
	cases := map[string]string{
		"foo/bar.json": "sdmc:/foo/bar.json",
		"/foo":         "sdmc:/foo",
	}
	for in, want := range cases {
		if got := e.MakeAbsolute(in); got != want {
			t.Errorf("MakeAbsolute(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRomFsExplorerReadOnly(t *testing.T) {
	archive := fstest.MapFS{
		"strings.json": {Data: []byte(`{"greeting":"hi"}`)},
	}
	e := NewRomFsExplorer(archive)

	if !e.IsFile("romfs:/strings.json") {
		t.Fatal("strings.json should be visible")
	}

	var got map[string]string
	if err := e.ReadJSON("romfs:/strings.json", &got); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got["greeting"] != "hi" {
		t.Errorf("got %q, want %q", got["greeting"], "hi")
	}

	if err := e.WriteJSON("romfs:/strings.json", got); !errors.Is(err, ErrReadOnly) {
		t.Errorf("WriteJSON should return ErrReadOnly, got %v", err)
	}
	if err := e.DeleteFile("romfs:/strings.json"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("DeleteFile should return ErrReadOnly, got %v", err)
	}

	if got := e.MakeAbsolute("strings.json"); got != "romfs:/strings.json" {
		t.Errorf("MakeAbsolute = %q", got)
	}
}
