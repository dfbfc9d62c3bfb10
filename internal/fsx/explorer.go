package fsx

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrReadOnly is returned by write operations on a read-only explorer
var ErrReadOnly = errors.New("explorer is read-only")

// Explorer abstracts a storage root. Paths passed to and returned from an
// explorer are mount-prefixed, e.g. "sdmc:/satchel/settings.json".
type Explorer interface {
	// MountName returns the mount identifier without separator, e.g. "sdmc"
	MountName() string

	// IsFile reports whether path exists and is a regular file
	IsFile(path string) bool

	// ReadJSON parses the JSON document at path into v
	ReadJSON(path string, v any) error

	// WriteJSON serializes v as indented JSON to path, creating parent
	// directories as needed
	WriteJSON(path string, v any) error

	// DeleteFile removes the file at path
	DeleteFile(path string) error

	// MakeAbsolute resolves a relative path against the mount root
	MakeAbsolute(rel string) string
}

// SdCardExplorer is a read-write explorer over a host directory standing in
// for removable storage.
type SdCardExplorer struct {
	mount string
	root  string
}

// NewSdCardExplorer creates an explorer with mount name "sdmc" rooted at the
// given host directory.
func NewSdCardExplorer(hostRoot string) *SdCardExplorer {
	return &SdCardExplorer{mount: "sdmc", root: hostRoot}
}

func (e *SdCardExplorer) MountName() string {
	return e.mount
}

// hostPath translates a mount-prefixed path into a host filesystem path
func (e *SdCardExplorer) hostPath(path string) string {
	rel := strings.TrimPrefix(path, e.mount+":")
	rel = strings.TrimPrefix(rel, "/")
	return filepath.Join(e.root, filepath.FromSlash(rel))
}

func (e *SdCardExplorer) IsFile(path string) bool {
	info, err := os.Stat(e.hostPath(path))
	return err == nil && info.Mode().IsRegular()
}

func (e *SdCardExplorer) ReadJSON(path string, v any) error {
	data, err := os.ReadFile(e.hostPath(path))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (e *SdCardExplorer) WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	host := e.hostPath(path)
	if err := os.MkdirAll(filepath.Dir(host), 0755); err != nil {
		return err
	}
	return os.WriteFile(host, data, 0644)
}

func (e *SdCardExplorer) DeleteFile(path string) error {
	err := os.Remove(e.hostPath(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil // nothing to delete
	}
	return err
}

func (e *SdCardExplorer) MakeAbsolute(rel string) string {
	return e.mount + ":/" + strings.TrimPrefix(rel, "/")
}

// RomFsExplorer is a read-only explorer over a bundled resource archive.
// It accepts any io/fs.FS, so the archive can be an embed.FS in production
// and an os.DirFS or fstest.MapFS in tests.
type RomFsExplorer struct {
	mount   string
	archive fs.FS
}

// NewRomFsExplorer creates an explorer with mount name "romfs" over archive.
func NewRomFsExplorer(archive fs.FS) *RomFsExplorer {
	return &RomFsExplorer{mount: "romfs", archive: archive}
}

func (e *RomFsExplorer) MountName() string {
	return e.mount
}

func (e *RomFsExplorer) fsPath(path string) string {
	rel := strings.TrimPrefix(path, e.mount+":")
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return "."
	}
	return rel
}

func (e *RomFsExplorer) IsFile(path string) bool {
	info, err := fs.Stat(e.archive, e.fsPath(path))
	return err == nil && info.Mode().IsRegular()
}

func (e *RomFsExplorer) ReadJSON(path string, v any) error {
	data, err := fs.ReadFile(e.archive, e.fsPath(path))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (e *RomFsExplorer) WriteJSON(path string, v any) error {
	return ErrReadOnly
}

func (e *RomFsExplorer) DeleteFile(path string) error {
	return ErrReadOnly
}

func (e *RomFsExplorer) MakeAbsolute(rel string) string {
	return e.mount + ":/" + strings.TrimPrefix(rel, "/")
}

// ReadFile returns the raw contents of a file, used for non-JSON resources
// like bundled markdown.
func (e *RomFsExplorer) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(e.archive, e.fsPath(path))
}

// HostPath exposes the host location backing a mount-prefixed path, for
// callers that need to hand the real path to other tools (file watchers,
// clipboard).
func (e *SdCardExplorer) HostPath(path string) string {
	return e.hostPath(path)
}

// DefaultSdCardRoot resolves the host directory standing in for the SD card:
// $SDCARD_PATH when set, otherwise a directory under the user home.
func DefaultSdCardRoot() string {
	if env := os.Getenv("SDCARD_PATH"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sdcard"
	}
	return filepath.Join(home, ".local", "share", "satchel", "sdcard")
}
