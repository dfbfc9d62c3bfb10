package cfg

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/satchel-hb/satchel/internal/fsx"
	"github.com/satchel-hb/satchel/internal/ui"
)

// SettingsPath is the fixed location of the settings file on removable
// storage.
const SettingsPath = "sdmc:/satchel/settings.json"

const (
	defaultMenuItemSize         = 80
	defaultCopyBufferMaxSize    = 4 * 1024 * 1024
	defaultDecryptBufferMaxSize = 16 * 1024 * 1024
)

// Bookmark is a named web bookmark. Entries with an empty name or url are
// dropped on load.
type Bookmark struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Settings is the in-memory configuration record. Optional overrides are
// pointers: nil means the value was never explicitly supplied and the
// default applies.
type Settings struct {
	sd       fsx.Explorer
	romfs    fsx.Explorer
	resolver *LanguageResolver

	CustomLanguage *Language
	ExternalRomFs  *string
	Use12hTime     bool
	IgnoreHidden   bool

	// CustomScheme starts as a random scheme; HasCustomScheme marks that at
	// least one of its channels came from the settings file.
	CustomScheme    ui.ColorScheme
	HasCustomScheme bool

	MenuItemSize     uint32
	ScrollBarColor   *ui.Color
	ProgressBarColor *ui.Color

	IgnoreRequiredFwVersion        bool
	ShowDeletionPromptAfterInstall bool
	CopyBufferMaxSize              int64
	DecryptBufferMaxSize           int64

	Bookmarks []Bookmark
}

// settingsFile mirrors the on-disk JSON document. Pointer fields distinguish
// "key absent" from a zero value.
type settingsFile struct {
	General  *generalGroup  `json:"general,omitempty"`
	UI       *uiGroup       `json:"ui,omitempty"`
	Installs *installsGroup `json:"installs,omitempty"`
	Export   *exportGroup   `json:"export,omitempty"`
	Web      *webGroup      `json:"web,omitempty"`
}

type generalGroup struct {
	CustomLanguage    *string `json:"customLanguage,omitempty"`
	ExternalRomFs     *string `json:"externalRomFs,omitempty"`
	Use12hTime        *bool   `json:"use12hTime,omitempty"`
	IgnoreHiddenFiles *bool   `json:"ignoreHiddenFiles,omitempty"`
}

type uiGroup struct {
	Background   *string `json:"background,omitempty"`
	Base         *string `json:"base,omitempty"`
	BaseFocus    *string `json:"baseFocus,omitempty"`
	Text         *string `json:"text,omitempty"`
	MenuItemSize *uint32 `json:"menuItemSize,omitempty"`
	ScrollBar    *string `json:"scrollBar,omitempty"`
	ProgressBar  *string `json:"progressBar,omitempty"`
}

type installsGroup struct {
	IgnoreRequiredFwVersion        *bool  `json:"ignoreRequiredFwVersion,omitempty"`
	ShowDeletionPromptAfterInstall *bool  `json:"showDeletionPromptAfterInstall,omitempty"`
	CopyBufferMaxSize              *int64 `json:"copyBufferMaxSize,omitempty"`

	// Historically the decrypt buffer size is read from this group rather
	// than from "export", and existing settings files depend on that. See
	// the export handling in ProcessSettings.
	DecryptBufferMaxSize *int64 `json:"decryptBufferMaxSize,omitempty"`
}

type exportGroup struct {
	DecryptBufferMaxSize *int64 `json:"decryptBufferMaxSize,omitempty"`
}

type webGroup struct {
	Bookmarks []Bookmark `json:"bookmarks,omitempty"`
}

// ProcessSettings builds a fully-populated Settings from the settings file
// on the SD explorer. It never fails: an absent, empty, or malformed file
// (or any group or key within it) leaves the documented defaults in place.
func ProcessSettings(sd, romfs fsx.Explorer) *Settings {
	s := &Settings{
		sd:       sd,
		romfs:    romfs,
		resolver: NewLanguageResolver(nil),

		CustomScheme: ui.GenerateRandomScheme(),
		MenuItemSize: defaultMenuItemSize,

		IgnoreRequiredFwVersion: true,
		CopyBufferMaxSize:       defaultCopyBufferMaxSize,
		DecryptBufferMaxSize:    defaultDecryptBufferMaxSize,
	}

	var doc settingsFile
	if err := sd.ReadJSON(SettingsPath, &doc); err != nil {
		// A wrong-typed key loses only itself: the decoder populates the
		// rest of the document past an UnmarshalTypeError, so whatever
		// parsed still applies. Anything else means no usable document.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return s // missing or unparseable file: defaults
		}
	}

	if g := doc.General; g != nil {
		if code := strValue(g.CustomLanguage); code != "" {
			if lang, ok := LanguageByCode(code); ok {
				s.CustomLanguage = &lang
			}
		}
		if ext := strValue(g.ExternalRomFs); ext != "" {
			normalized := normalizeExternalRomFs(sd.MountName(), ext)
			s.ExternalRomFs = &normalized
		}
		if g.Use12hTime != nil {
			s.Use12hTime = *g.Use12hTime
		}
		if g.IgnoreHiddenFiles != nil {
			s.IgnoreHidden = *g.IgnoreHiddenFiles
		}
	}

	if u := doc.UI; u != nil {
		s.applySchemeColor(u.Background, &s.CustomScheme.Background)
		s.applySchemeColor(u.Base, &s.CustomScheme.Base)
		s.applySchemeColor(u.BaseFocus, &s.CustomScheme.BaseFocus)
		s.applySchemeColor(u.Text, &s.CustomScheme.Text)
		if u.MenuItemSize != nil && *u.MenuItemSize > 0 {
			s.MenuItemSize = *u.MenuItemSize
		}
		if c, ok := parseColor(u.ScrollBar); ok {
			s.ScrollBarColor = &c
		}
		if c, ok := parseColor(u.ProgressBar); ok {
			s.ProgressBarColor = &c
		}
	}

	if in := doc.Installs; in != nil {
		if in.IgnoreRequiredFwVersion != nil {
			s.IgnoreRequiredFwVersion = *in.IgnoreRequiredFwVersion
		}
		if in.ShowDeletionPromptAfterInstall != nil {
			s.ShowDeletionPromptAfterInstall = *in.ShowDeletionPromptAfterInstall
		}
		if in.CopyBufferMaxSize != nil {
			s.CopyBufferMaxSize = *in.CopyBufferMaxSize
		}
	}

	// Quirk kept for settings-file compatibility: the decrypt buffer size is
	// read from the "installs" group, but only when an "export" group exists.
	if doc.Export != nil {
		if in := doc.Installs; in != nil && in.DecryptBufferMaxSize != nil {
			s.DecryptBufferMaxSize = *in.DecryptBufferMaxSize
		}
	}

	if w := doc.Web; w != nil {
		for _, bmk := range w.Bookmarks {
			if bmk.Name != "" && bmk.URL != "" {
				s.Bookmarks = append(s.Bookmarks, bmk)
			}
		}
	}

	return s
}

// applySchemeColor overwrites a single scheme channel when its hex string is
// present and valid, marking the whole scheme as customized.
func (s *Settings) applySchemeColor(hex *string, dst *ui.Color) {
	if c, ok := parseColor(hex); ok {
		s.HasCustomScheme = true
		*dst = c
	}
}

// Save serializes the settings and overwrites the settings file. The write
// is delete-then-write, not an atomic rename; a crash in between loses the
// previous file. Explorer errors propagate unchanged.
func (s *Settings) Save() error {
	var doc settingsFile

	general := &generalGroup{
		Use12hTime:        &s.Use12hTime,
		IgnoreHiddenFiles: &s.IgnoreHidden,
	}
	if s.CustomLanguage != nil {
		code := s.CustomLanguage.Code()
		general.CustomLanguage = &code
	}
	general.ExternalRomFs = s.ExternalRomFs
	doc.General = general

	uiGrp := &uiGroup{
		MenuItemSize: &s.MenuItemSize,
	}
	if s.HasCustomScheme {
		uiGrp.Background = hexPtr(s.CustomScheme.Background)
		uiGrp.Base = hexPtr(s.CustomScheme.Base)
		uiGrp.BaseFocus = hexPtr(s.CustomScheme.BaseFocus)
		uiGrp.Text = hexPtr(s.CustomScheme.Text)
	}
	if s.ScrollBarColor != nil {
		uiGrp.ScrollBar = hexPtr(*s.ScrollBarColor)
	}
	if s.ProgressBarColor != nil {
		uiGrp.ProgressBar = hexPtr(*s.ProgressBarColor)
	}
	doc.UI = uiGrp

	doc.Installs = &installsGroup{
		IgnoreRequiredFwVersion:        &s.IgnoreRequiredFwVersion,
		ShowDeletionPromptAfterInstall: &s.ShowDeletionPromptAfterInstall,
		CopyBufferMaxSize:              &s.CopyBufferMaxSize,
	}
	doc.Export = &exportGroup{
		DecryptBufferMaxSize: &s.DecryptBufferMaxSize,
	}

	if len(s.Bookmarks) > 0 {
		doc.Web = &webGroup{Bookmarks: s.Bookmarks}
	}

	if err := s.sd.DeleteFile(SettingsPath); err != nil {
		return fmt.Errorf("deleting old settings: %w", err)
	}
	if err := s.sd.WriteJSON(SettingsPath, &doc); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// PathForResource resolves a relative resource path. A file under the
// configured external romfs root shadows the bundled copy; the decision is
// by existence only.
func (s *Settings) PathForResource(resPath string) string {
	if s.ExternalRomFs != nil {
		extPath := *s.ExternalRomFs + "/" + resPath
		if s.sd.IsFile(extPath) {
			return extPath
		}
	}
	return s.romfs.MakeAbsolute(resPath)
}

// ReadJSONResource parses the JSON resource at resPath into v, applying the
// same external-over-bundled shadowing as PathForResource.
func (s *Settings) ReadJSONResource(resPath string, v any) error {
	if s.ExternalRomFs != nil {
		extPath := *s.ExternalRomFs + "/" + resPath
		if s.sd.IsFile(extPath) {
			return s.sd.ReadJSON(extPath, v)
		}
	}
	return s.romfs.ReadJSON(s.romfs.MakeAbsolute(resPath), v)
}

// ApplyScrollBarColor pushes the scrollbar override into a menu, if set
func (s *Settings) ApplyScrollBarColor(m *ui.Menu) {
	if s.ScrollBarColor != nil {
		m.SetScrollbarColor(*s.ScrollBarColor)
	}
}

// ApplyProgressBarColor pushes the progress bar override into a progress
// widget, if set
func (s *Settings) ApplyProgressBarColor(p *progress.Model) {
	if s.ProgressBarColor != nil {
		p.FullColor = string(s.ProgressBarColor.Lip())
	}
}

// GetLanguage returns the configured language, or the cached system default
// when no override is set. A failed system query is the caller's problem;
// the original contract treats it as fatal.
func (s *Settings) GetLanguage() (Language, error) {
	if s.CustomLanguage != nil {
		return *s.CustomLanguage, nil
	}
	return s.resolver.Resolve()
}

// SetExternalRomFs stores the external romfs override in its normalized,
// mount-prefixed form.
func (s *Settings) SetExternalRomFs(path string) {
	normalized := normalizeExternalRomFs(s.sd.MountName(), path)
	s.ExternalRomFs = &normalized
}

// SetLanguageResolver swaps the system-language resolver. Used by tests to
// exercise the resolution path without touching the host locale.
func (s *Settings) SetLanguageResolver(r *LanguageResolver) {
	s.resolver = r
}

// normalizeExternalRomFs forces the configured path to carry the storage
// mount prefix: "foo/bar" -> "sdmc:/foo/bar", "/foo" -> "sdmc:/foo", and an
// already-prefixed path is kept verbatim.
func normalizeExternalRomFs(mount, v string) string {
	prefix := mount + ":/"
	if strings.HasPrefix(v, prefix) {
		return v
	}
	out := mount + ":"
	if !strings.HasPrefix(v, "/") {
		out += "/"
	}
	return out + v
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// parseColor treats a nil or empty hex string as absent, and silently
// ignores malformed values the same way any other bad key falls back
func parseColor(hex *string) (ui.Color, bool) {
	if hex == nil || *hex == "" {
		return ui.Color{}, false
	}
	c, err := ui.ColorFromHex(*hex)
	if err != nil {
		return ui.Color{}, false
	}
	return c, true
}

func hexPtr(c ui.Color) *string {
	s := c.Hex()
	return &s
}
