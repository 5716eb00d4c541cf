// Package settings manages application settings with JSON persistence.
//
// The store is constructed with hardcoded defaults and optionally
// overlaid from a config file once the notes directory is known. All
// numeric values are clamped by Validate, not by the setters.
package settings

import (
	"encoding/json"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"
)

// ConfigFileName is the name of the config file inside the notes directory.
const ConfigFileName = ".note_config.json"

// Setting keys.
const (
	KeyWindowWidth        = "window_width"
	KeyWindowHeight       = "window_height"
	KeyWindowX            = "window_x"
	KeyWindowY            = "window_y"
	KeyLastFile           = "last_file"
	KeyFontSize           = "font_size"
	KeyTransparency       = "hud_transparency"
	KeyAutoScale          = "auto_scale"
	KeyNotesDir           = "notes_directory"
	KeyTemplatesDir       = "templates_directory"
	KeyAuthorName         = "author_name"
	KeySyntaxHighlighting = "syntax_highlighting"
	KeyAutoSaveInterval   = "auto_save_interval"
	KeyColorScheme        = "color_scheme"
	KeyMouseHoverShow     = "mouse_hover_show"
	KeyClickOutsideHide   = "click_outside_hide"
	KeyShowTooltips       = "show_tooltips"
	KeyHotkeys            = "hotkeys"
)

// Hotkey actions.
const (
	ActionToggleOverlay = "toggle_overlay"
	ActionNewNote       = "new_note"
	ActionOpenNote      = "open_note"
	ActionSaveNote      = "save_note"
	ActionSaveAs        = "save_as"
	ActionCodeWindow    = "code_window"
	ActionTogglePreview = "toggle_preview"
	ActionResetPosition = "reset_position"
	ActionMoveCorner1   = "move_corner_1"
	ActionMoveCorner2   = "move_corner_2"
	ActionMoveCorner3   = "move_corner_3"
	ActionMoveCorner4   = "move_corner_4"
	ActionCenterWindow  = "center_window"
	ActionQuit          = "quit_app"
)

// Clamp ranges.
const (
	fontSizeDefault     = 12
	fontSizeMin         = 8
	fontSizeMax         = 24
	transparencyDefault = 0.65
	transparencyMin     = 0.3
	transparencyMax     = 1.0
	autoSaveDefault     = 2000
	autoSaveMin         = 1000
	autoSaveMax         = 10000
)

// preservedKeys survive a reset to defaults.
var preservedKeys = []string{KeyNotesDir, KeyTemplatesDir, KeyAuthorName}

// DefaultHotkeys returns the default global and window hotkey bindings.
func DefaultHotkeys() map[string]string {
	return map[string]string{
		ActionToggleOverlay: "Ctrl+Alt+H",
		ActionNewNote:       "Ctrl+Alt+N",
		ActionOpenNote:      "Ctrl+Alt+O",
		ActionSaveNote:      "Ctrl+Alt+S",
		ActionSaveAs:        "Ctrl+Alt+Shift+S",
		ActionCodeWindow:    "Ctrl+Alt+C",
		ActionTogglePreview: "Ctrl+Alt+P",
		ActionResetPosition: "Ctrl+Alt+R",
		ActionMoveCorner1:   "Ctrl+Alt+1",
		ActionMoveCorner2:   "Ctrl+Alt+2",
		ActionMoveCorner3:   "Ctrl+Alt+3",
		ActionMoveCorner4:   "Ctrl+Alt+4",
		ActionCenterWindow:  "Ctrl+Alt+5",
		ActionQuit:          "Ctrl+Alt+Q",
	}
}

// ActionsInOrder returns all hotkey actions in display order.
func ActionsInOrder() []string {
	return []string{
		ActionToggleOverlay,
		ActionNewNote,
		ActionOpenNote,
		ActionSaveNote,
		ActionSaveAs,
		ActionCodeWindow,
		ActionTogglePreview,
		ActionResetPosition,
		ActionMoveCorner1,
		ActionMoveCorner2,
		ActionMoveCorner3,
		ActionMoveCorner4,
		ActionCenterWindow,
		ActionQuit,
	}
}

// HotkeyDescriptions returns a human readable label per hotkey action.
func HotkeyDescriptions() map[string]string {
	return map[string]string{
		ActionToggleOverlay: "Toggle HUD overlay",
		ActionNewNote:       "New note",
		ActionOpenNote:      "Open note",
		ActionSaveNote:      "Save note",
		ActionSaveAs:        "Save as...",
		ActionCodeWindow:    "Code input window",
		ActionTogglePreview: "Toggle preview",
		ActionResetPosition: "Reset window position",
		ActionMoveCorner1:   "Move to top-left",
		ActionMoveCorner2:   "Move to top-right",
		ActionMoveCorner3:   "Move to bottom-left",
		ActionMoveCorner4:   "Move to bottom-right",
		ActionCenterWindow:  "Center window",
		ActionQuit:          "Quit application",
	}
}

func defaults() map[string]any {
	return map[string]any{
		KeyWindowWidth:        400,
		KeyWindowHeight:       600,
		KeyWindowX:            100,
		KeyWindowY:            100,
		KeyLastFile:           "",
		KeyFontSize:           fontSizeDefault,
		KeyTransparency:       transparencyDefault,
		KeyAutoScale:          true,
		KeyNotesDir:           "",
		KeyTemplatesDir:       "",
		KeyAuthorName:         "",
		KeySyntaxHighlighting: true,
		KeyAutoSaveInterval:   autoSaveDefault,
		KeyColorScheme:        "Matrix Green",
		KeyMouseHoverShow:     false,
		KeyClickOutsideHide:   false,
		KeyShowTooltips:       true,
		KeyHotkeys:            DefaultHotkeys(),
	}
}

// Store is an in-memory key/value configuration with JSON persistence.
// It is safe for concurrent use, though by convention only the UI
// thread mutates it.
type Store struct {
	// OnChanged is called after a value changed, outside the store lock.
	OnChanged func(key string)

	mu   sync.RWMutex
	path string
	m    map[string]any
}

// New returns a store holding the hardcoded defaults and no file path.
func New() *Store {
	return &Store{m: defaults()}
}

// SetPath sets the config file path for subsequent loads and saves.
func (s *Store) SetPath(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = p
}

// Path returns the current config file path.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Get returns the value for key or def when the key is unset.
func (s *Store) Get(key string, def any) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.m[key]; ok {
		return v
	}
	return def
}

// Set stores a value and persists the full map when a path is set.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	s.m[key] = value
	s.mu.Unlock()
	s.notify(key)
	s.persist()
}

// Update stores multiple values at once, then persists.
func (s *Store) Update(values map[string]any) {
	s.mu.Lock()
	maps.Copy(s.m, values)
	s.mu.Unlock()
	for k := range values {
		s.notify(k)
	}
	s.persist()
}

func (s *Store) notify(key string) {
	if s.OnChanged != nil {
		s.OnChanged(key)
	}
}

func (s *Store) persist() {
	if s.Path() == "" {
		return
	}
	if err := s.Save(); err != nil {
		slog.Warn("Could not save config", "error", err)
	}
}

// Load merges the config file over the defaults. A missing file is a
// no-op. A malformed file is logged and the current values are kept,
// so a crash mid-save degrades to defaults instead of an error.
func (s *Store) Load() {
	path := s.Path()
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Could not read config", "path", path, "error", err)
		}
		return
	}
	var loaded map[string]any
	if err := json.Unmarshal(data, &loaded); err != nil {
		slog.Warn("Malformed config, keeping defaults", "path", path, "error", err)
		return
	}
	known := defaults()
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range loaded {
		if _, ok := known[k]; !ok {
			continue // unknown keys are ignored
		}
		s.m[k] = v
	}
}

// Bootstrap resolves the live config location on startup. The file in
// the home directory is read first and acts as a pointer: once the
// notes directory is known the store follows it to
// <notes_dir>/.note_config.json, which is the file loaded and saved
// from then on. A config that was relocated in a previous run is found
// through at most two hops, so a stale intermediate copy still ends at
// the live file.
func (s *Store) Bootstrap(homeDir, defaultNotesDir, defaultTemplatesDir string) {
	s.SetPath(filepath.Join(homeDir, ConfigFileName))
	s.Load()
	if s.NotesDir() == "" {
		s.SetNotesDir(defaultNotesDir)
	}
	if s.TemplatesDir() == "" {
		s.SetTemplatesDir(defaultTemplatesDir)
	}
	for range 2 {
		p := filepath.Join(s.NotesDir(), ConfigFileName)
		if p == s.Path() {
			break
		}
		s.SetPath(p)
		s.Load()
	}
}

// Save serializes the full map to the config file, creating the target
// directory first. There is no partial-write atomicity guarantee.
func (s *Store) Save() error {
	path := s.Path()
	if path == "" {
		return nil
	}
	s.mu.RLock()
	data, err := json.MarshalIndent(s.m, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate clamps numeric values to their allowed ranges and ensures
// configured directories exist. Directory creation failures are logged
// and tolerated.
func (s *Store) Validate() {
	s.mu.Lock()
	s.m[KeyFontSize] = clampInt(toInt(s.m[KeyFontSize], fontSizeDefault), fontSizeMin, fontSizeMax)
	s.m[KeyTransparency] = clampFloat(toFloat(s.m[KeyTransparency], transparencyDefault), transparencyMin, transparencyMax)
	s.m[KeyAutoSaveInterval] = clampInt(toInt(s.m[KeyAutoSaveInterval], autoSaveDefault), autoSaveMin, autoSaveMax)
	dirs := []string{toString(s.m[KeyNotesDir], ""), toString(s.m[KeyTemplatesDir], "")}
	s.mu.Unlock()
	for _, d := range dirs {
		if d == "" {
			continue
		}
		if err := os.MkdirAll(d, 0o755); err != nil {
			slog.Warn("Could not create configured directory", "dir", d, "error", err)
		}
	}
}

// ResetToDefaults reloads the hardcoded defaults while preserving the
// notes directory, templates directory and author name.
func (s *Store) ResetToDefaults() {
	s.mu.Lock()
	saved := make(map[string]any)
	for _, k := range preservedKeys {
		if v, ok := s.m[k]; ok && toString(v, "") != "" {
			saved[k] = v
		}
	}
	s.m = defaults()
	maps.Copy(s.m, saved)
	s.mu.Unlock()
	s.persist()
}

// Typed accessors. Values loaded from JSON arrive as float64, so every
// getter coerces.

func (s *Store) FontSize() int {
	return toInt(s.Get(KeyFontSize, fontSizeDefault), fontSizeDefault)
}

func (s *Store) SetFontSize(v int) { s.Set(KeyFontSize, v) }

func (s *Store) ResetFontSize() { s.Set(KeyFontSize, fontSizeDefault) }

func (s *Store) FontSizePresets() (min, max, def int) {
	return fontSizeMin, fontSizeMax, fontSizeDefault
}

func (s *Store) Transparency() float64 {
	return toFloat(s.Get(KeyTransparency, transparencyDefault), transparencyDefault)
}

func (s *Store) SetTransparency(v float64) { s.Set(KeyTransparency, v) }

func (s *Store) ResetTransparency() { s.Set(KeyTransparency, transparencyDefault) }

func (s *Store) TransparencyPresets() (min, max, def float64) {
	return transparencyMin, transparencyMax, transparencyDefault
}

func (s *Store) AutoSaveIntervalMs() int {
	return toInt(s.Get(KeyAutoSaveInterval, autoSaveDefault), autoSaveDefault)
}

func (s *Store) SetAutoSaveIntervalMs(v int) { s.Set(KeyAutoSaveInterval, v) }

func (s *Store) ResetAutoSaveIntervalMs() { s.Set(KeyAutoSaveInterval, autoSaveDefault) }

func (s *Store) AutoSaveIntervalPresets() (min, max, def int) {
	return autoSaveMin, autoSaveMax, autoSaveDefault
}

func (s *Store) NotesDir() string { return toString(s.Get(KeyNotesDir, ""), "") }

func (s *Store) SetNotesDir(v string) { s.Set(KeyNotesDir, v) }

func (s *Store) TemplatesDir() string { return toString(s.Get(KeyTemplatesDir, ""), "") }

func (s *Store) SetTemplatesDir(v string) { s.Set(KeyTemplatesDir, v) }

func (s *Store) AuthorName() string { return toString(s.Get(KeyAuthorName, ""), "") }

func (s *Store) SetAuthorName(v string) { s.Set(KeyAuthorName, v) }

func (s *Store) ColorScheme() string {
	return toString(s.Get(KeyColorScheme, "Matrix Green"), "Matrix Green")
}

func (s *Store) SetColorScheme(v string) { s.Set(KeyColorScheme, v) }

func (s *Store) LastFile() string { return toString(s.Get(KeyLastFile, ""), "") }

func (s *Store) SetLastFile(v string) { s.Set(KeyLastFile, v) }

func (s *Store) SyntaxHighlighting() bool {
	return toBool(s.Get(KeySyntaxHighlighting, true), true)
}

func (s *Store) SetSyntaxHighlighting(v bool) { s.Set(KeySyntaxHighlighting, v) }

func (s *Store) MouseHoverShow() bool { return toBool(s.Get(KeyMouseHoverShow, false), false) }

func (s *Store) SetMouseHoverShow(v bool) { s.Set(KeyMouseHoverShow, v) }

func (s *Store) ClickOutsideHide() bool { return toBool(s.Get(KeyClickOutsideHide, false), false) }

func (s *Store) SetClickOutsideHide(v bool) { s.Set(KeyClickOutsideHide, v) }

func (s *Store) ShowTooltips() bool { return toBool(s.Get(KeyShowTooltips, true), true) }

func (s *Store) SetShowTooltips(v bool) { s.Set(KeyShowTooltips, v) }

func (s *Store) AutoScale() bool { return toBool(s.Get(KeyAutoScale, true), true) }

func (s *Store) SetAutoScale(v bool) { s.Set(KeyAutoScale, v) }

// WindowFrame returns the persisted window geometry.
func (s *Store) WindowFrame() (w, h, x, y int) {
	w = toInt(s.Get(KeyWindowWidth, 400), 400)
	h = toInt(s.Get(KeyWindowHeight, 600), 600)
	x = toInt(s.Get(KeyWindowX, 100), 100)
	y = toInt(s.Get(KeyWindowY, 100), 100)
	return
}

// SetWindowFrame persists the window geometry.
func (s *Store) SetWindowFrame(w, h, x, y int) {
	s.Update(map[string]any{
		KeyWindowWidth:  w,
		KeyWindowHeight: h,
		KeyWindowX:      x,
		KeyWindowY:      y,
	})
}

// Hotkeys returns a copy of the configured bindings, with defaults
// filling in missing actions.
func (s *Store) Hotkeys() map[string]string {
	out := DefaultHotkeys()
	raw := s.Get(KeyHotkeys, nil)
	for k, v := range toStringMap(raw) {
		if _, ok := out[k]; ok && v != "" {
			out[k] = v
		}
	}
	return out
}

// Hotkey returns the binding for an action or its default.
func (s *Store) Hotkey(action string) string {
	return s.Hotkeys()[action]
}

// SetHotkey updates the binding for one action.
func (s *Store) SetHotkey(action, combo string) {
	hk := s.Hotkeys()
	hk[action] = combo
	s.Set(KeyHotkeys, hk)
}

// Coercion helpers for values that round-tripped through JSON.

func toInt(v any, def int) int {
	switch x := v.(type) {
	case int:
		return x
	case float64:
		return int(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n)
		}
	}
	return def
}

func toFloat(v any, def float64) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	}
	return def
}

func toBool(v any, def bool) bool {
	if x, ok := v.(bool); ok {
		return x
	}
	return def
}

func toString(v any, def string) string {
	if x, ok := v.(string); ok {
		return x
	}
	return def
}

func toStringMap(v any) map[string]string {
	out := make(map[string]string)
	switch x := v.(type) {
	case map[string]string:
		return x
	case map[string]any:
		for k, raw := range x {
			if sv, ok := raw.(string); ok {
				out[k] = sv
			}
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func clampFloat(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
