package models

import (
	"fmt"

	"notepad/internal/logger"
)

// Documents reads and writes whole plain-text files.
type Documents interface {
	Read(path string) (string, error)
	Write(path, text string) error
}

// TextEditor is the on-screen editing surface bound to a tab. Clipboard
// commands go through it because the selection lives in the widget.
type TextEditor interface {
	Cut()
	Copy()
	Paste()
}

// Tab is one editor tab. Tabs are never removed.
type Tab struct {
	ID     int
	Name   string
	Buffer *Buffer

	editor TextEditor
}

// AttachEditor binds the widget that displays this tab.
func (t *Tab) AttachEditor(editor TextEditor) {
	t.editor = editor
}

// Session owns the ordered tab list and the active tab. All methods must be
// called from the UI event goroutine.
type Session struct {
	tabs    []*Tab
	active  int
	palette Palette
	font    Font

	docs   Documents
	logger logger.Logger
}

// NewSession creates a session holding the startup tab.
func NewSession(docs Documents, log logger.Logger) *Session {
	return NewSessionWithFont(docs, log, DefaultFont)
}

// NewSessionWithFont is NewSession with a configured editor font.
func NewSessionWithFont(docs Documents, log logger.Logger, font Font) *Session {
	if log == nil {
		log = logger.NopLogger{}
	}
	s := &Session{
		palette: PaletteDefault,
		font:    font,
		docs:    docs,
		logger:  log,
	}
	s.AddTab()
	return s
}

// AddTab appends "Tab N". The active tab only changes for the first tab.
func (s *Session) AddTab() *Tab {
	swatch, _ := s.palette.Swatch()
	tab := &Tab{
		ID:     len(s.tabs),
		Name:   fmt.Sprintf("Tab %d", len(s.tabs)+1),
		Buffer: NewBuffer(swatch.Background, swatch.Text, s.font),
	}
	s.tabs = append(s.tabs, tab)
	if len(s.tabs) == 1 {
		s.active = 0
	}

	s.logger.Debug("Session", "tab added", map[string]interface{}{
		"name":  tab.Name,
		"count": len(s.tabs),
	})
	return tab
}

// Tabs returns the tabs in creation order.
func (s *Session) Tabs() []*Tab {
	out := make([]*Tab, len(s.tabs))
	copy(out, s.tabs)
	return out
}

func (s *Session) Len() int { return len(s.tabs) }

func (s *Session) Tab(i int) (*Tab, error) {
	if i < 0 || i >= len(s.tabs) {
		return nil, fmt.Errorf("tab %d of %d: %w", i, len(s.tabs), ErrTabOutOfRange)
	}
	return s.tabs[i], nil
}

func (s *Session) ActiveIndex() int { return s.active }

// SetActive selects the tab that subsequent commands act on.
func (s *Session) SetActive(i int) error {
	if _, err := s.Tab(i); err != nil {
		return err
	}
	s.active = i
	return nil
}

// CurrentTab returns the active tab.
func (s *Session) CurrentTab() (*Tab, error) {
	if len(s.tabs) == 0 {
		return nil, ErrNoActiveTab
	}
	return s.tabs[s.active], nil
}

// Palette returns the last applied background swatch.
func (s *Session) Palette() Palette { return s.palette }

// OpenFile loads path into the current tab, replacing its content. On error
// the buffer is left untouched.
func (s *Session) OpenFile(path string) error {
	tab, err := s.CurrentTab()
	if err != nil {
		return err
	}

	text, err := s.docs.Read(path)
	if err != nil {
		s.logger.Error("Session", err, map[string]interface{}{"tab": tab.Name, "path": path})
		return err
	}

	tab.Buffer.Replace(text)
	tab.Buffer.SetPath(path)

	s.logger.Info("Session", "file opened", map[string]interface{}{
		"tab":   tab.Name,
		"path":  path,
		"bytes": len(text),
	})
	return nil
}

// SaveFile writes the current tab's full content to path, overwriting it.
func (s *Session) SaveFile(path string) error {
	return s.save(path)
}

// SaveAsFile behaves exactly like SaveFile; choosing the path is the
// caller's job.
func (s *Session) SaveAsFile(path string) error {
	return s.save(path)
}

func (s *Session) save(path string) error {
	tab, err := s.CurrentTab()
	if err != nil {
		return err
	}

	text := tab.Buffer.Text()
	if err := s.docs.Write(path, text); err != nil {
		s.logger.Error("Session", err, map[string]interface{}{"tab": tab.Name, "path": path})
		return err
	}
	tab.Buffer.SetPath(path)

	s.logger.Info("Session", "file saved", map[string]interface{}{
		"tab":   tab.Name,
		"path":  path,
		"bytes": len(text),
	})
	return nil
}

func (s *Session) Cut() {
	if editor := s.currentEditor(); editor != nil {
		editor.Cut()
	}
}

func (s *Session) Copy() {
	if editor := s.currentEditor(); editor != nil {
		editor.Copy()
	}
}

func (s *Session) Paste() {
	if editor := s.currentEditor(); editor != nil {
		editor.Paste()
	}
}

func (s *Session) currentEditor() TextEditor {
	tab, err := s.CurrentTab()
	if err != nil {
		return nil
	}
	return tab.editor
}

// Find marks every non-overlapping occurrence of query in the current tab and
// returns the marks. Running the same query again yields the same marks.
func (s *Session) Find(query string) ([]Match, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	tab, err := s.CurrentTab()
	if err != nil {
		return nil, err
	}

	matches := FindAll(tab.Buffer.Text(), query)
	tab.Buffer.Mark(matches)

	s.logger.Debug("Session", "find completed", map[string]interface{}{
		"tab":     tab.Name,
		"query":   query,
		"matches": len(matches),
	})
	return matches, nil
}

// SwitchBackgroundColor applies p to every tab. The Black swatch switches
// text to white; every other swatch uses black text.
func (s *Session) SwitchBackgroundColor(p Palette) error {
	swatch, err := p.Swatch()
	if err != nil {
		return err
	}

	for _, tab := range s.tabs {
		tab.Buffer.SetColors(swatch.Background, swatch.Text)
	}
	s.palette = p

	s.logger.Debug("Session", "background switched", map[string]interface{}{
		"palette": swatch.Label,
		"tabs":    len(s.tabs),
	})
	return nil
}
