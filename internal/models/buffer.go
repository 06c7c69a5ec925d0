package models

// Font describes the face a tab's text is rendered with.
type Font struct {
	Name string
	Size float32
}

// DefaultFont is applied to every new buffer.
var DefaultFont = Font{Name: "Helvetica", Size: 12}

// Buffer holds one tab's plain text and its presentation state. It is always
// editable; any text is accepted as-is.
type Buffer struct {
	text       string
	path       string
	background ColorToken
	textColor  ColorToken
	font       Font
	matches    []Match

	listeners []func(*Buffer)
}

// NewBuffer returns an empty buffer with the given colors.
func NewBuffer(background, text ColorToken, font Font) *Buffer {
	return &Buffer{
		background: background,
		textColor:  text,
		font:       font,
	}
}

func (b *Buffer) Text() string { return b.text }

// SetText records user edits. Marks from an earlier find no longer line up
// with the text and are dropped.
func (b *Buffer) SetText(text string) {
	if text == b.text {
		return
	}
	b.text = text
	b.matches = nil
	b.notify()
}

// Replace swaps the whole content, as when a file is opened into the tab.
func (b *Buffer) Replace(text string) {
	b.text = text
	b.matches = nil
	b.notify()
}

func (b *Buffer) Path() string { return b.path }

func (b *Buffer) SetPath(path string) { b.path = path }

func (b *Buffer) Background() ColorToken { return b.background }

func (b *Buffer) TextColor() ColorToken { return b.textColor }

func (b *Buffer) Font() Font { return b.font }

// SetColors changes the background and text colors together.
func (b *Buffer) SetColors(background, text ColorToken) {
	if background == b.background && text == b.textColor {
		return
	}
	b.background = background
	b.textColor = text
	b.notify()
}

// Matches returns a copy of the current find marks.
func (b *Buffer) Matches() []Match {
	if len(b.matches) == 0 {
		return nil
	}
	out := make([]Match, len(b.matches))
	copy(out, b.matches)
	return out
}

// Mark replaces the find marks.
func (b *Buffer) Mark(matches []Match) {
	b.matches = append([]Match(nil), matches...)
	b.notify()
}

func (b *Buffer) ClearMarks() {
	if len(b.matches) == 0 {
		return
	}
	b.matches = nil
	b.notify()
}

// AddListener registers fn to run after every visible change.
func (b *Buffer) AddListener(fn func(*Buffer)) {
	b.listeners = append(b.listeners, fn)
}

func (b *Buffer) notify() {
	for _, fn := range b.listeners {
		fn(b)
	}
}
