package buffer

import (
	"strings"
	"unicode/utf8"
)

// Memory is an in-memory Buffer holding text as lines
type Memory struct {
	lines []string
	line  int // 0-based index into lines
	col   int // rune offset into lines[line]
}

// NewMemory creates a buffer holding text with the cursor at the end
func NewMemory(text string) *Memory {
	m := &Memory{lines: strings.Split(text, "\n")}
	m.MoveTo(EndOfBuffer)
	return m
}

// MoveTo places the cursor, clamping out-of-range values to the buffer
func (m *Memory) MoveTo(c Cursor) {
	switch {
	case c.Line <= 0 || c.Line > len(m.lines):
		m.line = len(m.lines) - 1
	default:
		m.line = c.Line - 1
	}

	if c.Column < 0 {
		m.col = utf8.RuneCountInString(m.lines[m.line])
		return
	}
	m.SetColumn(c.Column)
}

// Cursor returns the current cursor with a 1-based line
func (m *Memory) Cursor() Cursor {
	return Cursor{Line: m.line + 1, Column: m.col}
}

// CurrentLine returns the text of the line holding the cursor
func (m *Memory) CurrentLine() string {
	return m.lines[m.line]
}

// Column returns the cursor offset in runes
func (m *Memory) Column() int {
	return m.col
}

// SetColumn moves the cursor within the current line
func (m *Memory) SetColumn(col int) {
	n := utf8.RuneCountInString(m.lines[m.line])
	switch {
	case col < 0:
		m.col = 0
	case col > n:
		m.col = n
	default:
		m.col = col
	}
}

// Insert writes text at the cursor. Newlines in text split the current line
// and the cursor ends right after the inserted text.
func (m *Memory) Insert(text string) {
	if text == "" {
		return
	}

	current := []rune(m.lines[m.line])
	before := string(current[:m.col])
	after := string(current[m.col:])

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		m.lines[m.line] = before + text + after
		m.col += utf8.RuneCountInString(text)
		return
	}

	last := len(parts) - 1
	inserted := make([]string, len(parts))
	inserted[0] = before + parts[0]
	copy(inserted[1:last], parts[1:last])
	inserted[last] = parts[last] + after

	lines := make([]string, 0, len(m.lines)+last)
	lines = append(lines, m.lines[:m.line]...)
	lines = append(lines, inserted...)
	lines = append(lines, m.lines[m.line+1:]...)

	m.lines = lines
	m.line += last
	m.col = utf8.RuneCountInString(parts[last])
}

// LineCount returns the number of lines in the buffer
func (m *Memory) LineCount() int {
	return len(m.lines)
}

// String returns the whole buffer text
func (m *Memory) String() string {
	return strings.Join(m.lines, "\n")
}
