// Package buffer provides the cursor-addressable text buffers templates are
// inserted into.
package buffer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCursor is returned for a cursor value that cannot be parsed
var ErrInvalidCursor = errors.New("invalid cursor")

// Buffer is the editing surface the inserter needs from a host editor
type Buffer interface {
	// CurrentLine returns the text of the line holding the cursor
	CurrentLine() string
	// Column returns the cursor position within the current line, in runes
	Column() int
	// SetColumn moves the cursor within the current line
	SetColumn(col int)
	// Insert writes text at the cursor and moves the cursor past it
	Insert(text string)
}

// Cursor addresses a position in a buffer. Line is 1-based, Column is
// 0-based; a zero Line means the last line and a negative Column means the
// end of the line.
type Cursor struct {
	Line   int
	Column int
}

// EndOfBuffer places the cursor at the end of the last line
var EndOfBuffer = Cursor{Line: 0, Column: -1}

func (c Cursor) String() string {
	line := "end"
	if c.Line > 0 {
		line = strconv.Itoa(c.Line)
	}
	if c.Column < 0 {
		return line
	}
	return fmt.Sprintf("%s:%d", line, c.Column)
}

// ParseCursor parses "line" or "line:column". An empty value or "end" means
// the end of the buffer.
func ParseCursor(value string) (Cursor, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "end" {
		return EndOfBuffer, nil
	}

	linePart, colPart, hasCol := strings.Cut(value, ":")

	cursor := Cursor{Column: -1}
	if linePart != "end" {
		line, err := strconv.Atoi(linePart)
		if err != nil || line < 1 {
			return Cursor{}, fmt.Errorf("%w %q: line must be a positive number", ErrInvalidCursor, value)
		}
		cursor.Line = line
	}

	if hasCol {
		col, err := strconv.Atoi(colPart)
		if err != nil || col < 0 {
			return Cursor{}, fmt.Errorf("%w %q: column must be zero or positive", ErrInvalidCursor, value)
		}
		cursor.Column = col
	}

	return cursor, nil
}
