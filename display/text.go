package display

import (
	"bytes"
	"strings"
)

// TextDriver is an in-memory character display.
// Text printed past the right edge is dropped.
type TextDriver struct {
	rows   [][]byte
	x, y   int
	clears int
}

// NewTextDriver returns a blank width x height display.
func NewTextDriver(width, height uint8) *TextDriver {
	t := &TextDriver{rows: make([][]byte, height)}
	for i := range t.rows {
		t.rows[i] = make([]byte, width)
	}
	t.ClearDisplay()
	t.clears = 0
	return t
}

// ClearDisplay blanks the display and moves the cursor home.
func (t *TextDriver) ClearDisplay() {
	for _, row := range t.rows {
		for i := range row {
			row[i] = ' '
		}
	}
	t.x, t.y = 0, 0
	t.clears++
}

// SetCursor moves the cursor.
func (t *TextDriver) SetCursor(x, y uint8) {
	t.x, t.y = int(x), int(y)
}

// Print writes data at the cursor and advances it.
func (t *TextDriver) Print(data []byte) {
	if t.y >= len(t.rows) {
		return
	}
	row := t.rows[t.y]
	if t.x < len(row) {
		copy(row[t.x:], data)
	}
	t.x += len(data)
}

// Lines returns the display contents, with trailing spaces removed.
func (t *TextDriver) Lines() []string {
	lines := make([]string, len(t.rows))
	for i, row := range t.rows {
		lines[i] = string(bytes.TrimRight(row, " "))
	}
	return lines
}

// Clears returns how many times the display was cleared.
func (t *TextDriver) Clears() int {
	return t.clears
}

// String returns the lines joined by newlines.
func (t *TextDriver) String() string {
	return strings.Join(t.Lines(), "\n")
}
