package text

import (
	"sort"
	"strings"
)

// Text is the pure document state of a single buffer.
//
// Line start offsets are cached and rebuilt lazily after a mutation, so
// LineStart is O(1) and PosFromOffset is O(log n) between edits.
type Text struct {
	lines   [][]rune
	version uint64

	starts []int // rune offset of each line start; nil when stale
}

func New(s string) *Text {
	return &Text{lines: splitLines(s)}
}

func (t *Text) String() string {
	if len(t.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range t.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Version increases on every effective mutation.
func (t *Text) Version() uint64 { return t.version }

// LineCount is always at least 1.
func (t *Text) LineCount() int { return len(t.lines) }

// Line returns the text of row without its line break, or "" when row is out
// of range.
func (t *Text) Line(row int) string {
	if row < 0 || row >= len(t.lines) {
		return ""
	}
	return string(t.lines[row])
}

// LineLen returns the rune length of row, or 0 when row is out of range.
func (t *Text) LineLen(row int) int {
	if row < 0 || row >= len(t.lines) {
		return 0
	}
	return len(t.lines[row])
}

// LineStart returns the rune offset of the first rune of row. Rows past the
// end map to the document length.
func (t *Text) LineStart(row int) int {
	if row <= 0 {
		return 0
	}
	starts := t.lineStarts()
	if row >= len(starts) {
		return t.Len()
	}
	return starts[row]
}

// Len returns the document length in runes, counting each line break as one.
func (t *Text) Len() int {
	last := len(t.lines) - 1
	return t.lineStarts()[last] + len(t.lines[last])
}

// ClampPos clamps p into this document's bounds.
func (t *Text) ClampPos(p Pos) Pos {
	return ClampPos(p, len(t.lines), t.LineLen)
}

func (t *Text) lineStarts() []int {
	if t.starts != nil {
		return t.starts
	}
	starts := make([]int, len(t.lines))
	off := 0
	for i, line := range t.lines {
		starts[i] = off
		off += len(line) + 1
	}
	t.starts = starts
	return starts
}

// rowForOffset returns the row containing off, assuming 0 <= off <= Len().
func (t *Text) rowForOffset(off int) int {
	starts := t.lineStarts()
	return sort.Search(len(starts), func(i int) bool { return starts[i] > off }) - 1
}

func (t *Text) touch() {
	t.starts = nil
	t.version++
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
