package editor

import "github.com/fluxion-editor/fluxion/text"

// Cursor is the user's text position in runes. Row indexes the current
// buffer's lines; Col may equal the line length (end of line).
type Cursor struct {
	Row int
	Col int
}

func (c Cursor) Pos() text.Pos { return text.Pos{Row: c.Row, Col: c.Col} }

// ToOffset converts c into a rune offset of t. c must be valid for t.
func ToOffset(t *text.Text, c Cursor) int {
	return t.LineStart(c.Row) + c.Col
}

// clamp pulls c into t's bounds.
func (c Cursor) clamp(t *text.Text) Cursor {
	p := t.ClampPos(c.Pos())
	return Cursor{Row: p.Row, Col: p.Col}
}

type direction uint8

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// move returns c moved one step in dir within t.
//
// Vertical moves clamp the column to the target line and keep no goal
// column. Horizontal moves wrap across line ends; they stop at the first
// position of the document and at the last.
func (c Cursor) move(t *text.Text, dir direction) Cursor {
	row, col := c.Row, c.Col
	lastRow := t.LineCount() - 1

	switch dir {
	case dirUp:
		if row == 0 {
			return c
		}
		return Cursor{Row: row - 1, Col: min(col, t.LineLen(row-1))}
	case dirDown:
		if row == lastRow {
			return c
		}
		return Cursor{Row: row + 1, Col: min(col, t.LineLen(row+1))}
	case dirLeft:
		if col > 0 {
			return Cursor{Row: row, Col: col - 1}
		}
		if row == 0 {
			return c
		}
		return Cursor{Row: row - 1, Col: t.LineLen(row - 1)}
	case dirRight:
		if col < t.LineLen(row) {
			return Cursor{Row: row, Col: col + 1}
		}
		if row == lastRow {
			return c
		}
		return Cursor{Row: row + 1, Col: 0}
	default:
		return c
	}
}
