// Package cellwidth lays text out on a terminal cell grid.
package cellwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a non-positive tab width is given.
const DefaultTabWidth = 4

// Cell is one grapheme cluster of a line placed on the grid.
type Cell struct {
	// Text is the cluster as drawn. Tabs are expanded to spaces.
	Text string
	// Rune is the index of the cluster's first rune in the line; Runes is
	// how many runes the cluster spans.
	Rune  int
	Runes int
	// Col is the first terminal column the cluster occupies.
	Col   int
	Width int
}

// Layout splits line into grapheme clusters and assigns each its terminal
// columns, starting at column 0.
func Layout(line []rune, tabWidth int) []Cell {
	if len(line) == 0 {
		return nil
	}
	out := make([]Cell, 0, len(line))
	g := uniseg.NewGraphemes(string(line))
	runeIdx, col := 0, 0
	for g.Next() {
		s := g.Str()
		c := Cell{Text: s, Rune: runeIdx, Runes: len(g.Runes()), Col: col}
		if s == "\t" {
			c.Width = tabAdvance(col, tabWidth)
			c.Text = strings.Repeat(" ", c.Width)
		} else {
			c.Width = Width(s)
		}
		out = append(out, c)
		runeIdx += c.Runes
		col += c.Width
	}
	return out
}

// LineWidth returns the total width of laid out cells.
func LineWidth(cells []Cell) int {
	if len(cells) == 0 {
		return 0
	}
	last := cells[len(cells)-1]
	return last.Col + last.Width
}

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	w := runewidth.StringWidth(s)
	if w <= 0 {
		w = max(uniseg.StringWidth(s), 0)
	}
	return w
}

// ColumnOf returns the terminal column of rune index runeCol. A rune inside
// a multi-rune cluster maps to the cluster's column; an index past the last
// cluster maps to the end of the line.
func ColumnOf(cells []Cell, runeCol int) int {
	for _, c := range cells {
		if runeCol < c.Rune+c.Runes {
			return c.Col
		}
	}
	return LineWidth(cells)
}

// Window renders the cells visible in columns [from, from+width). Clusters
// cut by either edge are replaced by spaces.
func Window(cells []Cell, from, width int) string {
	if width <= 0 {
		return ""
	}
	to := from + width
	var sb strings.Builder
	for _, c := range cells {
		end := c.Col + c.Width
		switch {
		case c.Col >= to:
			return sb.String()
		case c.Width == 0:
			if c.Col >= from {
				sb.WriteString(c.Text)
			}
		case end <= from:
		case c.Col < from || end > to:
			sb.WriteString(strings.Repeat(" ", min(end, to)-max(c.Col, from)))
		default:
			sb.WriteString(c.Text)
		}
	}
	return sb.String()
}

// Truncate cuts s to at most width cells, ending with tail when it had to
// cut.
func Truncate(s string, width int, tail string) string {
	return runewidth.Truncate(s, width, tail)
}

// PadRight fills s with spaces to width cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func tabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return tabWidth - col%tabWidth
}
