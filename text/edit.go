package text

import "strings"

// Insert inserts s at rune offset off. It reports false, leaving the
// document untouched, when off is outside [0, Len()].
func (t *Text) Insert(off int, s string) bool {
	p, ok := t.PosFromOffset(off, OffsetError)
	if !ok {
		return false
	}
	return t.replace(p, p, s)
}

// InsertRune inserts a single rune at rune offset off.
func (t *Text) InsertRune(off int, r rune) bool {
	return t.Insert(off, string(r))
}

// Remove deletes the runes in [start, end). Both offsets must lie within
// [0, Len()] and start must not exceed end.
func (t *Text) Remove(start, end int) bool {
	if start > end {
		return false
	}
	from, ok := t.PosFromOffset(start, OffsetError)
	if !ok {
		return false
	}
	to, ok := t.PosFromOffset(end, OffsetError)
	if !ok {
		return false
	}
	return t.replace(from, to, "")
}

func (t *Text) replace(start, end Pos, s string) bool {
	if start == end && s == "" {
		return false
	}

	prefix := append([]rune(nil), t.lines[start.Row][:start.Col]...)
	suffix := append([]rune(nil), t.lines[end.Row][end.Col:]...)

	parts := strings.Split(s, "\n")
	repl := make([][]rune, 0, len(parts))
	if len(parts) == 1 {
		line := make([]rune, 0, len(prefix)+len(parts[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, []rune(parts[0])...)
		line = append(line, suffix...)
		repl = append(repl, line)
	} else {
		first := append(prefix, []rune(parts[0])...)
		repl = append(repl, first)

		for i := 1; i < len(parts)-1; i++ {
			repl = append(repl, []rune(parts[i]))
		}

		last := append([]rune(parts[len(parts)-1]), suffix...)
		repl = append(repl, last)
	}

	before := t.lines[:start.Row]
	after := t.lines[end.Row+1:]
	out := make([][]rune, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)
	if len(out) == 0 {
		out = [][]rune{nil}
	}

	t.lines = out
	t.touch()
	return true
}
