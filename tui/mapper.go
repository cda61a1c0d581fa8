package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fluxion-editor/fluxion/editor"
)

// Mapper turns key presses into editor actions. It remembers the keys of a
// partially typed sequence between presses.
type Mapper struct {
	keys    KeyMap
	pending []string
}

func NewMapper(keys KeyMap) *Mapper {
	return &Mapper{keys: keys}
}

// Pending returns the keys typed so far of an unfinished sequence.
func (m *Mapper) Pending() string { return strings.Join(m.pending, " ") }

// Reset drops any unfinished sequence.
func (m *Mapper) Reset() { m.pending = m.pending[:0] }

// Map resolves msg in mode. It returns nil while a sequence is still being
// typed or when nothing is bound.
//
// A key that breaks a pending sequence is looked up again on its own. In
// modes that take text, unbound printable keys become Insert actions.
func (m *Mapper) Map(mode editor.Mode, msg tea.KeyMsg) []editor.Action {
	tok := keyToken(msg)

	if len(m.pending) > 0 {
		seq := append(m.pending, tok)
		if a, prefix, ok := m.lookup(mode, strings.Join(seq, " ")); ok {
			m.Reset()
			return []editor.Action{a}
		} else if prefix {
			m.pending = seq
			return nil
		}
		m.Reset()
	}

	a, prefix, ok := m.lookup(mode, tok)
	switch {
	case ok:
		return []editor.Action{a}
	case prefix:
		m.pending = append(m.pending, tok)
		return nil
	}

	if !takesText(mode) || msg.Alt {
		return nil
	}
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		return nil
	}
	out := make([]editor.Action, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if r == '\r' {
			r = '\n'
		}
		out = append(out, editor.Insert(r))
	}
	return out
}

// lookup finds the binding whose key is exactly seq. prefix reports
// whether seq starts a longer bound sequence.
func (m *Mapper) lookup(mode editor.Mode, seq string) (a editor.Action, prefix, ok bool) {
	for _, bindings := range [][]Binding{m.keys.Global, m.keys.Modes[mode]} {
		for _, b := range bindings {
			if !b.Enabled() {
				continue
			}
			for _, k := range b.Keys() {
				if k == seq {
					return b.Action, false, true
				}
				if strings.HasPrefix(k, seq+" ") {
					prefix = true
				}
			}
		}
	}
	return editor.Action{}, prefix, false
}

func takesText(mode editor.Mode) bool {
	switch mode {
	case editor.ModeInsert, editor.ModeCommand, editor.ModeSaveDialog:
		return true
	default:
		return false
	}
}

// keyToken names a key press the way bindings spell it. The space bar is
// "space" so that sequences can be split on spaces.
func keyToken(msg tea.KeyMsg) string {
	s := msg.String()
	if s == " " {
		return "space"
	}
	return s
}
