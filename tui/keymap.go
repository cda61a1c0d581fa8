package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/fluxion-editor/fluxion/editor"
)

// Binding ties a key binding to the action it produces. Each key of the
// binding is a sequence of space separated tokens, as produced by keyToken
// ("b n", "space f", "ctrl+c").
type Binding struct {
	key.Binding
	Action editor.Action
}

func bind(a editor.Action, help string, keys ...string) Binding {
	return Binding{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(displayKeys(keys), help)),
		Action:  a,
	}
}

// displayKeys renders the first key of a binding for the help line.
func displayKeys(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	toks := strings.Fields(keys[0])
	for i, t := range toks {
		if t == "space" {
			toks[i] = "␣"
		}
	}
	return strings.Join(toks, "")
}

// KeyMap holds the bindings of every mode. Global bindings apply in all
// modes and take precedence.
type KeyMap struct {
	Global []Binding
	Modes  map[editor.Mode][]Binding
}

func DefaultKeyMap() KeyMap {
	do := editor.Do

	normal := []Binding{
		bind(do(editor.ActionEnterCommandMode), "command", ":"),
		bind(do(editor.ActionEnterInsertMode), "insert", "i"),
		bind(do(editor.ActionEnterVisualMode), "visual", "v"),
		bind(do(editor.ActionMoveLeft), "left", "h", "left"),
		bind(do(editor.ActionMoveDown), "down", "j", "down"),
		bind(do(editor.ActionMoveUp), "up", "k", "up"),
		bind(do(editor.ActionMoveRight), "right", "l", "right"),
		bind(do(editor.ActionNextBuffer), "next buffer", "b n", "]"),
		bind(do(editor.ActionPrevBuffer), "prev buffer", "b p", "["),
		bind(do(editor.ActionCloseBuffer), "close buffer", "b x"),
		bind(do(editor.ActionCloseAllBuffersExcept), "close others", "b a"),
		bind(do(editor.ActionNewBuffer), "new buffer", "b e"),
		bind(do(editor.ActionEnterFilePicker), "files", "space f"),
	}
	for i := 0; i <= 9; i++ {
		d := strconv.Itoa(i)
		normal = append(normal, bind(editor.SwitchBuffer(i), "buffer "+d, d))
	}

	motion := []Binding{
		bind(do(editor.ActionMoveLeft), "left", "left"),
		bind(do(editor.ActionMoveDown), "down", "down"),
		bind(do(editor.ActionMoveUp), "up", "up"),
		bind(do(editor.ActionMoveRight), "right", "right"),
	}

	insert := append([]Binding{
		bind(do(editor.ActionEnterNormalMode), "normal", "esc"),
		bind(editor.Insert('\n'), "newline", "enter"),
		bind(editor.Insert('\t'), "tab", "tab"),
		bind(do(editor.ActionDelete), "delete", "backspace"),
	}, motion...)

	visual := []Binding{
		bind(do(editor.ActionEnterNormalMode), "normal", "esc"),
		bind(do(editor.ActionMoveLeft), "left", "h", "left"),
		bind(do(editor.ActionMoveDown), "down", "j", "down"),
		bind(do(editor.ActionMoveUp), "up", "k", "up"),
		bind(do(editor.ActionMoveRight), "right", "l", "right"),
	}

	command := []Binding{
		bind(do(editor.ActionEnterNormalMode), "cancel", "esc"),
		bind(do(editor.ActionExecuteCommand), "run", "enter"),
		bind(do(editor.ActionDeleteFromCommand), "delete", "backspace"),
	}

	save := []Binding{
		bind(do(editor.ActionCancelDialog), "cancel", "esc"),
		bind(editor.SaveBufferAs(""), "save", "enter"),
		bind(do(editor.ActionDeleteFromCommand), "delete", "backspace"),
	}

	files := []Binding{
		bind(do(editor.ActionFilePickerEsc), "close", "esc"),
		bind(do(editor.ActionFilePickerEnter), "open", "enter", "l"),
		bind(do(editor.ActionFilePickerDown), "down", "j", "down"),
		bind(do(editor.ActionFilePickerUp), "up", "k", "up"),
		bind(do(editor.ActionFilePickerParent), "parent", "h", "backspace", "left"),
	}

	return KeyMap{
		Global: []Binding{
			bind(do(editor.ActionQuit), "quit", "ctrl+c"),
		},
		Modes: map[editor.Mode][]Binding{
			editor.ModeNormal:     normal,
			editor.ModeInsert:     insert,
			editor.ModeVisual:     visual,
			editor.ModeCommand:    command,
			editor.ModeSaveDialog: save,
			editor.ModeFilePicker: files,
		},
	}
}

// Override replaces the keys of every binding of kind in mode with keys. A
// kind that had no binding in mode gets a new one. Kinds that need a payload
// cannot be rebound.
func (km KeyMap) Override(mode editor.Mode, kind editor.ActionKind, keys []string) error {
	switch kind {
	case editor.ActionInsert, editor.ActionSwitchBuffer:
		return fmt.Errorf("action %s carries a payload and cannot be rebound", kind)
	}
	norm := make([]string, 0, len(keys))
	for _, k := range keys {
		k = normalizeSequence(k)
		if k == "" {
			return fmt.Errorf("empty key for action %s", kind)
		}
		norm = append(norm, k)
	}

	if km.Modes == nil {
		return fmt.Errorf("no bindings for mode %s", mode)
	}
	var kept []Binding
	for _, b := range km.Modes[mode] {
		if b.Action.Kind != kind {
			kept = append(kept, b)
		}
	}
	if len(norm) > 0 {
		kept = append(kept, bind(editor.Do(kind), strings.ReplaceAll(kind.String(), "_", " "), norm...))
	}
	km.Modes[mode] = kept
	return nil
}

// Apply applies overrides keyed by mode name then action name, the shape
// of the [keys.<mode>] config tables.
func (km KeyMap) Apply(overrides map[string]map[string][]string) error {
	for modeName, actions := range overrides {
		mode, ok := editor.ParseMode(modeName)
		if !ok {
			return fmt.Errorf("keys: unknown mode %q", modeName)
		}
		for actionName, keys := range actions {
			kind, ok := editor.ParseActionKind(actionName)
			if !ok {
				return fmt.Errorf("keys.%s: unknown action %q", modeName, actionName)
			}
			if err := km.Override(mode, kind, keys); err != nil {
				return fmt.Errorf("keys.%s: %w", modeName, err)
			}
		}
	}
	return nil
}

// modeHelp adapts the bindings of one mode to help.KeyMap.
type modeHelp []Binding

func (h modeHelp) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(h))
	seen := map[editor.ActionKind]bool{}
	for _, b := range h {
		if seen[b.Action.Kind] || b.Action.Kind == editor.ActionSwitchBuffer {
			continue
		}
		seen[b.Action.Kind] = true
		out = append(out, b.Binding)
	}
	return out
}

func (h modeHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

func (km KeyMap) help(mode editor.Mode) modeHelp {
	return modeHelp(km.Modes[mode])
}

// normalizeSequence collapses runs of spaces in a configured sequence.
func normalizeSequence(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
