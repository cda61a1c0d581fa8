package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func apply(e *Editor, actions ...Action) {
	for _, a := range actions {
		e.Apply(a)
	}
}

func typeText(e *Editor, s string) {
	for _, r := range s {
		e.Apply(Insert(r))
	}
}

func newEditor(t *testing.T) *Editor {
	t.Helper()
	return New(Config{StartDir: t.TempDir()})
}

func TestEditor_InitialState(t *testing.T) {
	e := newEditor(t)
	if e.Mode() != ModeNormal {
		t.Fatalf("mode=%v, want normal", e.Mode())
	}
	if e.Cursor() != (Cursor{}) || e.ScrollOffset() != 0 {
		t.Fatalf("cursor=%v scroll=%d", e.Cursor(), e.ScrollOffset())
	}
	if e.ShouldQuit() || e.CommandInput() != "" {
		t.Fatalf("unexpected quit=%v input=%q", e.ShouldQuit(), e.CommandInput())
	}
	if e.CurrentBuffer().ID() != 0 || len(e.Buffers()) != 1 {
		t.Fatalf("expected the single initial buffer")
	}
}

func TestEditor_TypeHi(t *testing.T) {
	e := newEditor(t)
	apply(e, Do(ActionEnterInsertMode), Insert('h'), Insert('i'))

	b := e.CurrentBuffer()
	if got := b.String(); got != "hi" {
		t.Fatalf("text=%q, want %q", got, "hi")
	}
	if !b.Dirty() {
		t.Fatalf("expected buffer dirty")
	}
	if got := e.Cursor(); got != (Cursor{Row: 0, Col: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}
}

func TestEditor_InsertNewlineMovesToNextRow(t *testing.T) {
	e := newEditor(t)
	e.Apply(Do(ActionEnterInsertMode))
	typeText(e, "ab\ncd")

	if got := e.CurrentBuffer().String(); got != "ab\ncd" {
		t.Fatalf("text=%q", got)
	}
	if got := e.Cursor(); got != (Cursor{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
}

func TestEditor_InsertInMiddle(t *testing.T) {
	e := newEditor(t)
	e.Apply(Do(ActionEnterInsertMode))
	typeText(e, "ac")
	apply(e, Do(ActionMoveLeft), Insert('b'))
	if got := e.CurrentBuffer().String(); got != "abc" {
		t.Fatalf("text=%q, want abc", got)
	}
	if got := e.Cursor(); got != (Cursor{Row: 0, Col: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}
}

func TestEditor_DeleteAtStartIsNoop(t *testing.T) {
	e := newEditor(t)
	apply(e, Do(ActionEnterInsertMode), Do(ActionDelete))
	if e.CurrentBuffer().Dirty() {
		t.Fatalf("delete at offset 0 must not dirty the buffer")
	}
	if e.Cursor() != (Cursor{}) {
		t.Fatalf("cursor=%v, want (0,0)", e.Cursor())
	}
}

func TestEditor_DeleteWithinLine(t *testing.T) {
	e := newEditor(t)
	e.Apply(Do(ActionEnterInsertMode))
	typeText(e, "abc")
	e.Apply(Do(ActionDelete))
	if got := e.CurrentBuffer().String(); got != "ab" {
		t.Fatalf("text=%q, want ab", got)
	}
	if got := e.Cursor(); got != (Cursor{Row: 0, Col: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}
}

func TestEditor_DeleteAcrossLineBoundaryGoesToEndOfJoinedLine(t *testing.T) {
	e := newEditor(t)
	e.Apply(Do(ActionEnterInsertMode))
	typeText(e, "ab\ncd")
	apply(e, Do(ActionMoveLeft), Do(ActionMoveLeft))
	if got := e.Cursor(); got != (Cursor{Row: 1, Col: 0}) {
		t.Fatalf("cursor=%v, want (1,0)", got)
	}

	e.Apply(Do(ActionDelete))
	if got := e.CurrentBuffer().String(); got != "abcd" {
		t.Fatalf("text=%q, want abcd", got)
	}
	if got := e.Cursor(); got != (Cursor{Row: 0, Col: 4}) {
		t.Fatalf("cursor=%v, want (0,4)", got)
	}
}

func TestEditor_TextActionsIgnoredInNormalMode(t *testing.T) {
	e := newEditor(t)
	apply(e, Insert('x'), Do(ActionDelete))
	if got := e.CurrentBuffer().String(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
	if e.CurrentBuffer().Dirty() {
		t.Fatalf("normal mode insert must not dirty the buffer")
	}
}

func TestEditor_EnterNormalModeIdempotent(t *testing.T) {
	e := newEditor(t)
	before := snapshot(e)
	e.Apply(Do(ActionEnterNormalMode))
	if after := snapshot(e); after != before {
		t.Fatalf("state changed: %+v -> %+v", before, after)
	}
}

type editorSnapshot struct {
	mode   Mode
	cursor Cursor
	scroll int
	input  string
	quit   bool
	buffer int
	text   string
	dirty  bool
}

func snapshot(e *Editor) editorSnapshot {
	b := e.CurrentBuffer()
	return editorSnapshot{
		mode:   e.Mode(),
		cursor: e.Cursor(),
		scroll: e.ScrollOffset(),
		input:  e.CommandInput(),
		quit:   e.ShouldQuit(),
		buffer: b.ID(),
		text:   b.String(),
		dirty:  b.Dirty(),
	}
}

func TestEditor_VisualModeMovesOnly(t *testing.T) {
	e := newEditor(t)
	e.Apply(Do(ActionEnterInsertMode))
	typeText(e, "abc")
	apply(e, Do(ActionEnterNormalMode), Do(ActionEnterVisualMode))
	if e.Mode() != ModeVisual {
		t.Fatalf("mode=%v, want visual", e.Mode())
	}
	apply(e, Do(ActionMoveLeft), Insert('z'), Do(ActionDelete))
	if got := e.CurrentBuffer().String(); got != "abc" {
		t.Fatalf("visual mode edited text: %q", got)
	}
	if got := e.Cursor(); got != (Cursor{Row: 0, Col: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}
	e.Apply(Do(ActionEnterNormalMode))
	if e.Mode() != ModeNormal {
		t.Fatalf("mode=%v, want normal", e.Mode())
	}
}

func TestEditor_CommandModeEditing(t *testing.T) {
	e := newEditor(t)
	e.Apply(Do(ActionEnterCommandMode))
	typeText(e, "bnx")
	e.Apply(Do(ActionDeleteFromCommand))
	if got := e.CommandInput(); got != "bn" {
		t.Fatalf("input=%q, want bn", got)
	}
	e.Apply(Do(ActionDelete))
	if got := e.CommandInput(); got != "b" {
		t.Fatalf("input=%q, want b", got)
	}

	e.Apply(Do(ActionEnterNormalMode))
	if e.Mode() != ModeNormal || e.CommandInput() != "" {
		t.Fatalf("cancel: mode=%v input=%q", e.Mode(), e.CommandInput())
	}

	e.Apply(Do(ActionEnterCommandMode))
	if e.CommandInput() != "" {
		t.Fatalf("entering command mode must clear input, got %q", e.CommandInput())
	}
	e.Apply(Do(ActionDeleteFromCommand))
	if e.CommandInput() != "" {
		t.Fatalf("backspace on empty input=%q", e.CommandInput())
	}
}

func TestEditor_QuitAction(t *testing.T) {
	e := newEditor(t)
	e.Apply(Do(ActionQuit))
	if !e.ShouldQuit() {
		t.Fatalf("expected quit")
	}
}

func TestEditor_BufferActions(t *testing.T) {
	e := newEditor(t)
	e.Apply(Do(ActionNewBuffer))
	if got := e.CurrentBuffer().ID(); got != 1 {
		t.Fatalf("current=%d, want 1 after new buffer", got)
	}
	e.Apply(Do(ActionNewBuffer))

	e.Apply(Do(ActionNextBuffer))
	if got := e.CurrentBuffer().ID(); got != 0 {
		t.Fatalf("next from 2=%d, want 0", got)
	}
	e.Apply(Do(ActionPrevBuffer))
	if got := e.CurrentBuffer().ID(); got != 2 {
		t.Fatalf("prev from 0=%d, want 2", got)
	}

	e.Apply(SwitchBuffer(1))
	if got := e.CurrentBuffer().ID(); got != 1 {
		t.Fatalf("switch=%d, want 1", got)
	}
	e.Apply(SwitchBuffer(9))
	if got := e.CurrentBuffer().ID(); got != 1 {
		t.Fatalf("switch to absent id changed current to %d", got)
	}
	if e.Status() == "" {
		t.Fatalf("expected a status message for a missing buffer")
	}

	e.Apply(Do(ActionCloseBuffer))
	if got := e.CurrentBuffer().ID(); got != 2 {
		t.Fatalf("after close=%d, want 2", got)
	}

	e.Apply(Do(ActionCloseAllBuffersExcept))
	if n := len(e.Buffers()); n != 1 || e.CurrentBuffer().ID() != 2 {
		t.Fatalf("after close-others: %d buffers, current %d", n, e.CurrentBuffer().ID())
	}
}

func TestEditor_SwitchBufferResetsCursor(t *testing.T) {
	e := newEditor(t)
	e.Apply(Do(ActionEnterInsertMode))
	typeText(e, "one\ntwo\nthree")
	e.ScrollIntoView(1)
	if e.ScrollOffset() != 2 {
		t.Fatalf("scroll=%d, want 2", e.ScrollOffset())
	}
	e.Apply(Do(ActionEnterNormalMode))

	e.Apply(Do(ActionNewBuffer))
	if e.Cursor() != (Cursor{}) || e.ScrollOffset() != 0 {
		t.Fatalf("cursor=%v scroll=%d after switch", e.Cursor(), e.ScrollOffset())
	}
}

func TestEditor_ScrollIntoView(t *testing.T) {
	e := newEditor(t)
	e.Apply(Do(ActionEnterInsertMode))
	typeText(e, "0\n1\n2\n3\n4\n5")

	e.ScrollIntoView(3)
	if got := e.ScrollOffset(); got != 3 {
		t.Fatalf("scroll=%d, want 3", got)
	}
	for i := 0; i < 5; i++ {
		e.Apply(Do(ActionMoveUp))
	}
	e.ScrollIntoView(3)
	if got := e.ScrollOffset(); got != 0 {
		t.Fatalf("scroll=%d, want 0", got)
	}
	e.ScrollIntoView(0)
	if got := e.ScrollOffset(); got != 0 {
		t.Fatalf("zero height changed scroll to %d", got)
	}
}

func TestEditor_ActionsWithoutPayloadAreIgnored(t *testing.T) {
	e := newEditor(t)
	apply(e,
		Do(ActionSwitchBuffer),
		Do(ActionEnterInsertMode),
		Do(ActionInsert),
	)
	if got := e.CurrentBuffer().String(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
}

func TestEditor_FilePicker(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "docs")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(sub, "readme.txt")
	if err := os.WriteFile(file, []byte("hello\nthere"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "z.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	e := New(Config{StartDir: dir})
	e.Apply(Do(ActionEnterInsertMode))
	typeText(e, "x")
	e.Apply(Do(ActionEnterNormalMode))

	e.Apply(Do(ActionEnterFilePicker))
	if e.Mode() != ModeFilePicker {
		t.Fatalf("mode=%v, want files", e.Mode())
	}
	if n := len(e.Picker().Entries()); n != 2 {
		t.Fatalf("entries=%d, want 2", n)
	}

	e.Apply(Do(ActionFilePickerEnter))
	if e.Mode() != ModeFilePicker || e.Picker().Dir() != sub {
		t.Fatalf("descend: mode=%v dir=%q", e.Mode(), e.Picker().Dir())
	}

	e.Apply(Do(ActionFilePickerEnter))
	if e.Mode() != ModeNormal {
		t.Fatalf("mode=%v, want normal after opening file", e.Mode())
	}
	b := e.CurrentBuffer()
	if b.Path() != file || b.String() != "hello\nthere" || b.Title() != "readme.txt" {
		t.Fatalf("opened buffer: path=%q title=%q text=%q", b.Path(), b.Title(), b.String())
	}
	if e.Cursor() != (Cursor{}) {
		t.Fatalf("cursor=%v, want (0,0)", e.Cursor())
	}
}

func TestEditor_FilePickerNavigation(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, n := range []string{"a", "b"} {
		if err := os.WriteFile(filepath.Join(sub, n), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	e := New(Config{StartDir: sub})
	apply(e, Do(ActionEnterFilePicker), Do(ActionFilePickerDown), Do(ActionFilePickerDown))
	if got := e.Picker().SelectedIndex(); got != 1 {
		t.Fatalf("selected=%d, want 1", got)
	}
	e.Apply(Do(ActionFilePickerUp))
	if got := e.Picker().SelectedIndex(); got != 0 {
		t.Fatalf("selected=%d, want 0", got)
	}

	e.Apply(Do(ActionFilePickerParent))
	if got := e.Picker().Dir(); got != dir {
		t.Fatalf("dir=%q, want %q", got, dir)
	}

	e.Apply(Do(ActionMoveDown))
	if e.Mode() != ModeFilePicker {
		t.Fatalf("cursor motion must be ignored in the picker")
	}

	e.Apply(Do(ActionFilePickerEsc))
	if e.Mode() != ModeNormal {
		t.Fatalf("mode=%v, want normal", e.Mode())
	}
}

func TestEditor_FilePickerEnterOnEmptyListing(t *testing.T) {
	e := newEditor(t)
	apply(e, Do(ActionEnterFilePicker), Do(ActionFilePickerEnter))
	if e.Mode() != ModeFilePicker {
		t.Fatalf("mode=%v, want files", e.Mode())
	}
	if len(e.Buffers()) != 1 {
		t.Fatalf("no buffer should have been opened")
	}
}

func TestEditor_OpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("abc"), 0o644); err != nil {
		t.Fatal(err)
	}
	e := newEditor(t)
	if err := e.OpenFile(path); err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if e.CurrentBuffer().Path() != path {
		t.Fatalf("current path=%q", e.CurrentBuffer().Path())
	}
	if err := e.OpenFile(path + ".missing"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
