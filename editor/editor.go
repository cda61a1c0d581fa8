package editor

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/fluxion-editor/fluxion/buffer"
	"github.com/fluxion-editor/fluxion/picker"
)

// Config configures an Editor.
type Config struct {
	// StartDir is the directory the file picker opens in. Empty means the
	// working directory.
	StartDir string

	// Logger receives diagnostics. Nil discards them.
	Logger *log.Logger
}

// Editor is the editor core. It has a single owner; none of its methods are
// safe for concurrent use.
type Editor struct {
	buffers *buffer.Manager
	picker  *picker.Picker

	cursor Cursor
	scroll int
	mode   Mode
	input  []rune

	quit   bool
	status string

	log *log.Logger
}

func New(cfg Config) *Editor {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Editor{
		buffers: buffer.NewManager(),
		picker:  picker.New(cfg.StartDir),
		mode:    ModeNormal,
		log:     logger,
	}
}

func (e *Editor) Mode() Mode { return e.mode }

func (e *Editor) Cursor() Cursor { return e.cursor }

// ScrollOffset is the first buffer row the renderer should show.
func (e *Editor) ScrollOffset() int { return e.scroll }

// CommandInput is the text typed in Command or SaveDialog mode.
func (e *Editor) CommandInput() string { return string(e.input) }

// ShouldQuit reports whether a quit was requested.
func (e *Editor) ShouldQuit() bool { return e.quit }

// Status is a one-line message about the last action (a failed save, an
// unknown command). It is cleared by the next Apply.
func (e *Editor) Status() string { return e.status }

// CurrentBuffer returns the active buffer. Renderers must treat it as
// read-only.
func (e *Editor) CurrentBuffer() *buffer.Buffer { return e.buffers.Current() }

// Buffers returns the non-transient buffers in creation order.
func (e *Editor) Buffers() []*buffer.Buffer { return e.buffers.List() }

// Picker exposes the file picker state for rendering.
func (e *Editor) Picker() *picker.Picker { return e.picker }

// OpenFile opens path into a new buffer and makes it current.
func (e *Editor) OpenFile(path string) error {
	id, err := e.buffers.OpenFile(path)
	if err != nil {
		return err
	}
	e.switchBuffer(id)
	e.log.Info("opened file", "path", path, "buffer", id)
	return nil
}

// ScrollIntoView adjusts the scroll offset so the cursor row is visible in a
// pane of the given height.
func (e *Editor) ScrollIntoView(height int) {
	if height <= 0 {
		return
	}
	row := e.cursor.Row
	if row < e.scroll {
		e.scroll = row
		return
	}
	if row >= e.scroll+height {
		e.scroll = row - height + 1
	}
}

// Apply consumes one action. Actions that mean nothing in the current mode
// are ignored.
func (e *Editor) Apply(a Action) {
	e.log.Debug("apply", "mode", e.mode, "action", a.Kind)
	e.status = ""

	switch a.Kind {
	case ActionNoOp:
		return
	case ActionQuit:
		e.quit = true
		return
	}

	var handled bool
	switch e.mode {
	case ModeNormal:
		handled = e.applyNormal(a)
	case ModeVisual:
		handled = e.applyVisual(a)
	case ModeInsert:
		handled = e.applyInsert(a)
	case ModeCommand:
		handled = e.applyCommand(a)
	case ModeSaveDialog:
		handled = e.applySaveDialog(a)
	case ModeFilePicker:
		handled = e.applyFilePicker(a)
	}
	if !handled {
		e.log.Debug("action ignored", "mode", e.mode, "action", a.Kind)
	}
}

func (e *Editor) applyNormal(a Action) bool {
	if e.applyMotion(a) {
		return true
	}
	switch a.Kind {
	case ActionEnterNormalMode:
	case ActionEnterInsertMode:
		e.setMode(ModeInsert)
	case ActionEnterVisualMode:
		e.setMode(ModeVisual)
	case ActionEnterCommandMode:
		e.setMode(ModeCommand)
	case ActionEnterFilePicker:
		e.setMode(ModeFilePicker)
		e.picker.Refresh()
	case ActionNextBuffer:
		e.nextBuffer()
	case ActionPrevBuffer:
		e.prevBuffer()
	case ActionCloseBuffer:
		e.closeCurrent()
	case ActionCloseAllBuffersExcept:
		e.closeOthers()
	case ActionSwitchBuffer:
		p, ok := a.Payload.(SwitchBufferPayload)
		if !ok {
			return false
		}
		if !e.switchBuffer(p.ID) {
			e.fail("no buffer %d", p.ID)
		}
	case ActionNewBuffer:
		e.switchBuffer(e.buffers.NewBuffer())
	default:
		return false
	}
	return true
}

func (e *Editor) applyVisual(a Action) bool {
	if e.applyMotion(a) {
		return true
	}
	switch a.Kind {
	case ActionEnterNormalMode:
		e.setMode(ModeNormal)
	case ActionEnterInsertMode:
		e.setMode(ModeInsert)
	case ActionEnterCommandMode:
		e.setMode(ModeCommand)
	default:
		return false
	}
	return true
}

func (e *Editor) applyInsert(a Action) bool {
	if e.applyMotion(a) {
		return true
	}
	switch a.Kind {
	case ActionEnterNormalMode:
		e.setMode(ModeNormal)
	case ActionInsert:
		p, ok := a.Payload.(InsertPayload)
		if !ok {
			return false
		}
		e.insertRune(p.Rune)
	case ActionDelete:
		e.deleteBackward()
	default:
		return false
	}
	return true
}

func (e *Editor) applyCommand(a Action) bool {
	if e.applyCommandLine(a) {
		return true
	}
	switch a.Kind {
	case ActionExecuteCommand:
		e.executeCommand()
	case ActionEnterNormalMode, ActionCancelDialog:
		e.setMode(ModeNormal)
	default:
		return false
	}
	return true
}

func (e *Editor) applySaveDialog(a Action) bool {
	if e.applyCommandLine(a) {
		return true
	}
	switch a.Kind {
	case ActionSaveBufferAs, ActionExecuteCommand:
		path := string(e.input)
		if p, ok := a.Payload.(SaveAsPayload); ok && p.Path != "" {
			path = p.Path
		}
		e.setMode(ModeNormal)
		if path != "" {
			e.save(path)
		}
	case ActionEnterNormalMode, ActionCancelDialog:
		e.setMode(ModeNormal)
	default:
		return false
	}
	return true
}

func (e *Editor) applyFilePicker(a Action) bool {
	switch a.Kind {
	case ActionFilePickerUp:
		e.picker.MoveUp()
	case ActionFilePickerDown:
		e.picker.MoveDown()
	case ActionFilePickerParent:
		e.picker.NavigateToParent()
	case ActionFilePickerEnter:
		e.pickerEnter()
	case ActionFilePickerEsc, ActionEnterNormalMode:
		e.setMode(ModeNormal)
	default:
		return false
	}
	return true
}

func (e *Editor) applyMotion(a Action) bool {
	var dir direction
	switch a.Kind {
	case ActionMoveUp:
		dir = dirUp
	case ActionMoveDown:
		dir = dirDown
	case ActionMoveLeft:
		dir = dirLeft
	case ActionMoveRight:
		dir = dirRight
	default:
		return false
	}
	e.cursor = e.cursor.move(e.CurrentBuffer().Text(), dir)
	return true
}

// applyCommandLine handles editing of the command line shared by Command and
// SaveDialog modes.
func (e *Editor) applyCommandLine(a Action) bool {
	switch a.Kind {
	case ActionInsert:
		p, ok := a.Payload.(InsertPayload)
		if !ok {
			return false
		}
		e.input = append(e.input, p.Rune)
	case ActionDelete, ActionDeleteFromCommand:
		if n := len(e.input); n > 0 {
			e.input = e.input[:n-1]
		}
	default:
		return false
	}
	return true
}

// setMode switches modes. The command line is cleared whenever a mode that
// uses it is entered or left.
func (e *Editor) setMode(m Mode) {
	if m == e.mode {
		return
	}
	if m.usesCommandInput() || e.mode.usesCommandInput() {
		e.input = e.input[:0]
	}
	e.mode = m
}

func (e *Editor) insertRune(r rune) {
	b := e.CurrentBuffer()
	if !b.InsertRune(ToOffset(b.Text(), e.cursor), r) {
		return
	}
	if r == '\n' {
		e.cursor = Cursor{Row: e.cursor.Row + 1, Col: 0}
		return
	}
	e.cursor.Col++
}

// deleteBackward removes the rune before the cursor. Joining two lines
// leaves the cursor at the end of the joined line.
func (e *Editor) deleteBackward() {
	b := e.CurrentBuffer()
	off := ToOffset(b.Text(), e.cursor)
	if off == 0 {
		return
	}
	if !b.Remove(off-1, off) {
		return
	}
	if e.cursor.Col > 0 {
		e.cursor.Col--
		return
	}
	e.cursor.Row--
	e.cursor.Col = b.Text().LineLen(e.cursor.Row)
}

func (e *Editor) pickerEnter() {
	entry, ok := e.picker.Selected()
	if !ok {
		return
	}
	if entry.IsDir {
		e.picker.Enter(entry.Path)
		return
	}
	if err := e.OpenFile(entry.Path); err != nil {
		e.log.Warn("open failed", "path", entry.Path, "err", err)
		e.fail("cannot open %s", entry.Name)
		return
	}
	e.setMode(ModeNormal)
}

// switchBuffer makes id current and resets the view to its top.
func (e *Editor) switchBuffer(id int) bool {
	if !e.buffers.SwitchTo(id) {
		return false
	}
	e.cursor = Cursor{}
	e.scroll = 0
	return true
}

func (e *Editor) nextBuffer() {
	if id, ok := e.buffers.NextBuffer(); ok {
		e.switchBuffer(id)
	}
}

func (e *Editor) prevBuffer() {
	if id, ok := e.buffers.PrevBuffer(); ok {
		e.switchBuffer(id)
	}
}

func (e *Editor) closeCurrent() {
	e.buffers.DeleteCurrent()
	e.cursor = Cursor{}
	e.scroll = 0
}

func (e *Editor) closeOthers() {
	e.buffers.DeleteAllExcept(e.buffers.CurrentID())
	e.cursor = e.cursor.clamp(e.CurrentBuffer().Text())
}

// save writes the current buffer. path may be empty, see
// buffer.Manager.SaveCurrent. It reports whether the write succeeded.
func (e *Editor) save(path string) bool {
	if err := e.buffers.SaveCurrent(path); err != nil {
		e.log.Warn("save failed", "buffer", e.buffers.CurrentID(), "err", err)
		e.fail("write failed: %v", err)
		return false
	}
	b := e.CurrentBuffer()
	e.log.Info("saved buffer", "buffer", b.ID(), "path", b.Path())
	e.status = fmt.Sprintf("%q written", b.Title())
	return true
}

func (e *Editor) fail(format string, args ...any) {
	e.status = fmt.Sprintf(format, args...)
}
