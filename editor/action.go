package editor

// ActionKind identifies an input event the editor reacts to. The set is
// closed.
type ActionKind uint8

const (
	ActionNoOp ActionKind = iota
	ActionQuit

	ActionInsert
	ActionDelete
	ActionDeleteFromCommand

	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	ActionEnterInsertMode
	ActionEnterNormalMode
	ActionEnterVisualMode
	ActionEnterCommandMode
	ActionExecuteCommand

	ActionNextBuffer
	ActionPrevBuffer
	ActionCloseBuffer
	ActionCloseAllBuffersExcept
	ActionSwitchBuffer
	ActionNewBuffer

	ActionEnterFilePicker
	ActionFilePickerUp
	ActionFilePickerDown
	ActionFilePickerEnter
	ActionFilePickerParent
	ActionFilePickerEsc

	ActionCancelDialog
	ActionSaveBufferAs
)

var actionNames = [...]string{
	ActionNoOp:                  "noop",
	ActionQuit:                  "quit",
	ActionInsert:                "insert",
	ActionDelete:                "delete",
	ActionDeleteFromCommand:     "delete_from_command",
	ActionMoveUp:                "move_up",
	ActionMoveDown:              "move_down",
	ActionMoveLeft:              "move_left",
	ActionMoveRight:             "move_right",
	ActionEnterInsertMode:       "enter_insert_mode",
	ActionEnterNormalMode:       "enter_normal_mode",
	ActionEnterVisualMode:       "enter_visual_mode",
	ActionEnterCommandMode:      "enter_command_mode",
	ActionExecuteCommand:        "execute_command",
	ActionNextBuffer:            "next_buffer",
	ActionPrevBuffer:            "prev_buffer",
	ActionCloseBuffer:           "close_buffer",
	ActionCloseAllBuffersExcept: "close_all_buffers_except",
	ActionSwitchBuffer:          "switch_buffer",
	ActionNewBuffer:             "new_buffer",
	ActionEnterFilePicker:       "enter_file_picker",
	ActionFilePickerUp:          "file_picker_up",
	ActionFilePickerDown:        "file_picker_down",
	ActionFilePickerEnter:       "file_picker_enter",
	ActionFilePickerParent:      "file_picker_parent",
	ActionFilePickerEsc:         "file_picker_esc",
	ActionCancelDialog:          "cancel_dialog",
	ActionSaveBufferAs:          "save_buffer_as",
}

func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return "unknown"
}

// ParseActionKind returns the kind whose String form is name.
func ParseActionKind(name string) (ActionKind, bool) {
	for i, n := range actionNames {
		if n == name {
			return ActionKind(i), true
		}
	}
	return 0, false
}

// Action is a discrete input event. Payload is set only for the kinds that
// carry data:
//
//   - ActionInsert: InsertPayload
//   - ActionSwitchBuffer: SwitchBufferPayload
//   - ActionSaveBufferAs: SaveAsPayload (optional; absent means "use the
//     command line text")
type Action struct {
	Kind    ActionKind
	Payload any
}

// InsertPayload carries the rune typed by ActionInsert.
type InsertPayload struct {
	Rune rune
}

// SwitchBufferPayload names the target of ActionSwitchBuffer.
type SwitchBufferPayload struct {
	ID int
}

// SaveAsPayload carries an explicit destination for ActionSaveBufferAs.
type SaveAsPayload struct {
	Path string
}

// Do returns the payload-free action of the given kind.
func Do(kind ActionKind) Action { return Action{Kind: kind} }

func Insert(r rune) Action {
	return Action{Kind: ActionInsert, Payload: InsertPayload{Rune: r}}
}

func SwitchBuffer(id int) Action {
	return Action{Kind: ActionSwitchBuffer, Payload: SwitchBufferPayload{ID: id}}
}

// SaveBufferAs confirms the save dialog. An empty path defers to the text
// typed into the dialog.
func SaveBufferAs(path string) Action {
	if path == "" {
		return Action{Kind: ActionSaveBufferAs}
	}
	return Action{Kind: ActionSaveBufferAs, Payload: SaveAsPayload{Path: path}}
}
