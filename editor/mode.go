package editor

// Mode is the active interaction state. Exactly one mode is active at a time.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeCommand
	ModeSaveDialog
	ModeFilePicker
)

var modeNames = [...]string{
	ModeNormal:     "normal",
	ModeInsert:     "insert",
	ModeVisual:     "visual",
	ModeCommand:    "command",
	ModeSaveDialog: "save",
	ModeFilePicker: "files",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Modes lists every mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeNormal, ModeInsert, ModeVisual, ModeCommand, ModeSaveDialog, ModeFilePicker}
}

// ParseMode returns the mode whose String form is name.
func ParseMode(name string) (Mode, bool) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), true
		}
	}
	return 0, false
}

// usesCommandInput reports whether the mode edits the command line.
func (m Mode) usesCommandInput() bool {
	return m == ModeCommand || m == ModeSaveDialog
}
