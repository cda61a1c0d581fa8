package tui

// Config configures the Model.
type Config struct {
	// KeyMap nil means DefaultKeyMap().
	KeyMap *KeyMap

	// Rendering options.
	ShowLineNums bool
	TabWidth     int
	Style        *Style // nil means DefaultStyle()
}
