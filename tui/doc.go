// Package tui runs an editor.Editor as a Bubble Tea program.
//
// Key presses go through a Mapper, which resolves per-mode bindings
// (including multi-key sequences such as "b n") into editor actions. The
// Model applies them to the editor and renders the buffer tabs, the content
// pane or file picker listing, a status bar and a message line.
package tui
