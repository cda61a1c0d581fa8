// Package editor implements the fluxion editor core: a modal state machine
// over a buffer.Manager, a picker.Picker, a row/column cursor and a command
// line.
//
// The core never draws and never reads input. A key mapper turns input into
// Action values, Editor.Apply consumes them one at a time, and a renderer reads
// the resulting state through the accessor methods.
package editor
