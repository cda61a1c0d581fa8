package buffer

import (
	"fmt"
	"path/filepath"

	"github.com/fluxion-editor/fluxion/text"
)

const (
	titleNoName   = "[No Name]"
	titleUntitled = "[Untitled]"
)

// Buffer is a single open document.
type Buffer struct {
	id    int
	text  *text.Text
	path  string
	title string

	dirty     bool
	transient bool
}

func newBuffer(id int, content, title string) *Buffer {
	return &Buffer{
		id:    id,
		text:  text.New(content),
		title: title,
	}
}

func (b *Buffer) ID() int { return b.id }

// Text returns the document content. Mutate it through the buffer's own
// methods so the dirty flag stays accurate.
func (b *Buffer) Text() *text.Text { return b.text }

func (b *Buffer) String() string { return b.text.String() }

// Path returns the origin path, or "" if the buffer was never opened from or
// saved to disk.
func (b *Buffer) Path() string { return b.path }

func (b *Buffer) Title() string { return b.title }

func (b *Buffer) Dirty() bool { return b.dirty }

// Transient reports whether the buffer is discarded when the manager
// switches away from it.
func (b *Buffer) Transient() bool { return b.transient }

func (b *Buffer) SetTransient(v bool) { b.transient = v }

// InsertRune inserts r at rune offset off and marks the buffer dirty.
func (b *Buffer) InsertRune(off int, r rune) bool {
	if !b.text.InsertRune(off, r) {
		return false
	}
	b.dirty = true
	return true
}

// Insert inserts s at rune offset off and marks the buffer dirty.
func (b *Buffer) Insert(off int, s string) bool {
	if !b.text.Insert(off, s) {
		return false
	}
	b.dirty = true
	return true
}

// Remove deletes the runes in [start, end) and marks the buffer dirty.
func (b *Buffer) Remove(start, end int) bool {
	if !b.text.Remove(start, end) {
		return false
	}
	b.dirty = true
	return true
}

func bufferTitle(id int) string {
	return fmt.Sprintf("[Buffer %d]", id)
}

// titleFromPath returns the base name of path, or [Untitled] when path has
// no usable file name.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	switch base {
	case "", ".", "..", string(filepath.Separator):
		return titleUntitled
	}
	return base
}
