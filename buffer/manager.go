package buffer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Manager owns the ordered buffer collection of one editor session.
//
// Invariants, held after every exported call:
//   - the collection is never empty;
//   - currentID names a buffer in the collection;
//   - ids are never reused; nextID only grows.
type Manager struct {
	buffers   []*Buffer
	currentID int
	nextID    int
}

// NewManager returns a manager holding a single empty [No Name] buffer with
// id 0.
func NewManager() *Manager {
	return &Manager{
		buffers:   []*Buffer{newBuffer(0, "", titleNoName)},
		currentID: 0,
		nextID:    1,
	}
}

func (m *Manager) allocID() int {
	id := m.nextID
	m.nextID++
	return id
}

// NewBuffer appends an empty buffer titled [Buffer <id>] and returns its id.
// The current buffer does not change.
func (m *Manager) NewBuffer() int {
	id := m.allocID()
	m.buffers = append(m.buffers, newBuffer(id, "", bufferTitle(id)))
	return id
}

// OpenFile reads path fully into a new buffer and returns its id. The
// current buffer does not change. On error the collection is untouched.
func (m *Manager) OpenFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("open buffer: %w", err)
	}

	id := m.allocID()
	b := newBuffer(id, string(data), titleFromPath(path))
	b.path = path
	m.buffers = append(m.buffers, b)
	return id, nil
}

// Current returns the active buffer.
func (m *Manager) Current() *Buffer {
	return m.buffers[m.indexOf(m.currentID)]
}

func (m *Manager) CurrentID() int { return m.currentID }

// Len returns the number of buffers, transient ones included.
func (m *Manager) Len() int { return len(m.buffers) }

// Get returns the buffer with the given id.
func (m *Manager) Get(id int) (*Buffer, bool) {
	i := m.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return m.buffers[i], true
}

// SwitchTo makes id the current buffer. It reports false if id is unknown.
//
// Leaving a transient buffer deletes it: the deletion happens before the
// switch and cannot be undone.
func (m *Manager) SwitchTo(id int) bool {
	if m.indexOf(id) < 0 {
		return false
	}
	if cur := m.Current(); cur.transient && cur.id != id {
		m.DeleteBuffer(cur.id)
	}
	m.currentID = id
	return true
}

// NextBuffer returns the id following the current buffer in sequence order,
// wrapping around. It does not switch.
func (m *Manager) NextBuffer() (int, bool) {
	i := m.indexOf(m.currentID)
	if i < 0 {
		return 0, false
	}
	return m.buffers[(i+1)%len(m.buffers)].id, true
}

// PrevBuffer returns the id preceding the current buffer in sequence order,
// wrapping around. It does not switch.
func (m *Manager) PrevBuffer() (int, bool) {
	i := m.indexOf(m.currentID)
	if i < 0 {
		return 0, false
	}
	if i == 0 {
		i = len(m.buffers)
	}
	return m.buffers[i-1].id, true
}

// DeleteBuffer removes the buffer with the given id.
//
// Removing the last buffer synthesizes an empty replacement which becomes
// current. Removing the current buffer while others remain makes the first
// remaining buffer current.
func (m *Manager) DeleteBuffer(id int) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	m.removeAt(i)

	if m.ensureNonEmpty() {
		return true
	}
	if m.currentID == id {
		m.currentID = m.buffers[0].id
	}
	return true
}

// DeleteCurrent removes the active buffer and returns the id of the new
// current buffer: the one that slid into the vacated slot, or the new last
// buffer if the removed one was last.
func (m *Manager) DeleteCurrent() (int, bool) {
	i := m.indexOf(m.currentID)
	if i < 0 {
		return 0, false
	}
	m.removeAt(i)

	if m.ensureNonEmpty() {
		return m.currentID, true
	}
	m.currentID = m.buffers[min(i, len(m.buffers)-1)].id
	return m.currentID, true
}

// DeleteAllExcept removes every buffer but id and makes id current. An
// unknown id is rejected and nothing is removed.
func (m *Manager) DeleteAllExcept(id int) bool {
	keep, ok := m.Get(id)
	if !ok {
		return false
	}
	m.buffers = []*Buffer{keep}
	m.currentID = id
	return true
}

// SaveCurrent writes the current buffer to disk.
//
// An empty path means "no explicit destination": the buffer's own origin path
// is used, or untitled_<id>.txt in the working directory when it has none.
// On success the buffer becomes clean and adopts the destination as its path
// and title. On failure nothing changes.
func (m *Manager) SaveCurrent(path string) error {
	b := m.Current()
	dest := m.savePath(b, path)

	if err := os.WriteFile(dest, []byte(b.text.String()), 0o644); err != nil {
		return fmt.Errorf("save buffer %d: %w", b.id, err)
	}

	b.dirty = false
	b.path = dest
	b.title = titleFromPath(dest)
	return nil
}

func (m *Manager) savePath(b *Buffer, path string) string {
	if path != "" {
		return path
	}
	if b.path != "" {
		return filepath.Join(filepath.Dir(b.path), filepath.Base(b.path))
	}
	return fmt.Sprintf("untitled_%d.txt", b.id)
}

// List returns the non-transient buffers in sequence order.
func (m *Manager) List() []*Buffer {
	out := make([]*Buffer, 0, len(m.buffers))
	for _, b := range m.buffers {
		if !b.transient {
			out = append(out, b)
		}
	}
	return out
}

func (m *Manager) indexOf(id int) int {
	for i, b := range m.buffers {
		if b.id == id {
			return i
		}
	}
	return -1
}

func (m *Manager) removeAt(i int) {
	m.buffers = append(m.buffers[:i], m.buffers[i+1:]...)
}

// ensureNonEmpty inserts a fresh [No Name] buffer and makes it current when
// the collection is empty. It reports whether it did so.
func (m *Manager) ensureNonEmpty() bool {
	if len(m.buffers) > 0 {
		return false
	}
	b := newBuffer(m.allocID(), "", titleNoName)
	m.buffers = append(m.buffers, b)
	m.currentID = b.id
	return true
}
