// Package picker implements a directory-browsing file picker.
package picker

import (
	"os"
	"path/filepath"
	"sort"
)

// Entry is one row of a directory listing.
type Entry struct {
	Name  string
	IsDir bool
	Path  string
}

// DisplayName returns Name with a trailing separator for directories.
func (e Entry) DisplayName() string {
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}

// Picker holds a snapshot of one directory and a selection index into it.
// The listing is only read on Refresh; callers decide when to re-read.
type Picker struct {
	dir      string
	entries  []Entry
	selected int
}

// New returns a picker rooted at dir with an empty listing. An empty dir
// means the working directory.
func New(dir string) *Picker {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		dir = wd
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &Picker{dir: dir}
}

func (p *Picker) Dir() string { return p.dir }

// Entries returns the current listing. The slice is owned by the picker and
// replaced on every Refresh.
func (p *Picker) Entries() []Entry { return p.entries }

func (p *Picker) SelectedIndex() int { return p.selected }

// Refresh re-reads the directory. Entries that cannot be read are skipped;
// a directory that cannot be opened yields an empty listing.
//
// Directories sort before files, then names sort lexicographically. The
// selection is moved to the last entry if it fell out of range.
func (p *Picker) Refresh() {
	p.entries = readEntries(p.dir)

	sort.Slice(p.entries, func(i, j int) bool {
		a, b := p.entries[i], p.entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})

	if p.selected >= len(p.entries) && len(p.entries) > 0 {
		p.selected = len(p.entries) - 1
	}
}

func readEntries(dir string) []Entry {
	f, err := os.Open(dir)
	if err != nil {
		return nil
	}
	defer f.Close()

	// ReadDir returns what it managed to read alongside any error.
	des, _ := f.ReadDir(-1)

	out := make([]Entry, 0, len(des))
	for _, de := range des {
		path := filepath.Join(dir, de.Name())
		isDir := de.IsDir()
		if de.Type()&os.ModeSymlink != 0 {
			fi, err := os.Stat(path)
			if err != nil {
				continue
			}
			isDir = fi.IsDir()
		}
		out = append(out, Entry{Name: de.Name(), IsDir: isDir, Path: path})
	}
	return out
}

func (p *Picker) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

func (p *Picker) MoveDown() {
	if p.selected < len(p.entries)-1 {
		p.selected++
	}
}

// NavigateToParent moves to the parent directory. It reports false when the
// current directory is a root.
func (p *Picker) NavigateToParent() bool {
	parent := filepath.Dir(p.dir)
	if parent == p.dir {
		return false
	}
	p.Enter(parent)
	return true
}

// Enter makes dir the listed directory, refreshes and selects the first
// entry.
func (p *Picker) Enter(dir string) {
	p.dir = dir
	p.selected = 0
	p.Refresh()
}

// Selected returns the selected entry, or false if the listing is empty.
func (p *Picker) Selected() (Entry, bool) {
	if p.selected < 0 || p.selected >= len(p.entries) {
		return Entry{}, false
	}
	return p.entries[p.selected], true
}
