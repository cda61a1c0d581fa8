package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fluxion-editor/fluxion/editor"
	"github.com/fluxion-editor/fluxion/internal/cellwidth"
)

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		m.viewport.View(),
		m.renderStatusBar(),
		m.renderMessageLine(),
	)
}

func (m Model) renderContent() string {
	t := m.core.CurrentBuffer().Text()
	cur := m.core.Cursor()
	showCursor := m.core.Mode() != editor.ModeCommand && m.core.Mode() != editor.ModeSaveDialog
	w := m.contentWidth()

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(t.LineCount())
	}

	out := make([]string, 0, t.LineCount())
	for row := 0; row < t.LineCount(); row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			st := m.style.LineNum
			if row == cur.Row {
				st = m.style.LineNumActive
			}
			sb.WriteString(st.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.style.Gutter.Render(" "))
		}

		cells := cellwidth.Layout([]rune(t.Line(row)), m.cfg.TabWidth)
		if showCursor && row == cur.Row {
			sb.WriteString(m.renderCursorLine(cells, cur.Col, w))
		} else {
			sb.WriteString(m.style.Text.Render(cellwidth.Window(cells, m.xOffset, w)))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m Model) renderCursorLine(cells []cellwidth.Cell, col, w int) string {
	at := cellwidth.ColumnOf(cells, col)
	cursorText, cursorWidth := " ", 1
	for _, c := range cells {
		if at == c.Col && c.Width > 0 {
			if strings.TrimSpace(c.Text) != "" {
				cursorText, cursorWidth = c.Text, c.Width
			}
			break
		}
	}

	left := cellwidth.Window(cells, m.xOffset, at-m.xOffset)
	right := cellwidth.Window(cells, at+cursorWidth, m.xOffset+w-at-cursorWidth)
	return m.style.Text.Render(left) + m.style.Cursor.Render(cursorText) + m.style.Text.Render(right)
}

func (m Model) renderPicker() string {
	p := m.core.Picker()
	entries := p.Entries()
	if len(entries) == 0 {
		return m.style.PickerEntry.Render("  (empty)")
	}

	out := make([]string, 0, len(entries))
	for i, e := range entries {
		name := e.DisplayName()
		if m.width > 0 {
			name = cellwidth.Truncate(name, m.width-2, "…")
		}
		st := m.style.PickerEntry
		if e.IsDir {
			st = m.style.PickerDir
		}
		prefix := "  "
		if i == p.SelectedIndex() {
			prefix = "> "
			st = m.style.PickerSelected
		}
		out = append(out, prefix+st.Render(name))
	}
	return strings.Join(out, "\n")
}

func (m Model) renderTabs() string {
	cur := m.core.CurrentBuffer().ID()
	var sb strings.Builder
	for _, b := range m.core.Buffers() {
		label := fmt.Sprintf(" %d:%s", b.ID(), b.Title())
		if b.Dirty() {
			label += " +"
		}
		label += " "
		if b.ID() == cur {
			sb.WriteString(m.style.TabActive.Render(label))
		} else {
			sb.WriteString(m.style.Tab.Render(label))
		}
	}
	return m.fit(sb.String())
}

func (m Model) renderStatusBar() string {
	mode := m.style.StatusMode.Render(" " + strings.ToUpper(m.core.Mode().String()) + " ")

	var info string
	if m.core.Mode() == editor.ModeFilePicker {
		info = " " + m.core.Picker().Dir()
	} else {
		b := m.core.CurrentBuffer()
		cur := m.core.Cursor()
		info = fmt.Sprintf(" %s  %d:%d", b.Title(), cur.Row+1, cur.Col+1)
	}
	if p := m.mapper.Pending(); p != "" {
		info += "  " + p
	}

	if m.width > 0 {
		rest := max(m.width-lipgloss.Width(mode), 0)
		info = cellwidth.PadRight(cellwidth.Truncate(info, rest, "…"), rest)
	}
	return mode + m.style.StatusBar.Render(info)
}

func (m Model) renderMessageLine() string {
	switch m.core.Mode() {
	case editor.ModeCommand:
		return m.fit(m.style.Prompt.Render(":"+m.core.CommandInput()) + m.style.Cursor.Render(" "))
	case editor.ModeSaveDialog:
		return m.fit(m.style.Prompt.Render("Save as: "+m.core.CommandInput()) + m.style.Cursor.Render(" "))
	}
	if s := m.core.Status(); s != "" {
		return m.fit(m.style.Message.Render(s))
	}
	return m.help.View(m.keys.help(m.core.Mode()))
}

// fit truncates an already styled line to the model width.
func (m Model) fit(s string) string {
	if m.width == 0 {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(s)
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}
