package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fluxion-editor/fluxion/editor"
	"github.com/fluxion-editor/fluxion/internal/cellwidth"
)

// chromeHeight is the number of rows around the content pane: the buffer
// tabs above it, the status bar and the message line below.
const chromeHeight = 3

// Model is the Bubble Tea program around an editor.Editor. Key presses are
// mapped to actions and applied to the editor; View renders its state.
type Model struct {
	cfg    Config
	keys   KeyMap
	style  Style
	core   *editor.Editor
	mapper *Mapper

	viewport viewport.Model
	help     help.Model

	width, height int
	xOffset       int
	pickerTop     int
}

// New wraps core. The model shares core; only the model's Update goroutine
// may use it afterwards.
func New(core *editor.Editor, cfg Config) Model {
	keys := DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}
	style := DefaultStyle()
	if cfg.Style != nil {
		style = *cfg.Style
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = cellwidth.DefaultTabWidth
	}

	m := Model{
		cfg:      cfg,
		keys:     keys,
		style:    style,
		core:     core,
		mapper:   NewMapper(keys),
		viewport: viewport.New(0, 0),
		help:     help.New(),
	}
	m.rebuildContent()
	return m
}

func (m Model) Editor() *editor.Editor { return m.core }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chromeHeight, 0)
	m.help.Width = m.width

	m.rebuildContent()
	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		for _, a := range m.mapper.Map(m.core.Mode(), msg) {
			m.core.Apply(a)
			if m.core.ShouldQuit() {
				return m, tea.Quit
			}
		}
		m.rebuildContent()
		return m, nil
	default:
		return m, nil
	}
}

// rebuildContent brings the scroll state in line with the cursor or the
// picker selection and re-renders the content pane.
func (m *Model) rebuildContent() {
	h := m.viewport.Height
	if m.core.Mode() == editor.ModeFilePicker {
		m.followSelection(h)
		m.viewport.SetContent(m.renderPicker())
		m.viewport.SetYOffset(m.pickerTop)
		return
	}

	m.core.ScrollIntoView(h)
	m.followCursorX()
	m.viewport.SetContent(m.renderContent())
	m.viewport.SetYOffset(m.core.ScrollOffset())
}

func (m *Model) followSelection(h int) {
	if h <= 0 {
		return
	}
	sel := m.core.Picker().SelectedIndex()
	if sel < m.pickerTop {
		m.pickerTop = sel
	}
	if sel >= m.pickerTop+h {
		m.pickerTop = sel - h + 1
	}
}

// followCursorX scrolls horizontally so the cursor cell is visible.
func (m *Model) followCursorX() {
	w := m.contentWidth()
	if w <= 0 {
		return
	}
	t := m.core.CurrentBuffer().Text()
	cur := m.core.Cursor()
	col := cellwidth.ColumnOf(cellwidth.Layout([]rune(t.Line(cur.Row)), m.cfg.TabWidth), cur.Col)
	if col < m.xOffset {
		m.xOffset = col
	}
	if col >= m.xOffset+w {
		m.xOffset = col - w + 1
	}
}

func (m Model) contentWidth() int {
	w := m.width
	if m.cfg.ShowLineNums {
		w -= gutterDigits(m.core.CurrentBuffer().Text().LineCount()) + 1
	}
	return max(w, 0)
}
