package palview

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"repalette/internal/palette"
	"repalette/internal/ui/styles"
)

type browserMode int

const (
	modeNormal browserMode = iota
	modeSearch
)

// Exit mode — what to print after quitting the browser
type exitMode int

const (
	exitNormal exitMode = iota
	exitJSON
	exitRaw
	exitPlain
)

const allFlavors = "all"

type browserKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	NextFlavor  key.Binding
	PrevFlavor  key.Binding
	Changed     key.Binding
	Search      key.Binding
	YankCustom  key.Binding
	YankOrig    key.Binding
	ExportJSON  key.Binding
	ExportRaw   key.Binding
	ExportPlain key.Binding
	Quit        key.Binding
}

var browserKeys = browserKeyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Home:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first row")),
	End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last row")),
	NextFlavor:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next flavor")),
	PrevFlavor:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("⇧tab", "prev flavor")),
	Changed:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "changed only")),
	Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	YankCustom:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy custom hex")),
	YankOrig:    key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy original hex")),
	ExportJSON:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "print as JSON")),
	ExportRaw:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "print raw")),
	ExportPlain: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "print table")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

type browserModel struct {
	pal     *palette.Palette
	flavors []string // tab order: "all" then each flavor

	flavorIdx   int
	changedOnly bool
	rows        []Row // rows for the current tab and filters

	cursor  int
	scrollY int
	width   int
	height  int
	ready   bool

	mode        browserMode
	searchInput textinput.Model
	searchQuery string

	exitMode exitMode

	// Status flash, e.g. after yank
	statusMsg   string
	statusUntil time.Time
}

// runBrowser launches the interactive palette browser. It blocks until
// the user quits. If the user requested an export (J/R/P), the current
// view is printed to stdout after the TUI exits.
func runBrowser(p *palette.Palette, opts Options) error {
	flavors := []string{allFlavors}
	startIdx := 0
	for i, f := range p.Flavors {
		flavors = append(flavors, f.Name)
		if f.Name == opts.Flavor {
			startIdx = i + 1
		}
	}

	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.CharLimit = 50
	ti.Width = 30

	m := browserModel{
		pal:         p,
		flavors:     flavors,
		flavorIdx:   startIdx,
		changedOnly: opts.ChangedOnly,
		searchInput: ti,
	}
	m.refresh()

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(browserModel); ok {
		switch fm.exitMode {
		case exitJSON:
			return printJSON(fm.rows)
		case exitRaw:
			printRaw(fm.rows)
		case exitPlain:
			PrintPlain(fm.rows)
		}
	}

	return nil
}

// refresh recomputes the visible rows from the current tab and filters.
func (m *browserModel) refresh() {
	opts := Options{ChangedOnly: m.changedOnly}
	if m.flavors[m.flavorIdx] != allFlavors {
		opts.Flavor = m.flavors[m.flavorIdx]
	}
	rows := Rows(m.pal, opts)

	if q := strings.ToLower(m.searchQuery); q != "" {
		filtered := rows[:0]
		for _, r := range rows {
			if strings.Contains(strings.ToLower(r.Name), q) ||
				strings.Contains(strings.ToLower(r.Original), q) ||
				strings.Contains(strings.ToLower(r.Custom), q) {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = 0
		m.scrollY = 0
	}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case statusClearMsg:
		if !m.statusUntil.IsZero() && time.Now().After(m.statusUntil) {
			m.statusMsg = ""
			m.statusUntil = time.Time{}
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeSearch {
			return m.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, browserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, browserKeys.Search):
			m.mode = modeSearch
			m.searchInput.Focus()
			return m, textinput.Blink

		case key.Matches(msg, browserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.ensureRowVisible()
			}

		case key.Matches(msg, browserKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				m.ensureRowVisible()
			}

		case key.Matches(msg, browserKeys.PageUp):
			m.cursor -= m.visibleRowCount()
			if m.cursor < 0 {
				m.cursor = 0
			}
			m.ensureRowVisible()

		case key.Matches(msg, browserKeys.PageDown):
			m.cursor += m.visibleRowCount()
			if m.cursor >= len(m.rows) {
				m.cursor = len(m.rows) - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
			m.ensureRowVisible()

		case key.Matches(msg, browserKeys.Home):
			m.cursor = 0
			m.scrollY = 0

		case key.Matches(msg, browserKeys.End):
			if len(m.rows) > 0 {
				m.cursor = len(m.rows) - 1
				m.ensureRowVisible()
			}

		case key.Matches(msg, browserKeys.NextFlavor):
			m.flavorIdx = (m.flavorIdx + 1) % len(m.flavors)
			m.cursor = 0
			m.scrollY = 0
			m.refresh()

		case key.Matches(msg, browserKeys.PrevFlavor):
			m.flavorIdx = (m.flavorIdx + len(m.flavors) - 1) % len(m.flavors)
			m.cursor = 0
			m.scrollY = 0
			m.refresh()

		case key.Matches(msg, browserKeys.Changed):
			m.changedOnly = !m.changedOnly
			m.cursor = 0
			m.scrollY = 0
			m.refresh()

		case key.Matches(msg, browserKeys.YankCustom):
			return m, m.yank(func(r Row) string { return r.Custom })

		case key.Matches(msg, browserKeys.YankOrig):
			return m, m.yank(func(r Row) string { return r.Original })

		case key.Matches(msg, browserKeys.ExportJSON):
			m.exitMode = exitJSON
			return m, tea.Quit

		case key.Matches(msg, browserKeys.ExportRaw):
			m.exitMode = exitRaw
			return m, tea.Quit

		case key.Matches(msg, browserKeys.ExportPlain):
			m.exitMode = exitPlain
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m browserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.searchQuery = ""
		m.cursor = 0
		m.scrollY = 0
		m.refresh()
		return m, nil
	case tea.KeyEnter:
		m.mode = modeNormal
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	// Live filter as the user types
	m.searchQuery = m.searchInput.Value()
	m.refresh()

	return m, cmd
}

type statusClearMsg struct{}

const statusDuration = 2 * time.Second

func (m *browserModel) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusUntil = time.Now().Add(statusDuration)
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// yank copies one hex of the selected row to the system clipboard.
func (m *browserModel) yank(pick func(Row) string) tea.Cmd {
	if m.cursor >= len(m.rows) {
		return nil
	}
	val := pick(m.rows[m.cursor])
	if err := clipboard.WriteAll(val); err != nil {
		return m.setStatus(fmt.Sprintf("clipboard error: %s", err))
	}
	return m.setStatus(fmt.Sprintf("Copied: %s", val))
}

func (m *browserModel) ensureRowVisible() {
	visible := m.visibleRowCount()
	if visible <= 0 {
		visible = 1
	}
	if m.cursor < m.scrollY {
		m.scrollY = m.cursor
	} else if m.cursor >= m.scrollY+visible {
		m.scrollY = m.cursor - visible + 1
	}
}

func (m browserModel) visibleRowCount() int {
	count := m.height - 6 // tabs + search bar + header + separator + footer
	if count < 1 {
		count = 1
	}
	return count
}

func (m browserModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var sb strings.Builder

	sb.WriteString(m.renderTabs())
	sb.WriteString("\n")

	if m.mode == modeSearch {
		sb.WriteString(fmt.Sprintf("/%s\n", m.searchInput.View()))
	} else if m.searchQuery != "" {
		sb.WriteString(styles.MutedMsg(fmt.Sprintf("filter: %s\n", m.searchQuery)))
	} else {
		sb.WriteString("\n")
	}

	sb.WriteString(m.renderRows())

	sb.WriteString("\n")
	if m.statusMsg != "" && time.Now().Before(m.statusUntil) {
		sb.WriteString(styles.SuccessMsg(m.statusMsg))
	} else if m.mode == modeSearch {
		sb.WriteString(styles.MutedMsg("enter confirm  esc cancel"))
	} else {
		sb.WriteString(styles.MutedMsg("↑↓ nav  tab flavor  c changed  / search  y copy  J json  R raw  P table  q quit"))
	}

	return sb.String()
}

func (m browserModel) renderTabs() string {
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.Accent)
	inactiveStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	var tabs []string
	for i, name := range m.flavors {
		if i == m.flavorIdx {
			tabs = append(tabs, activeStyle.Render("["+name+"]"))
		} else {
			tabs = append(tabs, inactiveStyle.Render(" "+name+" "))
		}
	}

	suffix := fmt.Sprintf("  %d colors", len(m.rows))
	if m.changedOnly {
		suffix += ", changed only"
	}
	return strings.Join(tabs, " ") + styles.MutedMsg(suffix)
}

// Column widths for the browser rows. Hex values are always 7 chars;
// the longest identifier in the dataset fits in nameColWidth.
const (
	flavorColWidth = 9
	nameColWidth   = 10
	hexColWidth    = 7
)

func (m browserModel) renderRows() string {
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.Info)
	separatorStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	selectedStyle := lipgloss.NewStyle().Background(styles.BgHighlight)

	header := fmt.Sprintf("%s  %s  %s  %s",
		styles.PadRight("FLAVOR", flavorColWidth),
		styles.PadRight("NAME", nameColWidth),
		styles.PadRight("ORIGINAL", hexColWidth+1),
		styles.PadRight("CUSTOM", hexColWidth))
	sb.WriteString(headerStyle.Render(header))
	sb.WriteString("\n")
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", len(header))))
	sb.WriteString("\n")

	visible := m.visibleRowCount()
	end := m.scrollY + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.scrollY; i < end; i++ {
		r := m.rows[i]

		marker := " "
		if r.Changed {
			marker = styles.ChangedStyle.Render(styles.SymbolChanged)
		}

		base := fmt.Sprintf("%s  %s  %s  %s",
			styles.PadRight(r.Flavor, flavorColWidth),
			styles.PadRight(r.Name, nameColWidth),
			styles.PadRight(r.Original, hexColWidth+1),
			r.Custom)
		switch {
		case i == m.cursor:
			base = selectedStyle.Render(base)
		case !r.Changed:
			base = styles.UnchangedStyle.Render(base)
		}

		sb.WriteString(fmt.Sprintf("%s  %s %s  %s", base,
			styles.Swatch(r.Original), styles.Swatch(r.Custom), marker))
		sb.WriteString("\n")
	}

	// Scroll indicators
	var indicators []string
	if m.scrollY > 0 {
		indicators = append(indicators, "▲")
	}
	if m.scrollY+visible < len(m.rows) {
		indicators = append(indicators, "▼")
	}
	if len(indicators) > 0 {
		sb.WriteString(styles.MutedMsg(strings.Join(indicators, " ")))
	}

	return sb.String()
}
