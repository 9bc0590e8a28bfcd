package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Top  key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top}, {k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "close"),
		),
	}
}

// HistoryColumns are the table headers, shared with the plain-text listing.
var HistoryColumns = []string{"#", "Result", "Board", "Target", "Moves", "Max tile", "Played"}

// HistoryRow formats one result as table cells.
func HistoryRow(r storage.Result) []string {
	played := ""
	if !r.CreatedAt.IsZero() {
		played = r.CreatedAt.Format("Jan 02 15:04")
	}
	return []string{
		strconv.FormatInt(r.ID, 10),
		strings.ToUpper(r.Outcome),
		r.Size(),
		strconv.Itoa(r.WinTarget),
		strconv.Itoa(r.Moves),
		strconv.Itoa(r.MaxTile),
		played,
	}
}

// StatsLine summarizes the ledger in one line.
func StatsLine(st storage.Stats) string {
	if st.Games == 0 {
		return "No games recorded yet."
	}
	return fmt.Sprintf("Games: %d  Won: %d  Lost: %d  Win rate: %.0f%%  Best tile: %d  Avg moves: %.0f",
		st.Games, st.Wins, st.Losses, st.WinRate()*100, st.BestTile, st.AvgMoves)
}

// HistoryModel is the Bubble Tea model for the history screen.
type HistoryModel struct {
	results  []storage.Result
	stats    storage.Stats
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history screen over already loaded results.
func NewHistoryModel(results []storage.Result, stats storage.Stats, width, height int) HistoryModel {
	m := HistoryModel{
		results: results,
		stats:   stats,
		keys:    DefaultHistoryKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a table sized for the current window.
func (m *HistoryModel) createTable() table.Model {
	widths := []int{5, 6, 6, 7, 6, 8, 13}
	columns := make([]table.Column, len(HistoryColumns))
	for i, title := range HistoryColumns {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}

	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = HistoryRow(r)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass scrolling to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render("2048 HISTORY"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(StatsLine(m.stats), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.results) == 0 {
		empty := dimStyle.Italic(true).Padding(1, 4).Render("Finish a game to see it here.")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(empty)))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(m.table.View())))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Cursor returns the selected row index.
func (m HistoryModel) Cursor() int {
	return m.table.Cursor()
}

// RunHistory loads recent results from store and shows them in a table.
func RunHistory(store *storage.Store, limit, width, height int) error {
	results, err := store.RecentResults(limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewHistoryModel(results, stats, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
