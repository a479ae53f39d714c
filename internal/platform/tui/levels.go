package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-snake/internal/config"
	"github.com/vovakirdan/math-snake/internal/registry"
)

// Level chart layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show grade list sidebar
	sidebarWidth       = 34 // Width of grade list sidebar
)

// ChartKeyMap defines the key bindings for the level chart.
type ChartKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Back      key.Binding
	Quit      key.Binding
	NextGrade key.Binding
	PrevGrade key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ChartKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGrade, k.PrevGrade, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ChartKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGrade, k.PrevGrade},
		{k.Back, k.Quit},
	}
}

// DefaultChartKeyMap returns default key bindings.
func DefaultChartKeyMap() ChartKeyMap {
	return ChartKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev grade"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next grade"),
		),
		NextGrade: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next grade"),
		),
		PrevGrade: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev grade"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ChartModel shows, per grade, what each level asks of the player: the
// target range, the step interval and the food operators.
type ChartModel struct {
	grades      []registry.GameInfo
	gradeCursor int
	rules       config.Config
	table       table.Model
	help        help.Model
	keys        ChartKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewChartModel creates a new level chart model.
func NewChartModel(rules config.Config, width, height int) ChartModel {
	h := help.New()
	h.ShowAll = false

	m := ChartModel{
		grades:      registry.List(),
		rules:       rules,
		keys:        DefaultChartKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ChartModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Target", Width: 10},
		{Title: "Step", Width: 8},
		{Title: "Moves/s", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// ChartRows returns one row per level for the given rules.
func ChartRows(rules config.Config) []table.Row {
	rows := make([]table.Row, 0, rules.Levels.MaxLevel)
	for level := 1; level <= rules.Levels.MaxLevel; level++ {
		lo, hi := rules.Levels.TargetRange(level)
		interval := rules.Speed.Interval(level)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", level),
			fmt.Sprintf("%d-%d", lo, hi),
			fmt.Sprintf("%dms", interval.Milliseconds()),
			fmt.Sprintf("%.1f", float64(time.Second)/float64(interval)),
		})
	}
	return rows
}

func (m *ChartModel) updateTableRows() {
	m.table.SetRows(ChartRows(m.rules))
	m.table.GotoTop()
}

// currentGrade returns the grade under the cursor, if any.
func (m ChartModel) currentGrade() (config.Grade, bool) {
	if len(m.grades) == 0 {
		return "", false
	}
	g := config.Grade(strings.TrimPrefix(m.grades[m.gradeCursor].ID, "grade"))
	return g, g.Valid()
}

// Init initializes the chart model.
func (m ChartModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the chart.
func (m ChartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGrade), key.Matches(msg, m.keys.Right):
			if len(m.grades) > 0 {
				m.gradeCursor = (m.gradeCursor + 1) % len(m.grades)
				m.table.GotoTop()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGrade), key.Matches(msg, m.keys.Left):
			if len(m.grades) > 0 {
				m.gradeCursor = (m.gradeCursor - 1 + len(m.grades)) % len(m.grades)
				m.table.GotoTop()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the chart.
func (m ChartModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	chartTitle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "LEVELS"
	if len(m.grades) > 0 {
		title = "LEVELS - " + m.grades[m.gradeCursor].Title
	}
	b.WriteString(chartTitle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	if g, ok := m.currentGrade(); ok {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Food operators: %s   Lives: %d   Points per food: %d",
			g.Operators(), m.rules.Rules.Lives, m.rules.Rules.Reward)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the chart with a sidebar for grade selection.
func (m ChartModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Grades\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.grades {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gradeCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + g.Title))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.table.View()))
}

// renderNarrowLayout renders the chart with the grade name above the table.
func (m ChartModel) renderNarrowLayout() string {
	var b strings.Builder

	if g, ok := m.currentGrade(); ok {
		b.WriteString(centerText(fmt.Sprintf("< %s >", g.Label()), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.table.View())))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ChartModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ChartModel) IsQuitting() bool {
	return m.quitting
}

// RunChart runs the level chart screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunChart(rules config.Config, width, height int) (goBack bool, err error) {
	model := NewChartModel(rules, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ChartModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
