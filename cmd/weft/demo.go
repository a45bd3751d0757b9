package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	weft "github.com/weft-dev/weft"
	"github.com/weft-dev/weft/pkg/element"
	"github.com/weft-dev/weft/pkg/host"
	"github.com/weft-dev/weft/pkg/host/term"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive terminal demo",
		Long: `Run an interactive counter rendered through the reconciler.

Every keypress rerenders the element tree; the terminal shows the
committed host tree plus the statistics of the last render pass, so
you can watch updates stay incremental as the tree changes.

Keys:
  + / k   increment the counter
  - / j   decrement the counter
  a       add a list row
  x       remove a list row
  q       quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	container := host.NewContainer("body")
	m := demoModel{
		container: container,
		root:      weft.New(container, host.NewMemoryHost()),
		rows:      3,
	}
	if err := m.render(); err != nil {
		return err
	}

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

var (
	demoTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	demoStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	demoHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

type demoTickMsg time.Time

type demoModel struct {
	container *host.MemNode
	root      *weft.Root

	count int
	rows  int
	err   error
}

func (m demoModel) Init() tea.Cmd {
	return demoTick()
}

func demoTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return demoTickMsg(t)
	})
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "k", "up":
			m.count++
		case "-", "j", "down":
			m.count--
		case "a":
			m.rows++
		case "x":
			if m.rows > 0 {
				m.rows--
			}
		default:
			return m, nil
		}
		m.err = m.render()
		return m, nil

	case demoTickMsg:
		m.err = m.render()
		return m, demoTick()
	}
	return m, nil
}

func (m *demoModel) render() error {
	rows := make([]*element.Element, m.rows)
	for i := range rows {
		rows[i] = element.Li(element.Textf("row %d", i+1))
	}

	return m.root.Render(
		element.Div(element.Class("demo"),
			element.H1("Weft Demo"),
			element.P(element.Textf("count: %d", m.count)),
			element.P(time.Now().Format("15:04:05")),
			element.Ul(rows),
		),
	)
}

func (m demoModel) View() string {
	if m.err != nil {
		return demoTitleStyle.Render("render error") + "\n" + m.err.Error()
	}

	stats := m.root.LastStats()
	return demoTitleStyle.Render("committed host tree") + "\n\n" +
		term.Render(m.container) + "\n\n" +
		demoStatsStyle.Render(fmt.Sprintf(
			"last pass: %d units, %d placements, %d updates, %d deletions",
			stats.UnitsOfWork, stats.Placements, stats.Updates, stats.Deletions)) + "\n" +
		demoHelpStyle.Render("+/- count  a/x rows  q quit") + "\n"
}
