package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/envlines/internal/domain"
)

type lineItem struct {
	prefix string
	line   domain.Line
}

func (i lineItem) Title() string       { return i.prefix + i.line.Trimmed }
func (i lineItem) Description() string { return fmt.Sprintf("line %d", i.line.Number) }
func (i lineItem) FilterValue() string { return i.line.Trimmed }

type model struct {
	theme Theme
	deps  Deps

	lines  list.Model
	status string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	items := make([]list.Item, 0, len(deps.Lines))
	for _, l := range deps.Lines {
		items = append(items, lineItem{prefix: deps.Prefix, line: l})
	}

	l := list.New(items, lineDelegate(), 0, 0)
	l.Title = deps.Resource.Path
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.SetStatusBarItemName("line", "lines")

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		lines: l,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := m.theme.App.GetFrameSize()
		// Leave room for the header and help lines.
		m.lines.SetSize(msg.Width-h, msg.Height-v-3)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.lines.FilterState() != list.Filtering && msg.String() == "q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.lines, cmd = m.lines.Update(msg)
	return m, cmd
}

func (m model) View() string {
	header := m.theme.Title.Render("envlines") + "  " +
		m.theme.Location.Render(fmt.Sprintf("%s (%s)", m.deps.Resource.Path, m.deps.Resource.Encoding))

	body := m.lines.View()
	if len(m.deps.Lines) == 0 {
		body = m.theme.Empty.Render("(no significant lines)")
	}

	help := m.theme.Help.Render("↑/↓ navigate • / filter • q quit")
	if m.status != "" {
		help = m.theme.Help.Render(m.status) + "\n" + help
	}

	return m.theme.App.Render(header + "\n\n" + body + "\n" + help)
}
