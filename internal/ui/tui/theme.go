package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

const (
	accent = lipgloss.Color("36")
	muted  = lipgloss.Color("244")
)

// Theme styles the browse screen.
type Theme struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Location lipgloss.Style
	Help     lipgloss.Style
	Empty    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		App:      lipgloss.NewStyle().Padding(1, 2),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Location: lipgloss.NewStyle().Foreground(muted),
		Help:     lipgloss.NewStyle().Faint(true),
		Empty: lipgloss.NewStyle().
			Italic(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(accent),
	}
}

// lineDelegate renders list items with the theme accent on the selected line.
func lineDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.Foreground(accent).BorderForeground(accent)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.Foreground(muted).BorderForeground(accent)
	return d
}
