// internal/ui/theme.go
package ui

import "github.com/charmbracelet/lipgloss"

// Theme groups the lipgloss styles used by the views
type Theme struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Row          lipgloss.Style
	SelectedRow  lipgloss.Style
	Muted        lipgloss.Style
	Price        lipgloss.Style
	StatusBar    lipgloss.Style
	NoticeOK     lipgloss.Style
	NoticeError  lipgloss.Style
	NoticeWarn   lipgloss.Style
	NoticeInfo   lipgloss.Style
	HelpBar      lipgloss.Style
	ActiveFilter lipgloss.Style
}

// DefaultTheme builds the default color theme
func DefaultTheme() Theme {
	return Theme{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Row:          lipgloss.NewStyle(),
		SelectedRow:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Price:        lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		StatusBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		NoticeOK:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		NoticeError:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		NoticeWarn:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		NoticeInfo:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		HelpBar:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ActiveFilter: lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	}
}
