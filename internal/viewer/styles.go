// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package viewer

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the viewer.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Bar      lipgloss.Style
	Muted    lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns the viewer's palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FDE725")),
		Subtitle: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#A0A0A0")),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#35B779")).MarginTop(1),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6ECE58")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("#31688E")),
		Bar:      lipgloss.NewStyle().Foreground(lipgloss.Color("#26828E")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C")),
		Footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C")).MarginTop(1),
	}
}
