package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette - ANSI 256 colors
var (
	colorAccent    = lipgloss.Color("141")
	colorSecondary = lipgloss.Color("75")
	colorText      = lipgloss.Color("252")
	colorTextMuted = lipgloss.Color("245")
	colorBorder    = lipgloss.Color("62")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	userTextStyle = lipgloss.NewStyle().
			Foreground(colorText).
			PaddingLeft(2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	cardKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Italic(true)
)
