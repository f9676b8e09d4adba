package ui

import "charm.land/lipgloss/v2"

// Color palette - warm terracotta theme shared with the ANSI renderer
var (
	ColorPrimary   = lipgloss.Color("#CC785C") // Terracotta
	ColorAccent    = lipgloss.Color("#E8DDD4") // Warm parchment
	ColorMuted     = lipgloss.Color("#666666") // Gray
	ColorBorder    = lipgloss.Color("#374151") // Dark gray
	ColorText      = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted = lipgloss.Color("#B0B8C4") // Muted text
	ColorError     = lipgloss.Color("#EF4444") // Red for errors
	ColorSuccess   = lipgloss.Color("#4ADE80") // Green for success
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	FlashStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess).
			Padding(0, 1)

	FlashErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError).
			Padding(0, 1)
)

// Sidebar styles
var (
	SidebarTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
				Background(ColorPrimary).
				Foreground(ColorText).
				Bold(true).
				Padding(0, 1)

	SidebarTimeStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)
)

// Search styles
var (
	SearchPromptStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	SearchMatchStyle = lipgloss.NewStyle().
				Reverse(true)
)
