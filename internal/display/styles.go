// Package display holds the shared lipgloss palette and the startup
// banner used by both presentation shells.
package display

import "github.com/charmbracelet/lipgloss"

var (
	// BannerStyle — warm amber for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d9a441"))

	// TitleStyle — bold honey gold for section headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#fbbf24"))

	// LabelStyle — muted zinc for field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	// ValueStyle — light zinc for computed values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4e7"))

	// HintStyle — dimmed zinc for secondary text and key hints.
	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// PromptStyle — soft slate for input prompts.
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// ResultStyle — soft mint for the results pane.
	ResultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	// WarnStyle — amber-orange for non-fatal warnings.
	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74"))

	// ErrorStyle — soft coral for errors.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))
)
