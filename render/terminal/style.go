package terminal

import "github.com/charmbracelet/lipgloss"

var (
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
	colorPath   = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#fbbf24"}
)

var (
	styleTitle   = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleHeading = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleMeta    = lipgloss.NewStyle().Foreground(colorDim)
	stylePath    = lipgloss.NewStyle().Foreground(colorPath)
	styleFault   = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)

	styleStat      = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleStatLabel = lipgloss.NewStyle().Foreground(colorDim)
)
