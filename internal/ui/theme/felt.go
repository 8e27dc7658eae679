package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#16211a")
	Mantle   = lipgloss.Color("#101a14")
	Surface0 = lipgloss.Color("#24342a")
	Surface1 = lipgloss.Color("#35493c")
	Text     = lipgloss.Color("#d9e7dc")
	Subtext0 = lipgloss.Color("#9db3a3")
	Felt     = lipgloss.Color("#2e7d4f")
	Gold     = lipgloss.Color("#d4af37")
	Green    = lipgloss.Color("#7ddf8f")
	Red      = lipgloss.Color("#e06c75")
	Sapphire = lipgloss.Color("#74c7ec")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Gold)

	Title  = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Subtext0)
	Hot    = lipgloss.NewStyle().Foreground(Gold).Bold(true)
	Profit = lipgloss.NewStyle().Foreground(Green)
	Loss   = lipgloss.NewStyle().Foreground(Red)
)
