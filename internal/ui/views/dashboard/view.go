package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	journaldto "pokerlog/internal/modules/journal/dto"
	statsdto "pokerlog/internal/modules/stats/dto"
	"pokerlog/internal/ui/components"
	"pokerlog/internal/ui/theme"
)

// recentCount caps the recent-session list under the chart.
const recentCount = 5

// ─── ports ───────────────────────────────────────────────────────────────────

type StatsPort interface {
	Report(ctx context.Context, username string, windowDays int) (statsdto.Report, error)
	Series(ctx context.Context, username string) ([]statsdto.SeriesPoint, error)
}

type JournalPort interface {
	List(ctx context.Context, username string) ([]journaldto.SessionView, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ReportLoadedMsg struct {
	Report statsdto.Report
	Err    error
}

type SeriesLoadedMsg struct {
	Points []statsdto.SeriesPoint
	Err    error
}

type RecentLoadedMsg struct {
	Sessions []journaldto.SessionView
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model renders the headline numbers and the cumulative profit chart. The
// c/t/b keys toggle the cash, tournament and combined lines.
type Model struct {
	port     StatsPort
	journal  JournalPort
	username string
	currency string

	report  statsdto.Report
	points  []statsdto.SeriesPoint
	recent  []journaldto.SessionView
	spinner spinner.Model
	loading bool

	showCombined   bool
	showCash       bool
	showTournament bool

	width  int
	height int
}

func New(port StatsPort, journal JournalPort, currency string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Green)

	return Model{
		port:           port,
		journal:        journal,
		currency:       currency,
		spinner:        sp,
		loading:        true,
		showCombined:   true,
		showCash:       true,
		showTournament: true,
	}
}

// SetUser points the dashboard at a user and triggers a reload.
func (m *Model) SetUser(username string) tea.Cmd {
	m.username = username
	m.loading = true
	return m.Refresh()
}

// Refresh reloads the report, the chart series and the recent list.
func (m Model) Refresh() tea.Cmd {
	return tea.Batch(m.loadReportCmd(), m.loadSeriesCmd(), m.loadRecentCmd())
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ReportLoadedMsg:
		m.loading = false
		if msg.Err == nil {
			m.report = msg.Report
		}

	case SeriesLoadedMsg:
		if msg.Err == nil {
			m.points = msg.Points
		}

	case RecentLoadedMsg:
		if msg.Err == nil {
			m.recent = msg.Sessions
			if len(m.recent) > recentCount {
				m.recent = m.recent[:recentCount]
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			m.showCash = !m.showCash
		case "t":
			m.showTournament = !m.showTournament
		case "b":
			m.showCombined = !m.showCombined
		case "r":
			cmds = append(cmds, m.Refresh())
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading stats…")
	}

	paneWidth := max(m.width-4, 20)
	summaryPane := theme.Pane.Width(paneWidth).Render(m.renderSummaries())
	chartPane := theme.Pane.Width(paneWidth).Render(m.renderChart())
	if len(m.recent) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, summaryPane, chartPane)
	}
	recentPane := theme.Pane.Width(paneWidth).Render(m.renderRecent())
	return lipgloss.JoinVertical(lipgloss.Left, summaryPane, chartPane, recentPane)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderSummaries() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Results — "+m.username) + "\n\n")
	sb.WriteString(m.renderSummaryRow("All time", m.report.AllTime))
	sb.WriteString(m.renderSummaryRow(fmt.Sprintf("Last %d days", m.report.WindowDays), m.report.Recent))
	sb.WriteString(m.renderSummaryRow("Cash", m.report.Cash))
	sb.WriteString(m.renderSummaryRow("Tournaments", m.report.Tournament))
	return sb.String()
}

func (m Model) renderSummaryRow(label string, s statsdto.Summary) string {
	profit := fmt.Sprintf("%s%+.2f", m.currency, s.NetProfit)
	styled := theme.Profit.Render(profit)
	if s.NetProfit < 0 {
		styled = theme.Loss.Render(profit)
	}
	return fmt.Sprintf(" %-14s %s  %s\n",
		theme.Hot.Render(label),
		styled,
		theme.Muted.Render(fmt.Sprintf("%d sessions, %.1fh, %s%.2f/h, %.0f%% winning",
			s.Sessions, s.Hours, m.currency, s.HourlyOverall, s.WinRatePercent)))
}

func (m Model) renderChart() string {
	labels := make([]string, len(m.points))
	combined := make([]float64, len(m.points))
	cash := make([]float64, len(m.points))
	tournament := make([]float64, len(m.points))
	for i, p := range m.points {
		labels[i] = p.Date
		combined[i] = p.Combined
		cash[i] = p.Cash
		tournament[i] = p.Tournament
	}

	var series []components.ChartSeries
	if m.showCombined {
		series = append(series, components.ChartSeries{Name: "Combined", Values: combined, Style: theme.Hot, Rune: '●'})
	}
	if m.showCash {
		series = append(series, components.ChartSeries{Name: "Cash", Values: cash, Style: theme.Profit, Rune: '○'})
	}
	if m.showTournament {
		series = append(series, components.ChartSeries{Name: "Tournament", Values: tournament, Style: theme.Loss, Rune: '◇'})
	}

	chart := components.NewChart()
	if m.width > 20 {
		chart.Width = m.width - 20
	}
	header := theme.Title.Render("Cumulative profit") + theme.Muted.Render("   b/c/t toggle lines, r reload") + "\n"
	return header + chart.Render(labels, series)
}

func (m Model) renderRecent() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Recent sessions") + "\n")
	for _, s := range m.recent {
		profit := fmt.Sprintf("%s%+.2f", m.currency, s.NetProfit)
		styled := theme.Profit.Render(profit)
		if s.NetProfit < 0 {
			styled = theme.Loss.Render(profit)
		}
		sb.WriteString(fmt.Sprintf(" %s  %-10s %s  %s\n",
			s.Date, s.GameType, styled,
			theme.Muted.Render(fmt.Sprintf("%s %s, %dm", s.Location, s.Stakes, s.DurationMinutes))))
	}
	return sb.String()
}

func (m Model) loadRecentCmd() tea.Cmd {
	username := m.username
	return func() tea.Msg {
		if m.journal == nil || username == "" {
			return RecentLoadedMsg{}
		}
		sessions, err := m.journal.List(context.Background(), username)
		return RecentLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (m Model) loadReportCmd() tea.Cmd {
	username := m.username
	return func() tea.Msg {
		if m.port == nil || username == "" {
			return ReportLoadedMsg{}
		}
		report, err := m.port.Report(context.Background(), username, 0)
		return ReportLoadedMsg{Report: report, Err: err}
	}
}

func (m Model) loadSeriesCmd() tea.Cmd {
	username := m.username
	return func() tea.Msg {
		if m.port == nil || username == "" {
			return SeriesLoadedMsg{}
		}
		points, err := m.port.Series(context.Background(), username)
		return SeriesLoadedMsg{Points: points, Err: err}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
