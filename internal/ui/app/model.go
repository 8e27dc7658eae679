package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	journaldto "pokerlog/internal/modules/journal/dto"
	rosterdto "pokerlog/internal/modules/roster/dto"
	statsdto "pokerlog/internal/modules/stats/dto"
	"pokerlog/internal/ui/theme"
	dashboardview "pokerlog/internal/ui/views/dashboard"
	entryview "pokerlog/internal/ui/views/entry"
	historyview "pokerlog/internal/ui/views/history"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type rosterPort interface {
	CreateUser(ctx context.Context, name string) (rosterdto.UserOutput, error)
	ListUsers(ctx context.Context) ([]rosterdto.UserOutput, error)
	SwitchUser(ctx context.Context, name string) error
	CurrentUser(ctx context.Context) (rosterdto.UserOutput, error)
}

type journalPort interface {
	NewForm(ctx context.Context) (journaldto.Form, error)
	EditForm(ctx context.Context, username, id string) (journaldto.Form, error)
	Save(ctx context.Context, input journaldto.SaveInput) (journaldto.SaveOutput, error)
	Delete(ctx context.Context, username, id string) (journaldto.SaveOutput, error)
	List(ctx context.Context, username string) ([]journaldto.SessionView, error)
	AttachPhoto(ctx context.Context, input journaldto.AttachInput) (string, error)
}

type statsPort interface {
	Report(ctx context.Context, username string, windowDays int) (statsdto.Report, error)
	Series(ctx context.Context, username string) ([]statsdto.SeriesPoint, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDashboard tabID = iota
	tabEntry
	tabHistory
	tabCount
)

var tabLabels = [tabCount]string{
	"Dashboard", "Entry", "History",
}

// ─── async messages ───────────────────────────────────────────────────────────

type currentUserMsg struct {
	user rosterdto.UserOutput
	err  error
}

type loginDoneMsg struct {
	user rosterdto.UserOutput
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab  key.Binding
	Help key.Binding
	User key.Binding
	Quit key.Binding
	Save key.Binding
	Edit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		User: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "switch user")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save session")),
		Edit: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit selection")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.User, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Save, k.Edit},
		{k.Help, k.User, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. Until a user is selected it shows the
// login gate; afterwards it owns tab routing and the status bar. Business
// logic stays behind the port interfaces.
type Model struct {
	roster rosterPort

	dashView dashboardview.Model
	entView  entryview.Model
	histView historyview.Model

	username  string
	loggedIn  bool
	loginName textinput.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	status    string
	width     int
	height    int
}

func NewModel(roster rosterPort, journal journalPort, stats statsPort, currency string) Model {
	name := textinput.New()
	name.Placeholder = "your name"
	name.CharLimit = 40
	name.Width = 30
	name.Focus()

	return Model{
		roster:    roster,
		dashView:  dashboardview.New(stats, journal, currency),
		entView:   entryview.New(journal, tagPortBridge{roster: roster}),
		histView:  historyview.New(journal, currency),
		loginName: name,
		activeTab: tabDashboard,
		keys:      defaultKeys(),
		help:      help.New(),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashView.Init(),
		textinput.Blink,
		m.loadCurrentUserCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()

	case currentUserMsg:
		if msg.err != nil {
			// First run or cleared store: stay on the login gate.
			return m, nil
		}
		return m.enterUser(msg.user)

	case loginDoneMsg:
		if msg.err != nil {
			m.status = "login failed: " + msg.err.Error()
			return m, nil
		}
		return m.enterUser(msg.user)

	case entryview.SavedMsg:
		if msg.Err == nil {
			if msg.Out.Warning != "" {
				m.status = theme.Loss.Render(msg.Out.Warning)
			} else {
				m.status = "session saved"
			}
			cmds = append(cmds, m.dashView.Refresh(), m.histView.Refresh())
		}
		var cmd tea.Cmd
		m.entView, cmd = m.entView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case historyview.DeletedMsg:
		if msg.Err != nil {
			m.status = "delete failed: " + msg.Err.Error()
		} else if msg.Out.Warning != "" {
			m.status = theme.Loss.Render(msg.Out.Warning)
		} else {
			m.status = "session deleted"
		}
		cmds = append(cmds, m.dashView.Refresh())
		var cmd tea.Cmd
		m.histView, cmd = m.histView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case historyview.EditRequestedMsg:
		m.activeTab = tabEntry
		m.status = "editing " + msg.ID
		return m, m.entView.Edit(msg.ID)

	case tea.KeyMsg:
		if !m.loggedIn {
			return m.updateLogin(msg)
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.activeTab == tabHistory && m.histView.Filtering() {
			break
		}
		// On the entry tab, plain keys belong to the form inputs; only the
		// ctrl chords and shift+tab act globally there.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.activeTab != tabEntry {
				return m, tea.Quit
			}
		case "tab":
			if m.activeTab != tabEntry {
				m.activeTab = (m.activeTab + 1) % tabCount
				return m, nil
			}
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			if m.activeTab != tabEntry {
				m.showHelp = !m.showHelp
				return m, nil
			}
		case "ctrl+u":
			m.loggedIn = false
			m.loginName.SetValue("")
			m.loginName.Focus()
			m.status = "switch user"
			return m, textinput.Blink
		}
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabDashboard:
		m.dashView, tabCmd = m.dashView.Update(msg)
	case tabEntry:
		m.entView, tabCmd = m.entView.Update(msg)
	case tabHistory:
		m.histView, tabCmd = m.histView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		name := strings.TrimSpace(m.loginName.Value())
		if name == "" {
			m.status = "enter a name to continue"
			return m, nil
		}
		return m, m.loginCmd(name)
	}
	var cmd tea.Cmd
	m.loginName, cmd = m.loginName.Update(msg)
	return m, cmd
}

func (m Model) enterUser(user rosterdto.UserOutput) (tea.Model, tea.Cmd) {
	m.loggedIn = true
	m.username = user.Username
	m.status = "playing as " + user.Username
	return m, tea.Batch(
		m.dashView.SetUser(user.Username),
		m.entView.SetUser(user.Username),
		m.histView.SetUser(user.Username),
	)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.loggedIn {
		return m.renderLogin()
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	} else {
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderLogin() string {
	box := theme.PaneActive.Width(40).Render(
		theme.Title.Render("Who's playing?") + "\n\n" +
			m.loginName.View() + "\n\n" +
			theme.Muted.Render("enter to continue, esc to quit"))
	if m.status != "ready" && m.status != "" {
		box += "\n" + theme.Muted.Render(m.status)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.View()
	case tabEntry:
		return m.entView.View()
	case tabHistory:
		return m.histView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "pokerlog  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := theme.Hot.Render("♠ "+m.username) + "  " + m.status
	right := theme.Muted.Render("?:help  tab:switch  ctrl+u:user  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.dashView, _ = m.dashView.Update(sz)
	m.entView, _ = m.entView.Update(sz)
	m.histView, _ = m.histView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadCurrentUserCmd() tea.Cmd {
	return func() tea.Msg {
		user, err := m.roster.CurrentUser(context.Background())
		return currentUserMsg{user: user, err: err}
	}
}

func (m Model) loginCmd(name string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.roster.CreateUser(context.Background(), name)
		return loginDoneMsg{user: user, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────

// tagPortBridge exposes a user's tag vocabulary to the entry view without
// handing it the whole roster surface.
type tagPortBridge struct{ roster rosterPort }

func (b tagPortBridge) Tags(ctx context.Context, username string) ([]string, error) {
	users, err := b.roster.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.Username == username {
			return user.Tags, nil
		}
	}
	return nil, nil
}
