package history

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	journaldto "pokerlog/internal/modules/journal/dto"
	"pokerlog/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type JournalPort interface {
	List(ctx context.Context, username string) ([]journaldto.SessionView, error)
	Delete(ctx context.Context, username, id string) (journaldto.SaveOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SessionsLoadedMsg struct {
	Sessions []journaldto.SessionView
	Err      error
}

// DeletedMsg bubbles to the app so other tabs can refresh.
type DeletedMsg struct {
	Out journaldto.SaveOutput
	Err error
}

// EditRequestedMsg asks the app to load this session into the entry tab.
type EditRequestedMsg struct {
	ID string
}

// ─── list item ───────────────────────────────────────────────────────────────

type sessionItem struct {
	session  journaldto.SessionView
	currency string
}

func (i sessionItem) Title() string {
	marker := "▲"
	if i.session.NetProfit < 0 {
		marker = "▼"
	}
	return fmt.Sprintf("%s %s  %s%+.2f", marker, i.session.Date, i.currency, i.session.NetProfit)
}

func (i sessionItem) Description() string {
	where := i.session.Location
	if where == "" {
		where = "unknown venue"
	}
	if i.session.Stakes != "" {
		where += " " + i.session.Stakes
	}
	return fmt.Sprintf("%s, %s, %dm", i.session.GameType, where, i.session.DurationMinutes)
}

func (i sessionItem) FilterValue() string {
	return i.session.Date + " " + i.session.Location + " " + i.session.GameType
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model lists sessions newest first. e edits the selection, d asks for
// delete confirmation, y/n answer it.
type Model struct {
	port     JournalPort
	username string
	currency string

	list         list.Model
	confirmingID string
	width        int
	height       int
}

func New(port JournalPort, currency string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Gold).BorderForeground(theme.Gold)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Gold)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "History"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, currency: currency, list: l}
}

// SetUser rebinds the history to a user and reloads.
func (m *Model) SetUser(username string) tea.Cmd {
	m.username = username
	return m.Refresh()
}

func (m Model) Refresh() tea.Cmd {
	username := m.username
	return func() tea.Msg {
		if m.port == nil || username == "" {
			return SessionsLoadedMsg{}
		}
		sessions, err := m.port.List(context.Background(), username)
		return SessionsLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height-1)

	case SessionsLoadedMsg:
		if msg.Err != nil {
			m.list.Title = "History — " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = fmt.Sprintf("History (%d)", len(msg.Sessions))
		items := make([]list.Item, len(msg.Sessions))
		for i, s := range msg.Sessions {
			items[i] = sessionItem{session: s, currency: m.currency}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case DeletedMsg:
		m.confirmingID = ""
		cmds = append(cmds, m.Refresh())

	case tea.KeyMsg:
		if m.confirmingID != "" {
			switch msg.String() {
			case "y":
				id := m.confirmingID
				return m, m.deleteCmd(id)
			case "n", "esc":
				m.confirmingID = ""
			}
			return m, nil
		}
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "d":
			if item, ok := m.list.SelectedItem().(sessionItem); ok {
				m.confirmingID = item.session.ID
			}
			return m, nil
		case "e", "enter":
			if item, ok := m.list.SelectedItem().(sessionItem); ok {
				return m, func() tea.Msg { return EditRequestedMsg{ID: item.session.ID} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.confirmingID != "" {
		prompt := theme.Hot.Render("Delete session "+m.confirmingID+"?") + theme.Muted.Render("  y:confirm  n:cancel")
		return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), prompt)
	}
	hint := theme.Muted.Render("e:edit  d:delete  /:filter")
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), hint)
}

// Filtering reports whether the list's search filter is active, so global
// keys yield while typing.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) deleteCmd(id string) tea.Cmd {
	username := m.username
	return func() tea.Msg {
		out, err := m.port.Delete(context.Background(), username, id)
		return DeletedMsg{Out: out, Err: err}
	}
}
