package entry

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	journaldto "pokerlog/internal/modules/journal/dto"
	"pokerlog/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type JournalPort interface {
	NewForm(ctx context.Context) (journaldto.Form, error)
	EditForm(ctx context.Context, username, id string) (journaldto.Form, error)
	Save(ctx context.Context, input journaldto.SaveInput) (journaldto.SaveOutput, error)
	AttachPhoto(ctx context.Context, input journaldto.AttachInput) (string, error)
}

type TagPort interface {
	Tags(ctx context.Context, username string) ([]string, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type FormReadyMsg struct {
	Form journaldto.Form
	Err  error
}

// SavedMsg bubbles to the app so it can refresh the other tabs and show
// quota warnings in the status bar.
type SavedMsg struct {
	Out journaldto.SaveOutput
	Err error
}

type TagsLoadedMsg struct {
	Tags []string
	Err  error
}

type photoAttachedMsg struct {
	path string
	err  error
}

// ─── field layout ────────────────────────────────────────────────────────────

type fieldID int

const (
	fieldDate fieldID = iota
	fieldStart
	fieldEnd
	fieldLocation
	fieldStakes
	fieldBuyIn
	fieldCashOut
	fieldBuyinAmount
	fieldBuyinFee
	fieldReentries
	fieldFinishPosition
	fieldFieldSize
	fieldPrize
	fieldPhotoPath
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Date", "Start", "End", "Location", "Stakes",
	"Buy-in", "Cash out",
	"Buy-in", "Fee", "Re-entries", "Finish", "Field", "Prize",
	"Photo path",
}

var cashFields = []fieldID{fieldDate, fieldStart, fieldEnd, fieldLocation, fieldStakes, fieldBuyIn, fieldCashOut, fieldPhotoPath}
var tournamentFields = []fieldID{fieldDate, fieldStart, fieldEnd, fieldLocation, fieldStakes, fieldBuyinAmount, fieldBuyinFee, fieldReentries, fieldFinishPosition, fieldFieldSize, fieldPrize, fieldPhotoPath}

var mentalGrades = []string{"", "A", "B", "C"}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the session entry form. Numeric inputs keep whatever was typed;
// the journal module applies its leniency on save. ctrl+s saves, ctrl+g
// flips the game type, esc resets to a blank form.
type Model struct {
	port     JournalPort
	tags     TagPort
	username string

	form     journaldto.Form
	inputs   [fieldCount]textinput.Model
	notes    textarea.Model
	focus    int
	onTags   bool
	tagIdx   int
	tagVocab []string

	status string
	width  int
	height int
}

func New(port JournalPort, tags TagPort) Model {
	m := Model{port: port, tags: tags}
	for id := fieldID(0); id < fieldCount; id++ {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 24
		m.inputs[id] = ti
	}
	m.inputs[fieldLocation].CharLimit = 120
	m.inputs[fieldPhotoPath].CharLimit = 255
	m.inputs[fieldPhotoPath].Width = 40

	ta := textarea.New()
	ta.Placeholder = "Notes on the session…"
	ta.SetHeight(4)
	m.notes = ta
	return m
}

// SetUser rebinds the form to a user and loads a fresh form plus their tag
// vocabulary.
func (m *Model) SetUser(username string) tea.Cmd {
	m.username = username
	return tea.Batch(m.loadFormCmd(), m.loadTagsCmd())
}

// Edit loads an existing session into the form.
func (m Model) Edit(id string) tea.Cmd {
	username := m.username
	return func() tea.Msg {
		form, err := m.port.EditForm(context.Background(), username, id)
		return FormReadyMsg{Form: form, Err: err}
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

	case FormReadyMsg:
		if msg.Err != nil {
			m.status = "load form: " + msg.Err.Error()
			return m, nil
		}
		m.setForm(msg.Form)
		m.status = "editing"
		if msg.Form.EditingID == "" {
			m.status = "new session"
		}

	case TagsLoadedMsg:
		if msg.Err == nil {
			m.tagVocab = msg.Tags
		}

	case SavedMsg:
		if msg.Err != nil {
			m.status = "save failed: " + msg.Err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("saved %s (net %+.2f)", msg.Out.SessionID, msg.Out.NetProfit)
		cmds = append(cmds, m.loadFormCmd())

	case photoAttachedMsg:
		if msg.err != nil {
			m.status = "photo: " + msg.err.Error()
			return m, nil
		}
		m.form.Photos = append(m.form.Photos, msg.path)
		m.inputs[fieldPhotoPath].SetValue("")
		m.status = fmt.Sprintf("photo attached (%d)", len(m.form.Photos))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			m.syncForm()
			return m, m.saveCmd()
		case "ctrl+g":
			m.syncForm()
			if m.form.GameType == "tournament" {
				m.form.GameType = "cash"
			} else {
				m.form.GameType = "tournament"
			}
			m.focus = 0
			m.applyFocus()
			return m, nil
		case "ctrl+t":
			m.form.TableQuality = (m.form.TableQuality + 1) % 6
			return m, nil
		case "ctrl+b":
			m.form.MentalGame = nextGrade(m.form.MentalGame)
			return m, nil
		case "ctrl+p":
			path := strings.TrimSpace(m.inputs[fieldPhotoPath].Value())
			if path == "" {
				m.status = "photo: enter a path first"
				return m, nil
			}
			return m, m.attachPhotoCmd(path)
		case "esc":
			return m, m.loadFormCmd()
		case "tab", "down":
			m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		case "left", "right", " ":
			if m.onTags {
				m.handleTagKey(msg.String())
				return m, nil
			}
		}
	}

	if !m.onTags {
		if m.focus < len(m.visibleFields()) {
			id := m.visibleFields()[m.focus]
			var cmd tea.Cmd
			m.inputs[id], cmd = m.inputs[id].Update(msg)
			cmds = append(cmds, cmd)
		} else {
			var cmd tea.Cmd
			m.notes, cmd = m.notes.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder
	title := "New session"
	if m.form.EditingID != "" {
		title = "Edit session " + m.form.EditingID
	}
	sb.WriteString(theme.Title.Render(title))
	sb.WriteString(theme.Muted.Render("   ctrl+g:" + m.gameTypeLabel() + "  ctrl+s:save  esc:reset"))
	sb.WriteString("\n\n")

	fields := m.visibleFields()
	for i, id := range fields {
		label := fieldLabels[id]
		style := theme.Muted
		if !m.onTags && i == m.focus {
			style = theme.Hot
		}
		sb.WriteString(fmt.Sprintf(" %s %s\n", style.Render(fmt.Sprintf("%-11s", label)), m.inputs[id].View()))
	}

	sb.WriteString(fmt.Sprintf("\n %s %d/5 (ctrl+t)   %s %s (ctrl+b)\n",
		theme.Muted.Render("Table"), m.form.TableQuality,
		theme.Muted.Render("Mental"), gradeLabel(m.form.MentalGame)))

	sb.WriteString("\n " + m.renderTags() + "\n")

	notesStyle := theme.Muted
	if !m.onTags && m.focus == len(fields) {
		notesStyle = theme.Hot
	}
	sb.WriteString("\n " + notesStyle.Render("Notes") + "\n" + m.notes.View() + "\n")

	if len(m.form.Photos) > 0 {
		sb.WriteString("\n " + theme.Muted.Render(fmt.Sprintf("Photos: %d attached (ctrl+p to add)", len(m.form.Photos))) + "\n")
	}
	if m.status != "" {
		sb.WriteString("\n " + theme.Muted.Render(m.status) + "\n")
	}
	return theme.Pane.Width(maxInt(m.width-4, 40)).Render(sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) setForm(form journaldto.Form) {
	m.form = form
	m.inputs[fieldDate].SetValue(form.Date)
	m.inputs[fieldStart].SetValue(form.StartTime)
	m.inputs[fieldEnd].SetValue(form.EndTime)
	m.inputs[fieldLocation].SetValue(form.Location)
	m.inputs[fieldStakes].SetValue(form.Stakes)
	m.inputs[fieldBuyIn].SetValue(form.BuyIn)
	m.inputs[fieldCashOut].SetValue(form.CashOut)
	m.inputs[fieldBuyinAmount].SetValue(form.BuyinAmount)
	m.inputs[fieldBuyinFee].SetValue(form.BuyinFee)
	m.inputs[fieldReentries].SetValue(form.Reentries)
	m.inputs[fieldFinishPosition].SetValue(form.FinishPosition)
	m.inputs[fieldFieldSize].SetValue(form.FieldSize)
	m.inputs[fieldPrize].SetValue(form.Prize)
	m.inputs[fieldPhotoPath].SetValue("")
	m.notes.SetValue(form.Notes)
	m.focus = 0
	m.onTags = false
	m.applyFocus()
}

// syncForm copies the widget values back into the form snapshot.
func (m *Model) syncForm() {
	m.form.Date = m.inputs[fieldDate].Value()
	m.form.StartTime = m.inputs[fieldStart].Value()
	m.form.EndTime = m.inputs[fieldEnd].Value()
	m.form.Location = m.inputs[fieldLocation].Value()
	m.form.Stakes = m.inputs[fieldStakes].Value()
	m.form.BuyIn = m.inputs[fieldBuyIn].Value()
	m.form.CashOut = m.inputs[fieldCashOut].Value()
	m.form.BuyinAmount = m.inputs[fieldBuyinAmount].Value()
	m.form.BuyinFee = m.inputs[fieldBuyinFee].Value()
	m.form.Reentries = m.inputs[fieldReentries].Value()
	m.form.FinishPosition = m.inputs[fieldFinishPosition].Value()
	m.form.FieldSize = m.inputs[fieldFieldSize].Value()
	m.form.Prize = m.inputs[fieldPrize].Value()
	m.form.Notes = m.notes.Value()
	if m.form.GameType == "" {
		m.form.GameType = "cash"
	}
}

func (m *Model) visibleFields() []fieldID {
	if m.form.GameType == "tournament" {
		return tournamentFields
	}
	return cashFields
}

// focus order: inputs, then notes, then the tag row.
func (m *Model) moveFocus(delta int) {
	stops := len(m.visibleFields()) + 2
	pos := m.focus
	if m.onTags {
		pos = stops - 1
	}
	pos = (pos + delta + stops) % stops
	m.onTags = pos == stops-1
	if !m.onTags {
		m.focus = pos
	}
	m.applyFocus()
}

func (m *Model) applyFocus() {
	fields := m.visibleFields()
	for id := fieldID(0); id < fieldCount; id++ {
		m.inputs[id].Blur()
	}
	m.notes.Blur()
	if m.onTags {
		return
	}
	if m.focus < len(fields) {
		m.inputs[fields[m.focus]].Focus()
	} else {
		m.notes.Focus()
	}
}

func (m *Model) handleTagKey(key string) {
	if len(m.tagVocab) == 0 {
		return
	}
	switch key {
	case "left":
		m.tagIdx = (m.tagIdx + len(m.tagVocab) - 1) % len(m.tagVocab)
	case "right":
		m.tagIdx = (m.tagIdx + 1) % len(m.tagVocab)
	case " ":
		m.toggleTag(m.tagVocab[m.tagIdx])
	}
}

func (m *Model) toggleTag(tag string) {
	for i, existing := range m.form.Tags {
		if existing == tag {
			m.form.Tags = append(m.form.Tags[:i], m.form.Tags[i+1:]...)
			return
		}
	}
	m.form.Tags = append(m.form.Tags, tag)
}

func (m Model) renderTags() string {
	label := theme.Muted
	if m.onTags {
		label = theme.Hot
	}
	parts := make([]string, 0, len(m.tagVocab))
	for i, tag := range m.tagVocab {
		marker := "□"
		if m.hasTag(tag) {
			marker = "■"
		}
		cell := marker + " " + tag
		switch {
		case m.onTags && i == m.tagIdx:
			parts = append(parts, theme.Hot.Render(cell))
		case m.hasTag(tag):
			parts = append(parts, theme.Profit.Render(cell))
		default:
			parts = append(parts, theme.Muted.Render(cell))
		}
	}
	return label.Render("Tags") + "  " + strings.Join(parts, "  ")
}

func (m Model) hasTag(tag string) bool {
	for _, existing := range m.form.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

func (m Model) gameTypeLabel() string {
	if m.form.GameType == "tournament" {
		return "tournament"
	}
	return "cash"
}

func nextGrade(current string) string {
	for i, grade := range mentalGrades {
		if grade == current {
			return mentalGrades[(i+1)%len(mentalGrades)]
		}
	}
	return ""
}

func gradeLabel(grade string) string {
	if grade == "" {
		return "-"
	}
	return grade
}

func (m Model) loadFormCmd() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return FormReadyMsg{}
		}
		form, err := m.port.NewForm(context.Background())
		return FormReadyMsg{Form: form, Err: err}
	}
}

func (m Model) loadTagsCmd() tea.Cmd {
	username := m.username
	return func() tea.Msg {
		if m.tags == nil || username == "" {
			return TagsLoadedMsg{}
		}
		tags, err := m.tags.Tags(context.Background(), username)
		return TagsLoadedMsg{Tags: tags, Err: err}
	}
}

func (m Model) saveCmd() tea.Cmd {
	username := m.username
	form := m.form
	return func() tea.Msg {
		out, err := m.port.Save(context.Background(), journaldto.SaveInput{Username: username, Form: form})
		return SavedMsg{Out: out, Err: err}
	}
}

func (m Model) attachPhotoCmd(path string) tea.Cmd {
	count := len(m.form.Photos)
	return func() tea.Msg {
		stored, err := m.port.AttachPhoto(context.Background(), journaldto.AttachInput{SourcePath: path, ExistingCount: count})
		return photoAttachedMsg{path: stored, err: err}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
