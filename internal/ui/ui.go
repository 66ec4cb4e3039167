package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabdo/internal/config"
	"tabdo/internal/mode"
	"tabdo/internal/task"
	"tabdo/internal/view"
)

type inputMode int

const (
	modeList inputMode = iota
	modeAdd
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	doneStyle      = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	removalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dialogStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type Model struct {
	store  *task.Store
	ctrl   *mode.Controller
	keys   keyMap
	help   help.Model
	views  []view.View
	tab    int
	cursor int
	mode   inputMode
	input  textinput.Model
	status string
}

func New(store *task.Store, ctrl *mode.Controller, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Type task"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		store:  store,
		ctrl:   ctrl,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		tab:    view.Index(cfg.DefaultView),
		input:  ti,
		mode:   modeList,
		status: "Press 'a' to add, space to toggle, 'x' for removal mode.",
	}
	m.refresh()
	return m
}

func Run(store *task.Store, ctrl *mode.Controller, cfg config.Config) error {
	program := tea.NewProgram(New(store, ctrl, cfg))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.ctrl.State() == mode.ConfirmingClear {
			return m.updateConfirm(msg)
		}
		if m.mode == modeAdd {
			return m.updateAddMode(msg)
		}
		return m.updateListMode(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		created, ok := m.store.Create(m.input.Value())
		if !ok {
			// Submit stays inert until there is a title.
			return m, nil
		}
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		m.refresh()
		m.focusTask(created.ID)
		m.status = fmt.Sprintf("Added #%d", created.ID)
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.current().Items))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.current().Items))
	case key.Matches(msg, m.keys.NextView):
		m.tab = wrapIndex(m.tab+1, len(m.views))
		m.cursor = clampCursor(m.cursor, len(m.current().Items))
	case key.Matches(msg, m.keys.PrevView):
		m.tab = wrapIndex(m.tab-1, len(m.views))
		m.cursor = clampCursor(m.cursor, len(m.current().Items))
	case key.Matches(msg, m.keys.Add):
		if !m.ctrl.CanCreate() {
			m.status = "Leave removal mode to add tasks"
			return m, nil
		}
		m.mode = modeAdd
		m.status = "Add mode: type a title and press Enter"
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Tap):
		return m.tap()
	case key.Matches(msg, m.keys.Removal):
		if m.ctrl.State() == mode.RemovalMode {
			_ = m.ctrl.DisableRemoval()
			m.status = "Removal mode off"
		} else {
			_ = m.ctrl.EnableRemoval()
			m.status = "Removal mode on: tapping a task deletes it"
		}
	case key.Matches(msg, m.keys.ClearAll):
		if err := m.ctrl.RequestClear(); err != nil {
			m.status = "Enter removal mode to delete all tasks"
			return m, nil
		}
		m.status = "Confirm or cancel"
	}
	return m, nil
}

func (m Model) tap() (tea.Model, tea.Cmd) {
	items := m.current().Items
	if len(items) == 0 {
		return m, nil
	}
	t := items[clampCursor(m.cursor, len(items))]
	action, err := m.ctrl.Tap(t.ID)
	switch {
	case errors.Is(err, task.ErrNotFound):
		m.status = fmt.Sprintf("Task #%d is gone", t.ID)
	case err != nil:
		m.status = err.Error()
	case action == mode.Removed:
		m.status = fmt.Sprintf("Removed \"%s\"", t.Title)
	default:
		m.status = fmt.Sprintf("Toggled \"%s\"", t.Title)
	}
	m.refresh()
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm), msg.String() == "y", msg.String() == "Y":
		if err := m.ctrl.ConfirmClear(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.refresh()
		m.status = "All tasks deleted"
	case key.Matches(msg, m.keys.Cancel), msg.String() == "n", msg.String() == "N":
		if err := m.ctrl.CancelClear(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = "Delete all cancelled"
	}
	return m, nil
}

func (m *Model) refresh() {
	m.views = view.Derive(m.store.List())
	m.tab = wrapIndex(m.tab, len(m.views))
	m.cursor = clampCursor(m.cursor, len(m.current().Items))
}

func (m *Model) focusTask(id int) {
	for i, t := range m.current().Items {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m Model) current() view.View {
	if len(m.views) == 0 {
		return view.View{}
	}
	return m.views[m.tab]
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("To-Do List"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.ctrl.State() != mode.Normal {
		b.WriteString(removalStyle.Render(fmt.Sprintf("Removal mode: tap deletes • %s delete all tasks", m.keys.ClearAll.Help().Key)))
		b.WriteString("\n\n")
	}

	if items := m.current().Items; len(items) == 0 {
		b.WriteString("Nothing here.")
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList(items))
	}

	if m.ctrl.State() == mode.ConfirmingClear {
		b.WriteString("\n")
		b.WriteString(dialogStyle.Render("Clear All Tasks\n\nAre you sure you want to remove all tasks?\n\ny/enter confirm • n/esc cancel"))
		b.WriteString("\n")
	}

	if m.mode == modeAdd {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.views))
	for i, v := range m.views {
		label := fmt.Sprintf("%s (%d)", v.Title, v.Count)
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderTaskList(items []task.Task) string {
	removing := m.ctrl.State() != mode.Normal
	var b strings.Builder
	for i, t := range items {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = ">"
		}

		checkbox := "[ ]"
		title := t.Title
		if t.Done() {
			checkbox = "[x]"
			title = doneStyle.Render(title)
		}

		body := fmt.Sprintf("%s %s %s", cursor, checkbox, title)
		if removing {
			body += " " + removalStyle.Render("✗")
		}

		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String()
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
