package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tasks/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == "ctrl+c" {
				m.Quitting = true
				return m, tea.Quit
			}
			return m.handlePaletteKey(typed)
		}
		if m.Focus == FocusInput {
			return m.handleInputKey(typed)
		}
		return m.handleNavKey(typed)
	case AddTaskMsg:
		m.addTask(typed.Title)
		return m, nil
	case SetTaskStatusMsg:
		m.setTaskStatus(typed.ID, typed.Status)
		return m, nil
	case DeleteTaskMsg:
		m.deleteTask(typed.ID)
		return m, nil
	case ClearTasksMsg:
		m.clearTasks()
		return m, nil
	case ToggleViewMsg:
		m.toggleView()
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "enter":
		m.pressToolbar(ToolbarAdd)
		return m, nil
	case "tab", "esc":
		m.focusRegion(FocusToolbar)
		return m, nil
	case "shift+tab":
		m.focusRegion(m.lastRegion())
		return m, nil
	}
	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m Model) handleNavKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
	case key.Matches(msg, m.Keys.Palette):
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
	case key.Matches(msg, m.Keys.Input):
		m.focusRegion(FocusInput)
	case key.Matches(msg, m.Keys.Next):
		m.focusRegion(m.nextRegion())
	case key.Matches(msg, m.Keys.Prev):
		m.focusRegion(m.prevRegion())
	case key.Matches(msg, m.Keys.Left):
		m.moveButton(-1)
	case key.Matches(msg, m.Keys.Right):
		m.moveButton(1)
	case key.Matches(msg, m.Keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.Keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.Keys.Press):
		m.pressFocused()
	case key.Matches(msg, m.Keys.Toggle):
		m.pressToolbar(ToolbarToggle)
	case key.Matches(msg, m.Keys.Clear):
		m.pressToolbar(ToolbarClear)
	case key.Matches(msg, m.Keys.Complete):
		m.pressRow(RowComplete)
	case key.Matches(msg, m.Keys.Incomplete):
		m.pressRow(RowIncomplete)
	case key.Matches(msg, m.Keys.Delete):
		m.pressRow(RowDelete)
	default:
		m.log.Debug().Str("key", msg.String()).Msg("unbound key")
	}
	return m, nil
}

func (m *Model) focusRegion(f Focus) {
	m.Focus = f
	if f == FocusInput {
		m.titleInput.Focus()
	} else {
		m.titleInput.Blur()
	}
	m.clampCursor()
}

// Regions cycle input -> toolbar -> list, skipping the list while it is empty.
func (m Model) nextRegion() Focus {
	switch m.Focus {
	case FocusInput:
		return FocusToolbar
	case FocusToolbar:
		if m.visibleCount() > 0 {
			return FocusList
		}
		return FocusInput
	default:
		return FocusInput
	}
}

func (m Model) prevRegion() Focus {
	switch m.Focus {
	case FocusList:
		return FocusToolbar
	case FocusToolbar:
		return FocusInput
	default:
		return m.lastRegion()
	}
}

func (m Model) lastRegion() Focus {
	if m.visibleCount() > 0 {
		return FocusList
	}
	return FocusToolbar
}

func (m *Model) moveButton(delta int) {
	switch m.Focus {
	case FocusToolbar:
		m.ToolbarIndex = wrap(m.ToolbarIndex+delta, 3)
	case FocusList:
		m.ButtonIndex = wrap(m.ButtonIndex+delta, 3)
	}
}

func (m *Model) moveCursor(delta int) {
	n := m.visibleCount()
	switch m.Focus {
	case FocusToolbar:
		if delta > 0 && n > 0 {
			m.focusRegion(FocusList)
		}
	case FocusList:
		next := m.Cursor + delta
		if next < 0 {
			m.focusRegion(FocusToolbar)
			return
		}
		if next < n {
			m.Cursor = next
		}
	}
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var rows []views.TaskRowData
	i := 0
	for task := range m.Store.Visible() {
		selected := m.Focus == FocusList && i == m.Cursor
		controls := m.rowControls(task)
		buttons := make([]string, 0, len(controls))
		for j, c := range controls {
			buttons = append(buttons, c.View(selected && j == m.ButtonIndex))
		}
		rows = append(rows, views.TaskRowData{
			ID:       task.ID,
			Title:    task.Title,
			Done:     task.Completed(),
			Selected: selected,
			Buttons:  buttons,
		})
		i++
	}

	toolbar := m.toolbar()
	toolbarButtons := make([]string, 0, len(toolbar))
	for j, c := range toolbar {
		toolbarButtons = append(toolbarButtons, c.View(m.Focus == FocusToolbar && j == m.ToolbarIndex))
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Header: fmt.Sprintf("%s | view: %s | focus: %s", m.Title, m.Store.Filter(), m.Focus),
		TaskPane: views.RenderTaskPanel(views.TaskPanelData{
			Filter: m.Store.Filter().String(),
			Rows:   rows,
			Total:  m.Store.Len(),
		}),
		InputLine:  views.RenderInputLine(m.titleInput.View()),
		Toolbar:    views.RenderToolbar(toolbarButtons),
		SidePane:   joinNonEmpty(m.renderCommandPalette(), m.renderHelpIfVisible()),
		StatusLine: status,
		StatusErr:  m.Status.IsError,
		Footer:     "keys: tab region | enter press | t toggle | X clear | / cmd | ? help | q quit",
	})
}
