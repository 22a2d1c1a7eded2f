package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tasks/internal/commands"
	"github.com/sandeepkv93/tasks/internal/model"
	"github.com/sandeepkv93/tasks/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m, cmd
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() Model {
	input := m.Palette.Input
	raw := strings.TrimSpace(input)
	m.closePalette()

	res, err := m.runCommand(input)
	if err != nil {
		m.log.Warn().Err(err).Str("command", raw).Msg("palette command failed")
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.log.Info().Str("command", raw).Msg("palette command")
	m.Status = StatusBar{Text: res.Message}
	return m
}

// RunCommand parses raw and applies it through the same mutations the
// buttons use.
func (m *Model) RunCommand(raw string) (commands.Result, error) {
	return m.runCommand(raw)
}

func (m *Model) runCommand(raw string) (commands.Result, error) {
	cmd, err := commands.Parse(raw)
	if err != nil {
		return commands.Result{}, err
	}
	return commands.Execute(cmd, m.commandHandlers())
}

func (m *Model) commandHandlers() commands.Handlers {
	status := func() (commands.Result, error) {
		return commands.Result{Message: m.Status.Text}, nil
	}
	return commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m.addTask(a.Title)
			return status()
		},
		Done: func(a commands.TargetArgs) (commands.Result, error) {
			m.setTaskStatus(a.ID, model.StatusCompleted)
			return status()
		},
		Undo: func(a commands.TargetArgs) (commands.Result, error) {
			m.setTaskStatus(a.ID, model.StatusTodo)
			return status()
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			m.deleteTask(a.ID)
			return status()
		},
		Clear: func() (commands.Result, error) {
			m.clearTasks()
			return status()
		},
		Toggle: func() (commands.Result, error) {
			m.toggleView()
			return status()
		},
		Show: func(a commands.ShowArgs) (commands.Result, error) {
			m.setFilter(model.NewFilter(a.Status))
			return commands.Result{Message: fmt.Sprintf("showing %s", a.Status)}, nil
		},
	}
}

func (m Model) renderCommandPalette() string {
	if !m.Palette.Active {
		return ""
	}
	return views.RenderCommandPalette(true, m.commandInput.Value())
}
