package update

import (
	"fmt"

	"github.com/sandeepkv93/tasks/internal/action"
	"github.com/sandeepkv93/tasks/internal/model"
)

// toolbar returns the Clear, Add and Toggle controls bound to m.
func (m *Model) toolbar() []action.Control {
	return []action.Control{
		ToolbarClear:  action.New(m.clearTasks, "Clear", action.CategoryDanger),
		ToolbarAdd:    action.New(func() { m.addTask(m.PendingTitle()) }, "Add", action.CategoryPrimary),
		ToolbarToggle: action.New(m.toggleView, "Toggle", action.CategorySuccess),
	}
}

// rowControls returns the Complete, Incomplete and Delete controls for task.
func (m *Model) rowControls(task model.Task) []action.Control {
	id := task.ID
	return []action.Control{
		RowComplete:   action.New(func() { m.setTaskStatus(id, model.StatusCompleted) }, "Complete", action.CategorySuccess),
		RowIncomplete: action.New(func() { m.setTaskStatus(id, model.StatusTodo) }, "Incomplete", action.CategoryDanger),
		RowDelete:     action.New(func() { m.deleteTask(id) }, "Delete", action.CategoryDanger),
	}
}

func (m *Model) addTask(title string) {
	task := m.Store.Add(title)
	m.titleInput.SetValue("")
	m.Status = StatusBar{Text: fmt.Sprintf("task #%d added", task.ID)}
	m.clampCursor()
}

func (m *Model) setTaskStatus(id int, status model.Status) {
	m.Store.SetStatus(id, status)
	m.Status = StatusBar{Text: fmt.Sprintf("task #%d marked %s", id, status)}
	m.clampCursor()
}

func (m *Model) deleteTask(id int) {
	m.Store.Delete(id)
	m.Status = StatusBar{Text: fmt.Sprintf("task #%d deleted", id)}
	m.clampCursor()
}

func (m *Model) clearTasks() {
	m.Store.Clear()
	m.Status = StatusBar{Text: "all tasks cleared"}
	m.clampCursor()
}

func (m *Model) toggleView() {
	m.Store.ToggleView()
	m.Status = StatusBar{Text: fmt.Sprintf("showing %s", m.Store.Filter())}
	m.Cursor = 0
	m.clampCursor()
}

func (m *Model) setFilter(f model.Filter) {
	m.Store.SetFilter(f)
	m.Cursor = 0
	m.clampCursor()
}

// selectedTask returns the visible task under the row cursor.
func (m Model) selectedTask() (model.Task, bool) {
	i := 0
	for task := range m.Store.Visible() {
		if i == m.Cursor {
			return task, true
		}
		i++
	}
	return model.Task{}, false
}

func (m Model) visibleCount() int {
	n := 0
	for range m.Store.Visible() {
		n++
	}
	return n
}

// clampCursor keeps the row cursor inside the re-derived visible list and
// leaves the list region once it is empty.
func (m *Model) clampCursor() {
	n := m.visibleCount()
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if n == 0 && m.Focus == FocusList {
		m.Focus = FocusToolbar
	}
}

func (m *Model) pressToolbar(index int) {
	controls := m.toolbar()
	if index < 0 || index >= len(controls) {
		return
	}
	controls[index].Press()
}

func (m *Model) pressRow(index int) {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	controls := m.rowControls(task)
	if index < 0 || index >= len(controls) {
		return
	}
	controls[index].Press()
}

func (m *Model) pressFocused() {
	switch m.Focus {
	case FocusToolbar:
		m.pressToolbar(m.ToolbarIndex)
	case FocusList:
		m.pressRow(m.ButtonIndex)
	case FocusInput:
		m.pressToolbar(ToolbarAdd)
	}
}
