package update

import (
	"fmt"

	"github.com/sandeepkv93/tasks/internal/views"
)

const helpMarkdown = `**Buttons**

- *Clear* removes every task.
- *Add* appends the typed title as a todo task.
- *Toggle* switches between the todo and completed views.
- Each row has *Complete*, *Incomplete* and *Delete*.
`

type KeyBinding struct {
	Key    string
	Action string
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(m.Keys),
		Markdown: helpMarkdown,
	})
}

// viewBindings lists the keys that apply to the focused region.
func (m Model) viewBindings() []KeyBinding {
	switch m.Focus {
	case FocusInput:
		return []KeyBinding{
			{Key: "enter", Action: "add task"},
			{Key: "tab/esc", Action: "leave title field"},
		}
	case FocusToolbar:
		return []KeyBinding{
			{Key: "h/l", Action: "choose Clear, Add or Toggle"},
			{Key: "enter", Action: "press button"},
			{Key: "j", Action: "move to task list"},
		}
	case FocusList:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "h/l", Action: "choose Complete, Incomplete or Delete"},
			{Key: "c/u/d", Action: "complete / incomplete / delete"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}
