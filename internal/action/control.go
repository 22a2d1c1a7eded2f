// Package action provides the pressable button used for every user
// initiated operation in the task list.
package action

import "github.com/charmbracelet/lipgloss"

type Category string

const (
	CategoryPrimary Category = "primary"
	CategoryDanger  Category = "danger"
	CategorySuccess Category = "success"
)

var (
	baseStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("15"))

	categoryColors = map[Category]lipgloss.Color{
		CategoryPrimary: lipgloss.Color("4"),
		CategoryDanger:  lipgloss.Color("1"),
		CategorySuccess: lipgloss.Color("2"),
	}
)

// Control binds a label and visual category to a trigger. It carries no
// state of its own.
type Control struct {
	Label    string
	Category Category
	trigger  func()
}

func New(trigger func(), label string, category Category) Control {
	return Control{Label: label, Category: category, trigger: trigger}
}

// Press invokes the trigger synchronously.
func (c Control) Press() {
	if c.trigger != nil {
		c.trigger()
	}
}

func (c Control) style() lipgloss.Style {
	color, ok := categoryColors[c.Category]
	if !ok {
		color = lipgloss.Color("8")
	}
	return baseStyle.Background(color)
}

// View renders the control. Focused controls are marked so the focus ring
// stays readable on terminals without color.
func (c Control) View(focused bool) string {
	label := c.Label
	st := c.style()
	if focused {
		label = ">" + label + "<"
		st = st.Bold(true).Underline(true)
	} else {
		label = " " + label + " "
	}
	return st.Render(label)
}
