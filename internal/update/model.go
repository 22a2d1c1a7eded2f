package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rs/zerolog"

	"github.com/sandeepkv93/tasks/internal/config"
	"github.com/sandeepkv93/tasks/internal/model"
	"github.com/sandeepkv93/tasks/internal/store"
)

// Focus is the region of the screen that receives navigation keys.
type Focus string

const (
	FocusInput   Focus = "input"
	FocusToolbar Focus = "toolbar"
	FocusList    Focus = "list"
)

// Toolbar control positions.
const (
	ToolbarClear = iota
	ToolbarAdd
	ToolbarToggle
)

// Per-row control positions.
const (
	RowComplete = iota
	RowIncomplete
	RowDelete
)

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Press      key.Binding
	Input      key.Binding
	Toggle     key.Binding
	Clear      key.Binding
	Complete   key.Binding
	Incomplete key.Binding
	Delete     key.Binding
	Palette    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next region")),
		Prev:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous region")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/←", "previous button")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/→", "next button")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "previous task")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "next task")),
		Press:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press button")),
		Input:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit title")),
		Toggle:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle view")),
		Clear:      key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear all")),
		Complete:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete task")),
		Incomplete: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "mark incomplete")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete task")),
		Palette:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command palette")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Press, k.Toggle, k.Palette, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Left, k.Right, k.Up, k.Down, k.Press},
		{k.Input, k.Toggle, k.Clear, k.Complete, k.Incomplete, k.Delete},
		{k.Palette, k.Help, k.Quit},
	}
}

type Model struct {
	Store        *store.Store
	Title        string
	Focus        Focus
	ToolbarIndex int
	Cursor       int
	ButtonIndex  int
	Palette      CommandPaletteState
	HelpVisible  bool
	Status       StatusBar
	Keys         KeyMap
	Quitting     bool
	log          zerolog.Logger
	// Bubble components
	titleInput   textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

// Messages for driving the model programmatically.
type AddTaskMsg struct {
	Title string
}

type SetTaskStatusMsg struct {
	ID     int
	Status model.Status
}

type DeleteTaskMsg struct {
	ID int
}

type ClearTasksMsg struct{}

type ToggleViewMsg struct{}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

func NewModel() Model {
	return NewModelWithConfig(config.Default(), zerolog.Nop())
}

func NewModelWithConfig(cfg config.Config, logger zerolog.Logger) Model {
	m := Model{
		Store: store.New(
			store.WithIDPolicy(cfg.Policy()),
			store.WithFilter(cfg.Filter()),
			store.WithLogger(logger),
		),
		Title:        cfg.Title,
		Focus:        FocusInput,
		ToolbarIndex: ToolbarAdd,
		HelpVisible:  cfg.ShowHelp,
		Keys:         DefaultKeyMap(),
		log:          logger.With().Str("component", "update").Logger(),
	}
	m.initBubbleComponents(cfg.Placeholder)
	return m
}

func (m *Model) initBubbleComponents(placeholder string) {
	m.titleInput = textinput.New()
	m.titleInput.Prompt = "> "
	m.titleInput.Placeholder = placeholder
	m.titleInput.CharLimit = 0
	m.titleInput.Focus()

	m.commandInput = textinput.New()
	m.commandInput.Prompt = ""
	m.commandInput.Placeholder = "add <title> | done <id> | undo <id> | delete <id> | clear | toggle"

	m.helpModel = help.New()
	m.helpModel.ShowAll = true
}

// PendingTitle returns the text currently typed into the title field.
func (m Model) PendingTitle() string {
	return m.titleInput.Value()
}
