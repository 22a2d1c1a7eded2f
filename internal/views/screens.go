package views

import (
	"fmt"
	"strings"
)

type TaskRowData struct {
	ID       int
	Title    string
	Done     bool
	Selected bool
	Buttons  []string
}

type TaskPanelData struct {
	Filter string
	Rows   []TaskRowData
	Total  int
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
	Markdown string
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("view: %s (%d of %d)\n", data.Filter, len(data.Rows), data.Total))
	if len(data.Rows) == 0 {
		b.WriteString("(no tasks)")
		return b.String()
	}
	for _, row := range data.Rows {
		cursor := " "
		if row.Selected {
			cursor = ">"
		}
		mark := "[ ]"
		if row.Done {
			mark = "[x]"
		}
		title := row.Title
		if title == "" {
			title = "(untitled)"
		}
		b.WriteString(fmt.Sprintf("%s %s #%d %s  %s\n", cursor, mark, row.ID, title, strings.Join(row.Buttons, " ")))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderToolbar(buttons []string) string {
	return strings.Join(buttons, " ")
}

func RenderInputLine(inputView string) string {
	return "title: " + inputView
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	b.WriteString(strings.Join(data.Bindings, "\n"))
	if data.HelpView != "" {
		b.WriteString("\n\n" + data.HelpView)
	}
	if md := RenderMarkdown(data.Markdown); md != "" {
		b.WriteString("\n\n" + md)
	}
	return b.String()
}
