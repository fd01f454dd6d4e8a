// Package views renders a read-only snapshot of the application state. The
// core never pushes here; the update loop calls Render once per frame.
package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/milosmiric/ratado-sub000/internal/app"
	"github.com/milosmiric/ratado-sub000/internal/dates"
	"github.com/milosmiric/ratado-sub000/internal/model"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedPanel  = panelStyle.BorderForeground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
)

// Render draws the whole frame for the current view, with the active dialog
// overlaid beneath the panels when one is open.
func Render(st *app.State) string {
	var body string
	switch st.View {
	case app.ViewTaskDetail:
		body = renderTaskDetail(st)
	case app.ViewCalendar:
		body = renderCalendar(st)
	case app.ViewSearch:
		body = renderSearch(st)
	case app.ViewHelp:
		body = renderHelp()
	case app.ViewDebugLogs:
		body = renderLogs(st)
	default:
		body = renderMain(st)
	}

	lines := []string{
		headerStyle.Render("ratado"),
		body,
	}
	if st.Dialog != nil {
		lines = append(lines, panelStyle.Render(renderDialog(st.Dialog)))
	}
	if st.Status.Text != "" {
		style := statusStyle
		if st.Status.IsError {
			style = errorStyle
		}
		lines = append(lines, style.Render(st.Status.Text))
	}
	return strings.Join(lines, "\n")
}

func renderMain(st *app.State) string {
	sidebar := renderSidebar(st)
	tasks := renderTaskList(st)

	sideStyle, listStyle := panelStyle, focusedPanel
	if st.Focus == app.FocusSidebar {
		sideStyle, listStyle = focusedPanel, panelStyle
	}
	row := lipgloss.JoinHorizontal(
		lipgloss.Top,
		sideStyle.Width(28).Render(sidebar),
		listStyle.Width(70).Render(tasks),
	)

	footer := dimStyle.Render(fmt.Sprintf("filter: %s  sort: %s", st.Filter.Label(), st.Sort.Label()))
	return row + "\n" + footer
}

func renderSidebar(st *app.State) string {
	var b strings.Builder
	b.WriteString(sidebarRow("All Tasks", len(st.Tasks), st.ProjectIndex == 0))
	for i, project := range st.Projects {
		count := 0
		for _, task := range st.Tasks {
			if task.ProjectID == project.ID {
				count++
			}
		}
		label := project.Name
		if project.Icon != "" {
			label = project.Icon + " " + label
		}
		b.WriteString("\n")
		b.WriteString(sidebarRow(label, count, st.ProjectIndex == i+1))
	}
	return b.String()
}

func sidebarRow(label string, count int, selected bool) string {
	line := fmt.Sprintf("%s (%d)", label, count)
	if selected {
		return selectedStyle.Render("> " + line)
	}
	return "  " + line
}

func renderTaskList(st *app.State) string {
	visible := st.VisibleTasks()
	if len(visible) == 0 {
		return dimStyle.Render("no tasks")
	}

	now := st.Clock()
	var b strings.Builder
	for i, task := range visible {
		if i > 0 {
			b.WriteString("\n")
		}
		if st.Mode == app.ModeEditing && task.ID == st.EditingTaskID {
			b.WriteString(selectedStyle.Render("> " + renderInputBuffer(st)))
			continue
		}
		b.WriteString(taskRow(task, i == st.TaskIndex, now))
	}
	return b.String()
}

func taskRow(task model.Task, selected bool, now time.Time) string {
	check := "[ ]"
	if task.Status == model.StatusCompleted {
		check = "[x]"
	}

	line := fmt.Sprintf("%s %s %s", check, priorityGlyph(task.Priority), task.Title)
	if task.DueDate != nil {
		line += dimStyle.Render("  " + dates.Humanize(*task.DueDate, now))
	}
	if len(task.Tags) > 0 {
		line += dimStyle.Render("  #" + strings.Join(task.Tags, " #"))
	}

	switch {
	case selected:
		return selectedStyle.Render("> " + line)
	case task.Status == model.StatusCompleted:
		return "  " + doneStyle.Render(line)
	default:
		return "  " + line
	}
}

func priorityGlyph(p model.Priority) string {
	switch p {
	case model.PriorityUrgent:
		return "!!"
	case model.PriorityHigh:
		return "! "
	case model.PriorityLow:
		return "· "
	default:
		return "  "
	}
}

// renderInputBuffer shows the inline rune buffer with a cursor marker.
func renderInputBuffer(st *app.State) string {
	runes := []rune(st.Input)
	cursor := st.InputCursor
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	return string(runes[:cursor]) + "│" + string(runes[cursor:])
}
