package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/milosmiric/ratado-sub000/internal/app"
	"github.com/milosmiric/ratado-sub000/internal/dates"
)

func renderTaskDetail(st *app.State) string {
	task, ok := st.TaskByID(st.DetailTaskID)
	if !ok {
		return dimStyle.Render("task no longer exists")
	}

	var b strings.Builder
	b.WriteString(selectedStyle.Render(task.Title) + "\n")
	b.WriteString(fmt.Sprintf("status: %s  priority: %s\n", task.Status, task.Priority))
	if task.DueDate != nil {
		b.WriteString("due: " + dates.Humanize(*task.DueDate, st.Clock()) + "\n")
	}
	if len(task.Tags) > 0 {
		b.WriteString("tags: #" + strings.Join(task.Tags, " #") + "\n")
	}
	if task.Description != "" {
		b.WriteString("\n" + renderMarkdown(task.Description) + "\n")
	}
	b.WriteString(dimStyle.Render("\n[space]toggle [p]priority [e]edit [d]delete [m]move [esc]back"))
	return panelStyle.Render(b.String())
}

func renderMarkdown(md string) string {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

func renderCalendar(st *app.State) string {
	focus := st.CalendarFocus.UTC()
	now := st.Clock()

	var b strings.Builder
	b.WriteString(headerStyle.Render(focus.Format("January 2006")) + "\n")
	b.WriteString("focus: " + focus.Format("Mon 2006-01-02") + "\n\n")

	for _, task := range st.Tasks {
		if task.DueDate == nil {
			continue
		}
		due := task.DueDate.UTC()
		if due.Year() == focus.Year() && due.YearDay() == focus.YearDay() {
			b.WriteString(taskRow(task, false, now) + "\n")
		}
	}
	b.WriteString(dimStyle.Render("\n[h/l]day [k/j]week [esc]back"))
	return panelStyle.Render(b.String())
}

func renderSearch(st *app.State) string {
	var b strings.Builder
	if st.Mode == app.ModeSearch {
		b.WriteString("search: " + renderInputBuffer(st) + "\n\n")
	} else {
		b.WriteString("search: " + st.SearchQuery + "\n\n")
	}
	b.WriteString(renderTaskList(st))
	return panelStyle.Render(b.String())
}

func renderHelp() string {
	rows := []string{
		"j/k        move selection",
		"tab h/l    switch panel",
		"a e d      add / edit / delete (panel-aware)",
		"space      toggle status",
		"p          cycle priority",
		"c          quick capture",
		"f s        cycle filter / filter & sort dialog",
		"m          move task to project",
		"i          rename inline",
		"/          search",
		"g          calendar",
		",          settings",
		"ctrl+l     debug logs",
		"q          quit",
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func renderLogs(st *app.State) string {
	entries := st.Logs.Entries()
	if len(entries) == 0 {
		return panelStyle.Render(dimStyle.Render("no log entries"))
	}

	// LogScroll counts lines up from the newest entry.
	end := len(entries) - st.LogScroll
	if end < 1 {
		end = 1
	}
	start := end - 20
	if start < 0 {
		start = 0
	}
	return panelStyle.Render(strings.Join(entries[start:end], "\n"))
}
