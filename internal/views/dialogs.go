package views

import (
	"fmt"
	"strings"

	"github.com/milosmiric/ratado-sub000/internal/dialog"
)

func renderDialog(d dialog.Dialog) string {
	switch d := d.(type) {
	case *dialog.TaskForm:
		return renderTaskForm(d)
	case *dialog.QuickCapture:
		return renderQuickCapture(d)
	case *dialog.ProjectForm:
		return renderProjectForm(d)
	case *dialog.Confirm:
		return renderConfirm(d)
	case *dialog.DeleteProject:
		return renderDeleteProject(d)
	case *dialog.MoveToProject:
		return renderMoveToProject(d)
	case *dialog.FilterSort:
		return renderFilterSort(d)
	case *dialog.Settings:
		return renderSettings(d)
	default:
		return ""
	}
}

func renderTaskForm(f *dialog.TaskForm) string {
	if f.Picker != nil {
		return renderDatePicker(f.Picker)
	}

	title := "Add Task"
	if f.Editing {
		title = "Edit Task"
	}

	project := "-"
	if len(f.Projects) > 0 {
		project = f.Projects[f.ProjectIndex].Name
	}

	rows := []string{
		headerStyle.Render(title),
		formRow(dialog.FieldTitle, f.Focus, f.Title.View()),
		formRow(dialog.FieldDescription, f.Focus, f.Description.View()),
		formRow(dialog.FieldDue, f.Focus, f.Due.View()),
		formRow(dialog.FieldPriority, f.Focus, string(f.Priority)),
		formRow(dialog.FieldProject, f.Focus, project),
		formRow(dialog.FieldTags, f.Focus, f.Tags.View()),
		formRow(dialog.FieldSubmit, f.Focus, "[ save ]"),
		dimStyle.Render("[tab]next field [enter]on due opens picker [ctrl+s]save [esc]cancel"),
	}
	return strings.Join(rows, "\n")
}

func formRow(field, focused dialog.TaskField, value string) string {
	line := fmt.Sprintf("%-12s %s", field.Label()+":", value)
	if field == focused {
		return selectedStyle.Render("> " + line)
	}
	return "  " + line
}

func renderDatePicker(p *dialog.DatePicker) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(p.Focused.Format("January 2006")) + "\n")
	b.WriteString(dimStyle.Render("Mo Tu We Th Fr Sa Su") + "\n")
	for _, week := range p.MonthGrid() {
		cells := make([]string, 0, 7)
		for _, day := range week {
			switch {
			case day.IsZero():
				cells = append(cells, "  ")
			case day.Equal(p.Focused):
				cells = append(cells, selectedStyle.Render(fmt.Sprintf("%2d", day.Day())))
			default:
				cells = append(cells, fmt.Sprintf("%2d", day.Day()))
			}
		}
		b.WriteString(strings.Join(cells, " ") + "\n")
	}
	b.WriteString(dimStyle.Render("[h/j/k/l]move [pgup/pgdn]month [t]today [enter]select [esc]close"))
	return b.String()
}

func renderQuickCapture(c *dialog.QuickCapture) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Quick Capture") + "\n")
	b.WriteString(c.Input.View() + "\n")

	if project := c.EffectiveProjectName(); project != "" {
		b.WriteString(dimStyle.Render("project: "+project) + "\n")
	}
	if len(c.Parsed.Tags) > 0 {
		b.WriteString(dimStyle.Render("tags: #"+strings.Join(c.Parsed.Tags, " #")) + "\n")
	}
	if c.Parsed.Priority != "" {
		b.WriteString(dimStyle.Render("priority: "+string(c.Parsed.Priority)) + "\n")
	}
	if c.Parsed.DueDateText != "" {
		due := c.Parsed.DueDateText
		if c.Parsed.DueDate == nil {
			due += " (unresolved)"
		}
		b.WriteString(dimStyle.Render("due: "+due) + "\n")
	}

	for i, item := range c.Sugg.Items {
		if i == c.Sugg.Selected {
			b.WriteString(selectedStyle.Render("> "+item) + "\n")
		} else {
			b.WriteString("  " + item + "\n")
		}
	}
	b.WriteString(dimStyle.Render("[tab]accept [enter]save [esc]cancel"))
	return b.String()
}

func renderProjectForm(f *dialog.ProjectForm) string {
	title := "Add Project"
	if f.Editing {
		title = "Edit Project"
	}
	rows := []string{
		headerStyle.Render(title),
		projectRow(dialog.ProjectFieldName, f.Focus, f.Name.View()),
		projectRow(dialog.ProjectFieldColor, f.Focus, f.Color.View()),
		projectRow(dialog.ProjectFieldIcon, f.Focus, f.Icon.View()),
		projectRow(dialog.ProjectFieldSubmit, f.Focus, "[ save ]"),
		dimStyle.Render("[tab]next field [ctrl+s]save [esc]cancel"),
	}
	return strings.Join(rows, "\n")
}

func projectRow(field, focused dialog.ProjectField, value string) string {
	line := fmt.Sprintf("%-8s %s", field.Label()+":", value)
	if field == focused {
		return selectedStyle.Render("> " + line)
	}
	return "  " + line
}

func renderConfirm(c *dialog.Confirm) string {
	yes, no := "  yes  ", "[ no ]"
	if c.Accepted {
		yes, no = "[ yes ]", "  no  "
	}
	return strings.Join([]string{
		headerStyle.Render(c.Title),
		c.Message,
		yes + "  " + no,
		dimStyle.Render("[y/n]answer [enter]choose [esc]cancel"),
	}, "\n")
}

func renderDeleteProject(d *dialog.DeleteProject) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Delete "+d.Project.Name) + "\n")
	for choice := dialog.ChoiceMoveTasks; choice <= dialog.ChoiceCancel; choice++ {
		if choice == d.Choice {
			b.WriteString(selectedStyle.Render("> "+choice.Label()) + "\n")
		} else {
			b.WriteString("  " + choice.Label() + "\n")
		}
	}
	b.WriteString(dimStyle.Render("[m/d/c]choose [enter]confirm [esc]cancel"))
	return b.String()
}

func renderMoveToProject(d *dialog.MoveToProject) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Move to project") + "\n")
	for i, project := range d.Projects {
		if i == d.Index {
			b.WriteString(selectedStyle.Render("> "+project.Name) + "\n")
		} else {
			b.WriteString("  " + project.Name + "\n")
		}
	}
	b.WriteString(dimStyle.Render("[j/k]move [enter]select [esc]cancel"))
	return b.String()
}

func renderFilterSort(d *dialog.FilterSort) string {
	var filters, sorts []string
	for i, f := range d.Filters {
		label := "  " + f.Label()
		if d.Column == dialog.ColumnFilter && i == d.FilterIndex {
			label = selectedStyle.Render("> " + f.Label())
		} else if i == d.FilterIndex {
			label = "* " + f.Label()
		}
		filters = append(filters, label)
	}
	for i, s := range d.Sorts {
		label := "  " + s.Label()
		if d.Column == dialog.ColumnSort && i == d.SortIndex {
			label = selectedStyle.Render("> " + s.Label())
		} else if i == d.SortIndex {
			label = "* " + s.Label()
		}
		sorts = append(sorts, label)
	}

	left := "Filter\n" + strings.Join(filters, "\n")
	right := "Sort\n" + strings.Join(sorts, "\n")
	return headerStyle.Render("Filter & Sort") + "\n" +
		left + "\n\n" + right + "\n" +
		dimStyle.Render("[tab]column [j/k]move [enter]apply [esc]cancel")
}

func renderSettings(s *dialog.Settings) string {
	rows := []string{headerStyle.Render("Settings")}
	for row := dialog.RowDefaultSort; row <= dialog.RowSubmit; row++ {
		var value string
		switch row {
		case dialog.RowDefaultSort:
			value = s.DefaultSort.Label()
		case dialog.RowConfirmDelete:
			value = onOff(s.ConfirmDelete)
		case dialog.RowSubmit:
			value = ""
		}
		line := strings.TrimSpace(fmt.Sprintf("%-22s %s", row.Label(), value))
		if row == s.Row {
			rows = append(rows, selectedStyle.Render("> "+line))
		} else {
			rows = append(rows, "  "+line)
		}
	}
	rows = append(rows, dimStyle.Render("[h/l]change [space]toggle [enter]save [esc]cancel"))
	return strings.Join(rows, "\n")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
