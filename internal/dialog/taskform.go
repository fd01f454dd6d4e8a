package dialog

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/milosmiric/ratado-sub000/internal/dates"
	"github.com/milosmiric/ratado-sub000/internal/model"
)

type TaskField int

const (
	FieldTitle TaskField = iota
	FieldDescription
	FieldDue
	FieldPriority
	FieldProject
	FieldTags
	FieldSubmit

	taskFieldCount
)

func (f TaskField) Next() TaskField { return (f + 1) % taskFieldCount }

func (f TaskField) Prev() TaskField { return (f + taskFieldCount - 1) % taskFieldCount }

func (f TaskField) Label() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldDescription:
		return "Description"
	case FieldDue:
		return "Due"
	case FieldPriority:
		return "Priority"
	case FieldProject:
		return "Project"
	case FieldTags:
		return "Tags"
	case FieldSubmit:
		return "Submit"
	default:
		return ""
	}
}

// TaskForm is the add/edit dialog. Tab and Shift-Tab cycle the focused field;
// Enter submits on the Submit field, Ctrl+S submits from anywhere. Enter on
// the Due field opens the nested date picker instead.
type TaskForm struct {
	Editing bool
	Focus   TaskField

	Title       textinput.Model
	Description textinput.Model
	Due         textinput.Model
	Tags        textinput.Model

	Priority     model.Priority
	Projects     []model.Project
	ProjectIndex int
	KnownTags    []string

	Picker *DatePicker

	base  model.Task
	Clock func() time.Time
}

// NewTaskForm builds an empty form pre-selecting the given project.
func NewTaskForm(projects []model.Project, selectedProjectID string, knownTags []string) *TaskForm {
	f := newTaskForm(projects, knownTags)
	f.Priority = model.PriorityMedium
	f.selectProject(selectedProjectID)
	f.Title.Focus()
	return f
}

// NewTaskFormEdit builds a form pre-populated from an existing task.
func NewTaskFormEdit(task model.Task, projects []model.Project, knownTags []string) *TaskForm {
	f := newTaskForm(projects, knownTags)
	f.Editing = true
	f.base = task
	f.Title.SetValue(task.Title)
	f.Description.SetValue(task.Description)
	if task.DueDate != nil {
		f.Due.SetValue(task.DueDate.UTC().Format("2006-01-02"))
	}
	f.Tags.SetValue(strings.Join(task.Tags, ", "))
	f.Priority = task.Priority
	f.selectProject(task.ProjectID)
	f.Title.Focus()
	return f
}

func newTaskForm(projects []model.Project, knownTags []string) *TaskForm {
	title := textinput.New()
	title.Placeholder = "What needs doing?"
	description := textinput.New()
	description.Placeholder = "Details (optional)"
	due := textinput.New()
	due.Placeholder = "tomorrow, +3d, 2026-09-01"
	tags := textinput.New()
	tags.Placeholder = "comma, separated, tags"
	return &TaskForm{
		Title:       title,
		Description: description,
		Due:         due,
		Tags:        tags,
		Projects:    projects,
		KnownTags:   knownTags,
		Clock:       time.Now,
	}
}

func (f *TaskForm) selectProject(id string) {
	for i, p := range f.Projects {
		if p.ID == id {
			f.ProjectIndex = i
			return
		}
	}
	f.ProjectIndex = 0
}

func (f *TaskForm) HandleKey(msg tea.KeyMsg) Action {
	if f.Picker != nil {
		switch f.Picker.HandleKey(msg) {
		case ActionSubmit:
			f.Due.SetValue(f.Picker.Focused.Format("2006-01-02"))
			f.Picker = nil
		case ActionCancel:
			f.Picker = nil
		}
		return ActionNone
	}

	switch msg.String() {
	case "esc":
		return ActionCancel
	case "ctrl+s":
		return ActionSubmit
	case "tab":
		f.Focus = f.Focus.Next()
		f.syncFocus()
		return ActionNone
	case "shift+tab":
		f.Focus = f.Focus.Prev()
		f.syncFocus()
		return ActionNone
	case "enter":
		switch f.Focus {
		case FieldSubmit:
			return ActionSubmit
		case FieldDue:
			f.Picker = NewDatePicker(f.pickerSeed())
		default:
			f.Focus = f.Focus.Next()
			f.syncFocus()
		}
		return ActionNone
	}

	switch f.Focus {
	case FieldTitle:
		f.Title, _ = f.Title.Update(msg)
	case FieldDescription:
		f.Description, _ = f.Description.Update(msg)
	case FieldDue:
		f.Due, _ = f.Due.Update(msg)
	case FieldTags:
		f.Tags, _ = f.Tags.Update(msg)
	case FieldPriority:
		switch msg.String() {
		case " ", "right", "l":
			f.Priority = f.Priority.CycleNext()
		}
	case FieldProject:
		if len(f.Projects) == 0 {
			break
		}
		switch msg.String() {
		case "right", "l", "down", "j":
			f.ProjectIndex = (f.ProjectIndex + 1) % len(f.Projects)
		case "left", "h", "up", "k":
			f.ProjectIndex = (f.ProjectIndex + len(f.Projects) - 1) % len(f.Projects)
		}
	}
	return ActionNone
}

func (f *TaskForm) syncFocus() {
	for field, input := range map[TaskField]*textinput.Model{
		FieldTitle:       &f.Title,
		FieldDescription: &f.Description,
		FieldDue:         &f.Due,
		FieldTags:        &f.Tags,
	} {
		if field == f.Focus {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

func (f *TaskForm) pickerSeed() time.Time {
	if s := strings.TrimSpace(f.Due.Value()); s != "" {
		if resolved, ok := dates.ParseDueDate(s, f.Clock()); ok {
			return resolved
		}
	}
	return f.Clock()
}

// ToTask converts the form into a task, or nil when the title is empty. The
// title is the only field validated locally. An unparsable due text yields a
// task without a due date.
func (f *TaskForm) ToTask() *model.Task {
	title := strings.TrimSpace(f.Title.Value())
	if title == "" {
		return nil
	}

	var task model.Task
	if f.Editing {
		task = f.base
		task.Title = title
		task.UpdatedAt = f.Clock().UTC()
	} else {
		task = model.NewTask(title)
	}

	task.Description = strings.TrimSpace(f.Description.Value())
	task.Priority = f.Priority
	if len(f.Projects) > 0 {
		task.ProjectID = f.Projects[f.ProjectIndex].ID
	} else {
		task.ProjectID = model.InboxProjectID
	}

	task.DueDate = nil
	if s := strings.TrimSpace(f.Due.Value()); s != "" {
		if resolved, ok := dates.ParseDueDate(s, f.Clock()); ok {
			task.DueDate = &resolved
		}
	}

	task.Tags = nil
	for _, raw := range strings.Split(f.Tags.Value(), ",") {
		if tag := strings.TrimSpace(raw); tag != "" {
			task.Tags = append(task.Tags, tag)
		}
	}
	return &task
}
