package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/milosmiric/ratado-sub000/internal/model"
)

type ProjectField int

const (
	ProjectFieldName ProjectField = iota
	ProjectFieldColor
	ProjectFieldIcon
	ProjectFieldSubmit

	projectFieldCount
)

func (f ProjectField) Next() ProjectField { return (f + 1) % projectFieldCount }

func (f ProjectField) Prev() ProjectField {
	return (f + projectFieldCount - 1) % projectFieldCount
}

func (f ProjectField) Label() string {
	switch f {
	case ProjectFieldName:
		return "Name"
	case ProjectFieldColor:
		return "Color"
	case ProjectFieldIcon:
		return "Icon"
	case ProjectFieldSubmit:
		return "Submit"
	default:
		return ""
	}
}

// ProjectForm creates or renames a project. Same focus cycling contract as
// the task form.
type ProjectForm struct {
	Editing bool
	Focus   ProjectField

	Name  textinput.Model
	Color textinput.Model
	Icon  textinput.Model

	base model.Project
}

func NewProjectForm() *ProjectForm {
	f := newProjectForm()
	f.Color.SetValue("#7aa2f7")
	f.Name.Focus()
	return f
}

func NewProjectFormEdit(project model.Project) *ProjectForm {
	f := newProjectForm()
	f.Editing = true
	f.base = project
	f.Name.SetValue(project.Name)
	f.Color.SetValue(project.Color)
	f.Icon.SetValue(project.Icon)
	f.Name.Focus()
	return f
}

func newProjectForm() *ProjectForm {
	name := textinput.New()
	name.Placeholder = "Project name"
	color := textinput.New()
	color.Placeholder = "#rrggbb"
	icon := textinput.New()
	icon.Placeholder = "glyph"
	icon.CharLimit = 2
	return &ProjectForm{Name: name, Color: color, Icon: icon}
}

func (f *ProjectForm) HandleKey(msg tea.KeyMsg) Action {
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
		if f.Focus == ProjectFieldSubmit {
			return ActionSubmit
		}
		f.Focus = f.Focus.Next()
		f.syncFocus()
		return ActionNone
	}

	switch f.Focus {
	case ProjectFieldName:
		f.Name, _ = f.Name.Update(msg)
	case ProjectFieldColor:
		f.Color, _ = f.Color.Update(msg)
	case ProjectFieldIcon:
		f.Icon, _ = f.Icon.Update(msg)
	}
	return ActionNone
}

func (f *ProjectForm) syncFocus() {
	for field, input := range map[ProjectField]*textinput.Model{
		ProjectFieldName:  &f.Name,
		ProjectFieldColor: &f.Color,
		ProjectFieldIcon:  &f.Icon,
	} {
		if field == f.Focus {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

// ToProject converts the form into a project, or nil when the name is empty.
func (f *ProjectForm) ToProject() *model.Project {
	name := strings.TrimSpace(f.Name.Value())
	if name == "" {
		return nil
	}
	if f.Editing {
		project := f.base
		project.Name = name
		project.Color = strings.TrimSpace(f.Color.Value())
		project.Icon = strings.TrimSpace(f.Icon.Value())
		return &project
	}
	project := model.NewProject(name, strings.TrimSpace(f.Color.Value()), strings.TrimSpace(f.Icon.Value()))
	return &project
}
