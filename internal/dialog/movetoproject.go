package dialog

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/milosmiric/ratado-sub000/internal/model"
)

// MoveToProject picks a destination project for the selected task.
type MoveToProject struct {
	TaskID   string
	Projects []model.Project
	Index    int
}

func NewMoveToProject(taskID string, projects []model.Project) *MoveToProject {
	return &MoveToProject{TaskID: taskID, Projects: projects}
}

func (d *MoveToProject) HandleKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "esc":
		return ActionCancel
	case "enter":
		if len(d.Projects) == 0 {
			return ActionCancel
		}
		return ActionSubmit
	case "down", "j":
		if len(d.Projects) > 0 {
			d.Index = (d.Index + 1) % len(d.Projects)
		}
	case "up", "k":
		if len(d.Projects) > 0 {
			d.Index = (d.Index + len(d.Projects) - 1) % len(d.Projects)
		}
	}
	return ActionNone
}

func (d *MoveToProject) Selected() (model.Project, bool) {
	if d.Index < 0 || d.Index >= len(d.Projects) {
		return model.Project{}, false
	}
	return d.Projects[d.Index], true
}
