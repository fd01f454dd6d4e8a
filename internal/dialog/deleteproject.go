package dialog

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/milosmiric/ratado-sub000/internal/model"
)

type DeleteChoice int

const (
	ChoiceMoveTasks DeleteChoice = iota
	ChoiceDeleteTasks
	ChoiceCancel

	deleteChoiceCount
)

func (c DeleteChoice) Label() string {
	switch c {
	case ChoiceMoveTasks:
		return "Move tasks to Inbox"
	case ChoiceDeleteTasks:
		return "Delete tasks"
	case ChoiceCancel:
		return "Cancel"
	default:
		return ""
	}
}

// DeleteProject is the three-way project deletion dialog: move the project's
// tasks to the inbox, delete them with the project, or back out. m, d and c
// answer directly.
type DeleteProject struct {
	Project model.Project
	Choice  DeleteChoice
}

func NewDeleteProject(project model.Project) *DeleteProject {
	return &DeleteProject{Project: project}
}

func (d *DeleteProject) HandleKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "esc":
		return ActionCancel
	case "enter":
		if d.Choice == ChoiceCancel {
			return ActionCancel
		}
		return ActionSubmit
	case "m", "M":
		d.Choice = ChoiceMoveTasks
		return ActionSubmit
	case "d", "D":
		d.Choice = ChoiceDeleteTasks
		return ActionSubmit
	case "c", "C":
		return ActionCancel
	case "down", "j", "tab":
		d.Choice = (d.Choice + 1) % deleteChoiceCount
	case "up", "k", "shift+tab":
		d.Choice = (d.Choice + deleteChoiceCount - 1) % deleteChoiceCount
	}
	return ActionNone
}
