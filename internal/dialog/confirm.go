package dialog

import tea "github.com/charmbracelet/bubbletea"

// Confirm is a binary yes/no dialog. Arrows and Tab toggle the selected
// button; y and n answer directly.
type Confirm struct {
	Title    string
	Message  string
	TargetID string
	Accepted bool
}

func NewConfirm(title, message, targetID string) *Confirm {
	return &Confirm{Title: title, Message: message, TargetID: targetID}
}

func (c *Confirm) HandleKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "esc":
		return ActionCancel
	case "enter":
		return ActionSubmit
	case "y", "Y":
		c.Accepted = true
		return ActionSubmit
	case "n", "N":
		c.Accepted = false
		return ActionSubmit
	case "left", "right", "h", "l", "tab":
		c.Accepted = !c.Accepted
	}
	return ActionNone
}
