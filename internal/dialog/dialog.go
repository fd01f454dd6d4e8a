// Package dialog holds the modal sub-state-machines. Every dialog consumes
// raw key messages and reports a three-valued Action; the command layer
// interprets Submit by inspecting the concrete dialog value.
package dialog

import tea "github.com/charmbracelet/bubbletea"

type Action int

const (
	ActionNone Action = iota
	ActionSubmit
	ActionCancel
)

// Dialog is the shape every modal implements. At most one dialog is active at
// a time; the update loop routes keys here before the input mapper.
type Dialog interface {
	HandleKey(msg tea.KeyMsg) Action
}
