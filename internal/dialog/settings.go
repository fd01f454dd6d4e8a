package dialog

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/milosmiric/ratado-sub000/internal/model"
)

type SettingsRow int

const (
	RowDefaultSort SettingsRow = iota
	RowConfirmDelete
	RowSubmit

	settingsRowCount
)

func (r SettingsRow) Label() string {
	switch r {
	case RowDefaultSort:
		return "Default sort"
	case RowConfirmDelete:
		return "Confirm before delete"
	case RowSubmit:
		return "Save"
	default:
		return ""
	}
}

// Settings edits the small set of runtime preferences.
type Settings struct {
	Row           SettingsRow
	DefaultSort   model.SortOrder
	ConfirmDelete bool

	sorts     []model.SortOrder
	sortIndex int
}

func NewSettings(defaultSort model.SortOrder, confirmDelete bool) *Settings {
	s := &Settings{
		DefaultSort:   defaultSort,
		ConfirmDelete: confirmDelete,
		sorts:         model.SortOrders(),
	}
	for i, order := range s.sorts {
		if order == defaultSort {
			s.sortIndex = i
			break
		}
	}
	return s
}

func (s *Settings) HandleKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "esc":
		return ActionCancel
	case "ctrl+s":
		return ActionSubmit
	case "enter":
		if s.Row == RowSubmit {
			return ActionSubmit
		}
		s.Row = (s.Row + 1) % settingsRowCount
		return ActionNone
	case "tab", "down", "j":
		s.Row = (s.Row + 1) % settingsRowCount
		return ActionNone
	case "shift+tab", "up", "k":
		s.Row = (s.Row + settingsRowCount - 1) % settingsRowCount
		return ActionNone
	}

	switch s.Row {
	case RowDefaultSort:
		switch msg.String() {
		case "right", "l", " ":
			s.sortIndex = (s.sortIndex + 1) % len(s.sorts)
			s.DefaultSort = s.sorts[s.sortIndex]
		case "left", "h":
			s.sortIndex = (s.sortIndex + len(s.sorts) - 1) % len(s.sorts)
			s.DefaultSort = s.sorts[s.sortIndex]
		}
	case RowConfirmDelete:
		switch msg.String() {
		case " ", "left", "right", "h", "l":
			s.ConfirmDelete = !s.ConfirmDelete
		}
	}
	return ActionNone
}
