// Package keys maps raw key messages to commands. The mapper is pure and
// total: unrecognized keys yield no command, nothing here mutates state.
package keys

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/milosmiric/ratado-sub000/internal/app"
	"github.com/milosmiric/ratado-sub000/internal/command"
)

// Map resolves a key against the current context. Priority: global keys,
// then the table of the active non-Main view, then the input-mode tables.
// Keys for an active dialog never reach the mapper; the update loop routes
// them to the dialog first.
func Map(msg tea.KeyMsg, st *app.State) (command.Command, bool) {
	switch msg.String() {
	case "ctrl+c":
		return command.New(command.TypeForceQuit), true
	case "ctrl+l":
		return command.New(command.TypeToggleDebugLogs), true
	}

	if st.View != app.ViewMain {
		return mapView(msg, st)
	}

	switch st.Mode {
	case app.ModeEditing:
		return mapEditing(msg)
	case app.ModeSearch:
		return mapTextEntry(msg, command.TypeCommitSearch, command.TypeCancelSearch)
	default:
		return mapNormal(msg, st)
	}
}

func mapView(msg tea.KeyMsg, st *app.State) (command.Command, bool) {
	switch st.View {
	case app.ViewHelp:
		// Any key leaves help.
		return command.New(command.TypeShowMain), true

	case app.ViewDebugLogs:
		switch msg.String() {
		case "up", "k":
			return command.New(command.TypeLogScrollUp), true
		case "down", "j":
			return command.New(command.TypeLogScrollDown), true
		case "esc", "q":
			return command.New(command.TypeShowMain), true
		}

	case app.ViewCalendar:
		switch msg.String() {
		case "left", "h":
			return command.New(command.TypeCalendarPrevDay), true
		case "right", "l":
			return command.New(command.TypeCalendarNextDay), true
		case "up", "k":
			return command.New(command.TypeCalendarPrevWeek), true
		case "down", "j":
			return command.New(command.TypeCalendarNextWeek), true
		case "esc", "q":
			return command.New(command.TypeShowMain), true
		}

	case app.ViewTaskDetail:
		switch msg.String() {
		case " ":
			return command.New(command.TypeToggleStatus), true
		case "p":
			return command.New(command.TypeCyclePriority), true
		case "e":
			return command.New(command.TypeOpenEditTask), true
		case "d":
			return command.New(command.TypeDeleteTask), true
		case "m":
			return command.New(command.TypeOpenMoveToProject), true
		case "esc", "q":
			return command.New(command.TypeShowMain), true
		}

	case app.ViewSearch:
		if st.Mode == app.ModeSearch {
			return mapTextEntry(msg, command.TypeCommitSearch, command.TypeCancelSearch)
		}
		switch msg.String() {
		case "up", "k":
			return command.New(command.TypeSelectPrevTask), true
		case "down", "j":
			return command.New(command.TypeSelectNextTask), true
		case "enter":
			return command.New(command.TypeShowTaskDetail), true
		case "/":
			return command.New(command.TypeStartSearch), true
		case " ":
			return command.New(command.TypeToggleStatus), true
		case "esc", "q":
			return command.New(command.TypeCancelSearch), true
		}
	}
	return command.Command{}, false
}

func mapEditing(msg tea.KeyMsg) (command.Command, bool) {
	return mapTextEntry(msg, command.TypeCommitInlineEdit, command.TypeCancelInlineEdit)
}

// mapTextEntry is the shared table for the inline rune buffer; commit and
// cancel differ per mode.
func mapTextEntry(msg tea.KeyMsg, commit, cancel command.Type) (command.Command, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return command.New(commit), true
	case tea.KeyEsc:
		return command.New(cancel), true
	case tea.KeyBackspace:
		return command.New(command.TypeInputBackspace), true
	case tea.KeyLeft:
		return command.New(command.TypeInputLeft), true
	case tea.KeyRight:
		return command.New(command.TypeInputRight), true
	case tea.KeySpace:
		return command.Rune(' '), true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return command.Rune(msg.Runes[0]), true
		}
	}
	return command.Command{}, false
}

// mapNormal handles Main-view normal mode. a, e/enter and d resolve against
// the focused panel: task actions on the task list, project actions on the
// sidebar. Same for the j/k navigation pair.
func mapNormal(msg tea.KeyMsg, st *app.State) (command.Command, bool) {
	sidebar := st.Focus == app.FocusSidebar

	switch msg.String() {
	case "q":
		return command.New(command.TypeQuit), true

	case "down", "j":
		if sidebar {
			return command.New(command.TypeSelectNextProject), true
		}
		return command.New(command.TypeSelectNextTask), true
	case "up", "k":
		if sidebar {
			return command.New(command.TypeSelectPrevProject), true
		}
		return command.New(command.TypeSelectPrevTask), true

	case "left", "h":
		return command.New(command.TypeFocusSidebar), true
	case "right", "l":
		return command.New(command.TypeFocusTaskList), true
	case "tab":
		if sidebar {
			return command.New(command.TypeFocusTaskList), true
		}
		return command.New(command.TypeFocusSidebar), true

	case "a":
		if sidebar {
			return command.New(command.TypeOpenAddProject), true
		}
		return command.New(command.TypeOpenAddTask), true
	case "e":
		if sidebar {
			return command.New(command.TypeOpenEditProject), true
		}
		return command.New(command.TypeOpenEditTask), true
	case "enter":
		if sidebar {
			return command.New(command.TypeOpenEditProject), true
		}
		return command.New(command.TypeShowTaskDetail), true
	case "d":
		if sidebar {
			return command.New(command.TypeOpenDeleteProject), true
		}
		return command.New(command.TypeDeleteTask), true

	case " ":
		return command.New(command.TypeToggleStatus), true
	case "p":
		return command.New(command.TypeCyclePriority), true
	case "m":
		return command.New(command.TypeOpenMoveToProject), true
	case "i":
		return command.New(command.TypeStartInlineEdit), true

	case "c":
		return command.New(command.TypeOpenQuickCapture), true
	case "f":
		return command.New(command.TypeCycleFilter), true
	case "s":
		return command.New(command.TypeOpenFilterSort), true
	case ",":
		return command.New(command.TypeOpenSettings), true

	case "/":
		return command.New(command.TypeStartSearch), true
	case "g":
		return command.New(command.TypeShowCalendar), true
	case "?":
		return command.New(command.TypeShowHelp), true
	case "r":
		return command.New(command.TypeReload), true
	}
	return command.Command{}, false
}
