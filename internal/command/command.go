// Package command defines the closed command set and the dispatcher that
// interprets it against the application state.
package command

type Type string

const (
	TypeQuit      Type = "quit"
	TypeForceQuit Type = "force_quit"

	TypeSelectNextTask    Type = "select_next_task"
	TypeSelectPrevTask    Type = "select_prev_task"
	TypeSelectNextProject Type = "select_next_project"
	TypeSelectPrevProject Type = "select_prev_project"
	TypeFocusSidebar      Type = "focus_sidebar"
	TypeFocusTaskList     Type = "focus_task_list"

	TypeCycleFilter     Type = "cycle_filter"
	TypeCyclePriority   Type = "cycle_priority"
	TypeToggleStatus    Type = "toggle_status"
	TypeDeleteTask      Type = "delete_task"
	TypeReload          Type = "reload"

	TypeOpenAddTask       Type = "open_add_task"
	TypeOpenEditTask      Type = "open_edit_task"
	TypeOpenQuickCapture  Type = "open_quick_capture"
	TypeOpenAddProject    Type = "open_add_project"
	TypeOpenEditProject   Type = "open_edit_project"
	TypeOpenDeleteProject Type = "open_delete_project"
	TypeOpenMoveToProject Type = "open_move_to_project"
	TypeOpenFilterSort    Type = "open_filter_sort"
	TypeOpenSettings      Type = "open_settings"

	TypeDialogSubmit Type = "dialog_submit"
	TypeDialogCancel Type = "dialog_cancel"

	TypeShowTaskDetail  Type = "show_task_detail"
	TypeShowCalendar    Type = "show_calendar"
	TypeShowHelp        Type = "show_help"
	TypeShowMain        Type = "show_main"
	TypeToggleDebugLogs Type = "toggle_debug_logs"

	TypeStartSearch  Type = "start_search"
	TypeCommitSearch Type = "commit_search"
	TypeCancelSearch Type = "cancel_search"

	TypeStartInlineEdit  Type = "start_inline_edit"
	TypeCommitInlineEdit Type = "commit_inline_edit"
	TypeCancelInlineEdit Type = "cancel_inline_edit"

	TypeInputRune      Type = "input_rune"
	TypeInputBackspace Type = "input_backspace"
	TypeInputLeft      Type = "input_left"
	TypeInputRight     Type = "input_right"

	TypeLogScrollUp   Type = "log_scroll_up"
	TypeLogScrollDown Type = "log_scroll_down"

	TypeCalendarPrevDay  Type = "calendar_prev_day"
	TypeCalendarNextDay  Type = "calendar_next_day"
	TypeCalendarPrevWeek Type = "calendar_prev_week"
	TypeCalendarNextWeek Type = "calendar_next_week"
)

// Command is a closed value: the type plus an optional rune payload for text
// input in search and edit modes.
type Command struct {
	Type Type
	Rune rune
}

func New(t Type) Command { return Command{Type: t} }

func Rune(r rune) Command { return Command{Type: TypeInputRune, Rune: r} }
