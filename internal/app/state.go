// Package app holds the single mutable application state. It is owned by the
// event loop, mutated only by the command dispatcher, and read by the views.
package app

import (
	"time"

	"github.com/milosmiric/ratado-sub000/internal/dialog"
	"github.com/milosmiric/ratado-sub000/internal/model"
)

type View string

const (
	ViewMain       View = "main"
	ViewTaskDetail View = "task_detail"
	ViewCalendar   View = "calendar"
	ViewSearch     View = "search"
	ViewHelp       View = "help"
	ViewDebugLogs  View = "debug_logs"
)

type InputMode string

const (
	ModeNormal  InputMode = "normal"
	ModeEditing InputMode = "editing"
	ModeSearch  InputMode = "search"
)

type FocusPanel string

const (
	FocusSidebar  FocusPanel = "sidebar"
	FocusTaskList FocusPanel = "task_list"
)

type StatusBar struct {
	Text      string
	IsError   bool
	ExpiresAt time.Time
}

// State is the root context. Selection indices always point into the derived
// collections: TaskIndex into VisibleTasks(), ProjectIndex into the sidebar
// list where 0 is the virtual "All Tasks" row and i maps to Projects[i-1].
type State struct {
	Tasks    []model.Task
	Projects []model.Project
	Tags     []model.Tag

	View  View
	Mode  InputMode
	Focus FocusPanel

	TaskIndex    int
	ProjectIndex int

	Filter model.Filter
	Sort   model.SortOrder

	Dialog dialog.Dialog

	Status    StatusBar
	StatusTTL time.Duration

	// Input is the inline buffer for search and edit modes; offsets are runes.
	Input         string
	InputCursor   int
	SearchQuery   string
	EditingTaskID string

	DetailTaskID  string
	CalendarFocus time.Time

	ConfirmDelete bool
	Logs          *LogRing
	LogScroll     int

	Clock func() time.Time
}

func NewState(tasks []model.Task, projects []model.Project, tags []model.Tag) *State {
	s := &State{
		Tasks:     tasks,
		Projects:  projects,
		Tags:      tags,
		View:      ViewMain,
		Mode:      ModeNormal,
		Focus:     FocusTaskList,
		Filter:    model.Filter{Kind: model.FilterAll},
		Sort:      model.SortDueDateAsc,
		StatusTTL: 4 * time.Second,
		Logs:      NewLogRing(200),
		Clock:     time.Now,
	}
	s.CalendarFocus = s.Clock().UTC()
	s.ClampSelection()
	return s
}

// VisibleTasks recomputes the task list on demand: project scope, then the
// active filter, then the committed search query, then the sort order. It is
// never cached.
func (s *State) VisibleTasks() []model.Task {
	now := s.Clock()

	scoped := s.Tasks
	if project, ok := s.ScopedProject(); ok {
		scope := model.Filter{Kind: model.FilterByProject, Project: project.ID}
		scoped = scope.Apply(scoped, now)
	}

	visible := s.Filter.Apply(scoped, now)
	if s.SearchQuery != "" {
		visible = rankByQuery(visible, s.SearchQuery)
	}
	s.Sort.Apply(visible)
	return visible
}

// ScopedProject is the sidebar selection, false for the "All Tasks" row.
func (s *State) ScopedProject() (model.Project, bool) {
	if s.ProjectIndex <= 0 || s.ProjectIndex > len(s.Projects) {
		return model.Project{}, false
	}
	return s.Projects[s.ProjectIndex-1], true
}

// ScopedProjectID is the sidebar selection's id, the inbox on "All Tasks".
func (s *State) ScopedProjectID() string {
	if project, ok := s.ScopedProject(); ok {
		return project.ID
	}
	return model.InboxProjectID
}

func (s *State) TaskByID(id string) (model.Task, bool) {
	for _, task := range s.Tasks {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}

func (s *State) SelectedTask() (model.Task, bool) {
	visible := s.VisibleTasks()
	if s.TaskIndex < 0 || s.TaskIndex >= len(visible) {
		return model.Task{}, false
	}
	return visible[s.TaskIndex], true
}

func (s *State) SelectNextTask() {
	n := len(s.VisibleTasks())
	if n == 0 {
		s.TaskIndex = 0
		return
	}
	s.TaskIndex = (s.TaskIndex + 1) % n
}

func (s *State) SelectPrevTask() {
	n := len(s.VisibleTasks())
	if n == 0 {
		s.TaskIndex = 0
		return
	}
	s.TaskIndex = (s.TaskIndex + n - 1) % n
}

func (s *State) SelectNextProject() {
	n := len(s.Projects) + 1
	s.ProjectIndex = (s.ProjectIndex + 1) % n
	s.ClampSelection()
}

func (s *State) SelectPrevProject() {
	n := len(s.Projects) + 1
	s.ProjectIndex = (s.ProjectIndex + n - 1) % n
	s.ClampSelection()
}

// ClampSelection restores the selection invariants after any mutation that
// can shrink the visible list or the project list.
func (s *State) ClampSelection() {
	if s.ProjectIndex < 0 || s.ProjectIndex > len(s.Projects) {
		s.ProjectIndex = 0
	}
	n := len(s.VisibleTasks())
	if n == 0 {
		s.TaskIndex = 0
		return
	}
	if s.TaskIndex >= n {
		s.TaskIndex = n - 1
	}
	if s.TaskIndex < 0 {
		s.TaskIndex = 0
	}
}

// ReplaceCollections swaps in a freshly loaded snapshot after a storage
// mutation and re-clamps the selection.
func (s *State) ReplaceCollections(tasks []model.Task, projects []model.Project, tags []model.Tag) {
	s.Tasks = tasks
	s.Projects = projects
	s.Tags = tags
	s.ClampSelection()
}

func (s *State) SetStatus(text string, isError bool) {
	s.Status = StatusBar{
		Text:      text,
		IsError:   isError,
		ExpiresAt: s.Clock().Add(s.StatusTTL),
	}
	if isError {
		s.Logs.Add("error: " + text)
	}
}

// OnTick expires the status message; it runs on the fixed-interval tick
// independent of input.
func (s *State) OnTick(now time.Time) {
	if s.Status.Text != "" && now.After(s.Status.ExpiresAt) {
		s.Status = StatusBar{}
	}
}

// TagNames flattens the loaded tags for the capture autocomplete pool.
func (s *State) TagNames() []string {
	names := make([]string, len(s.Tags))
	for i, tag := range s.Tags {
		names[i] = tag.Name
	}
	return names
}

// ProjectTagNames collects the tags historically used by tasks of the given
// project, in first-seen order.
func (s *State) ProjectTagNames(projectID string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, task := range s.Tasks {
		if task.ProjectID != projectID {
			continue
		}
		for _, tag := range task.Tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	return out
}
