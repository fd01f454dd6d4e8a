package model

import (
	"fmt"
	"strings"
	"time"
)

type FilterKind string

const (
	FilterAll         FilterKind = "all"
	FilterPending     FilterKind = "pending"
	FilterInProgress  FilterKind = "in_progress"
	FilterCompleted   FilterKind = "completed"
	FilterArchived    FilterKind = "archived"
	FilterDueToday    FilterKind = "due_today"
	FilterDueThisWeek FilterKind = "due_this_week"
	FilterOverdue     FilterKind = "overdue"
	FilterByProject   FilterKind = "by_project"
	FilterByTag       FilterKind = "by_tag"
	FilterByPriority  FilterKind = "by_priority"
)

// Filter is a closed variant set; Project/Tag/Priority are only read by the
// variant that names them.
type Filter struct {
	Kind     FilterKind
	Project  string
	Tag      string
	Priority Priority
}

func (f Filter) Matches(t Task, now time.Time) bool {
	switch f.Kind {
	case FilterAll:
		return true
	case FilterPending:
		return t.Status == StatusPending
	case FilterInProgress:
		return t.Status == StatusInProgress
	case FilterCompleted:
		return t.Status == StatusCompleted
	case FilterArchived:
		return t.Status == StatusArchived
	case FilterDueToday:
		return t.IsDueToday(now)
	case FilterDueThisWeek:
		return t.IsDueThisWeek(now)
	case FilterOverdue:
		return t.IsOverdue(now)
	case FilterByProject:
		return t.ProjectID == f.Project
	case FilterByTag:
		return t.HasTag(f.Tag)
	case FilterByPriority:
		return t.Priority == f.Priority
	default:
		return true
	}
}

func (f Filter) Apply(tasks []Task, now time.Time) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t, now) {
			out = append(out, t)
		}
	}
	return out
}

// CycleNext visits a curated subset only: All -> Pending -> Completed ->
// DueToday -> Overdue -> All. The remaining variants are reachable through the
// filter dialog, not the single-key cycle.
func (f Filter) CycleNext() Filter {
	switch f.Kind {
	case FilterAll:
		return Filter{Kind: FilterPending}
	case FilterPending:
		return Filter{Kind: FilterCompleted}
	case FilterCompleted:
		return Filter{Kind: FilterDueToday}
	case FilterDueToday:
		return Filter{Kind: FilterOverdue}
	default:
		return Filter{Kind: FilterAll}
	}
}

func (f Filter) Label() string {
	switch f.Kind {
	case FilterAll:
		return "All"
	case FilterPending:
		return "Pending"
	case FilterInProgress:
		return "In Progress"
	case FilterCompleted:
		return "Completed"
	case FilterArchived:
		return "Archived"
	case FilterDueToday:
		return "Due Today"
	case FilterDueThisWeek:
		return "Due This Week"
	case FilterOverdue:
		return "Overdue"
	case FilterByProject:
		return fmt.Sprintf("Project: %s", f.Project)
	case FilterByTag:
		return fmt.Sprintf("Tag: #%s", strings.TrimPrefix(f.Tag, "#"))
	case FilterByPriority:
		return fmt.Sprintf("Priority: %s", f.Priority)
	default:
		return string(f.Kind)
	}
}
