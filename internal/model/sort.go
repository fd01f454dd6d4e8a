package model

import "sort"

type SortOrder string

const (
	SortDueDateAsc   SortOrder = "due_date_asc"
	SortDueDateDesc  SortOrder = "due_date_desc"
	SortPriorityAsc  SortOrder = "priority_asc"
	SortPriorityDesc SortOrder = "priority_desc"
	SortCreatedAsc   SortOrder = "created_asc"
	SortCreatedDesc  SortOrder = "created_desc"
	SortAlphabetical SortOrder = "alphabetical"
)

func (s SortOrder) IsValid() bool {
	switch s {
	case SortDueDateAsc, SortDueDateDesc, SortPriorityAsc, SortPriorityDesc,
		SortCreatedAsc, SortCreatedDesc, SortAlphabetical:
		return true
	default:
		return false
	}
}

func (s SortOrder) Label() string {
	switch s {
	case SortDueDateAsc:
		return "Due Date ↑"
	case SortDueDateDesc:
		return "Due Date ↓"
	case SortPriorityAsc:
		return "Priority ↑"
	case SortPriorityDesc:
		return "Priority ↓"
	case SortCreatedAsc:
		return "Created ↑"
	case SortCreatedDesc:
		return "Created ↓"
	case SortAlphabetical:
		return "Alphabetical"
	default:
		return string(s)
	}
}

// Apply sorts in place. The sort is stable for equal keys. Both due-date
// orders put tasks with a due date before tasks without one; dateless tasks
// break ties by creation time (ascending for DueDateAsc, descending for
// DueDateDesc).
func (s SortOrder) Apply(tasks []Task) {
	less := s.less()
	if less == nil {
		return
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return less(tasks[i], tasks[j])
	})
}

func (s SortOrder) less() func(a, b Task) bool {
	switch s {
	case SortDueDateAsc:
		return func(a, b Task) bool {
			switch {
			case a.DueDate != nil && b.DueDate != nil:
				return a.DueDate.Before(*b.DueDate)
			case a.DueDate != nil:
				return true
			case b.DueDate != nil:
				return false
			default:
				return a.CreatedAt.Before(b.CreatedAt)
			}
		}
	case SortDueDateDesc:
		return func(a, b Task) bool {
			switch {
			case a.DueDate != nil && b.DueDate != nil:
				return a.DueDate.After(*b.DueDate)
			case a.DueDate != nil:
				return true
			case b.DueDate != nil:
				return false
			default:
				return a.CreatedAt.After(b.CreatedAt)
			}
		}
	case SortPriorityAsc:
		return func(a, b Task) bool { return a.Priority.Rank() < b.Priority.Rank() }
	case SortPriorityDesc:
		return func(a, b Task) bool { return a.Priority.Rank() > b.Priority.Rank() }
	case SortCreatedAsc:
		return func(a, b Task) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortCreatedDesc:
		return func(a, b Task) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortAlphabetical:
		return func(a, b Task) bool { return a.Title < b.Title }
	default:
		return nil
	}
}

// SortOrders lists every order in the fixed sequence the sort dialog shows.
func SortOrders() []SortOrder {
	return []SortOrder{
		SortDueDateAsc,
		SortDueDateDesc,
		SortPriorityAsc,
		SortPriorityDesc,
		SortCreatedAsc,
		SortCreatedDesc,
		SortAlphabetical,
	}
}
