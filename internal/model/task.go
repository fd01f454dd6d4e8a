package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidStatus   = errors.New("model: invalid task status")
	ErrInvalidPriority = errors.New("model: invalid task priority")
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusArchived   Status = "Archived"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusArchived:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Rank orders priorities Low < Medium < High < Urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	case PriorityUrgent:
		return 3
	default:
		return -1
	}
}

// CycleNext walks Medium -> High -> Urgent -> Low -> Medium. The cycle starts
// at Medium; keep the observed order, it is a UX contract.
func (p Priority) CycleNext() Priority {
	switch p {
	case PriorityMedium:
		return PriorityHigh
	case PriorityHigh:
		return PriorityUrgent
	case PriorityUrgent:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

type Task struct {
	ID          string
	Title       string
	Description string
	DueDate     *time.Time
	Priority    Priority
	Status      Status
	ProjectID   string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// NewTask fills the bookkeeping fields for a fresh task.
func NewTask(title string) Task {
	now := time.Now().UTC()
	return Task{
		ID:        NewID(),
		Title:     strings.TrimSpace(title),
		Priority:  PriorityMedium,
		Status:    StatusPending,
		ProjectID: InboxProjectID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.Status == StatusCompleted && t.CompletedAt == nil {
		return errors.New("model: completed_at is required when task status is Completed")
	}
	if t.Status != StatusCompleted && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when task status is not Completed")
	}
	return nil
}

// ToggleStatus flips any open status to Completed and Completed back to
// Pending, maintaining the completed_at invariant.
func (t *Task) ToggleStatus(now time.Time) {
	if t.Status == StatusCompleted {
		t.Status = StatusPending
		t.CompletedAt = nil
	} else {
		t.Status = StatusCompleted
		stamp := now.UTC()
		t.CompletedAt = &stamp
	}
	t.UpdatedAt = now.UTC()
}

func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	return t.DueDate.Before(now)
}

func (t Task) IsDueToday(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	y1, m1, d1 := t.DueDate.UTC().Date()
	y2, m2, d2 := now.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (t Task) IsDueThisWeek(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	start := startOfDay(now.UTC())
	end := start.AddDate(0, 0, 7)
	due := t.DueDate.UTC()
	return !due.Before(start) && due.Before(end)
}

func (t Task) HasTag(name string) bool {
	for _, tag := range t.Tags {
		if strings.EqualFold(tag, name) {
			return true
		}
	}
	return false
}

func startOfDay(v time.Time) time.Time {
	y, m, d := v.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, v.Location())
}
