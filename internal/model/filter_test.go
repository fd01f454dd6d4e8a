package model

import (
	"testing"
	"time"
)

func sampleTasks(now time.Time) []Task {
	overdue := now.Add(-48 * time.Hour)
	today := now.Add(2 * time.Hour)
	thisWeek := now.AddDate(0, 0, 3)

	mk := func(title string, status Status, priority Priority, project string, due *time.Time, tags ...string) Task {
		task := NewTask(title)
		task.Status = status
		task.Priority = priority
		task.ProjectID = project
		task.DueDate = due
		task.Tags = tags
		if status == StatusCompleted {
			stamp := now
			task.CompletedAt = &stamp
		}
		return task
	}

	return []Task{
		mk("Fix login bug", StatusPending, PriorityUrgent, "backend", &overdue, "bug"),
		mk("Write release notes", StatusInProgress, PriorityMedium, "docs", &today, "writing"),
		mk("Plan sprint", StatusPending, PriorityHigh, "backend", &thisWeek),
		mk("Old migration", StatusCompleted, PriorityLow, "backend", nil, "bug"),
		mk("Archived idea", StatusArchived, PriorityLow, InboxProjectID, nil),
	}
}

func TestFilterMatchesEachVariant(t *testing.T) {
	now := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	tasks := sampleTasks(now)

	cases := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{Kind: FilterAll}, 5},
		{"pending", Filter{Kind: FilterPending}, 2},
		{"in_progress", Filter{Kind: FilterInProgress}, 1},
		{"completed", Filter{Kind: FilterCompleted}, 1},
		{"archived", Filter{Kind: FilterArchived}, 1},
		{"due_today", Filter{Kind: FilterDueToday}, 1},
		{"due_this_week", Filter{Kind: FilterDueThisWeek}, 2},
		{"overdue", Filter{Kind: FilterOverdue}, 1},
		{"by_project", Filter{Kind: FilterByProject, Project: "backend"}, 3},
		{"by_tag", Filter{Kind: FilterByTag, Tag: "bug"}, 2},
		{"by_priority", Filter{Kind: FilterByPriority, Priority: PriorityUrgent}, 1},
	}
	for _, tc := range cases {
		got := tc.filter.Apply(tasks, now)
		if len(got) != tc.want {
			t.Fatalf("%s: expected %d tasks, got %d", tc.name, tc.want, len(got))
		}
	}
}

func TestFilterApplyAgreesWithMatches(t *testing.T) {
	now := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	tasks := sampleTasks(now)
	filters := []Filter{
		{Kind: FilterAll},
		{Kind: FilterPending},
		{Kind: FilterOverdue},
		{Kind: FilterByProject, Project: "backend"},
		{Kind: FilterByTag, Tag: "bug"},
		{Kind: FilterByPriority, Priority: PriorityLow},
	}
	for _, f := range filters {
		bulk := f.Apply(tasks, now)
		manual := make([]Task, 0, len(tasks))
		for _, task := range tasks {
			if f.Matches(task, now) {
				manual = append(manual, task)
			}
		}
		if len(bulk) != len(manual) {
			t.Fatalf("%s: Apply returned %d, Matches selected %d", f.Kind, len(bulk), len(manual))
		}
		for i := range bulk {
			if bulk[i].ID != manual[i].ID {
				t.Fatalf("%s: Apply/Matches disagree at %d", f.Kind, i)
			}
		}
	}
}

func TestFilterCycleIsFixedSubset(t *testing.T) {
	f := Filter{Kind: FilterAll}
	want := []FilterKind{FilterPending, FilterCompleted, FilterDueToday, FilterOverdue, FilterAll}
	for i, kind := range want {
		f = f.CycleNext()
		if f.Kind != kind {
			t.Fatalf("cycle step %d: expected %q, got %q", i, kind, f.Kind)
		}
	}

	// Variants outside the cycle fall back to All.
	for _, kind := range []FilterKind{FilterInProgress, FilterArchived, FilterDueThisWeek, FilterByProject, FilterByTag, FilterByPriority} {
		next := Filter{Kind: kind}.CycleNext()
		if next.Kind != FilterAll {
			t.Fatalf("expected %q to cycle to All, got %q", kind, next.Kind)
		}
	}
}
