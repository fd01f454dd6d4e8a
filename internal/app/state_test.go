package app

import (
	"testing"
	"time"

	"github.com/milosmiric/ratado-sub000/internal/model"
)

var stateNow = time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

func newTestState() *State {
	tasks := []model.Task{
		task("t1", "Alpha", "p1", stateNow.Add(-3*time.Hour)),
		task("t2", "Beta", "p1", stateNow.Add(-2*time.Hour)),
		task("t3", "Gamma", model.InboxProjectID, stateNow.Add(-time.Hour)),
	}
	projects := []model.Project{
		{ID: model.InboxProjectID, Name: "Inbox"},
		{ID: "p1", Name: "Backend"},
	}
	s := NewState(tasks, projects, nil)
	s.Clock = func() time.Time { return stateNow }
	return s
}

func task(id, title, projectID string, created time.Time) model.Task {
	return model.Task{
		ID:        id,
		Title:     title,
		Priority:  model.PriorityMedium,
		Status:    model.StatusPending,
		ProjectID: projectID,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestTaskNavigationWraps(t *testing.T) {
	s := newTestState()
	if s.TaskIndex != 0 {
		t.Fatalf("expected initial selection 0, got %d", s.TaskIndex)
	}
	s.SelectNextTask()
	s.SelectNextTask()
	s.SelectNextTask()
	if s.TaskIndex != 0 {
		t.Fatalf("expected three nexts in a 3-task list to wrap to 0, got %d", s.TaskIndex)
	}
	s.SelectPrevTask()
	if s.TaskIndex != 2 {
		t.Fatalf("expected prev from 0 to wrap to last, got %d", s.TaskIndex)
	}
}

func TestProjectNavigationWraps(t *testing.T) {
	s := newTestState()
	s.SelectNextProject()
	s.SelectNextProject()
	s.SelectNextProject()
	if s.ProjectIndex != 0 {
		t.Fatalf("expected wrap back to All Tasks, got %d", s.ProjectIndex)
	}
	s.SelectPrevProject()
	if s.ProjectIndex != len(s.Projects) {
		t.Fatalf("expected wrap to last project, got %d", s.ProjectIndex)
	}
}

func TestVisibleTasksProjectScope(t *testing.T) {
	s := newTestState()
	if got := len(s.VisibleTasks()); got != 3 {
		t.Fatalf("expected all tasks visible, got %d", got)
	}
	s.ProjectIndex = 2 // Backend
	visible := s.VisibleTasks()
	if len(visible) != 2 {
		t.Fatalf("expected project scope, got %d tasks", len(visible))
	}
	for _, task := range visible {
		if task.ProjectID != "p1" {
			t.Fatalf("unexpected task %q in scope", task.ID)
		}
	}
}

func TestSelectionClampsWhenListShrinks(t *testing.T) {
	s := newTestState()
	s.TaskIndex = 2
	s.Filter = model.Filter{Kind: model.FilterCompleted}
	s.ClampSelection()
	if s.TaskIndex != 0 {
		t.Fatalf("expected empty-list selection reset, got %d", s.TaskIndex)
	}
	if _, ok := s.SelectedTask(); ok {
		t.Fatal("expected no selection in an empty visible list")
	}

	s.Filter = model.Filter{Kind: model.FilterAll}
	s.TaskIndex = 2
	s.ProjectIndex = 2
	s.ClampSelection()
	if s.TaskIndex != 1 {
		t.Fatalf("expected clamp to last valid index, got %d", s.TaskIndex)
	}
}

func TestSearchQueryFiltersVisible(t *testing.T) {
	s := newTestState()
	s.SearchQuery = "gam"
	visible := s.VisibleTasks()
	if len(visible) != 1 || visible[0].ID != "t3" {
		t.Fatalf("expected fuzzy match on Gamma, got %v", visible)
	}
}

func TestStatusExpiry(t *testing.T) {
	s := newTestState()
	s.SetStatus("saved", false)
	s.OnTick(stateNow.Add(time.Second))
	if s.Status.Text != "saved" {
		t.Fatal("expected status kept before expiry")
	}
	s.OnTick(stateNow.Add(5 * time.Second))
	if s.Status.Text != "" {
		t.Fatalf("expected status expired, got %q", s.Status.Text)
	}
}

func TestErrorStatusLandsInLog(t *testing.T) {
	s := newTestState()
	s.SetStatus("storage failed", true)
	if s.Logs.Len() != 1 {
		t.Fatalf("expected one log entry, got %d", s.Logs.Len())
	}
}

func TestLogRingBounded(t *testing.T) {
	r := NewLogRing(3)
	for i := 0; i < 5; i++ {
		r.Addf("entry %d", i)
	}
	entries := r.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected ring bounded at 3, got %d", len(entries))
	}
	if want := "entry 4"; entries[2][len(entries[2])-len(want):] != want {
		t.Fatalf("expected newest entry kept, got %q", entries[2])
	}
}

func TestProjectTagNames(t *testing.T) {
	s := newTestState()
	s.Tasks[0].Tags = []string{"api", "bug"}
	s.Tasks[1].Tags = []string{"bug", "infra"}
	s.Tasks[2].Tags = []string{"home"}
	got := s.ProjectTagNames("p1")
	want := []string{"api", "bug", "infra"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
