package dialog

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/milosmiric/ratado-sub000/internal/model"
)

var captureProjects = []model.Project{
	{ID: model.InboxProjectID, Name: "Inbox"},
	{ID: "p1", Name: "Backend"},
	{ID: "p2", Name: "Frontend"},
}

func newCapture() *QuickCapture {
	c := NewQuickCapture(captureProjects, []string{"urgent", "urgency", "bug"}, nil)
	c.Clock = func() time.Time { return time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC) }
	return c
}

func TestQuickCaptureParsesOnKeystroke(t *testing.T) {
	c := newCapture()
	c.HandleKey(keyRunes("Fix bug !1 due:tomorrow"))
	if c.Parsed.Title != "Fix bug" {
		t.Fatalf("expected title %q, got %q", "Fix bug", c.Parsed.Title)
	}
	if c.Parsed.Priority != model.PriorityUrgent {
		t.Fatalf("expected Urgent, got %q", c.Parsed.Priority)
	}
	if c.Parsed.DueDate == nil {
		t.Fatal("expected resolved due date")
	}
}

func TestQuickCaptureProjectAcceptance(t *testing.T) {
	c := newCapture()
	c.HandleKey(keyRunes("Fix @Ba"))
	if c.Sugg.IsEmpty() || c.Sugg.Kind != "project" {
		t.Fatalf("expected project suggestions, got %+v", c.Sugg)
	}
	if top, _ := c.Sugg.Current(); top != "Backend" {
		t.Fatalf("expected Backend on top, got %q", top)
	}

	if got := c.HandleKey(key(tea.KeyTab)); got != ActionNone {
		t.Fatalf("expected acceptance, got %v", got)
	}
	if c.Input.Value() != "Fix" {
		t.Fatalf("expected token removed, got %q", c.Input.Value())
	}
	if c.Input.Position() != 3 {
		t.Fatalf("expected cursor at removal point, got %d", c.Input.Position())
	}
	if c.ExplicitProject != "Backend" {
		t.Fatalf("expected explicit project, got %q", c.ExplicitProject)
	}
	if c.EffectiveProjectName() != "Backend" {
		t.Fatalf("expected effective project Backend, got %q", c.EffectiveProjectName())
	}

	if got := c.HandleKey(key(tea.KeyEnter)); got != ActionSubmit {
		t.Fatalf("expected submit, got %v", got)
	}
}

func TestQuickCaptureNewAtClearsExplicitProject(t *testing.T) {
	c := newCapture()
	c.HandleKey(keyRunes("Fix @Ba"))
	c.HandleKey(key(tea.KeyTab))
	if c.ExplicitProject != "Backend" {
		t.Fatalf("expected explicit project, got %q", c.ExplicitProject)
	}

	c.HandleKey(keyRunes(" @Fr"))
	if c.ExplicitProject != "" {
		t.Fatalf("expected a new @ token to clear the explicit project, got %q", c.ExplicitProject)
	}
	if c.EffectiveProjectName() != "Fr" {
		t.Fatalf("expected the raw token to win, got %q", c.EffectiveProjectName())
	}
}

func TestQuickCaptureTagAcceptance(t *testing.T) {
	c := newCapture()
	c.HandleKey(keyRunes("call mom #urg"))
	if c.Sugg.IsEmpty() || c.Sugg.Kind != "tag" {
		t.Fatalf("expected tag suggestions, got %+v", c.Sugg)
	}
	c.HandleKey(key(tea.KeyTab))
	if c.Input.Value() != "call mom #urgent" {
		t.Fatalf("expected canonical tag, got %q", c.Input.Value())
	}
	if c.Input.Position() != len("call mom #urgent") {
		t.Fatalf("expected cursor at end of replacement, got %d", c.Input.Position())
	}
	if len(c.Parsed.Tags) != 1 || c.Parsed.Tags[0] != "urgent" {
		t.Fatalf("expected parsed tag, got %v", c.Parsed.Tags)
	}
}

func TestQuickCapturePrioritySuggestions(t *testing.T) {
	c := newCapture()
	c.HandleKey(keyRunes("task !"))
	if len(c.Sugg.Items) != 4 {
		t.Fatalf("expected four digit candidates, got %v", c.Sugg.Items)
	}
	c.Sugg.MoveNext()
	c.HandleKey(key(tea.KeyTab))
	if c.Input.Value() != "task !2" {
		t.Fatalf("expected !2 inserted, got %q", c.Input.Value())
	}
	if c.Parsed.Priority != model.PriorityHigh {
		t.Fatalf("expected High, got %q", c.Parsed.Priority)
	}
}

func TestQuickCaptureEscDismissesSuggestionsFirst(t *testing.T) {
	c := newCapture()
	c.HandleKey(keyRunes("Fix @Ba"))
	if got := c.HandleKey(key(tea.KeyEsc)); got != ActionNone {
		t.Fatalf("expected esc to dismiss suggestions, got %v", got)
	}
	if !c.Sugg.IsEmpty() {
		t.Fatalf("expected suggestions dismissed, got %+v", c.Sugg)
	}
	if got := c.HandleKey(key(tea.KeyEsc)); got != ActionCancel {
		t.Fatalf("expected cancel, got %v", got)
	}
}

func TestQuickCaptureToTask(t *testing.T) {
	c := newCapture()
	c.HandleKey(keyRunes("Fix @Ba"))
	c.HandleKey(key(tea.KeyTab))
	task := c.ToTask()
	if task == nil {
		t.Fatal("expected a task")
	}
	if task.Title != "Fix" || task.ProjectID != "p1" {
		t.Fatalf("expected Fix in Backend, got %+v", task)
	}

	c = newCapture()
	c.HandleKey(keyRunes("@Backend"))
	if c.ToTask() != nil {
		t.Fatal("expected nil task for empty title")
	}
}
