package dialog

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMoveToProjectPicker(t *testing.T) {
	d := NewMoveToProject("t1", captureProjects)
	d.HandleKey(key(tea.KeyDown))
	if p, ok := d.Selected(); !ok || p.ID != "p1" {
		t.Fatalf("expected p1 selected, got %+v ok=%v", p, ok)
	}
	d.HandleKey(key(tea.KeyUp))
	d.HandleKey(key(tea.KeyUp))
	if p, _ := d.Selected(); p.ID != "p2" {
		t.Fatalf("expected wrap to last project, got %q", p.ID)
	}
	if got := d.HandleKey(key(tea.KeyEnter)); got != ActionSubmit {
		t.Fatalf("expected submit, got %v", got)
	}
}

func TestMoveToProjectEmptyList(t *testing.T) {
	d := NewMoveToProject("t1", nil)
	d.HandleKey(key(tea.KeyDown))
	if _, ok := d.Selected(); ok {
		t.Fatal("expected no selection for an empty list")
	}
	if got := d.HandleKey(key(tea.KeyEnter)); got != ActionCancel {
		t.Fatalf("expected enter to back out, got %v", got)
	}
}
