package dialog

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmMnemonics(t *testing.T) {
	c := NewConfirm("Delete task", "Really delete?", "t1")
	if got := c.HandleKey(keyRunes("y")); got != ActionSubmit || !c.Accepted {
		t.Fatalf("expected accepted submit, got %v accepted=%v", got, c.Accepted)
	}

	c = NewConfirm("Delete task", "Really delete?", "t1")
	if got := c.HandleKey(keyRunes("n")); got != ActionSubmit || c.Accepted {
		t.Fatalf("expected declined submit, got %v accepted=%v", got, c.Accepted)
	}
}

func TestConfirmToggleAndEnter(t *testing.T) {
	c := NewConfirm("Delete task", "Really delete?", "t1")
	c.HandleKey(key(tea.KeyTab))
	if !c.Accepted {
		t.Fatal("expected tab to toggle selection")
	}
	c.HandleKey(key(tea.KeyLeft))
	if c.Accepted {
		t.Fatal("expected arrow to toggle back")
	}
	if got := c.HandleKey(key(tea.KeyEnter)); got != ActionSubmit {
		t.Fatalf("expected submit of current selection, got %v", got)
	}
	if got := c.HandleKey(key(tea.KeyEsc)); got != ActionCancel {
		t.Fatalf("expected cancel, got %v", got)
	}
}
