package dialog

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDatePickerNavigation(t *testing.T) {
	p := NewDatePicker(time.Date(2026, 8, 23, 15, 30, 0, 0, time.UTC))
	if !p.Focused.Equal(time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected seed truncated to midnight, got %v", p.Focused)
	}

	p.HandleKey(key(tea.KeyRight))
	if p.Focused.Day() != 24 {
		t.Fatalf("expected next day, got %v", p.Focused)
	}
	p.HandleKey(key(tea.KeyDown))
	if p.Focused.Day() != 31 {
		t.Fatalf("expected a week ahead, got %v", p.Focused)
	}
	p.HandleKey(keyRunes("]"))
	if p.Focused.Month() != time.September {
		t.Fatalf("expected next month, got %v", p.Focused)
	}

	if got := p.HandleKey(key(tea.KeyEnter)); got != ActionSubmit {
		t.Fatalf("expected select, got %v", got)
	}
	if got := p.HandleKey(key(tea.KeyEsc)); got != ActionCancel {
		t.Fatalf("expected cancel, got %v", got)
	}
}

func TestDatePickerMonthGrid(t *testing.T) {
	p := NewDatePicker(time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
	grid := p.MonthGrid()
	if len(grid) != 6 {
		t.Fatalf("expected 6 week rows for August 2026, got %d", len(grid))
	}
	// August 1st 2026 is a Saturday; Monday-start rows pad five cells first.
	if !grid[0][5].Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected the 1st in the Saturday cell, got %v", grid[0][5])
	}
	for _, row := range grid {
		if len(row) != 7 {
			t.Fatalf("expected 7 cells per row, got %d", len(row))
		}
	}
	last := grid[len(grid)-1]
	if last[0].Day() != 31 {
		t.Fatalf("expected the 31st to open the final row, got %v", last[0])
	}
}
