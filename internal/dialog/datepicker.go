package dialog

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DatePicker is the month-grid picker nested inside the task form. While it
// is open the form routes every key here; Submit means a date was selected.
type DatePicker struct {
	Focused time.Time
}

func NewDatePicker(seed time.Time) *DatePicker {
	y, m, d := seed.UTC().Date()
	return &DatePicker{Focused: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (p *DatePicker) HandleKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "esc":
		return ActionCancel
	case "enter":
		return ActionSubmit
	case "left", "h":
		p.Focused = p.Focused.AddDate(0, 0, -1)
	case "right", "l":
		p.Focused = p.Focused.AddDate(0, 0, 1)
	case "up", "k":
		p.Focused = p.Focused.AddDate(0, 0, -7)
	case "down", "j":
		p.Focused = p.Focused.AddDate(0, 0, 7)
	case "pgup", "[":
		p.Focused = p.Focused.AddDate(0, -1, 0)
	case "pgdown", "]":
		p.Focused = p.Focused.AddDate(0, 1, 0)
	case "t":
		now := time.Now().UTC()
		y, m, d := now.Date()
		p.Focused = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return ActionNone
}

// MonthGrid returns the focused month as week rows of days, padded with zero
// times so every row has seven cells. Weeks start on Monday.
func (p *DatePicker) MonthGrid() [][]time.Time {
	first := time.Date(p.Focused.Year(), p.Focused.Month(), 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7

	var grid [][]time.Time
	row := make([]time.Time, offset, 7)
	for day := first; day.Month() == p.Focused.Month(); day = day.AddDate(0, 0, 1) {
		row = append(row, day)
		if len(row) == 7 {
			grid = append(grid, row)
			row = make([]time.Time, 0, 7)
		}
	}
	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, time.Time{})
		}
		grid = append(grid, row)
	}
	return grid
}
