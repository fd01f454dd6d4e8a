package dialog

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/milosmiric/ratado-sub000/internal/model"
)

type FilterSortColumn int

const (
	ColumnFilter FilterSortColumn = iota
	ColumnSort
)

// FilterSortFilters is the list shown in the dialog's filter column. Wider
// than the single-key cycle but still a closed, parameterless set; the
// project/tag/priority filters are reached through other paths.
func FilterSortFilters() []model.Filter {
	return []model.Filter{
		{Kind: model.FilterAll},
		{Kind: model.FilterPending},
		{Kind: model.FilterInProgress},
		{Kind: model.FilterCompleted},
		{Kind: model.FilterArchived},
		{Kind: model.FilterDueToday},
		{Kind: model.FilterDueThisWeek},
		{Kind: model.FilterOverdue},
	}
}

// FilterSort is the two-column filter and sort picker; Tab switches columns.
type FilterSort struct {
	Column      FilterSortColumn
	Filters     []model.Filter
	Sorts       []model.SortOrder
	FilterIndex int
	SortIndex   int
}

func NewFilterSort(current model.Filter, sort model.SortOrder) *FilterSort {
	d := &FilterSort{
		Filters: FilterSortFilters(),
		Sorts:   model.SortOrders(),
	}
	for i, f := range d.Filters {
		if f.Kind == current.Kind {
			d.FilterIndex = i
			break
		}
	}
	for i, s := range d.Sorts {
		if s == sort {
			d.SortIndex = i
			break
		}
	}
	return d
}

func (d *FilterSort) HandleKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "esc":
		return ActionCancel
	case "enter":
		return ActionSubmit
	case "tab", "shift+tab", "left", "right", "h", "l":
		if d.Column == ColumnFilter {
			d.Column = ColumnSort
		} else {
			d.Column = ColumnFilter
		}
	case "down", "j":
		d.move(1)
	case "up", "k":
		d.move(-1)
	}
	return ActionNone
}

func (d *FilterSort) move(delta int) {
	if d.Column == ColumnFilter {
		n := len(d.Filters)
		d.FilterIndex = (d.FilterIndex + delta + n) % n
		return
	}
	n := len(d.Sorts)
	d.SortIndex = (d.SortIndex + delta + n) % n
}

func (d *FilterSort) Chosen() (model.Filter, model.SortOrder) {
	return d.Filters[d.FilterIndex], d.Sorts[d.SortIndex]
}
