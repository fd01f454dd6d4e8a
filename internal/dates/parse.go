// Package dates resolves the free-text due dates accepted by quick capture and
// the task form. Parsing is soft: unrecognized input yields ok=false, never an
// error.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDueDate resolves text like "today", "tomorrow", "+3d", "+2w", "friday",
// "2026-08-30" or "30/08/2026" against now. Resolved dates land on end of day
// UTC so a task due "today" is not instantly overdue.
func ParseDueDate(text string, now time.Time) (time.Time, bool) {
	raw := strings.ToLower(strings.TrimSpace(text))
	if raw == "" {
		return time.Time{}, false
	}
	now = now.UTC()

	switch raw {
	case "today", "tod":
		return endOfDay(now), true
	case "tomorrow", "tom", "tmr":
		return endOfDay(now.AddDate(0, 0, 1)), true
	case "next week", "nextweek":
		return endOfDay(now.AddDate(0, 0, 7)), true
	case "next month", "nextmonth":
		return endOfDay(now.AddDate(0, 1, 0)), true
	}

	if strings.HasPrefix(raw, "+") {
		if v, ok := parseRelativeOffset(raw[1:]); ok {
			return endOfDay(now.AddDate(0, 0, v)), true
		}
		return time.Time{}, false
	}

	if wd, ok := parseWeekday(raw); ok {
		days := int(wd-now.Weekday()+7) % 7
		if days == 0 {
			days = 7 // "friday" on a Friday means next Friday
		}
		return endOfDay(now.AddDate(0, 0, days)), true
	}

	for _, layout := range []string{"2006-01-02", "2006/01/02", "02/01/2006", "2/1/2006"} {
		if parsed, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return endOfDay(parsed), true
		}
	}

	return time.Time{}, false
}

func parseRelativeOffset(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	unit := raw[len(raw)-1]
	n, err := strconv.Atoi(raw[:len(raw)-1])
	if err != nil || n < 0 {
		return 0, false
	}
	switch unit {
	case 'd':
		return n, true
	case 'w':
		return n * 7, true
	default:
		return 0, false
	}
}

func parseWeekday(raw string) (time.Weekday, bool) {
	switch raw {
	case "mon", "monday":
		return time.Monday, true
	case "tue", "tuesday":
		return time.Tuesday, true
	case "wed", "wednesday":
		return time.Wednesday, true
	case "thu", "thursday":
		return time.Thursday, true
	case "fri", "friday":
		return time.Friday, true
	case "sat", "saturday":
		return time.Saturday, true
	case "sun", "sunday":
		return time.Sunday, true
	default:
		return 0, false
	}
}

func endOfDay(v time.Time) time.Time {
	y, m, d := v.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
}

// Humanize renders a due instant relative to now for the task list.
func Humanize(due time.Time, now time.Time) string {
	due = due.UTC()
	now = now.UTC()
	days := daysBetween(now, due)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days < -1:
		return fmt.Sprintf("%dd overdue", -days)
	case days < 7:
		return strings.ToLower(due.Weekday().String())
	default:
		return due.Format("Jan 2")
	}
}

func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
