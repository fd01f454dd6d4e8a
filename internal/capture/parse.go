// Package capture implements the quick-capture micro-language: a single line
// of free text parsed into a structured task draft, plus the cursor-relative
// token machinery that drives autocomplete.
package capture

import (
	"strings"
	"time"

	"github.com/milosmiric/ratado-sub000/internal/dates"
	"github.com/milosmiric/ratado-sub000/internal/model"
)

// ParsedCapture is recomputed from scratch on every keystroke; it carries no
// state between edits.
type ParsedCapture struct {
	Title       string
	ProjectName string
	Tags        []string
	Priority    model.Priority
	DueDateText string
	DueDate     *time.Time
}

// Parse splits input on whitespace and classifies each word by prefix:
// @name project, #tag tag, !1..!4 priority, due:rest due date, \@ and \#
// unescape into the title. Anything unclassified joins the title. Repeated
// project/priority/due tokens keep the last occurrence.
func Parse(input string, now time.Time) ParsedCapture {
	var out ParsedCapture
	var titleWords []string

	for _, word := range strings.Fields(input) {
		switch {
		case strings.HasPrefix(word, `\@`), strings.HasPrefix(word, `\#`):
			titleWords = append(titleWords, word[1:])
		case strings.HasPrefix(word, "@"):
			name := word[1:]
			if name == "" {
				titleWords = append(titleWords, word)
				continue
			}
			out.ProjectName = name
		case strings.HasPrefix(word, "#"):
			name := word[1:]
			if name == "" {
				titleWords = append(titleWords, word)
				continue
			}
			out.Tags = append(out.Tags, name)
		case strings.HasPrefix(word, "!"):
			priority, ok := priorityFromDigit(word[1:])
			if !ok {
				titleWords = append(titleWords, word)
				continue
			}
			out.Priority = priority
		case strings.HasPrefix(word, "due:"):
			rest := word[len("due:"):]
			if rest == "" {
				titleWords = append(titleWords, word)
				continue
			}
			out.DueDateText = rest
			if resolved, ok := dates.ParseDueDate(rest, now); ok {
				out.DueDate = &resolved
			} else {
				out.DueDate = nil
			}
		default:
			titleWords = append(titleWords, word)
		}
	}

	out.Title = strings.Join(titleWords, " ")
	return out
}

// priorityFromDigit maps the capture shorthand: 1=Urgent, 2=High, 3=Medium,
// 4=Low. Everything else is not a priority token.
func priorityFromDigit(digit string) (model.Priority, bool) {
	switch digit {
	case "1":
		return model.PriorityUrgent, true
	case "2":
		return model.PriorityHigh, true
	case "3":
		return model.PriorityMedium, true
	case "4":
		return model.PriorityLow, true
	default:
		return "", false
	}
}
