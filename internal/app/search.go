package app

import (
	"github.com/sahilm/fuzzy"

	"github.com/milosmiric/ratado-sub000/internal/model"
)

type taskSource []model.Task

func (s taskSource) String(i int) string { return s[i].Title }

func (s taskSource) Len() int { return len(s) }

// rankByQuery fuzzy-matches the query against task titles and returns the
// matches in relevance order. Non-matching tasks drop out entirely.
func rankByQuery(tasks []model.Task, query string) []model.Task {
	matches := fuzzy.FindFrom(query, taskSource(tasks))
	out := make([]model.Task, 0, len(matches))
	for _, m := range matches {
		out = append(out, tasks[m.Index])
	}
	return out
}
