package app

import (
	"fmt"
	"time"
)

// LogRing is the bounded in-memory diagnostics buffer behind the DebugLogs
// view. Oldest entries fall off the front.
type LogRing struct {
	max     int
	entries []string
}

func NewLogRing(max int) *LogRing {
	if max < 1 {
		max = 1
	}
	return &LogRing{max: max}
}

func (r *LogRing) Add(line string) {
	stamped := time.Now().UTC().Format("15:04:05") + " " + line
	r.entries = append(r.entries, stamped)
	if len(r.entries) > r.max {
		r.entries = r.entries[len(r.entries)-r.max:]
	}
}

func (r *LogRing) Addf(format string, args ...any) {
	r.Add(fmt.Sprintf(format, args...))
}

func (r *LogRing) Entries() []string {
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *LogRing) Len() int { return len(r.entries) }
