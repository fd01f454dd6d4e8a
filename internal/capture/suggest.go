package capture

import "strings"

// Suggestions is the autocomplete state for the active token. Items are in
// final display order; Selected indexes into Items.
type Suggestions struct {
	Kind     TokenKind
	Items    []string
	Selected int
}

func (s Suggestions) IsEmpty() bool { return len(s.Items) == 0 }

func (s *Suggestions) MoveNext() {
	if len(s.Items) == 0 {
		return
	}
	s.Selected = (s.Selected + 1) % len(s.Items)
}

func (s *Suggestions) MovePrev() {
	if len(s.Items) == 0 {
		return
	}
	s.Selected = (s.Selected - 1 + len(s.Items)) % len(s.Items)
}

func (s Suggestions) Current() (string, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Items) {
		return "", false
	}
	return s.Items[s.Selected], true
}

// SuggestProjects ranks project names for an @-token in three phases: exact
// case-insensitive match, then prefix match, then substring match. Later
// phases skip names an earlier phase already included.
func SuggestProjects(query string, projects []string) []string {
	q := strings.ToLower(query)
	var out []string
	seen := make(map[string]bool, len(projects))

	take := func(match func(name string) bool) {
		for _, name := range projects {
			if seen[name] {
				continue
			}
			if match(strings.ToLower(name)) {
				out = append(out, name)
				seen[name] = true
			}
		}
	}

	take(func(name string) bool { return name == q })
	take(func(name string) bool { return strings.HasPrefix(name, q) })
	take(func(name string) bool { return strings.Contains(name, q) })
	return out
}

// SuggestTags filters tags for a #-token by substring, excluding tags already
// present in the line. Tags historically used within the selected project rank
// ahead of the rest.
func SuggestTags(query string, allTags, inLine, projectTags []string) []string {
	q := strings.ToLower(query)
	excluded := make(map[string]bool, len(inLine))
	for _, tag := range inLine {
		excluded[strings.ToLower(tag)] = true
	}
	inProject := make(map[string]bool, len(projectTags))
	for _, tag := range projectTags {
		inProject[strings.ToLower(tag)] = true
	}

	var preferred, rest []string
	for _, tag := range allTags {
		lower := strings.ToLower(tag)
		if excluded[lower] || !strings.Contains(lower, q) {
			continue
		}
		if inProject[lower] {
			preferred = append(preferred, tag)
		} else {
			rest = append(rest, tag)
		}
	}
	return append(preferred, rest...)
}

// SuggestPriorities offers the literal candidates "1".."4" filtered by prefix.
func SuggestPriorities(query string) []string {
	var out []string
	for _, digit := range []string{"1", "2", "3", "4"} {
		if strings.HasPrefix(digit, query) {
			out = append(out, digit)
		}
	}
	return out
}
