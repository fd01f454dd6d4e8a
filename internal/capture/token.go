package capture

import "strings"

type TokenKind string

const (
	TokenProject  TokenKind = "project"
	TokenTag      TokenKind = "tag"
	TokenPriority TokenKind = "priority"
)

// ActiveToken is the word-fragment immediately before the cursor. Offsets are
// rune-based; Start points at the prefix character, End at the cursor.
type ActiveToken struct {
	Kind  TokenKind
	Query string
	Start int
	End   int
}

// ActiveTokenAt scans backward from the rune cursor to the previous space and
// classifies the fragment by its prefix. Escaped prefixes (\@, \#) are never
// active.
func ActiveTokenAt(text string, cursor int) (ActiveToken, bool) {
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	start := cursor
	for start > 0 && runes[start-1] != ' ' {
		start--
	}
	if start == cursor {
		return ActiveToken{}, false
	}
	if start > 0 && runes[start-1] == '\\' {
		return ActiveToken{}, false
	}

	fragment := string(runes[start:cursor])
	var kind TokenKind
	switch fragment[0] {
	case '@':
		kind = TokenProject
	case '#':
		kind = TokenTag
	case '!':
		kind = TokenPriority
	default:
		return ActiveToken{}, false
	}
	return ActiveToken{
		Kind:  kind,
		Query: string([]rune(fragment)[1:]),
		Start: start,
		End:   cursor,
	}, true
}

// ReplaceToken substitutes the token span (prefix included) with replacement,
// collapses whitespace runs to single spaces, trims both ends and returns the
// new text plus the deterministic cursor: start of the removed span when the
// replacement is empty, end of the replacement otherwise.
func ReplaceToken(text string, tok ActiveToken, replacement string) (string, int) {
	runes := []rune(text)
	start, end := tok.Start, tok.End
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}

	repl := []rune(replacement)
	rebuilt := make([]rune, 0, len(runes)-(end-start)+len(repl))
	rebuilt = append(rebuilt, runes[:start]...)
	rebuilt = append(rebuilt, repl...)
	rebuilt = append(rebuilt, runes[end:]...)

	marker := start + len(repl)
	if len(repl) == 0 {
		marker = start
	}
	return normalizeWhitespace(rebuilt, marker)
}

// normalizeWhitespace collapses space runs and trims ends while carrying the
// marker offset through the rewrite.
func normalizeWhitespace(runes []rune, marker int) (string, int) {
	if marker < 0 {
		marker = 0
	}
	if marker > len(runes) {
		marker = len(runes)
	}

	var out []rune
	outMarker := -1
	pendingSpace := false
	for i, r := range runes {
		if i == marker {
			outMarker = len(out)
			if pendingSpace {
				outMarker++
			}
		}
		if r == ' ' {
			if len(out) > 0 {
				pendingSpace = true
			}
			continue
		}
		if pendingSpace {
			out = append(out, ' ')
			pendingSpace = false
		}
		out = append(out, r)
	}
	if outMarker < 0 {
		outMarker = len(out)
	}
	if outMarker > len(out) {
		outMarker = len(out)
	}
	return string(out), outMarker
}

// ContainsTag reports whether name is already present in the parsed tag list,
// case-insensitively.
func ContainsTag(tags []string, name string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, name) {
			return true
		}
	}
	return false
}
