package capture

import (
	"reflect"
	"testing"
)

func TestSuggestProjectsPhases(t *testing.T) {
	projects := []string{"Backend", "Back", "Logback", "Frontend", "backpack"}

	got := SuggestProjects("back", projects)
	want := []string{"Back", "Backend", "backpack", "Logback"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSuggestProjectsEmptyQueryListsAll(t *testing.T) {
	projects := []string{"Inbox", "Work"}
	got := SuggestProjects("", projects)
	if !reflect.DeepEqual(got, projects) {
		t.Fatalf("expected every project, got %v", got)
	}
}

func TestSuggestProjectsNoDuplicates(t *testing.T) {
	got := SuggestProjects("api", []string{"API", "api-gateway"})
	if !reflect.DeepEqual(got, []string{"API", "api-gateway"}) {
		t.Fatalf("expected each project once, got %v", got)
	}
}

func TestSuggestTagsExcludesInLine(t *testing.T) {
	all := []string{"urgent", "urgency", "bug"}
	got := SuggestTags("urg", all, []string{"Urgent"}, nil)
	if !reflect.DeepEqual(got, []string{"urgency"}) {
		t.Fatalf("expected in-line tags excluded, got %v", got)
	}
}

func TestSuggestTagsRanksProjectHistoryFirst(t *testing.T) {
	all := []string{"alpha", "beta", "gamma"}
	got := SuggestTags("a", all, nil, []string{"gamma"})
	want := []string{"gamma", "alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected project tags first, got %v", got)
	}
}

func TestSuggestPriorities(t *testing.T) {
	if got := SuggestPriorities(""); !reflect.DeepEqual(got, []string{"1", "2", "3", "4"}) {
		t.Fatalf("expected all digits, got %v", got)
	}
	if got := SuggestPriorities("2"); !reflect.DeepEqual(got, []string{"2"}) {
		t.Fatalf("expected single match, got %v", got)
	}
	if got := SuggestPriorities("9"); len(got) != 0 {
		t.Fatalf("expected no match, got %v", got)
	}
}

func TestSuggestionsNavigationWraps(t *testing.T) {
	s := Suggestions{Kind: TokenProject, Items: []string{"a", "b", "c"}}
	s.MoveNext()
	s.MoveNext()
	s.MoveNext()
	if s.Selected != 0 {
		t.Fatalf("expected wrap to 0, got %d", s.Selected)
	}
	s.MovePrev()
	if s.Selected != 2 {
		t.Fatalf("expected wrap to last, got %d", s.Selected)
	}
	cur, ok := s.Current()
	if !ok || cur != "c" {
		t.Fatalf("expected current c, got %q %v", cur, ok)
	}
}

// Accepting a suggestion yields a canonical token; reparsing and re-detecting
// at the new cursor must not produce a fresh completion loop for the same span.
func TestAcceptanceIsIdempotent(t *testing.T) {
	text := "Fix @Back now"
	tok, ok := ActiveTokenAt(text, 9)
	if !ok {
		t.Fatal("expected an active token")
	}
	next, cursor := ReplaceToken(text, tok, "@Backend")
	if next != "Fix @Backend now" {
		t.Fatalf("unexpected rewrite %q", next)
	}
	tok2, ok := ActiveTokenAt(next, cursor)
	if !ok {
		t.Fatal("expected the accepted token to remain active")
	}
	if tok2.Query != "Backend" {
		t.Fatalf("expected canonical query, got %q", tok2.Query)
	}
	again, cursor2 := ReplaceToken(next, tok2, "@Backend")
	if again != next || cursor2 != cursor {
		t.Fatalf("expected idempotent acceptance, got %q@%d", again, cursor2)
	}
}
