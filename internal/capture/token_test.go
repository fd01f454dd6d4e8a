package capture

import "testing"

func TestActiveTokenAt(t *testing.T) {
	cases := []struct {
		text   string
		cursor int
		kind   TokenKind
		query  string
		start  int
	}{
		{"Fix @Back", 9, TokenProject, "Back", 4},
		{"Fix #ur", 7, TokenTag, "ur", 4},
		{"Fix !1", 6, TokenPriority, "1", 4},
		{"@Back more", 5, TokenProject, "Back", 0},
		{"Fix @", 5, TokenProject, "", 4},
	}
	for _, tc := range cases {
		tok, ok := ActiveTokenAt(tc.text, tc.cursor)
		if !ok {
			t.Fatalf("%q@%d: expected an active token", tc.text, tc.cursor)
		}
		if tok.Kind != tc.kind || tok.Query != tc.query || tok.Start != tc.start || tok.End != tc.cursor {
			t.Fatalf("%q@%d: unexpected token %+v", tc.text, tc.cursor, tok)
		}
	}
}

func TestActiveTokenAtNoToken(t *testing.T) {
	cases := []struct {
		text   string
		cursor int
	}{
		{"plain words", 11},
		{"Fix @Back ", 10}, // cursor right after a space
		{"", 0},
		{`Fix \@john`, 10}, // escaped prefix is never active
		{"Fix @Back", 4},   // cursor at token start
	}
	for _, tc := range cases {
		if tok, ok := ActiveTokenAt(tc.text, tc.cursor); ok {
			t.Fatalf("%q@%d: expected no active token, got %+v", tc.text, tc.cursor, tok)
		}
	}
}

func TestActiveTokenMidToken(t *testing.T) {
	// The span ends at the cursor even when more of the word follows.
	tok, ok := ActiveTokenAt("Fix @Backend now", 9)
	if !ok {
		t.Fatal("expected an active token")
	}
	if tok.Query != "Back" || tok.Start != 4 || tok.End != 9 {
		t.Fatalf("unexpected token %+v", tok)
	}
}

func TestReplaceTokenRemoval(t *testing.T) {
	tok, ok := ActiveTokenAt("Fix @Back", 9)
	if !ok {
		t.Fatal("expected an active token")
	}
	text, cursor := ReplaceToken("Fix @Back", tok, "")
	if text != "Fix" {
		t.Fatalf("expected %q, got %q", "Fix", text)
	}
	if cursor != 3 {
		t.Fatalf("expected cursor at removal point 3, got %d", cursor)
	}
}

func TestReplaceTokenRemovalKeepsTrailingWords(t *testing.T) {
	tok, ok := ActiveTokenAt("Fix @Back today", 9)
	if !ok {
		t.Fatal("expected an active token")
	}
	text, cursor := ReplaceToken("Fix @Back today", tok, "")
	if text != "Fix today" {
		t.Fatalf("expected %q, got %q", "Fix today", text)
	}
	if cursor != 4 {
		t.Fatalf("expected cursor at start of removed span, got %d", cursor)
	}
}

func TestReplaceTokenSubstitution(t *testing.T) {
	tok, ok := ActiveTokenAt("Fix #urg later", 8)
	if !ok {
		t.Fatal("expected an active token")
	}
	text, cursor := ReplaceToken("Fix #urg later", tok, "#urgent")
	if text != "Fix #urgent later" {
		t.Fatalf("expected canonical substitution, got %q", text)
	}
	if cursor != len("Fix #urgent") {
		t.Fatalf("expected cursor at end of replacement, got %d", cursor)
	}
}

func TestReplaceTokenNormalizesWhitespace(t *testing.T) {
	input := "  Fix   @Back   now  "
	tok, ok := ActiveTokenAt(input, 13)
	if !ok {
		t.Fatal("expected an active token")
	}
	text, cursor := ReplaceToken(input, tok, "")
	if text != "Fix now" {
		t.Fatalf("expected collapsed whitespace, got %q", text)
	}
	if cursor != 4 {
		t.Fatalf("expected cursor before %q, got %d", "now", cursor)
	}
}

func TestReplaceTokenMultiByte(t *testing.T) {
	input := "écrire @Back"
	tok, ok := ActiveTokenAt(input, 12)
	if !ok {
		t.Fatal("expected an active token")
	}
	if tok.Start != 7 {
		t.Fatalf("expected rune offset 7, got %d", tok.Start)
	}
	text, cursor := ReplaceToken(input, tok, "")
	if text != "écrire" {
		t.Fatalf("expected %q, got %q", "écrire", text)
	}
	if cursor != 6 {
		t.Fatalf("expected rune cursor 6, got %d", cursor)
	}
}
