package app

// Inline buffer editing for search and edit modes. Offsets are rune-based so
// multi-byte glyphs move as single units.

func (s *State) InsertRune(r rune) {
	runes := []rune(s.Input)
	if s.InputCursor < 0 {
		s.InputCursor = 0
	}
	if s.InputCursor > len(runes) {
		s.InputCursor = len(runes)
	}
	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:s.InputCursor]...)
	out = append(out, r)
	out = append(out, runes[s.InputCursor:]...)
	s.Input = string(out)
	s.InputCursor++
}

func (s *State) Backspace() {
	runes := []rune(s.Input)
	if s.InputCursor <= 0 || s.InputCursor > len(runes) {
		return
	}
	s.Input = string(append(runes[:s.InputCursor-1:s.InputCursor-1], runes[s.InputCursor:]...))
	s.InputCursor--
}

func (s *State) CursorLeft() {
	if s.InputCursor > 0 {
		s.InputCursor--
	}
}

func (s *State) CursorRight() {
	if s.InputCursor < len([]rune(s.Input)) {
		s.InputCursor++
	}
}

func (s *State) ResetInput(value string) {
	s.Input = value
	s.InputCursor = len([]rune(value))
}
