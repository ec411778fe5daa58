package parser

import "testing"

// lexAll drains Lex() into a flat list of kinds/text pairs, stopping after
// END_OF_FILE (inclusive), for the scenario table in spec.md §8.
func lexAll(t *testing.T, input string) []Token {
	t.Helper()
	p, err := OpenString("test", []byte(input), Options{Origin: "example.com."}, nil)
	if err != nil {
		t.Fatalf("OpenString: %v", err)
	}
	defer p.Close()

	var toks []Token
	for {
		tok, err := p.Lex()
		if err != nil {
			t.Fatalf("Lex: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == KindEndOfFile {
			return toks
		}
	}
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, toks []Token, want ...Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

// S1: `a IN A 1.2.3.4\n`
func TestLex_S1(t *testing.T) {
	toks := lexAll(t, "a IN A 1.2.3.4\n")
	assertKinds(t, toks, KindContiguous, KindContiguous, KindContiguous, KindContiguous, KindLineFeed, KindEndOfFile)
	want := []string{"a", "IN", "A", "1.2.3.4"}
	for i, w := range want {
		if string(toks[i].Text) != w {
			t.Errorf("token %d: got %q, want %q", i, toks[i].Text, w)
		}
	}
}

// S2: `"hello ; world"\n`
func TestLex_S2(t *testing.T) {
	toks := lexAll(t, "\"hello ; world\"\n")
	assertKinds(t, toks, KindQuoted, KindLineFeed, KindEndOfFile)
	if string(toks[0].Text) != "hello ; world" {
		t.Errorf("got %q, want %q", toks[0].Text, "hello ; world")
	}
}

// S3: `a ; comment\nb\n`
func TestLex_S3(t *testing.T) {
	toks := lexAll(t, "a ; comment\nb\n")
	assertKinds(t, toks, KindContiguous, KindLineFeed, KindContiguous, KindLineFeed, KindEndOfFile)
	if string(toks[0].Text) != "a" || string(toks[2].Text) != "b" {
		t.Errorf("unexpected token text: %q / %q", toks[0].Text, toks[2].Text)
	}
}

// S4: `a (\n 1\n 2\n)\n` — the three interior newlines are suppressed.
func TestLex_S4(t *testing.T) {
	toks := lexAll(t, "a (\n 1\n 2\n)\n")
	assertKinds(t, toks, KindContiguous, KindContiguous, KindContiguous, KindLineFeed, KindEndOfFile)
	if string(toks[0].Text) != "a" || string(toks[1].Text) != "1" || string(toks[2].Text) != "2" {
		t.Errorf("unexpected tokens: %q %q %q", toks[0].Text, toks[1].Text, toks[2].Text)
	}
	// The final emitted LINE_FEED should report line 5 (4 newlines consumed
	// since file start: after '(\n', ' 1\n', ' 2\n', ')\n').
	if toks[3].Line != 5 {
		t.Errorf("LINE_FEED line = %d, want 5", toks[3].Line)
	}
}

// S5: `a\;b\n` — an escaped semicolon does not start a comment.
func TestLex_S5(t *testing.T) {
	toks := lexAll(t, `a\;b`+"\n")
	assertKinds(t, toks, KindContiguous, KindLineFeed, KindEndOfFile)
	if string(toks[0].Text) != `a\;b` {
		t.Errorf("got %q, want %q", toks[0].Text, `a\;b`)
	}
}

// S6: a quoted string spanning a literal newline surfaces as one QUOTED
// token followed by exactly one LINE_FEED, and the line count advances by
// the buffered newline (spec.md §3 "lines").
func TestLex_S6(t *testing.T) {
	toks := lexAll(t, "\"line1\nline2\"\n")
	assertKinds(t, toks, KindQuoted, KindLineFeed, KindEndOfFile)
	if string(toks[0].Text) != "line1\nline2" {
		t.Errorf("got %q", toks[0].Text)
	}
	// Two real '\n' bytes occur in total (one buffered inside the quoted
	// run, one the terminating record newline); f.line advances by one
	// per newline consumed from its initial value of 1.
	if toks[1].Line != 3 {
		t.Errorf("LINE_FEED line = %d, want 3", toks[1].Line)
	}
}

// Unterminated group: `a (\n` must yield SYNTAX_ERROR at EOF, line 2.
func TestLex_UnterminatedGroupIsSyntaxErrorAtLine2(t *testing.T) {
	p, err := OpenString("test", []byte("a (\n"), Options{Origin: "example.com."}, nil)
	if err != nil {
		t.Fatalf("OpenString: %v", err)
	}
	defer p.Close()

	// "a" then "(" swallowed into grouping, then no more input: the
	// materializer raises on the EOF sentinel while grouped.
	if _, err := p.Lex(); err != nil {
		t.Fatalf("unexpected error on first token: %v", err)
	}
	_, err = p.Lex()
	if err == nil {
		t.Fatal("expected a syntax error at EOF while grouped")
	}
	zerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if zerr.Code != SyntaxError {
		t.Errorf("Code = %v, want SyntaxError", zerr.Code)
	}
	if zerr.ZoneLine != 2 {
		t.Errorf("ZoneLine = %d, want 2", zerr.ZoneLine)
	}
}

// P3: for every byte c, `\c` tokenizes as a single CONTIGUOUS token and
// `"\c"` as a single QUOTED token.
func TestLex_P3_EscapeInvariance(t *testing.T) {
	for c := 0; c < 256; c++ {
		if c == '\n' {
			// The escaped-newline case is not checked here; S6 covers a
			// literal newline inside a quoted string, not an escaped one.
			continue
		}
		b := byte(c)
		input := string([]byte{'\\', b, '\n'})
		toks := lexAll(t, input)
		if len(toks) != 3 || toks[0].Kind != KindContiguous {
			t.Fatalf("byte %d: expected single CONTIGUOUS token, got %v", c, kinds(toks))
		}
		want := []byte{'\\', b}
		if string(toks[0].Text) != string(want) {
			t.Errorf("byte %d: got %q, want %q", c, toks[0].Text, want)
		}

		qinput := string([]byte{'"', '\\', b, '"', '\n'})
		qtoks := lexAll(t, qinput)
		if len(qtoks) != 3 || qtoks[0].Kind != KindQuoted {
			t.Fatalf("byte %d quoted: expected single QUOTED token, got %v", c, kinds(qtoks))
		}
	}
}

// P4: line feeds between a balanced (...) pair never appear in the stream.
func TestLex_P4_ParenSuppression(t *testing.T) {
	toks := lexAll(t, "a (\nb\nc\n) d\n")
	lineFeeds := 0
	for _, tok := range toks {
		if tok.Kind == KindLineFeed {
			lineFeeds++
		}
	}
	if lineFeeds != 1 {
		t.Errorf("expected exactly 1 LINE_FEED (only the one after the group), got %d", lineFeeds)
	}
}

func TestLex_StartOfLineTracksRecordBoundaries(t *testing.T) {
	toks := lexAll(t, "a b\n c\n")
	// "a" starts the first record; "b" continues it; "c" starts a new
	// record only if it is NOT indented — here it is indented (" c"), so
	// start-of-line should be false for it (continuing owner "a").
	if !toks[0].StartOfLine {
		t.Error("expected first token to be start-of-line")
	}
	if toks[1].StartOfLine {
		t.Error("expected second token NOT to be start-of-line")
	}
}
