package exprgraph

import (
	"errors"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		{"", nil},
		{" \t ", nil},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 0}}},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 0}}},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 0}, {text: "0", kind: tokenNum, pos: 2}}},
		{"12.34", []lexToken{{text: "12.34", kind: tokenNum, pos: 0}}},
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 0}, {text: "1", kind: tokenNum, pos: 1}}},
		// identifiers
		{"t", []lexToken{{text: "t", kind: tokenIdent, pos: 0}}},
		{"_u2", []lexToken{{text: "_u2", kind: tokenIdent, pos: 0}}},
		{"Tau", []lexToken{{text: "Tau", kind: tokenIdent, pos: 0}}},
		{"1a", []lexToken{{text: "1", kind: tokenNum, pos: 0}, {text: "a", kind: tokenIdent, pos: 1}}},
		// operators and punctuation
		{"+-*/^", []lexToken{
			{text: "+", kind: tokenOp, pos: 0},
			{text: "-", kind: tokenOp, pos: 1},
			{text: "*", kind: tokenOp, pos: 2},
			{text: "/", kind: tokenOp, pos: 3},
			{text: "^", kind: tokenOp, pos: 4},
		}},
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 0}, {text: "1", kind: tokenNum, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}},
		{"a,b", []lexToken{{text: "a", kind: tokenIdent, pos: 0}, {text: ",", kind: tokenSep, pos: 1}, {text: "b", kind: tokenIdent, pos: 2}}},
		{"sin(t)", []lexToken{
			{text: "sin", kind: tokenIdent, pos: 0},
			{text: "(", kind: tokenOpen, pos: 3},
			{text: "t", kind: tokenIdent, pos: 4},
			{text: ")", kind: tokenClose, pos: 5},
		}},
	}
	for _, c := range cases {
		scan := lex(c.src)
		for _, want := range c.tokens {
			got, err := scan.next()
			if err != nil {
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
				break
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
		got, err := scan.next()
		if err != nil {
			t.Errorf("scanning %q: error after tokens: %v", c.src, err)
		} else if got.kind != tokenEOF {
			t.Errorf("scanning %q: extra token %v", c.src, got)
		}
	}
}

func TestLexDotNeedsDigits(t *testing.T) {
	// A dot belongs to a number only between digits; anywhere else it is an
	// unrecognized character.
	cases := []struct {
		src string
		col int
	}{
		{".5", 0},
		{"12.", 2},
		{"1..2", 1},
		{"12. 5", 2},
	}
	for _, c := range cases {
		scan := lex(c.src)
		var lerr *LexError
		for {
			tok, err := scan.next()
			if err != nil {
				if !errors.As(err, &lerr) {
					t.Fatalf("scanning %q: error %v is not a LexError", c.src, err)
				}
				break
			}
			if tok.kind == tokenEOF {
				break
			}
		}
		if lerr == nil {
			t.Errorf("scanning %q: no error", c.src)
			continue
		}
		if lerr.Char != '.' || lerr.Col != c.col {
			t.Errorf("scanning %q: want error at %d, got %v at %d", c.src, c.col, lerr.Char, lerr.Col)
		}
	}
}

func TestLexError(t *testing.T) {
	cases := []struct {
		src string
		ch  rune
		col int
	}{
		{"$", '$', 0},
		{"1 + #", '#', 4},
		{"a!b", '!', 1},
		{"1\n2", '\n', 1},
	}
	for _, c := range cases {
		scan := lex(c.src)
		for {
			tok, err := scan.next()
			if err != nil {
				lerr := new(LexError)
				if !errors.As(err, &lerr) {
					t.Fatalf("scanning %q: error %v is not a LexError", c.src, err)
				}
				if lerr.Char != c.ch || lerr.Col != c.col {
					t.Errorf("scanning %q: want %q at %d, got %q at %d", c.src, c.ch, c.col, lerr.Char, lerr.Col)
				}
				if lerr.Pos() != c.col {
					t.Errorf("scanning %q: Pos() = %d, want %d", c.src, lerr.Pos(), c.col)
				}
				break
			}
			if tok.kind == tokenEOF {
				t.Errorf("scanning %q: no error before EOF", c.src)
				break
			}
		}
	}
}

func TestLexPush(t *testing.T) {
	scan := lex("1+2")
	tok, err := scan.next()
	if err != nil {
		t.Fatal(err)
	}
	scan.push(tok)
	peeked, err := scan.peek()
	if err != nil {
		t.Fatal(err)
	}
	if peeked != tok {
		t.Errorf("peek returned %v, want %v", peeked, tok)
	}
	again, err := scan.next()
	if err != nil {
		t.Fatal(err)
	}
	if again != tok {
		t.Errorf("next after push returned %v, want %v", again, tok)
	}
}
