package compiler

import (
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "Empty",
			input:    "",
			expected: []Token{EOS},
		},
		{
			name:     "Only Whitespace",
			input:    " \t\n ",
			expected: []Token{EOS},
		},
		{
			name:     "All Digits",
			input:    "0123456789",
			expected: []Token{D0, D1, D2, D3, D4, D5, D6, D7, D8, D9, EOS},
		},
		{
			name:     "Operators And Parens",
			input:    "( ) + *",
			expected: []Token{OPEN, CLOSE, PLUS, MULT, EOS},
		},
		{
			name:     "Expression With Spaces",
			input:    "(5 + 3) * 2",
			expected: []Token{OPEN, D5, PLUS, D3, CLOSE, MULT, D2, EOS},
		},
		{
			name:     "Unrecognised Characters Are Skipped",
			input:    "x1 - y/2 ? ä",
			expected: []Token{D1, D2, EOS},
		},
		{
			name:     "Multi Digit Literal Splits",
			input:    "12",
			expected: []Token{D1, D2, EOS},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lex(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Lex(%q) = %v; want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestTokenizer_Lookahead(t *testing.T) {
	tok := NewTokenizer("  7*")
	if tok.Current() != D7 {
		t.Fatalf("first token = %s; want D7", tok.Current())
	}
	if tok.Pos() != 3 {
		t.Errorf("cursor after first token = %d; want 3", tok.Pos())
	}

	// Peeking does not consume.
	if tok.Current() != D7 {
		t.Errorf("second peek = %s; want D7", tok.Current())
	}

	tok.Next()
	if tok.Current() != MULT {
		t.Errorf("token = %s; want MULT", tok.Current())
	}
	if tok.Pos() != 4 {
		t.Errorf("cursor = %d; want 4", tok.Pos())
	}
}

func TestTokenizer_EOSIsSticky(t *testing.T) {
	tok := NewTokenizer("1 ")
	tok.Next()
	last := tok.Pos()
	for i := 0; i < 5; i++ {
		if tok.Current() != EOS {
			t.Fatalf("call %d: token = %s; want EOS", i, tok.Current())
		}
		if tok.Pos() < last {
			t.Fatalf("cursor regressed from %d to %d", last, tok.Pos())
		}
		last = tok.Pos()
		tok.Next()
	}
	if last != 2 {
		t.Errorf("cursor at EOS = %d; want 2", last)
	}
}

func TestTokenizer_NoRecognisedCharacters(t *testing.T) {
	tok := NewTokenizer("abc")
	if tok.Current() != EOS {
		t.Errorf("token = %s; want EOS", tok.Current())
	}
}

func TestToken_Digit(t *testing.T) {
	for d := D0; d <= D9; d++ {
		v, ok := d.Digit()
		if !ok || v != int64(d-D0) {
			t.Errorf("%s.Digit() = (%d, %v)", d, v, ok)
		}
	}
	for _, tok := range []Token{EOS, OPEN, CLOSE, PLUS, MULT} {
		if _, ok := tok.Digit(); ok {
			t.Errorf("%s.Digit() reported a digit", tok)
		}
	}
}

func TestShow(t *testing.T) {
	got := Show(Lex("(1 + 2)*0"))
	want := "OPEN;D1;PLUS;D2;CLOSE;MULT;D0;EOS"
	if got != want {
		t.Errorf("Show = %q; want %q", got, want)
	}
	if s := Token(99).String(); s != "Token(99)" {
		t.Errorf("Token(99).String() = %q", s)
	}
}
