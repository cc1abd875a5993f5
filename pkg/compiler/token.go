package compiler

import (
	"fmt"
	"strings"
)

// Token identifies a lexical unit. Tokens carry no payload: every digit has
// its own token.
type Token int

const (
	EOS Token = iota // sentinel: end of input

	// Digits, one token per decimal digit
	D0
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9

	OPEN  // (
	CLOSE // )
	PLUS  // +
	MULT  // *
)

// tokenNames is indexed by Token.
var tokenNames = [...]string{
	EOS:   "EOS",
	D0:    "D0",
	D1:    "D1",
	D2:    "D2",
	D3:    "D3",
	D4:    "D4",
	D5:    "D5",
	D6:    "D6",
	D7:    "D7",
	D8:    "D8",
	D9:    "D9",
	OPEN:  "OPEN",
	CLOSE: "CLOSE",
	PLUS:  "PLUS",
	MULT:  "MULT",
}

func (t Token) String() string {
	if int(t) >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("Token(%d)", int(t))
}

// Digit returns the value of a digit token.
func (t Token) Digit() (int64, bool) {
	if t < D0 || t > D9 {
		return 0, false
	}
	return int64(t - D0), true
}

// classify maps a source character to its token. Characters outside the
// language report false and are skipped by the tokenizer.
func classify(r rune) (Token, bool) {
	switch {
	case r >= '0' && r <= '9':
		return D0 + Token(r-'0'), true
	case r == '(':
		return OPEN, true
	case r == ')':
		return CLOSE, true
	case r == '+':
		return PLUS, true
	case r == '*':
		return MULT, true
	}
	return EOS, false
}

// Show renders a token sequence as semicolon separated names, e.g.
// "D1;PLUS;D2;EOS".
func Show(tokens []Token) string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = t.String()
	}
	return strings.Join(names, ";")
}
