package compiler

// Tokenizer turns source text into tokens on demand, holding a single token of
// lookahead. Unrecognised characters, whitespace included, are skipped.
type Tokenizer struct {
	src     []rune
	pos     int // index of the next rune to consume
	current Token
}

// NewTokenizer returns a tokenizer whose lookahead already holds the first
// token of input (EOS for input without a recognised character).
func NewTokenizer(input string) *Tokenizer {
	t := &Tokenizer{src: []rune(input)}
	t.current = t.scan()
	return t
}

// Current returns the lookahead token without consuming it.
func (t *Tokenizer) Current() Token {
	return t.current
}

// Next replaces the lookahead with the following token. Once EOS is reached
// every further call leaves EOS in place.
func (t *Tokenizer) Next() {
	t.current = t.scan()
}

// Pos returns the cursor: one past the last rune consumed.
func (t *Tokenizer) Pos() int {
	return t.pos
}

// scan advances past skipped characters and classifies the next recognised one.
func (t *Tokenizer) scan() Token {
	for t.pos < len(t.src) {
		r := t.src[t.pos]
		t.pos++
		if tok, ok := classify(r); ok {
			return tok
		}
	}
	return EOS
}

// Lex tokenizes the whole input. The result always ends with exactly one EOS.
func Lex(input string) []Token {
	t := NewTokenizer(input)
	var tokens []Token
	for {
		tok := t.Current()
		tokens = append(tokens, tok)
		if tok == EOS {
			return tokens
		}
		t.Next()
	}
}
