package compiler

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func num(v int64) Expr { return NewInteger(v) }

// TestParse verifies that Parse produces the correct AST for valid inputs.
func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Expr
	}{
		{
			name:     "Single Digit",
			input:    "1",
			expected: num(1),
		},
		{
			name:     "Parenthesised Digit",
			input:    "1 + (0) ",
			expected: NewPlus(num(1), num(0)),
		},
		{
			name:     "Multiplication Binds Tighter",
			input:    "1+2*3",
			expected: NewPlus(num(1), NewMultiply(num(2), num(3))),
		},
		{
			name:     "Multiplication First",
			input:    "1*2+3",
			expected: NewPlus(NewMultiply(num(1), num(2)), num(3)),
		},
		{
			name:     "Plus Is Left Associative",
			input:    "1+2+3",
			expected: NewPlus(NewPlus(num(1), num(2)), num(3)),
		},
		{
			name:     "Multiply Is Left Associative",
			input:    "1*2*3",
			expected: NewMultiply(NewMultiply(num(1), num(2)), num(3)),
		},
		{
			name:     "Parens Override Precedence",
			input:    "(1 + 2) * 0",
			expected: NewMultiply(NewPlus(num(1), num(2)), num(0)),
		},
		{
			name:  "Nested Groups",
			input: "(5 + 3) * ((2 + 8) + 5)",
			expected: NewMultiply(
				NewPlus(num(5), num(3)),
				NewPlus(NewPlus(num(2), num(8)), num(5)),
			),
		},
		{
			name:     "Letters And Spaces Are Ignored",
			input:    "a1 + b2 * c3",
			expected: NewPlus(num(1), NewMultiply(num(2), num(3))),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.input, err)
			}
			if !Equal(got, tc.expected) {
				t.Errorf("Parse(%q) mismatch\n got: %s\nwant: %s", tc.input, spew.Sdump(got), spew.Sdump(tc.expected))
			}
		})
	}
}

// TestParse_Errors verifies that malformed input yields no tree and the right
// error kind.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"Empty", "", ErrUnexpectedEnd},
		{"Only Junk", "hello", ErrUnexpectedEnd},
		{"Lone Plus", "+", ErrUnexpectedToken},
		{"Lone Star", "*", ErrUnexpectedToken},
		{"Dangling Plus", "1 +", ErrUnexpectedEnd},
		{"Dangling Star", "2 *", ErrUnexpectedEnd},
		{"Double Operator", "1 + * 2", ErrUnexpectedToken},
		{"Unclosed Paren", "(1 + 2", ErrMissingCloseParen},
		{"Empty Parens", "()", ErrUnexpectedToken},
		{"Stray Close", ")", ErrUnexpectedToken},
		{"Unopened Close", "1 + 2 )", ErrTrailingInput},
		{"Multi Digit", "12", ErrTrailingInput},
		{"Missing Operator", "(1)(2)", ErrTrailingInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if got != nil {
				t.Errorf("Parse(%q) returned tree %s; want nil", tc.input, got)
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.input, err, tc.want)
			}
		})
	}
}

func TestParse_AllowTrailing(t *testing.T) {
	tests := []struct {
		input    string
		expected Expr
	}{
		{"1+2 )", NewPlus(num(1), num(2))},
		{"12", num(1)},
		{"(3)(4)", num(3)},
		{"2*3 + ", nil},
	}
	for _, tc := range tests {
		got, err := Parse(tc.input, AllowTrailing())
		if tc.expected == nil {
			if err == nil {
				t.Errorf("Parse(%q, AllowTrailing) = %s; want error", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q, AllowTrailing) failed: %v", tc.input, err)
			continue
		}
		if !Equal(got, tc.expected) {
			t.Errorf("Parse(%q, AllowTrailing) = %s; want %s", tc.input, got, tc.expected)
		}
	}
}

// TestParse_LongChains builds an operator chain long enough that a
// recursive E' would be costly, and checks its shape.
func TestParse_LongChains(t *testing.T) {
	const n = 100000
	src := make([]byte, 0, 2*n)
	for i := 0; i < n; i++ {
		if i > 0 {
			src = append(src, '+')
		}
		src = append(src, '1')
	}

	got, err := Parse(string(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if Size(got) != 2*n-1 {
		t.Errorf("Size = %d; want %d", Size(got), 2*n-1)
	}
	if got.Evaluate() != n {
		t.Errorf("Evaluate = %d; want %d", got.Evaluate(), n)
	}
	if !IsPlus(got) || !IsInteger(got.(*Plus).Right) {
		t.Errorf("chain is not left-associative")
	}
}
