package expr

import (
	"math"
	"testing"
)

// Operands for expected values that must be computed in float64 rather than
// as exact constants.
var (
	four, five, six    = 4.0, 5.0, 6.0
	pointOne, pointTwo = 0.1, 0.2
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"1", 1},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"-5+3", -2},
		{"4-5-6", 4 - 5 - 6},
		{"4/5/6", four / five / six},
		{"8/4*2", 4},
		{"2*-3", -6},
		{"2--3", 5},
		{"(-3)*(-3)", 9},
		{"1.5+.5", 2},
		{"5.*2", 10},
		{" 1 +  2 ", 3},
		{"((((7))))", 7},
		{"1+(2-(3*4))/5", 1 + (2-(3*4))/5.0},
		{"0.1+0.2", pointOne + pointTwo},
		{"-0/5", 0},
	}
	for _, c := range cases {
		got, err := Evaluate(c.src)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", c.src, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %v, want %v", c.src, got, c.want)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		src  string
		kind Kind
	}{
		{"5/0", DivisionByZero},
		{"5/(2-2)", DivisionByZero},
		{"5/-0", DivisionByZero},
		{"2+(3*4", MismatchedParentheses},
		{"2+3)", MismatchedParentheses},
		{"2+a", InvalidCharacter},
		{"1.2.3+1", MalformedNumber},
		{".", MalformedNumber},
		{"-.", MalformedNumber},
		{"2*", InsufficientOperands},
		{"*2", InsufficientOperands},
		{"-(2)", InsufficientOperands},
		{"-", InsufficientOperands},
		{"2 3", MalformedExpression},
		{"()", MalformedExpression},
		{"", MalformedExpression},
		{"1" + zeros(400), MalformedNumber},
		{"1" + zeros(300) + "*1" + zeros(300), NonFiniteResult},
	}
	for _, c := range cases {
		_, err := Evaluate(c.src)
		checkError(t, c.src, err, c.kind)
	}
}

func TestEvalPostfix(t *testing.T) {
	postfix := []Token{
		{Type: Number, Text: "7", Pos: 1},
		{Type: Number, Text: "2", Pos: 3},
		{Type: Operator, Text: "-", Pos: 2},
	}
	got, err := Eval(postfix)
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Fatalf("got %v, want 5 (left operand is the one pushed first)", got)
	}

	_, err = Eval([]Token{{Type: LeftParen, Text: "(", Pos: 1}})
	checkError(t, "(", err, MalformedExpression)
	_, err = Eval([]Token{{Type: Number, Text: "1"}, {Type: Number, Text: "1"}, {Type: Operator, Text: "%"}})
	checkError(t, "1 1 %", err, MalformedExpression)
}

func TestEvaluateFinite(t *testing.T) {
	for _, src := range []string{"1/3", "-1/3*3", "9999999999*9999999999"} {
		v, err := Evaluate(src)
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Fatalf("%q: non-finite result %v", src, v)
		}
	}
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
