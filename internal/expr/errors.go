package expr

import (
	"errors"
	"strconv"
)

// Kind classifies evaluation failures. A Kind is itself an error, which makes
// it usable as the target of errors.Is.
type Kind int

const (
	// InvalidCharacter is a character outside of digits, '.', "+-*/",
	// parentheses and whitespace.
	InvalidCharacter Kind = iota + 1
	// MismatchedParentheses is a ')' without '(' or a '(' that is never closed.
	MismatchedParentheses
	// MalformedNumber is a number token that does not parse, e.g. "1.2.3".
	MalformedNumber
	// InsufficientOperands is an operator with fewer than two values to
	// work on, e.g. "2*".
	InsufficientOperands
	// MalformedExpression is a postfix sequence that does not reduce to
	// exactly one value, e.g. "2 3" or "()".
	MalformedExpression
	// DivisionByZero is a division whose right operand is zero.
	DivisionByZero
	// NonFiniteResult is an operation that overflowed to infinity.
	NonFiniteResult
)

func (k Kind) String() string {
	switch k {
	case InvalidCharacter:
		return "invalid character"
	case MismatchedParentheses:
		return "mismatched parentheses"
	case MalformedNumber:
		return "malformed number"
	case InsufficientOperands:
		return "missing operand"
	case MalformedExpression:
		return "malformed expression"
	case DivisionByZero:
		return "division by zero"
	case NonFiniteResult:
		return "result out of range"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k Kind) Error() string {
	return k.String()
}

// Error is an evaluation failure.
type Error struct {
	Kind Kind
	// Pos is the position of the offending token as the number of runes up
	// to and including its first character. It is zero for failures that
	// concern the expression as a whole.
	Pos int
	// Text is the offending token, if any.
	Text string
}

func (err *Error) Error() string {
	msg := err.Kind.String()
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	if err.Pos > 0 {
		return strconv.Itoa(err.Pos) + ": " + msg
	}
	return msg
}

func (err *Error) Unwrap() error {
	return err.Kind
}

// KindOf returns the Kind of err, or zero if err did not come from this
// package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return 0
}
