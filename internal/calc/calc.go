// Package calc implements the editing state of a calculator session.
package calc

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fjl/giocalc/internal/expr"
)

// Session is the expression buffer of a calculator. Keypad and keyboard
// handlers edit it through the methods below, which keep the text sane
// enough to evaluate.
//
// A Session is not safe for concurrent use. Hosts that receive input from
// several sources serialize it, see package dispatch.
type Session struct {
	input string
}

// Text returns the current expression.
func (s *Session) Text() string {
	return s.input
}

// AppendDigitOrDot processes an input digit or decimal point. It returns
// false if the input was ignored.
//
// A second decimal point in the same number is ignored. A decimal point
// that would start a number is written as "0.".
func (s *Session) AppendDigitOrDot(ch rune) bool {
	switch {
	case ch == '.':
		num := s.lastSegment()
		if strings.IndexByte(num, '.') >= 0 {
			return false
		}
		if num == "" {
			s.input += "0"
		}
		s.input += "."
		return true
	case ch >= '0' && ch <= '9':
		s.input += string(ch)
		return true
	default:
		return false
	}
}

// lastSegment returns the text after the last operator or parenthesis.
func (s *Session) lastSegment() string {
	i := strings.LastIndexAny(s.input, expr.Operators+"()")
	return strings.TrimSpace(s.input[i+1:])
}

// SetOperator processes an operator key. It returns false if the input was
// ignored.
//
// On an empty buffer only '-' is accepted, starting a negative number. An
// operator directly following another one replaces it.
func (s *Session) SetOperator(op rune) bool {
	if !isOperator(op) {
		return false
	}
	if s.input == "" {
		if op != '-' {
			return false
		}
		s.input = "-"
		return true
	}
	if last, size := utf8.DecodeLastRuneInString(s.input); isOperator(last) {
		s.input = s.input[:len(s.input)-size]
	}
	s.input += string(op)
	return true
}

// Evaluate computes the expression. On success, the buffer is replaced by
// the formatted result, which is also returned, so that further input
// continues from it. On failure the buffer is left as is.
//
// Evaluating an empty buffer does nothing and returns "".
func (s *Session) Evaluate() (string, error) {
	if strings.TrimSpace(s.input) == "" {
		return "", nil
	}
	if err := expr.Validate(s.input); err != nil {
		return "", err
	}
	v, err := expr.Evaluate(s.input)
	if err != nil {
		return "", err
	}
	s.input = expr.Format(v)
	return s.input, nil
}

// Percent divides the trailing number of the expression by 100 and returns
// the new value. It does nothing and returns "" when the expression does not
// end in a number.
func (s *Session) Percent() (string, error) {
	start := trailingNumber(s.input)
	if start < 0 {
		return "", nil
	}
	num := s.input[start:]
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		pos := utf8.RuneCountInString(s.input[:start]) + 1
		return "", &expr.Error{Kind: expr.MalformedNumber, Pos: pos, Text: num}
	}
	pct := expr.Format(v / 100)
	s.input = s.input[:start] + pct
	return pct, nil
}

// trailingNumber returns the start of the run of digits and dots at the end
// of input, or -1 if there is no such run or it contains no digit.
func trailingNumber(input string) int {
	start, digits := len(input), 0
	for start > 0 {
		c := input[start-1]
		if c >= '0' && c <= '9' {
			digits++
		} else if c != '.' {
			break
		}
		start--
	}
	if digits == 0 {
		return -1
	}
	return start
}

// Backspace undoes the last input character.
func (s *Session) Backspace() {
	if len(s.input) > 0 {
		_, size := utf8.DecodeLastRuneInString(s.input)
		s.input = s.input[:len(s.input)-size]
	}
}

// Clear empties the buffer.
func (s *Session) Clear() {
	s.input = ""
}

// Paste replaces the buffer with text, e.g. from the clipboard. The text is
// not checked until it is evaluated.
func (s *Session) Paste(text string) {
	s.input = strings.TrimSpace(text)
}

func isOperator(c rune) bool {
	return strings.ContainsRune(expr.Operators, c)
}
