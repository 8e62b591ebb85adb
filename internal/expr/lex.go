package expr

import (
	"strings"
	"unicode"
)

// Tokenize splits input into tokens. Whitespace separates tokens and is
// otherwise ignored.
//
// A minus sign is unary when it starts the input or follows an operator or
// an opening parenthesis. A unary minus directly in front of a digit or '.'
// becomes the sign of that number. Any other unary minus, as in "-(2)", is
// returned as an ordinary Operator token and fails later for lack of a left
// operand.
//
// Number tokens are not checked for well-formedness: "1.2.3" is a single
// Number token that Eval rejects.
func Tokenize(input string) ([]Token, error) {
	var (
		src    = []rune(input)
		tokens []Token
	)
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case isNumberRune(c):
			end := scanNumber(src, i)
			tokens = append(tokens, Token{Type: Number, Text: string(src[i:end]), Pos: i + 1})
			i = end
		case c == '(':
			tokens = append(tokens, Token{Type: LeftParen, Text: "(", Pos: i + 1})
			i++
		case c == ')':
			tokens = append(tokens, Token{Type: RightParen, Text: ")", Pos: i + 1})
			i++
		case c == '-' && unaryPosition(tokens) && i+1 < len(src) && isNumberRune(src[i+1]):
			end := scanNumber(src, i+1)
			tokens = append(tokens, Token{Type: Number, Text: string(src[i:end]), Pos: i + 1})
			i = end
		case isOperator(c):
			tokens = append(tokens, Token{Type: Operator, Text: string(c), Pos: i + 1})
			i++
		default:
			return nil, &Error{Kind: InvalidCharacter, Pos: i + 1, Text: string(c)}
		}
	}
	return tokens, nil
}

// Validate checks that input contains only characters Tokenize accepts. It
// reports the first offending character.
func Validate(input string) error {
	pos := 0
	for _, c := range input {
		pos++
		if !isAllowed(c) {
			return &Error{Kind: InvalidCharacter, Pos: pos, Text: string(c)}
		}
	}
	return nil
}

// scanNumber returns the end of the number run starting at src[start].
func scanNumber(src []rune, start int) int {
	end := start
	for end < len(src) && isNumberRune(src[end]) {
		end++
	}
	return end
}

// unaryPosition reports whether a minus sign following tokens is a sign
// rather than a subtraction.
func unaryPosition(tokens []Token) bool {
	if len(tokens) == 0 {
		return true
	}
	switch tokens[len(tokens)-1].Type {
	case Operator, LeftParen:
		return true
	default:
		return false
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isNumberRune(c rune) bool {
	return isDigit(c) || c == '.'
}

func isOperator(c rune) bool {
	return strings.ContainsRune(Operators, c)
}

func isAllowed(c rune) bool {
	return isNumberRune(c) || isOperator(c) || c == '(' || c == ')' || unicode.IsSpace(c)
}
