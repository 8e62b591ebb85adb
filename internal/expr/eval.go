package expr

import (
	"math"
	"strconv"
)

// Eval computes the value of a postfix token sequence as produced by
// ToPostfix. Each operator is applied to the two values pushed most
// recently, the older one being the left operand.
func Eval(postfix []Token) (float64, error) {
	stack := make([]float64, 0, len(postfix))
	for _, tok := range postfix {
		switch tok.Type {
		case Number:
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				// This includes values beyond the float64 range.
				return 0, &Error{Kind: MalformedNumber, Pos: tok.Pos, Text: tok.Text}
			}
			stack = append(stack, v)

		case Operator:
			op, ok := lookupOp(tok.Text)
			if !ok {
				return 0, &Error{Kind: MalformedExpression, Pos: tok.Pos, Text: tok.Text}
			}
			if len(stack) < 2 {
				return 0, &Error{Kind: InsufficientOperands, Pos: tok.Pos, Text: tok.Text}
			}
			x, y := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			if op == opDiv && y == 0 {
				return 0, &Error{Kind: DivisionByZero, Pos: tok.Pos, Text: tok.Text}
			}
			r := op.apply(x, y)
			if math.IsInf(r, 0) || math.IsNaN(r) {
				return 0, &Error{Kind: NonFiniteResult, Pos: tok.Pos, Text: tok.Text}
			}
			stack = append(stack, r)

		default:
			return 0, &Error{Kind: MalformedExpression, Pos: tok.Pos, Text: tok.Text}
		}
	}
	if len(stack) != 1 {
		return 0, &Error{Kind: MalformedExpression}
	}
	return stack[0], nil
}

// Evaluate tokenizes, parses and evaluates an infix expression.
func Evaluate(input string) (float64, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return 0, err
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return Eval(postfix)
}
