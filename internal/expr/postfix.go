package expr

// ToPostfix reorders infix tokens into postfix (reverse Polish) order using
// the shunting-yard algorithm. Multiplication and division bind tighter than
// addition and subtraction, and all operators associate to the left.
// Parentheses are consumed; the result holds only Number and Operator
// tokens.
func ToPostfix(tokens []Token) ([]Token, error) {
	var (
		out   = make([]Token, 0, len(tokens))
		stack []Token
	)
	pop := func() Token {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}

	for _, tok := range tokens {
		switch tok.Type {
		case Number:
			out = append(out, tok)

		case Operator:
			op, ok := lookupOp(tok.Text)
			if !ok {
				return nil, &Error{Kind: MalformedExpression, Pos: tok.Pos, Text: tok.Text}
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Type != Operator {
					break
				}
				if topOp, _ := lookupOp(top.Text); topOp.prec() < op.prec() {
					break
				}
				out = append(out, pop())
			}
			stack = append(stack, tok)

		case LeftParen:
			stack = append(stack, tok)

		case RightParen:
			for {
				if len(stack) == 0 {
					return nil, &Error{Kind: MismatchedParentheses, Pos: tok.Pos, Text: tok.Text}
				}
				top := pop()
				if top.Type == LeftParen {
					break
				}
				out = append(out, top)
			}

		default:
			return nil, &Error{Kind: MalformedExpression, Pos: tok.Pos, Text: tok.Text}
		}
	}

	for len(stack) > 0 {
		top := pop()
		if top.Type == LeftParen {
			return nil, &Error{Kind: MismatchedParentheses, Pos: top.Pos, Text: top.Text}
		}
		out = append(out, top)
	}
	return out, nil
}
