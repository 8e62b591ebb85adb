package expr

import "strconv"

// TokenType is the class of a token.
type TokenType int

const (
	// Number is a run of digits and dots, possibly signed by a unary minus.
	Number TokenType = iota + 1
	// Operator is one of the binary operators in Operators.
	Operator
	// LeftParen is "(".
	LeftParen
	// RightParen is ")".
	RightParen
)

func (t TokenType) String() string {
	switch t {
	case Number:
		return "num"
	case Operator:
		return "op"
	case LeftParen:
		return "lparen"
	case RightParen:
		return "rparen"
	default:
		return "TokenType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Token is a lexical element of an expression.
type Token struct {
	Type TokenType
	Text string
	// Pos is the number of runes up to and including the token's first
	// character.
	Pos int
}

func (t Token) String() string {
	return t.Type.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// Operators contains the binary operators understood by the calculator.
const Operators = "+-*/"

const (
	opAdd calcOp = iota + 1
	opSub
	opMul
	opDiv
)

type calcOp int

// lookupOp returns the operator written as s.
func lookupOp(s string) (calcOp, bool) {
	switch s {
	case "+":
		return opAdd, true
	case "-":
		return opSub, true
	case "*":
		return opMul, true
	case "/":
		return opDiv, true
	default:
		return 0, false
	}
}

func (op calcOp) String() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	default:
		panic("unknown op")
	}
}

// prec is the binding strength of the operator.
func (op calcOp) prec() int {
	switch op {
	case opMul, opDiv:
		return 2
	default:
		return 1
	}
}

// apply computes the operation.
func (op calcOp) apply(x, y float64) float64 {
	switch op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	case opDiv:
		return x / y
	default:
		panic("unknown op")
	}
}
