// Package expr evaluates calculator input such as "2+3*4" or "-(1.5+2)/4".
//
// Evaluation runs in three stages, each of which can be used on its own:
// Tokenize splits the input, ToPostfix reorders the tokens into reverse
// Polish notation using the shunting-yard algorithm, and Eval reduces the
// postfix sequence on a value stack. Format renders results the way the
// calculator displays them: rounded to a fixed number of decimals, with
// trailing zeros removed.
//
// Every failure is reported as an *Error carrying a Kind, so callers can
// distinguish failures with errors.Is(err, DivisionByZero) and friends.
package expr
