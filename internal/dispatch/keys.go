package dispatch

import "strings"

// Key names understood by KeyCommand besides digits, ".", operators, "="
// and "%".
const (
	KeyClear     = "C"
	KeyBackspace = "⌫"
)

// KeyCommand returns the command for a calculator key, or nil if the key
// has no function.
func KeyCommand(key string) Command {
	switch {
	case len(key) == 1 && (key[0] >= '0' && key[0] <= '9' || key[0] == '.'):
		return &Digit{Char: key}
	case len(key) == 1 && strings.Contains("+-*/", key):
		return &Operator{Op: key}
	}
	switch key {
	case "=":
		return &Evaluate{}
	case "%":
		return &Percent{}
	case KeyBackspace:
		return &Backspace{}
	case KeyClear:
		return &Clear{}
	default:
		return nil
	}
}
