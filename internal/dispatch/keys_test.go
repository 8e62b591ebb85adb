package dispatch

import (
	"reflect"
	"testing"
)

func TestKeyCommand(t *testing.T) {
	cases := []struct {
		key string
		cmd Command
	}{
		{"0", &Digit{Char: "0"}},
		{"9", &Digit{Char: "9"}},
		{".", &Digit{Char: "."}},
		{"+", &Operator{Op: "+"}},
		{"/", &Operator{Op: "/"}},
		{"=", &Evaluate{}},
		{"%", &Percent{}},
		{KeyBackspace, &Backspace{}},
		{KeyClear, &Clear{}},
		{"(", nil},
		{"A", nil},
		{"", nil},
		{"12", nil},
	}
	for _, c := range cases {
		if cmd := KeyCommand(c.key); !reflect.DeepEqual(cmd, c.cmd) {
			t.Errorf("KeyCommand(%q) = %#v, want %#v", c.key, cmd, c.cmd)
		}
	}
}
