package main

import (
	"testing"

	"gioui.org/io/key"
	"gioui.org/widget/material"
	"github.com/fjl/giocalc/internal/dispatch"
)

func TestCalcKey(t *testing.T) {
	cases := map[string]string{
		key.NameEnter:          "=",
		key.NameReturn:         "=",
		key.NameDeleteBackward: dispatch.KeyBackspace,
		key.NameDeleteForward:  dispatch.KeyBackspace,
		key.NameEscape:         dispatch.KeyClear,
		"7":                    "7",
		"%":                    "%",
	}
	for name, want := range cases {
		if got := calcKey(name); got != want {
			t.Errorf("calcKey(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestButtons(t *testing.T) {
	calc := dispatch.New()
	defer calc.Close()
	ui := newUI(material.NewTheme(), calc)
	for _, row := range ui.buttons {
		for _, b := range row {
			if b != nil && dispatch.KeyCommand(b.key) == nil {
				t.Errorf("button %q has no command", b.text)
			}
		}
	}
}
