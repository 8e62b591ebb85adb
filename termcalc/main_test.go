package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fjl/giocalc/internal/dispatch"
)

func TestTerminalExec(t *testing.T) {
	var out bytes.Buffer
	calc := dispatch.New()
	defer calc.Close()
	term := newTerminal(calc, &out)

	steps := []struct {
		line, output, text string
	}{
		{"2+3*4", "14\n", "14"},
		{"*2", "28\n", "28"},
		{"/8", "3.5\n", "3.5"},
		{"-5+3", "-2\n", "-2"},
		{"(2+3)*4", "20\n", "20"},
		{":keys c200+50", "", "200+50"},
		{":percent", "0.5\n", "200+0.5"},
		{":keys =", "200.5\n", "200.5"},
		{":back", "", "200."},
		{":clear", "", ""},
		{":keys 5+*3=", "15\n", "15"},
		{":keys c3.5.<", "", "3."},
	}
	for _, s := range steps {
		out.Reset()
		if !term.exec(s.line) {
			t.Fatalf("%q: exec returned false", s.line)
		}
		if out.String() != s.output {
			t.Errorf("%q: wrong output\n  got: %q\n want: %q", s.line, out.String(), s.output)
		}
		if term.text != s.text {
			t.Errorf("%q: wrong text\n  got: %q\n want: %q", s.line, term.text, s.text)
		}
	}
}

func TestTerminalErrors(t *testing.T) {
	var out bytes.Buffer
	calc := dispatch.New()
	defer calc.Close()
	term := newTerminal(calc, &out)

	term.exec("5/0")
	if !strings.Contains(out.String(), "error:") || !strings.Contains(out.String(), "division by zero") {
		t.Errorf("wrong output %q", out.String())
	}
	if term.text != "5/0" {
		t.Errorf("expression changed to %q after error", term.text)
	}

	out.Reset()
	term.exec(":frobnicate")
	if !strings.Contains(out.String(), "unknown command") {
		t.Errorf("wrong output %q", out.String())
	}
	if term.exec(":quit") {
		t.Error(":quit did not stop the loop")
	}
}

func TestTerminalReplay(t *testing.T) {
	journal := filepath.Join(t.TempDir(), "journal.json")
	f, err := os.Create(journal)
	if err != nil {
		t.Fatal(err)
	}
	calc := dispatch.New(dispatch.WithJournal(f))
	var out bytes.Buffer
	term := newTerminal(calc, &out)
	term.exec("1+2")
	term.exec(":keys *3")
	calc.Close()
	f.Close()

	out.Reset()
	calc = dispatch.New()
	defer calc.Close()
	term = newTerminal(calc, &out)
	if err := term.replay(journal); err != nil {
		t.Fatal(err)
	}
	if out.String() != "3\n3*3\n" {
		t.Fatalf("wrong replay output %q", out.String())
	}
}

func TestTerminalCloseJournal(t *testing.T) {
	journal := filepath.Join(t.TempDir(), "journal.json")
	var out bytes.Buffer
	term, err := openTerminal(journal, &out)
	if err != nil {
		t.Fatal(err)
	}
	term.exec("1+2")
	term.close()

	data, err := os.ReadFile(journal)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"paste","command":{"text":"1+2"}}
{"type":"evaluate","command":{}}
`
	if string(data) != want {
		t.Fatalf("wrong journal\n  got: %s\n want: %s", data, want)
	}
	// The journal file must be closed.
	if err := term.journal.(*os.File).Close(); err == nil {
		t.Error("journal file still open after close")
	}
}
