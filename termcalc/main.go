// Command termcalc is a terminal calculator.
//
// Each input line is evaluated as an expression. A line starting with +, *
// or / continues from the previous result. Lines starting with ':' are
// commands, see :help.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fjl/giocalc/internal/dispatch"
	"github.com/peterh/liner"
)

const (
	historyFile = ".termcalc_history"
	prompt      = "> "
)

const helpText = `Commands:
  :keys <keys>  press keys: 0-9 . + - * / = %, < is backspace, c clears
  :percent      take the percentage of the last number
  :back         delete the last character
  :clear        clear the expression
  :quit         exit
`

func main() {
	log.SetFlags(0)
	var record, replay string
	flag.StringVar(&record, "record", "", "append all input to this journal file")
	flag.StringVar(&replay, "replay", "", "replay a journal file before reading input")
	flag.Parse()

	term, err := openTerminal(record, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if replay != "" {
		if err := term.replay(replay); err != nil {
			term.close()
			log.Fatal(err)
		}
	}
	code := term.repl()
	term.close()
	os.Exit(code)
}

// terminal connects a dispatcher to line-based input and output.
type terminal struct {
	calc    *dispatch.Dispatcher
	journal io.Closer
	out     io.Writer
	text    string
}

func newTerminal(calc *dispatch.Dispatcher, out io.Writer) *terminal {
	return &terminal{calc: calc, out: out}
}

// openTerminal creates a terminal with its own dispatcher. When record is
// set, commands are appended to that journal file.
func openTerminal(record string, out io.Writer) (*terminal, error) {
	if record == "" {
		return newTerminal(dispatch.New(), out), nil
	}
	f, err := os.OpenFile(record, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	t := newTerminal(dispatch.New(dispatch.WithJournal(f)), out)
	t.journal = f
	return t, nil
}

// close stops the dispatcher, then closes the journal.
func (t *terminal) close() {
	t.calc.Close()
	if t.journal != nil {
		if err := t.journal.Close(); err != nil {
			log.Printf("journal: %v", err)
		}
	}
}

// replay sends the commands of a journal file and prints the final state.
func (t *terminal) replay(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := t.calc.Replay(f); err != nil {
		return err
	}
	t.sync()
	fmt.Fprintln(t.out, t.text)
	return nil
}

func (t *terminal) repl() int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(t.out)
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if !t.exec(line) {
			return 0
		}
	}
}

// exec handles one input line. It returns false when the user asked to quit.
func (t *terminal) exec(line string) bool {
	if strings.HasPrefix(line, ":") {
		cmd, arg, _ := strings.Cut(line[1:], " ")
		switch cmd {
		case "quit", "q":
			return false
		case "help":
			fmt.Fprint(t.out, helpText)
		case "keys":
			t.run(keyCommands(arg)...)
		case "percent":
			t.run(&dispatch.Percent{})
		case "back":
			t.run(&dispatch.Backspace{})
		case "clear":
			t.run(&dispatch.Clear{})
		default:
			fmt.Fprintf(t.out, "unknown command %q, try :help\n", cmd)
		}
		return true
	}

	if strings.ContainsAny(line[:1], "+*/") {
		line = t.text + line
	}
	t.run(&dispatch.Paste{Text: line}, &dispatch.Evaluate{})
	return true
}

// keyCommands translates typed keys to commands.
func keyCommands(keys string) []dispatch.Command {
	var cmds []dispatch.Command
	for _, k := range keys {
		name := string(k)
		switch k {
		case '<':
			name = dispatch.KeyBackspace
		case 'c', 'C':
			name = dispatch.KeyClear
		}
		if cmd := dispatch.KeyCommand(name); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// run sends commands and prints the outcome.
func (t *terminal) run(cmds ...dispatch.Command) {
	for _, cmd := range cmds {
		t.calc.Send(cmd)
	}
	t.sync()
}

// sync waits until all commands sent so far have been processed, printing
// results and errors on the way.
func (t *terminal) sync() {
	t.calc.Send(&dispatch.Sync{})
	for ev := range t.calc.Events() {
		switch ev := ev.(type) {
		case *dispatch.Synced:
			return
		case *dispatch.TextChanged:
			t.text = ev.Text
		case *dispatch.Result:
			fmt.Fprintln(t.out, ev.Value)
		case *dispatch.Failure:
			fmt.Fprintln(t.out, "error:", ev.Err)
		case *dispatch.IOError:
			log.Printf("journal: %v", ev.Err)
		}
	}
}
