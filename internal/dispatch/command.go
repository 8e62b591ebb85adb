package dispatch

import (
	"encoding/json"
	"fmt"
)

// Digit is a digit or decimal point key. Several characters are processed
// as consecutive key presses.
type Digit struct {
	Char string `json:"char"`
}

// Operator is an operator key.
type Operator struct {
	Op string `json:"op"`
}

// Evaluate is the equals key.
type Evaluate struct{}

// Percent is the percent key.
type Percent struct{}

// Backspace deletes the last character.
type Backspace struct{}

// Clear empties the expression.
type Clear struct{}

// Paste replaces the expression.
type Paste struct {
	Text string `json:"text"`
}

// Sync makes the dispatcher send Synced once all commands sent before it
// have been applied. It is not journaled.
type Sync struct{}

// Command is an operation on the calculator session.
type Command interface {
	cmdType() string
}

func (*Digit) cmdType() string     { return "digit" }
func (*Operator) cmdType() string  { return "operator" }
func (*Evaluate) cmdType() string  { return "evaluate" }
func (*Percent) cmdType() string   { return "percent" }
func (*Backspace) cmdType() string { return "backspace" }
func (*Clear) cmdType() string     { return "clear" }
func (*Paste) cmdType() string     { return "paste" }
func (*Sync) cmdType() string      { return "sync" }

type jsonCommand struct {
	Type    string  `json:"type"`
	Command Command `json:"command"`
}

func writeCommand(enc *json.Encoder, cmd Command) error {
	jscmd := &jsonCommand{Type: cmd.cmdType(), Command: cmd}
	return enc.Encode(jscmd)
}

func readCommand(dec *json.Decoder) (Command, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("unexpected JSON token %v, expected '{'", tok)
	}

	var (
		cmdtype = ""
		cmd     Command
	)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch keyTok.(string) {
		case "type":
			cmdtype, err = readCommandType(dec)
			if err != nil {
				return nil, err
			}
		case "command":
			if cmdtype == "" {
				return nil, fmt.Errorf("key \"type\" must precede \"command\"")
			}
			cmd, err = makeCommand(cmdtype)
			if err != nil {
				return nil, err
			}
			if err := dec.Decode(cmd); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown key %q", keyTok)
		}
	}

	// read '}'
	if _, err = dec.Token(); err != nil {
		return nil, err
	}
	if cmd == nil {
		return nil, fmt.Errorf("missing \"command\"")
	}
	return cmd, nil
}

func readCommandType(dec *json.Decoder) (string, error) {
	typeTok, err := dec.Token()
	if err != nil {
		return "", err
	}
	typ, ok := typeTok.(string)
	if !ok {
		return "", fmt.Errorf("expected string for \"type\", got %v", typeTok)
	}
	return typ, nil
}

func makeCommand(cmdtype string) (Command, error) {
	switch cmdtype {
	case (&Digit{}).cmdType():
		return new(Digit), nil
	case (&Operator{}).cmdType():
		return new(Operator), nil
	case (&Evaluate{}).cmdType():
		return new(Evaluate), nil
	case (&Percent{}).cmdType():
		return new(Percent), nil
	case (&Backspace{}).cmdType():
		return new(Backspace), nil
	case (&Clear{}).cmdType():
		return new(Clear), nil
	case (&Paste{}).cmdType():
		return new(Paste), nil
	default:
		return nil, fmt.Errorf("unknown command type %q", cmdtype)
	}
}
