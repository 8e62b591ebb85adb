// Package dispatch serializes calculator input from any number of sources
// onto a single session.
package dispatch

import (
	"container/list"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/fjl/giocalc/internal/calc"
)

// Dispatcher owns a calculator session. Commands sent to it are applied one
// at a time, in order, on a dedicated goroutine.
type Dispatcher struct {
	session calc.Session
	journal *json.Encoder

	eventsOut  chan Event
	eventQueue list.List

	commandsIn chan Command
	quitCh     chan struct{}
	wg         sync.WaitGroup
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithJournal makes the dispatcher append every command it receives to w,
// one JSON object per line. The journal can be replayed with Replay.
func WithJournal(w io.Writer) Option {
	return func(d *Dispatcher) {
		d.journal = json.NewEncoder(w)
	}
}

// New starts a dispatcher with an empty session.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		eventsOut:  make(chan Event),
		commandsIn: make(chan Command, 256),
		quitCh:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.wg.Add(1)
	go d.mainLoop()
	return d
}

// Close stops the dispatcher. Commands that are still queued are dropped.
func (d *Dispatcher) Close() {
	close(d.quitCh)
	d.wg.Wait()
}

// Events returns the event channel.
// The host reads this channel and updates the display.
func (d *Dispatcher) Events() <-chan Event {
	return d.eventsOut
}

// Send queues a command. It is dropped if the dispatcher is closed.
func (d *Dispatcher) Send(cmd Command) {
	select {
	case d.commandsIn <- cmd:
	case <-d.quitCh:
	}
}

// Replay reads a journal written through WithJournal and sends its
// commands. It returns the number of commands sent.
func (d *Dispatcher) Replay(r io.Reader) (int, error) {
	dec := json.NewDecoder(r)
	count := 0
	for {
		cmd, err := readCommand(dec)
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("journal entry %d: %w", count+1, err)
		}
		d.Send(cmd)
		count++
	}
	log.Println("replay done:", count, "commands")
	return count, nil
}

func (d *Dispatcher) mainLoop() {
	defer d.wg.Done()

	for {
		sendEvChan, sendEv := d.queuedOutputEvent()
		select {
		case sendEvChan <- sendEv:
			d.popOutputEvent()

		case cmd := <-d.commandsIn:
			if err := d.writeJournal(cmd); err != nil {
				log.Printf("journal write error: %v", err)
				d.enqueueOutputEvent(&IOError{Err: err})
			}
			d.apply(cmd)

		case <-d.quitCh:
			return
		}
	}
}

// apply runs a command on the session and queues the resulting events.
func (d *Dispatcher) apply(cmd Command) {
	before := d.session.Text()
	switch cmd := cmd.(type) {
	case *Digit:
		for _, ch := range cmd.Char {
			d.session.AppendDigitOrDot(ch)
		}
	case *Operator:
		for _, op := range cmd.Op {
			d.session.SetOperator(op)
		}
	case *Evaluate:
		d.report(d.session.Evaluate())
	case *Percent:
		d.report(d.session.Percent())
	case *Backspace:
		d.session.Backspace()
	case *Clear:
		d.session.Clear()
	case *Paste:
		d.session.Paste(cmd.Text)
	case *Sync:
		d.enqueueOutputEvent(&Synced{})
	default:
		panic(fmt.Errorf("unknown command %T", cmd))
	}
	if text := d.session.Text(); text != before {
		d.enqueueOutputEvent(&TextChanged{Text: text})
	}
}

func (d *Dispatcher) report(value string, err error) {
	switch {
	case err != nil:
		d.enqueueOutputEvent(&Failure{Err: err})
	case value != "":
		d.enqueueOutputEvent(&Result{Value: value})
	}
}

func (d *Dispatcher) writeJournal(cmd Command) error {
	if _, ok := cmd.(*Sync); ok || d.journal == nil {
		return nil
	}
	return writeCommand(d.journal, cmd)
}

func (d *Dispatcher) enqueueOutputEvent(ev Event) {
	d.eventQueue.PushBack(ev)
}

func (d *Dispatcher) queuedOutputEvent() (chan Event, Event) {
	first := d.eventQueue.Front()
	if first == nil {
		return nil, nil
	}
	return d.eventsOut, first.Value.(Event)
}

func (d *Dispatcher) popOutputEvent() {
	d.eventQueue.Remove(d.eventQueue.Front())
}
