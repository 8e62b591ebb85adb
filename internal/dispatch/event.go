package dispatch

// TextChanged is sent when a command changed the expression.
type TextChanged struct {
	Text string
}

// Result is sent when evaluating or taking a percentage succeeded.
type Result struct {
	Value string
}

// Failure is sent when evaluating or taking a percentage failed. The
// expression is unchanged.
type Failure struct {
	Err error
}

// IOError is sent when a command could not be written to the journal.
type IOError struct {
	Err error
}

// Synced answers a Sync command.
type Synced struct{}

// Event is an output of the dispatcher.
type Event interface {
	isEvent()
}

func (*TextChanged) isEvent() {}
func (*Result) isEvent()      {}
func (*Failure) isEvent()     {}
func (*IOError) isEvent()     {}
func (*Synced) isEvent()      {}
