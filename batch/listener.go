package batch

// Listener receives the notifications of a running Task.
// Done is always the last call.
type Listener interface {
	Progress(percent int)
	Log(line string)
	Done()
}

// EventKind ...
type EventKind uint8

const (
	EventProgress EventKind = iota + 1
	EventLog
	EventDone
)

func (k EventKind) String() string {
	switch k {
	case EventProgress:
		return "progress"
	case EventLog:
		return "log"
	case EventDone:
		return "done"
	}
	return "unknown"
}

// Event ...
type Event struct {
	Kind    EventKind
	Percent int
	Text    string
}

// Events adapts a channel into a Listener, Done closes the channel
type Events chan Event

func (e Events) Progress(percent int) {
	e <- Event{Kind: EventProgress, Percent: percent}
}

func (e Events) Log(line string) {
	e <- Event{Kind: EventLog, Text: line}
}

func (e Events) Done() {
	e <- Event{Kind: EventDone}
	close(e)
}
