package hookfsm

import "log/slog"

// StateID is a unique identifier for a state
type StateID string

// EventType identifies the kind of an event
type EventType string

// Reserved event types consulted by the machine itself while resolving an event
const (
	// EventEnter is looked up on every newly committed state; a valid target chains onward
	EventEnter EventType = "onEnter"
	// EventExit is looked up on the current state before the first commit; a valid target
	// replaces the one resolved from the event
	EventExit EventType = "onExit"
)

// DefaultMaxChainLength bounds the number of states committed for a single event
const DefaultMaxChainLength = 1000

// Observer is notified with the settled state after an event committed at least one state
type Observer func(StateID)

// Logger is the default logger used when none is provided
var Logger = slog.Default()
