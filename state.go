package hookfsm

// Handlers maps event types to handlers for a single state
type Handlers map[EventType]Handler

// StateOption is a functional option for configuring a state's handlers
type StateOption func(Handlers)

// WithHandler registers h for events of type ev
func WithHandler(ev EventType, h Handler) StateOption {
	return func(hs Handlers) {
		hs[ev] = h
	}
}

// WithOnEnter sets the handler consulted right after the state is committed.
// A valid target chains the machine onward without another event.
func WithOnEnter(h Handler) StateOption {
	return WithHandler(EventEnter, h)
}

// WithOnExit sets the handler consulted before leaving the state. A valid
// target replaces whatever the triggering event resolved to.
func WithOnExit(h Handler) StateOption {
	return WithHandler(EventExit, h)
}
