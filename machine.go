package hookfsm

import (
	"fmt"
	"log/slog"
)

// Machine is the runtime FSM instance.
//
// Send runs to completion on the caller's goroutine. A Machine is not safe for
// concurrent use; guards and the observer may call Send re-entrantly.
type Machine struct {
	definition   *Definition
	currentState StateID

	observer       Observer
	logger         *slog.Logger
	maxChainLength int
}

// MachineOption is a functional option for configuring a Machine
type MachineOption func(*Machine)

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) MachineOption {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithMaxChainLength bounds how many states a single event may commit before
// Send gives up with ErrChainTooLong. n <= 0 removes the bound, in which case
// onEnter handlers that form a cycle make Send loop forever.
func WithMaxChainLength(n int) MachineOption {
	return func(m *Machine) {
		m.maxChainLength = n
	}
}

// WithConfig applies settings loaded with LoadConfig
func WithConfig(cfg Config) MachineOption {
	return WithMaxChainLength(cfg.MaxChainLength)
}

// CurrentState returns the current state
func (m *Machine) CurrentState() StateID {
	return m.currentState
}

// Send processes an event synchronously.
//
// An event with no handler in the current state, or whose handler resolves to
// an undeclared state, leaves the machine untouched and returns nil. Otherwise
// the current state's onExit handler may redirect the target, the target is
// committed, and onEnter handlers of each newly committed state are followed
// until one doesn't resolve. The observer then sees the final state once.
//
// If the chain exceeds the configured maximum length, the machine is put back
// in the state it had before the event, the observer is not called, and the
// returned error wraps ErrChainTooLong.
func (m *Machine) Send(event Event) error {
	if event == nil {
		return fmt.Errorf("%w: nil event", ErrInvalidEvent)
	}

	eventType := event.Type()
	m.logger.Debug("processing event", "event", eventType, "state", m.currentState)

	target, ok := m.resolve(eventType, event)
	if !ok {
		m.logger.Debug("no transition found", "event", eventType, "state", m.currentState)
		return nil
	}

	if exit, ok := m.resolve(EventExit, event); ok {
		m.logger.Debug("exit handler redirected transition", "event", eventType, "state", m.currentState, "from", target, "to", exit)
		target = exit
	}

	from := m.currentState
	committed := 0
	for ok {
		if m.maxChainLength > 0 && committed == m.maxChainLength {
			m.logger.Warn("onEnter chain aborted, restoring state", "event", eventType, "state", m.currentState, "next", target, "restored", from, "limit", m.maxChainLength)
			stopped := m.currentState
			m.currentState = from
			return fmt.Errorf("%w: event %q reached state %q after %d states", ErrChainTooLong, eventType, stopped, committed)
		}

		m.logger.Debug("entering state", "event", eventType, "from", m.currentState, "to", target)
		m.currentState = target
		committed++

		target, ok = m.resolve(EventEnter, event)
	}

	m.logger.Debug("settled", "event", eventType, "state", m.currentState, "committed", committed)
	if m.observer != nil {
		m.observer(m.currentState)
	}

	return nil
}

// CanSend reports whether Send would commit at least one state. Guards are
// invoked as they would be by Send.
func (m *Machine) CanSend(event Event) bool {
	if event == nil {
		return false
	}
	_, ok := m.resolve(event.Type(), event)
	return ok
}

// resolve finds the handler for eventType in the current state and returns its
// target if that target is a declared state
func (m *Machine) resolve(eventType EventType, event Event) (StateID, bool) {
	handler, ok := m.definition.states[m.currentState][eventType]
	if !ok {
		return "", false
	}

	var candidate StateID
	switch h := handler.(type) {
	case Target:
		candidate = StateID(h)
	case Guard:
		candidate = h(event)
	default:
		return "", false
	}

	if !m.definition.Has(candidate) {
		m.logger.Debug("discarding unknown target", "event", eventType, "state", m.currentState, "target", candidate)
		return "", false
	}

	return candidate, true
}
