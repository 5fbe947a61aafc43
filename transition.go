package hookfsm

// Handler decides the next-state candidate for one event type in one state.
// The only implementations are Target and Guard.
type Handler interface {
	isHandler()
}

// Target is a handler with a fixed next state
type Target StateID

// Guard computes the next state from the triggering event. Returning a state
// that is not part of the definition cancels the transition.
type Guard func(event Event) StateID

func (Target) isHandler() {}
func (Guard) isHandler()  {}

// To is shorthand for a Target handler
func To(id StateID) Handler {
	return Target(id)
}

// When is shorthand for a Guard handler
func When(fn func(Event) StateID) Handler {
	return Guard(fn)
}
