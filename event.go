package hookfsm

// Event is anything submitted to a Machine. Guards receive the event exactly as sent.
type Event interface {
	Type() EventType
}

// Type makes a bare EventType usable as its own event
func (e EventType) Type() EventType {
	return e
}

// Message is a structured event carrying an optional payload
type Message struct {
	ID      EventType
	Payload any // Optional typed payload
}

// Type returns the message's event type
func (m Message) Type() EventType {
	return m.ID
}
