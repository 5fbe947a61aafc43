package hookfsm

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// JSONEvent is a structured event backed by a JSON object whose "type" field
// names the event type. Every other field is payload available to guards.
type JSONEvent struct {
	raw []byte
}

// ParseJSONEvent validates data and wraps a copy of it as an event
func ParseJSONEvent(data []byte) (JSONEvent, error) {
	if !gjson.ValidBytes(data) {
		return JSONEvent{}, fmt.Errorf("%w: malformed JSON", ErrInvalidEvent)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return JSONEvent{}, fmt.Errorf("%w: expected a JSON object", ErrInvalidEvent)
	}

	typ := root.Get("type")
	if typ.Type != gjson.String || typ.Str == "" {
		return JSONEvent{}, fmt.Errorf("%w: missing string field \"type\"", ErrInvalidEvent)
	}

	return JSONEvent{raw: append([]byte(nil), data...)}, nil
}

// Type returns the value of the "type" field
func (e JSONEvent) Type() EventType {
	return EventType(gjson.GetBytes(e.raw, "type").String())
}

// Get looks up a payload value by gjson path
func (e JSONEvent) Get(path string) gjson.Result {
	return gjson.GetBytes(e.raw, path)
}

// Raw returns the original JSON
func (e JSONEvent) Raw() []byte {
	return e.raw
}
