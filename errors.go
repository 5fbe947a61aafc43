package hookfsm

import "errors"

var (
	// ErrInvalidDefinition is returned when a definition fails to load or validate
	ErrInvalidDefinition = errors.New("invalid definition")
	// ErrInvalidEvent is returned for nil events and malformed JSON events
	ErrInvalidEvent = errors.New("invalid event")
	// ErrChainTooLong is returned by Send when onEnter handlers chain past the
	// configured limit; the machine keeps the state it had before the event
	ErrChainTooLong = errors.New("onEnter chain exceeded maximum length")
)

// IsChainTooLongError reports whether Send stopped an onEnter chain at the configured limit
func IsChainTooLongError(err error) bool {
	return errors.Is(err, ErrChainTooLong)
}

// IsInvalidDefinitionError reports whether err came from validating a definition
func IsInvalidDefinitionError(err error) bool {
	return errors.Is(err, ErrInvalidDefinition)
}
