package hookfsm

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/multierr"
)

// Definition holds the transition table before building a Machine
type Definition struct {
	states  map[StateID]Handlers
	initial StateID
}

// NewDefinition creates a new FSM definition builder
func NewDefinition() *Definition {
	return &Definition{
		states: make(map[StateID]Handlers),
	}
}

// State declares a state, merging opts into any handlers it already has
func (d *Definition) State(id StateID, opts ...StateOption) *Definition {
	hs := d.handlers(id)
	for _, opt := range opts {
		opt(hs)
	}
	return d
}

// On adds a handler for events of type ev in state from. The state is
// declared if it wasn't already.
func (d *Definition) On(from StateID, ev EventType, h Handler) *Definition {
	d.handlers(from)[ev] = h
	return d
}

// Initial sets the initial state
func (d *Definition) Initial(id StateID) *Definition {
	d.initial = id
	return d
}

// Has reports whether id is a declared state
func (d *Definition) Has(id StateID) bool {
	_, ok := d.states[id]
	return ok
}

// States returns the declared states in lexical order
func (d *Definition) States() []StateID {
	ids := make([]StateID, 0, len(d.states))
	for id := range d.states {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (d *Definition) handlers(id StateID) Handlers {
	hs, ok := d.states[id]
	if !ok || hs == nil {
		hs = make(Handlers)
		d.states[id] = hs
	}
	return hs
}

// Validate checks the definition for errors and reports all of them at once.
// Handler targets are not checked: a target outside the definition is a
// valid way of declaring a transition that never fires.
func (d *Definition) Validate() error {
	var err error

	if d.initial == "" {
		err = multierr.Append(err, errors.New("no initial state defined"))
	} else if !d.Has(d.initial) {
		err = multierr.Append(err, fmt.Errorf("initial state %q not defined", d.initial))
	}

	for _, id := range d.States() {
		hs := d.states[id]
		events := make([]EventType, 0, len(hs))
		for ev := range hs {
			events = append(events, ev)
		}
		slices.Sort(events)

		for _, ev := range events {
			switch h := hs[ev].(type) {
			case nil:
				err = multierr.Append(err, fmt.Errorf("state %q has a nil handler for %q", id, ev))
			case Guard:
				if h == nil {
					err = multierr.Append(err, fmt.Errorf("state %q has a nil guard for %q", id, ev))
				}
			}
		}
	}

	return err
}

// Build creates a Machine from a snapshot of the definition. onTransition may
// be nil.
func (d *Definition) Build(onTransition Observer, opts ...MachineOption) (*Machine, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	snapshot := d.clone()
	m := &Machine{
		definition:     snapshot,
		currentState:   snapshot.initial,
		observer:       onTransition,
		logger:         Logger,
		maxChainLength: DefaultMaxChainLength,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

func (d *Definition) clone() *Definition {
	c := &Definition{
		states:  make(map[StateID]Handlers, len(d.states)),
		initial: d.initial,
	}
	for id, hs := range d.states {
		cp := make(Handlers, len(hs))
		for ev, h := range hs {
			cp[ev] = h
		}
		c.states[id] = cp
	}
	return c
}
