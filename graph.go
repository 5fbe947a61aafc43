package hookfsm

import (
	"github.com/looplab/fsm"
)

// Graphviz renders the definition's literal transitions in DOT format. Guard
// handlers have no static target and are left out, as are targets that aren't
// declared states.
func (d *Definition) Graphviz() string {
	return d.visualize(d.initial)
}

// Graphviz renders the machine's definition as of its current state
func (m *Machine) Graphviz() string {
	return m.definition.visualize(m.currentState)
}

func (d *Definition) visualize(current StateID) string {
	var events fsm.Events
	for _, id := range d.States() {
		for ev, h := range d.states[id] {
			target, ok := h.(Target)
			if !ok || !d.Has(StateID(target)) {
				continue
			}
			events = append(events, fsm.EventDesc{
				Name: string(ev),
				Src:  []string{string(id)},
				Dst:  string(target),
			})
		}
	}

	return fsm.Visualize(fsm.NewFSM(string(current), events, fsm.Callbacks{}))
}
