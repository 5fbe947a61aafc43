package hookfsm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlDefinition struct {
	Initial string                            `yaml:"initial"`
	States  map[string]map[string]yamlHandler `yaml:"states"`
}

// yamlHandler is either a plain target state or {guard: name}
type yamlHandler struct {
	target string
	guard  string
}

func (h *yamlHandler) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&h.target)
	case yaml.MappingNode:
		var ref struct {
			Guard string `yaml:"guard"`
		}
		if err := node.Decode(&ref); err != nil {
			return err
		}
		if ref.Guard == "" {
			return fmt.Errorf("line %d: handler mapping needs a guard name", node.Line)
		}
		h.guard = ref.Guard
		return nil
	default:
		return fmt.Errorf("line %d: handler must be a state name or {guard: name}", node.Line)
	}
}

// LoadDefinition reads a YAML definition from r. Guard handlers are looked up
// by name in guards.
func LoadDefinition(r io.Reader, guards map[string]Guard) (*Definition, error) {
	var raw yamlDefinition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	d := NewDefinition().Initial(StateID(raw.Initial))
	for state, handlers := range raw.States {
		d.State(StateID(state))
		for ev, h := range handlers {
			if h.guard == "" {
				d.On(StateID(state), EventType(ev), Target(h.target))
				continue
			}
			g, ok := guards[h.guard]
			if !ok {
				return nil, fmt.Errorf("%w: state %q references unknown guard %q", ErrInvalidDefinition, state, h.guard)
			}
			d.On(StateID(state), EventType(ev), g)
		}
	}

	return d, nil
}

// ParseDefinition is LoadDefinition for an in-memory document
func ParseDefinition(data []byte, guards map[string]Guard) (*Definition, error) {
	return LoadDefinition(bytes.NewReader(data), guards)
}
