// Package circuit loads contact-network definitions from YAML and builds
// reducers from them.
//
// A definition names its contacts; the root contact exists implicitly under
// the reserved name "root". Declaration order is binding: it fixes the
// handle of every contact and therefore the positions of the program and
// state sequences (root first, then contacts in declaration order).
package circuit

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"relaylogic/internal/graph"
	"relaylogic/internal/reducer"
)

// RootName is the reserved name of the implicit root contact.
const RootName = "root"

// Contact declares one contact under an already-declared parent.
type Contact struct {
	Name   string `yaml:"name" validate:"required"`
	Parent string `yaml:"parent" validate:"required"`
}

// Link declares a short edge between two named contacts.
type Link struct {
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to" validate:"required"`
}

// Definition is a parsed circuit file. Program and State are optional bit
// strings; when set they must cover the root plus every contact.
type Definition struct {
	Contacts []Contact `yaml:"contacts" validate:"dive"`
	Shorts   []Link    `yaml:"shorts,omitempty" validate:"dive"`
	Program  string    `yaml:"program,omitempty"`
	State    string    `yaml:"state,omitempty"`
}

var structValidator = validator.New()

// Load parses data and validates it. Structural rules beyond the field
// tags:
//   - contact names are unique and never the reserved root name
//   - a parent is the root or a contact declared earlier in the list
//   - short endpoints name declared contacts
//   - program/state, when present, parse as bits of length 1+len(contacts)
func Load(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse circuit: %w", err)
	}
	if err := structValidator.Struct(&def); err != nil {
		return nil, fmt.Errorf("invalid circuit: %w", err)
	}

	known := map[string]bool{RootName: true}
	for i, c := range def.Contacts {
		if c.Name == RootName {
			return nil, fmt.Errorf("invalid circuit: contacts[%d] uses the reserved name %q", i, RootName)
		}
		if known[c.Name] {
			return nil, fmt.Errorf("invalid circuit: duplicate contact name %q", c.Name)
		}
		if !known[c.Parent] {
			return nil, fmt.Errorf("invalid circuit: contact %q names undeclared parent %q", c.Name, c.Parent)
		}
		known[c.Name] = true
	}
	for i, s := range def.Shorts {
		if !known[s.From] {
			return nil, fmt.Errorf("invalid circuit: shorts[%d] names unknown contact %q", i, s.From)
		}
		if !known[s.To] {
			return nil, fmt.Errorf("invalid circuit: shorts[%d] names unknown contact %q", i, s.To)
		}
	}

	want := len(def.Contacts) + 1
	if err := checkSequence("program", def.Program, want); err != nil {
		return nil, err
	}
	if err := checkSequence("state", def.State, want); err != nil {
		return nil, err
	}
	return &def, nil
}

func checkSequence(name, seq string, want int) error {
	if seq == "" {
		return nil
	}
	if _, err := reducer.ParseBits(seq); err != nil {
		return fmt.Errorf("invalid circuit: %s: %w", name, err)
	}
	if len(seq) != want {
		return fmt.Errorf("invalid circuit: %s covers %d contacts, circuit has %d", name, len(seq), want)
	}
	return nil
}

// Build constructs a reducer from a loaded definition and applies its
// program and state sequences. The returned map resolves contact names,
// root included, to their handles.
func (d *Definition) Build(opts ...reducer.Option[bool]) (*reducer.Reducer[bool], map[string]graph.Handle, error) {
	r := reducer.New(opts...)
	handles := map[string]graph.Handle{RootName: r.Root()}
	for _, c := range d.Contacts {
		h, err := r.AddContact(handles[c.Parent])
		if err != nil {
			return nil, nil, fmt.Errorf("add contact %q: %w", c.Name, err)
		}
		handles[c.Name] = h
	}
	for _, s := range d.Shorts {
		if err := r.Short(handles[s.From], handles[s.To]); err != nil {
			return nil, nil, fmt.Errorf("short %s -> %s: %w", s.From, s.To, err)
		}
	}
	if d.Program != "" {
		if err := reducer.ReprogramBits(r, d.Program); err != nil {
			return nil, nil, fmt.Errorf("apply program: %w", err)
		}
	}
	if d.State != "" {
		if err := reducer.ReconfigureBits(r, d.State); err != nil {
			return nil, nil, fmt.Errorf("apply state: %w", err)
		}
	}
	return r, handles, nil
}
