// Package evtrace records deterministic evaluation traces.
//
// A Trace is the canonical record of one reduction: the circuit fingerprint
// plus the ordered list of per-contact evaluation events. Events carry only
// logical facts (which contact, which rule, what value). No timestamps, no
// pointers, no runtime-dependent values; two evaluations of the same circuit
// with the same sequences produce byte-identical traces.
//
// The trace is observational only and must never affect evaluation behavior.
package evtrace

import (
	"encoding/json"
	"errors"
	"fmt"
)

// EventKind is the stable discriminator for Event. The string values are
// part of the trace's canonical bytes; do not rename.
type EventKind string

const (
	// EventLeaf records a contact evaluated by the leaf rule.
	EventLeaf EventKind = "Leaf"
	// EventInner records a contact evaluated by folding its children.
	EventInner EventKind = "Inner"
)

// Event is a single logical evaluation step.
//
// Handle is the contact's handle in the graph. Value is the contact's
// computed output, pre-encoded by the producer so the trace stays
// independent of the domain type.
type Event struct {
	Kind   EventKind `json:"kind"`
	Handle int       `json:"handle"`
	Value  string    `json:"value"`
}

// Trace is the record of one evaluation. Events appear in completion order
// of the recursive walk, which is itself deterministic.
type Trace struct {
	Fingerprint string  `json:"fingerprint,omitempty"`
	Events      []Event `json:"events"`
}

// Validate checks basic invariants and returns a descriptive error.
func (t *Trace) Validate() error {
	if t == nil {
		return errors.New("trace is nil")
	}
	for i, e := range t.Events {
		switch e.Kind {
		case EventLeaf, EventInner:
		default:
			return fmt.Errorf("events[%d].kind %q is not a known kind", i, e.Kind)
		}
		if e.Handle < 0 {
			return fmt.Errorf("events[%d].handle %d is negative", i, e.Handle)
		}
	}
	return nil
}

// JSON returns the trace's JSON encoding after validation.
func (t Trace) JSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(t)
}
