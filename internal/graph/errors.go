package graph

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHandle = errors.New("invalid handle")
	ErrCycle         = errors.New("cycle detected")
)

// Error wraps deterministic graph mutation failures.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

func invalidHandlef(h Handle) error {
	return &Error{Kind: ErrInvalidHandle, Msg: fmt.Sprintf("handle %d is not in the graph", h)}
}

func cyclef(from, to Handle) error {
	return &Error{Kind: ErrCycle, Msg: fmt.Sprintf("short %d -> %d would close a cycle", from, to)}
}
