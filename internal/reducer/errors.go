package reducer

import (
	"errors"
	"fmt"
)

var (
	ErrLengthMismatch = errors.New("sequence length mismatch")
	ErrParse          = errors.New("unparsable sequence")
)

// Error wraps facade-level failures with a stable kind.
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

func lengthf(seq string, want, got int) error {
	return &Error{
		Kind: ErrLengthMismatch,
		Msg:  fmt.Sprintf("%s sequence needs %d values, got %d", seq, want, got),
	}
}

func parsef(pos int, r rune) error {
	return &Error{
		Kind: ErrParse,
		Msg:  fmt.Sprintf("position %d: unrecognized character %q", pos, r),
	}
}

func decodef(pos int, err error) error {
	return &Error{
		Kind: ErrParse,
		Msg:  fmt.Sprintf("position %d: %v", pos, err),
	}
}
