package reducer

// Transition is the domain's single-step value change, applied at most once
// per fold when a child's result disagrees with the running value.
type Transition[T comparable] interface {
	Transition(v T) T
}

// Output computes a contact's own output. Leaf applies to contacts with no
// out-edges; Inner applies to contacts whose children folded to folded.
type Output[T comparable] interface {
	Leaf(program, state, input T) T
	Inner(state, folded T) T
}

// BoolLogic is the built-in boolean domain.
//
// Transition negates. A leaf outputs program XOR input XOR state. An
// internal contact outputs its folded value XOR state, so a set state
// inverts the contact.
type BoolLogic struct{}

func (BoolLogic) Transition(v bool) bool { return !v }

func (BoolLogic) Leaf(program, state, input bool) bool {
	return (program != input) != state
}

func (BoolLogic) Inner(state, folded bool) bool {
	return folded != state
}
