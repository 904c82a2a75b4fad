package reducer

import (
	"fmt"
	"log/slog"

	"relaylogic/internal/evtrace"
	"relaylogic/internal/graph"
)

// Reducer owns a contact graph and evaluates it. The zero value is not
// usable; construct with New or NewWith.
//
// A Reducer is not safe for concurrent mutation. Evaluation does not mutate
// the graph but is also expected to run from a single goroutine.
type Reducer[T comparable] struct {
	g    *graph.Graph[T]
	tr   Transition[T]
	out  Output[T]
	log  *slog.Logger
	sink evtrace.Sink
}

// Option configures a Reducer at construction.
type Option[T comparable] func(*Reducer[T])

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger[T comparable](log *slog.Logger) Option[T] {
	return func(r *Reducer[T]) { r.log = log }
}

// WithSink attaches an evaluation trace sink. Recording is observational
// only; a nil or absent sink skips it entirely.
func WithSink[T comparable](s evtrace.Sink) Option[T] {
	return func(r *Reducer[T]) { r.sink = s }
}

// New returns a boolean reducer holding only the root contact.
func New(opts ...Option[bool]) *Reducer[bool] {
	return NewWith[bool](BoolLogic{}, BoolLogic{}, opts...)
}

// NewWith returns a reducer over an arbitrary comparable domain, with the
// given transition and output capabilities.
func NewWith[T comparable](tr Transition[T], out Output[T], opts ...Option[T]) *Reducer[T] {
	r := &Reducer[T]{
		g:   graph.New[T](),
		tr:  tr,
		out: out,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	return r
}

// Root returns the handle of the root contact.
func (r *Reducer[T]) Root() graph.Handle { return r.g.Root() }

// ContactCount returns the number of contacts, root included.
func (r *Reducer[T]) ContactCount() int { return r.g.Len() }

// LeafCount returns the number of leaf contacts, which is the required
// length of the input sequence.
func (r *Reducer[T]) LeafCount() int { return len(r.g.Leaves()) }

// AddContact appends a new contact under parent and returns its handle.
func (r *Reducer[T]) AddContact(parent graph.Handle) (graph.Handle, error) {
	h, err := r.g.AddChild(parent)
	if err != nil {
		return 0, err
	}
	r.log.Debug("contact added", "handle", int(h), "parent", int(parent))
	return h, nil
}

// Short adds a non-structural edge from -> to; it fails with graph.ErrCycle
// when the edge would make the graph cyclic, leaving the graph unchanged.
func (r *Reducer[T]) Short(from, to graph.Handle) error {
	if err := r.g.Short(from, to); err != nil {
		r.log.Debug("short refused", "from", int(from), "to", int(to), "err", err)
		return err
	}
	r.log.Debug("short added", "from", int(from), "to", int(to))
	return nil
}

// Reprogram replaces every contact's program value. seq is indexed by
// handle and must cover all contacts; on mismatch nothing is written.
func (r *Reducer[T]) Reprogram(seq []T) error {
	if len(seq) != r.g.Len() {
		return lengthf("program", r.g.Len(), len(seq))
	}
	for i, v := range seq {
		_ = r.g.SetProgram(graph.Handle(i), v)
	}
	return nil
}

// Reconfigure replaces every contact's state value, with the same length
// contract as Reprogram.
func (r *Reducer[T]) Reconfigure(seq []T) error {
	if len(seq) != r.g.Len() {
		return lengthf("state", r.g.Len(), len(seq))
	}
	for i, v := range seq {
		_ = r.g.SetState(graph.Handle(i), v)
	}
	return nil
}

// Reinput replaces the input values of all leaf contacts, in leaf creation
// order; on length mismatch nothing is written. Non-leaf inputs are
// untouched (they do not take part in evaluation).
func (r *Reducer[T]) Reinput(seq []T) error {
	leaves := r.g.Leaves()
	if len(seq) != len(leaves) {
		return lengthf("input", len(leaves), len(seq))
	}
	for i, h := range leaves {
		_ = r.g.SetInput(h, seq[i])
	}
	return nil
}

// Program returns the program sequence, indexed by handle.
func (r *Reducer[T]) Program() []T {
	out := make([]T, r.g.Len())
	for i := range out {
		out[i], _ = r.g.Program(graph.Handle(i))
	}
	return out
}

// Configuration returns the state sequence, indexed by handle.
func (r *Reducer[T]) Configuration() []T {
	out := make([]T, r.g.Len())
	for i := range out {
		out[i], _ = r.g.State(graph.Handle(i))
	}
	return out
}

// Input returns the leaf input sequence, in leaf creation order.
func (r *Reducer[T]) Input() []T {
	leaves := r.g.Leaves()
	out := make([]T, len(leaves))
	for i, h := range leaves {
		out[i], _ = r.g.Input(h)
	}
	return out
}

// Output evaluates the whole graph and returns the root contact's value.
func (r *Reducer[T]) Output() T {
	return r.eval(r.g.Root())
}

// Evaluate evaluates the subgraph rooted at h.
func (r *Reducer[T]) Evaluate(h graph.Handle) (T, error) {
	if _, err := r.g.Program(h); err != nil {
		var zero T
		return zero, err
	}
	return r.eval(h), nil
}

// eval performs the recursive walk. h is known valid. Shared contacts
// (reachable through several shorts) are re-evaluated per path; evaluation
// is pure, so results agree.
func (r *Reducer[T]) eval(h graph.Handle) T {
	children, _ := r.g.Children(h)
	state, _ := r.g.State(h)

	if len(children) == 0 {
		program, _ := r.g.Program(h)
		input, _ := r.g.Input(h)
		v := r.out.Leaf(program, state, input)
		r.record(evtrace.EventLeaf, h, v)
		return v
	}

	// The fold transitions at most once, on the first disagreeing child.
	// Every child is still evaluated so the trace covers the full walk.
	assumed, _ := r.g.Program(h)
	flipped := false
	for _, c := range children {
		if r.eval(c) != assumed && !flipped {
			assumed = r.tr.Transition(assumed)
			flipped = true
		}
	}
	v := r.out.Inner(state, assumed)
	r.record(evtrace.EventInner, h, v)
	return v
}

func (r *Reducer[T]) record(kind evtrace.EventKind, h graph.Handle, v T) {
	if r.sink == nil {
		return
	}
	evtrace.SafeRecord(r.sink, evtrace.Event{
		Kind:   kind,
		Handle: int(h),
		Value:  fmt.Sprintf("%v", v),
	})
}
