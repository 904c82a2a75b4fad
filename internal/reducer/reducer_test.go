package reducer_test

import (
	"fmt"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"

	"relaylogic/internal/evtrace"
	"relaylogic/internal/graph"
	"relaylogic/internal/reducer"
)

func TestSingleContact_LeafTruthTable(t *testing.T) {
	t.Parallel()

	bits := []bool{false, true}
	for _, p := range bits {
		for _, s := range bits {
			for _, i := range bits {
				r := reducer.New()
				require.NoError(t, r.Reprogram([]bool{p}))
				require.NoError(t, r.Reconfigure([]bool{s}))
				require.NoError(t, r.Reinput([]bool{i}))

				want := (p != i) != s
				require.Equalf(t, want, r.Output(), "p=%v s=%v i=%v", p, s, i)
			}
		}
	}
}

// twoLeafGate builds root -> gate -> {a, b}: a single internal contact over
// two input leaves, with a pass-through root.
func twoLeafGate(t *testing.T) *reducer.Reducer[bool] {
	t.Helper()
	r := reducer.New(reducer.WithLogger[bool](slogt.New(t)))
	gate, err := r.AddContact(r.Root())
	require.NoError(t, err)
	_, err = r.AddContact(gate)
	require.NoError(t, err)
	_, err = r.AddContact(gate)
	require.NoError(t, err)
	return r
}

func TestTwoLeafGate_CombinationTables(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		program string
		state   string
		table   map[string]string
	}{
		{
			name:    "or",
			program: "0000",
			state:   "0000",
			table:   map[string]string{"00": "0", "01": "1", "10": "1", "11": "1"},
		},
		{
			name:    "and",
			program: "0100",
			state:   "0000",
			table:   map[string]string{"00": "0", "01": "0", "10": "0", "11": "1"},
		},
		{
			name:    "nor",
			program: "0000",
			state:   "1000",
			table:   map[string]string{"00": "1", "01": "0", "10": "0", "11": "0"},
		},
		{
			name:    "nand",
			program: "0100",
			state:   "1000",
			table:   map[string]string{"00": "1", "01": "1", "10": "1", "11": "0"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := twoLeafGate(t)
			require.NoError(t, reducer.ReprogramBits(r, tc.program))
			require.NoError(t, reducer.ReconfigureBits(r, tc.state))

			for in, want := range tc.table {
				require.NoError(t, reducer.ReinputBits(r, in))
				require.Equalf(t, want, reducer.OutputBit(r), "input %s", in)
			}
		})
	}
}

// xorNetwork builds the six-contact network whose series stage combines a
// parallel (OR) branch with a shorted, inverted series (NAND) branch over
// the same two leaves.
func xorNetwork(t *testing.T, opts ...reducer.Option[bool]) *reducer.Reducer[bool] {
	t.Helper()
	r := reducer.New(opts...)

	series0, err := r.AddContact(r.Root())
	require.NoError(t, err)
	parallel1, err := r.AddContact(series0)
	require.NoError(t, err)
	series1, err := r.AddContact(series0)
	require.NoError(t, err)
	input0, err := r.AddContact(parallel1)
	require.NoError(t, err)
	input1, err := r.AddContact(parallel1)
	require.NoError(t, err)

	require.NoError(t, r.Short(series1, input0))
	require.NoError(t, r.Short(series1, input1))
	return r
}

func TestXorNetwork(t *testing.T) {
	t.Parallel()

	r := xorNetwork(t, reducer.WithLogger[bool](slogt.New(t)))
	require.Equal(t, 6, r.ContactCount())
	require.Equal(t, 2, r.LeafCount())

	require.NoError(t, reducer.ReprogramBits(r, "010100"))
	require.NoError(t, reducer.ReconfigureBits(r, "000100"))

	xor := map[string]string{"00": "0", "01": "1", "10": "1", "11": "0"}
	for in, want := range xor {
		require.NoError(t, reducer.ReinputBits(r, in))
		require.Equalf(t, want, reducer.OutputBit(r), "input %s", in)
	}

	// Setting the root state inverts the whole network.
	require.NoError(t, reducer.ReconfigureBits(r, "100100"))
	xnor := map[string]string{"00": "1", "01": "0", "10": "0", "11": "1"}
	for in, want := range xnor {
		require.NoError(t, reducer.ReinputBits(r, in))
		require.Equalf(t, want, reducer.OutputBit(r), "input %s", in)
	}
}

func TestShort_CycleLeavesReducerUsable(t *testing.T) {
	t.Parallel()

	r := reducer.New()
	a, _ := r.AddContact(r.Root())
	b, _ := r.AddContact(a)

	require.NoError(t, r.Reinput([]bool{true}))
	before := r.Output()

	require.ErrorIs(t, r.Short(b, a), graph.ErrCycle)
	require.ErrorIs(t, r.Short(a, a), graph.ErrCycle)

	// The refused edges left structure, inputs and output untouched.
	require.Equal(t, 1, r.LeafCount())
	require.Equal(t, before, r.Output())
}

func TestSequences_ReadAfterWrite(t *testing.T) {
	t.Parallel()

	r := xorNetwork(t)
	require.NoError(t, reducer.ReprogramBits(r, "010100"))
	require.NoError(t, reducer.ReconfigureBits(r, "000100"))
	require.NoError(t, reducer.ReinputBits(r, "10"))

	require.Equal(t, "010100", reducer.FormatBits(r.Program()))
	require.Equal(t, "000100", reducer.FormatBits(r.Configuration()))
	require.Equal(t, "10", reducer.FormatBits(r.Input()))
}

func TestSequences_LengthMismatchWritesNothing(t *testing.T) {
	t.Parallel()

	r := xorNetwork(t)
	require.NoError(t, reducer.ReprogramBits(r, "010100"))
	require.NoError(t, reducer.ReinputBits(r, "11"))

	require.ErrorIs(t, reducer.ReprogramBits(r, "11111"), reducer.ErrLengthMismatch)
	require.ErrorIs(t, reducer.ReconfigureBits(r, "1111111"), reducer.ErrLengthMismatch)
	require.ErrorIs(t, reducer.ReinputBits(r, "111"), reducer.ErrLengthMismatch)

	require.Equal(t, "010100", reducer.FormatBits(r.Program()))
	require.Equal(t, "000000", reducer.FormatBits(r.Configuration()))
	require.Equal(t, "11", reducer.FormatBits(r.Input()))
}

func TestShort_TurnsLeafIntoInternalContact(t *testing.T) {
	t.Parallel()

	r := reducer.New()
	a, _ := r.AddContact(r.Root())
	b, _ := r.AddContact(r.Root())
	require.Equal(t, 2, r.LeafCount())

	require.NoError(t, r.Short(a, b))

	// a now has an out-edge, so only b takes input.
	require.Equal(t, 1, r.LeafCount())
	require.ErrorIs(t, r.Reinput([]bool{true, false}), reducer.ErrLengthMismatch)

	require.NoError(t, r.Reinput([]bool{true}))
	require.True(t, r.Output())
}

func TestEvaluate_Subnetwork(t *testing.T) {
	t.Parallel()

	r := xorNetwork(t)
	require.NoError(t, reducer.ReprogramBits(r, "010100"))
	require.NoError(t, reducer.ReinputBits(r, "01"))

	// Handle 2 is the parallel (OR) stage over both leaves.
	v, err := r.Evaluate(graph.Handle(2))
	require.NoError(t, err)
	require.True(t, v)

	// Handle 3 is the shorted series (AND) stage with its state clear.
	v, err = r.Evaluate(graph.Handle(3))
	require.NoError(t, err)
	require.False(t, v)

	_, err = r.Evaluate(graph.Handle(99))
	require.ErrorIs(t, err, graph.ErrInvalidHandle)
}

func TestAddContact_UnknownParent(t *testing.T) {
	t.Parallel()

	r := reducer.New()
	_, err := r.AddContact(graph.Handle(3))
	require.ErrorIs(t, err, graph.ErrInvalidHandle)
}

func TestEvaluation_RecordsDeterministicTrace(t *testing.T) {
	t.Parallel()

	rec := evtrace.NewRecorder()
	r := reducer.New(reducer.WithSink[bool](rec))
	gate, _ := r.AddContact(r.Root())
	a, _ := r.AddContact(gate)
	b, _ := r.AddContact(gate)
	require.NoError(t, r.Reinput([]bool{true, false}))

	r.Output()
	first := rec.Snapshot()
	require.Equal(t, []evtrace.Event{
		{Kind: evtrace.EventLeaf, Handle: int(a), Value: "true"},
		{Kind: evtrace.EventLeaf, Handle: int(b), Value: "false"},
		{Kind: evtrace.EventInner, Handle: int(gate), Value: "true"},
		{Kind: evtrace.EventInner, Handle: 0, Value: "true"},
	}, first)

	// Re-evaluating reproduces the exact same events.
	rec.Reset()
	r.Output()
	require.Equal(t, first, rec.Snapshot())
}

// vowelLogic reduces words: a leaf answers whether its input rune is a
// vowel, and inner contacts answer whether any branch found one.
type vowelLogic struct{}

func (vowelLogic) Transition(rune) rune { return 'y' }

func (vowelLogic) Leaf(program, state, input rune) rune {
	return vowel(input)
}

func (vowelLogic) Inner(state, folded rune) rune {
	return vowel(folded)
}

func vowel(r rune) rune {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return 'y'
	}
	return 'n'
}

func TestCharacterDomain_VowelDetector(t *testing.T) {
	t.Parallel()

	r := reducer.NewWith[rune](vowelLogic{}, vowelLogic{})
	for i := 0; i < 3; i++ {
		_, err := r.AddContact(r.Root())
		require.NoError(t, err)
	}
	require.NoError(t, r.Reprogram([]rune{'n', 0, 0, 0}))

	words := map[string]rune{
		"fox": 'y',
		"cat": 'y',
		"psm": 'n',
		"ibm": 'y',
		"dog": 'y',
		"tls": 'n',
	}
	for word, want := range words {
		in, err := reducer.DecodeString(word, func(r rune) (rune, error) {
			if r < 'a' || r > 'z' {
				return 0, fmt.Errorf("rune %q outside alphabet", r)
			}
			return r, nil
		})
		require.NoError(t, err)
		require.NoError(t, r.Reinput(in))
		require.Equalf(t, string(want), string(r.Output()), "word %s", word)
	}
}
