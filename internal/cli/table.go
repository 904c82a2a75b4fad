package cli

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/spf13/cobra"

	"relaylogic/internal/reducer"
)

// maxTableInputs caps truth-table enumeration at 65536 rows.
const maxTableInputs = 16

func newTableCmd() *cobra.Command {
	var circuitPath string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the circuit's full truth table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := loadCircuit(circuitPath)
			if err != nil {
				return err
			}
			r, _, err := def.Build()
			if err != nil {
				return fail(err)
			}

			n := r.LeafCount()
			if n > maxTableInputs {
				return failf("circuit has %d inputs; table is limited to %d", n, maxTableInputs)
			}

			// Combination i assigns its bit j to leaf j.
			in := make([]bool, n)
			for combo := uint64(0); combo < 1<<uint(n); combo++ {
				b := bitset.From([]uint64{combo})
				for j := 0; j < n; j++ {
					in[j] = b.Test(uint(j))
				}
				if err := r.Reinput(in); err != nil {
					return fail(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", reducer.FormatBits(in), reducer.OutputBit(r))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&circuitPath, "circuit", "", "path to the circuit definition")
	_ = cmd.MarkFlagRequired("circuit")
	return cmd
}
