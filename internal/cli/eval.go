package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"relaylogic/internal/evtrace"
	"relaylogic/internal/reducer"
)

func newEvalCmd() *cobra.Command {
	var circuitPath, input string
	var withTrace bool

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a circuit for one input vector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := loadCircuit(circuitPath)
			if err != nil {
				return err
			}

			rec := evtrace.NewRecorder()
			var opts []reducer.Option[bool]
			if withTrace {
				opts = append(opts, reducer.WithSink[bool](rec))
			}
			r, _, err := def.Build(opts...)
			if err != nil {
				return fail(err)
			}
			if input != "" {
				if err := reducer.ReinputBits(r, input); err != nil {
					return fail(err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), reducer.OutputBit(r))

			if withTrace {
				data, err := rec.Trace(def.Fingerprint()).JSON()
				if err != nil {
					return fail(err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), string(data))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&circuitPath, "circuit", "", "path to the circuit definition")
	cmd.Flags().StringVar(&input, "input", "", "leaf input bits, in leaf creation order (default all 0)")
	cmd.Flags().BoolVar(&withTrace, "trace", false, "print the evaluation trace as JSON on stderr")
	_ = cmd.MarkFlagRequired("circuit")
	return cmd
}
