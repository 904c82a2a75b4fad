package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFingerprintCmd() *cobra.Command {
	var circuitPath string

	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the circuit's canonical fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := loadCircuit(circuitPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), def.Fingerprint())
			return nil
		},
	}
	cmd.Flags().StringVar(&circuitPath, "circuit", "", "path to the circuit definition")
	_ = cmd.MarkFlagRequired("circuit")
	return cmd
}
