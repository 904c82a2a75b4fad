// Package cli implements the relaylogic command tree.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"relaylogic/internal/circuit"
)

// Exit codes. Invocation errors raised by cobra itself (unknown flags,
// missing required flags) map to ExitUsage; failures inside a command map
// to ExitFailure.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// cmdError carries a semantic exit code out through cobra's error return.
type cmdError struct {
	code int
	err  error
}

func (e *cmdError) Error() string { return e.err.Error() }
func (e *cmdError) Unwrap() error { return e.err }

func fail(err error) error {
	return &cmdError{code: ExitFailure, err: err}
}

func failf(format string, args ...any) error {
	return &cmdError{code: ExitFailure, err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ce *cmdError
	if errors.As(err, &ce) {
		return ce.code
	}
	return ExitUsage
}

// New builds the root command.
func New() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "relaylogic",
		Short:         "Evaluate relay-style contact networks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd, level)
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "warn", "log level (debug, info, warn, error)")
	root.AddCommand(newEvalCmd(), newTableCmd(), newFingerprintCmd())
	return root
}

func setupLogging(cmd *cobra.Command, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
	return nil
}

func loadCircuit(path string) (*circuit.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fail(err)
	}
	def, err := circuit.Load(data)
	if err != nil {
		return nil, fail(err)
	}
	return def, nil
}
