package main

import (
	"fmt"
	"os"

	"relaylogic/internal/cli"
)

func main() {
	root := cli.New()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "relaylogic:", err)
		os.Exit(cli.ExitCode(err))
	}
}
