package main

import (
	"fmt"
	"os"

	"github.com/whichperiod/whichperiod/cmd/whichperiod/commands"
	"github.com/whichperiod/whichperiod/pkg/perioderr"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		// Bad CLI input gets its own exit code so scripts can tell
		// usage mistakes from config failures.
		if perioderr.IsErrorCode(err, perioderr.ErrInvalidInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
