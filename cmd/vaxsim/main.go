// Command vaxsim runs the vaccination campaign simulator. Commands are read
// from stdin one per line and results are written to stdout.
//
// Usage:
//
//	vaxsim [language] [flags]
//
// The optional language argument (for example "pt") selects the message set,
// like --lang.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdin, os.Stdout)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "vaxsim:", err)
		stop()
		os.Exit(1)
	}
}
