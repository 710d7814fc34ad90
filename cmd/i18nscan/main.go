package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

const (
	exitFindings = 1
	exitFailure  = 2
)

// exitError carries the process exit code of a finished run
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// main runs the root command; exit status is 0 when no hardcoded text is found,
// 1 when findings are reported and 2 when the run itself fails.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) {
		if exit.err != nil {
			fmt.Fprintln(os.Stderr, "i18nscan:", exit.err)
		}
		return exit.code
	}
	fmt.Fprintln(os.Stderr, "i18nscan:", err)
	return exitFailure
}
