package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain is the testable entry point: it parses flags, configures
// the runtime, and dispatches to run.
func realMain(args []string, stdout, stderr io.Writer) int {
	flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	if flags.help {
		printUsage(stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(stdout, "md2site %s\n", Version)
		return ExitSuccess
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := validateFlags(flags); err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stderr)
		return ExitUsage
	}

	if err := run(context.Background(), flags, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
