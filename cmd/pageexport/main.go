package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args, DefaultEnv()))
}

// run dispatches the command named by args[1] and returns the exit code.
func run(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[1] {
	case "export":
		return runExportCmd(args[2:], env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "pageexport %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(args[2:], env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[1])
		printUsage(env.Stderr)
		return ExitUsage
	}
}
