package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists subcommand names recognized as the first argument.
var commands = map[string]bool{
	"doctor":  true,
	"version": true,
	"help":    true,
}

func main() {
	args := os.Args[1:]

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if wantsVerbose(args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// It never calls os.Exit, so every path is testable.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 && isCommand(args[0]) {
		switch args[0] {
		case "version":
			fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
			return ExitSuccess
		case "help":
			printUsage(env.Stdout)
			return ExitSuccess
		case "doctor":
			return runDoctorCmd(args[1:], env)
		}
	}

	return runConvertCmd(args, env)
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return commands[arg]
}

// wantsVerbose reports whether -v or --verbose appears among args in flag
// position. A token taken as the value of a string flag ("--title -v") does
// not count.
func wantsVerbose(args []string) bool {
	fs := newConvertFlagSet(&convertFlags{})
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
		if fl := lookupToken(fs, a); fl != nil && fl.Value.Type() != "bool" {
			i++ // skip value
		}
	}
	return false
}
