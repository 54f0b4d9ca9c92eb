// Command fincalc runs the loan and investment calculators from the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// newLogger reports cache and history problems from the services. The CLI
// uses neither, so only warnings and errors are shown.
func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	commander.Register(&loanCmd{}, "loans")
	commander.Register(&scheduleCmd{}, "loans")
	commander.Register(&investCmd{}, "investments")
	commander.Register(&frequenciesCmd{}, "investments")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
