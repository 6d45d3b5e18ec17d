package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/cligram/internal/app"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating the program should exit cleanly (help requested), or
// an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("cligram", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
cligram - prints the command grammars compiled into this binary.

Usage:
  cligram [options] [TREE]

Arguments:
  TREE
    Name of a single registered grammar tree to print. All trees are
    printed when omitted.

Options:
`)
		flagSet.PrintDefaults()
	}

	briefFlag := flagSet.Bool("brief", false, "Brief output: tokens and variable names only.")
	dumpFlag := flagSet.Bool("dump", false, "Write a structural debug dump instead of grammar syntax.")
	treeFlag := flagSet.String("tree", "", "Name of the grammar tree to print.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	tree := *treeFlag
	if tree == "" && flagSet.NArg() > 0 {
		tree = flagSet.Arg(0)
	}

	cfg, err := app.NewConfig(app.Config{
		Tree:      tree,
		Brief:     *briefFlag,
		Dump:      *dumpFlag,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}
