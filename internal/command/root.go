package command

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/joseEnrique/pvccost/internal/logging"
)

const (
	exitOK         = 0
	exitProcessing = 1
	exitUsage      = 2
)

// exitError carries the process exit code of a failure that has already been reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// RootCmd is the root Cobra command. All other sub-commands are registered here.
func RootCmd(app *App) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:           "pvccost",
		Short:         "pvccost estimates the monthly storage cost of Kubernetes PersistentVolumeClaims.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.Params.Color = !noColor && isTerminal(app.Out)
			logging.ConfigureCommandLineLogging(app.Err, app.Params.Verbose)
		},
	}

	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVarP(&app.Params.Verbose, "verbose", "v", false, "Log every document and claim as it is processed")

	cmd.AddCommand(estimateCmd(app))
	return cmd
}

// Run executes the command line args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	app := New()
	app.Out = stdout
	app.Err = stderr

	cmd := RootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	c, err := cmd.ExecuteC()
	if err == nil {
		return exitOK
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", c.CommandPath())
	return exitUsage
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
