package command

import (
	"io"
	"os"

	"github.com/joseEnrique/pvccost/internal/display"
	"github.com/joseEnrique/pvccost/internal/manifest"
	"github.com/joseEnrique/pvccost/internal/pvc"
)

// App holds the state shared by all commands.
type App struct {
	Params *Params
	// Out receives the report. Defaults to standard out,
	// but can be overridden in tests to make assertions on the output.
	Out io.Writer
	// Err receives diagnostics and log output.
	Err io.Writer
}

// Params holds the user-customizable parameters.
type Params struct {
	Color   bool
	Verbose bool
}

// New instantiates an App writing to the standard streams.
func New() *App {
	return &App{
		Params: &Params{},
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
}

// Estimate prints the storage cost report for the manifest at path.
// Nothing but the header is printed when processing fails.
func (a *App) Estimate(path string) error {
	table := display.NewTable(a.Out, a.Params.Color)
	table.Header(path)

	report, err := estimateFile(path)
	if err != nil {
		display.NewTable(a.Err, a.Params.Color).Failure(err)
		return &exitError{code: exitProcessing, err: err}
	}
	if report.Empty() {
		table.NotFound()
		return nil
	}
	table.Show(report)
	return nil
}

func estimateFile(path string) (*pvc.Report, error) {
	r, err := manifest.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return pvc.NewEstimator(nil).Estimate(r)
}
