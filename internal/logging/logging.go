package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// ConfigureCommandLineLogging sets up the standard logger for interactive use:
// plain messages to out, debug output only when verbose.
func ConfigureCommandLineLogging(out io.Writer, verbose bool) {
	log.SetFormatter(new(CommandLineFormatter))
	log.SetOutput(out)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
