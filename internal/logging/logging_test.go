package logging

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCommandLineFormatter(t *testing.T) {
	f := new(CommandLineFormatter)

	out, err := f.Format(&log.Entry{Message: "reading manifest"})
	assert.NoError(t, err)
	assert.Equal(t, "reading manifest\n", string(out))

	out, err = f.Format(&log.Entry{Message: "claim", Data: log.Fields{"size": "10Gi", "name": "data"}})
	assert.NoError(t, err)
	assert.Equal(t, "claim name=data size=10Gi\n", string(out))
}

func TestConfigureCommandLineLogging(t *testing.T) {
	defer ConfigureCommandLineLogging(new(bytes.Buffer), false)

	var buf bytes.Buffer
	ConfigureCommandLineLogging(&buf, false)
	log.Debug("hidden")
	log.Info("shown")
	assert.Equal(t, "shown\n", buf.String())

	buf.Reset()
	ConfigureCommandLineLogging(&buf, true)
	log.Debug("now visible")
	assert.Equal(t, "now visible\n", buf.String())
}
