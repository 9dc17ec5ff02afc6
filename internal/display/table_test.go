package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseEnrique/pvccost/internal/pvc"
)

func sampleReport() *pvc.Report {
	report := &pvc.Report{Config: pvc.DefaultConfig()}
	report.Add(pvc.Row{Kind: "PersistentVolumeClaim", Name: "data", StorageRequest: "10Gi", SizeGB: 10, Cost: 0.8})
	report.Add(pvc.Row{Kind: "PersistentVolumeClaim", Name: "write-ahead-log", StorageRequest: "20Gi", SizeGB: 20, Cost: 1.6})
	return report
}

func TestShow(t *testing.T) {
	var buf bytes.Buffer
	NewTable(&buf, false).Show(sampleReport())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Kube-Estimator Cost Report (AWS us-east-1, gp3)", lines[0])
	assert.Equal(t, "Kind                   Name             Storage Request  Estimated Monthly Cost", lines[1])
	assert.Equal(t, "PersistentVolumeClaim  data             10Gi                              $0.80", lines[2])
	assert.Equal(t, "PersistentVolumeClaim  write-ahead-log  20Gi                              $1.60", lines[3])
	assert.Equal(t, "", lines[4])
	assert.Equal(t, "Total Estimated Monthly Cost: $2.40", lines[5])
	assert.NotContains(t, buf.String(), "\033[")
}

func TestShowQuotesControlCharacters(t *testing.T) {
	report := &pvc.Report{Config: pvc.DefaultConfig()}
	report.Add(pvc.Row{Kind: "PersistentVolumeClaim", Name: "a\nb", StorageRequest: "1Gi", SizeGB: 1, Cost: 0.08})
	report.Add(pvc.Row{Kind: "PersistentVolumeClaim", Name: "tab\tbed", StorageRequest: "10\nGi", SizeGB: 10, Cost: 0.8})

	for _, color := range []bool{false, true} {
		var buf bytes.Buffer
		require.NotPanics(t, func() { NewTable(&buf, color).Show(report) })

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 6)
		assert.Contains(t, lines[2], `"a\nb"`)
		assert.Contains(t, lines[2], "$0.08")
		assert.Contains(t, lines[3], `"tab\tbed"`)
		assert.Contains(t, lines[3], `"10\nGi"`)
		assert.Contains(t, lines[5], "$0.88")
	}
}

func TestShowColor(t *testing.T) {
	var plain, colored bytes.Buffer
	NewTable(&plain, false).Show(sampleReport())
	NewTable(&colored, true).Show(sampleReport())

	out := colored.String()
	assert.Contains(t, out, bold+magenta+"Kind")
	assert.Contains(t, out, dim+"PersistentVolumeClaim"+reset+"  data")
	assert.Contains(t, out, bold+green+"$2.40"+reset)

	stripped := out
	for _, code := range []string{reset, bold, dim, green, magenta} {
		stripped = strings.ReplaceAll(stripped, code, "")
	}
	assert.Equal(t, plain.String(), stripped)
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	NewTable(&buf, false).Header("/tmp/manifests/storage.yaml")
	assert.Equal(t, "Analyzing file: storage.yaml\n\n", buf.String())
}

func TestNotFound(t *testing.T) {
	var buf bytes.Buffer
	NewTable(&buf, false).NotFound()
	assert.Equal(t, "No 'PersistentVolumeClaim' resources found in the file.\n", buf.String())
}

func TestFailure(t *testing.T) {
	var buf bytes.Buffer
	NewTable(&buf, false).Failure(errors.New("missing field in document 2"))
	assert.Equal(t, "Error processing file: missing field in document 2\n", buf.String())

	buf.Reset()
	NewTable(&buf, true).Failure(errors.New("boom"))
	assert.Equal(t, bold+red+"Error processing file:"+reset+" boom\n", buf.String())
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.08", FormatCost("$", 0.08))
	assert.Equal(t, "$0.00", FormatCost("$", 0))
	assert.Equal(t, "$2.40", FormatCost("$", 0.8+1.6))
	assert.Equal(t, "$0.04", FormatCost("$", 0.5*0.08))
}
