package display

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/joseEnrique/pvccost/internal/pvc"
)

// ANSI styles
const (
	reset   = "\033[0m"
	bold    = "\033[1m"
	dim     = "\033[2m"
	red     = "\033[31m"
	green   = "\033[32m"
	yellow  = "\033[33m"
	magenta = "\033[35m"
	cyan    = "\033[36m"
)

const costHeader = "Estimated Monthly Cost"

// Table renders cost reports for a terminal
type Table struct {
	out   io.Writer
	color bool
}

// NewTable creates a table writing to out. When color is false no escape codes are written.
func NewTable(out io.Writer, color bool) *Table {
	return &Table{out: out, color: color}
}

// Header announces the file being analyzed
func (t *Table) Header(file string) {
	fmt.Fprintf(t.out, "Analyzing file: %s\n\n", t.style(filepath.Base(file), bold, cyan))
}

// Show prints one line per row, in report order, followed by the total
func (t *Table) Show(report *pvc.Report) {
	cfg := report.Config
	if cfg == nil {
		cfg = pvc.DefaultConfig()
	}
	fmt.Fprintln(t.out, t.style(
		fmt.Sprintf("Kube-Estimator Cost Report (%s %s, %s)", cfg.Provider, cfg.Region, cfg.VolumeType), bold))

	// The cost column is the last one, so tabwriter leaves it alone; pad it
	// by hand to right-align the amounts under the header.
	costs := lo.Map(report.Rows, func(r pvc.Row, _ int) string { return FormatCost(cfg.Currency, r.Cost) })
	width := lo.Max(append(lo.Map(costs, func(c string, _ int) int { return len(c) }), len(costHeader)))

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Kind\tName\tStorage Request\t%*s\n", width, costHeader)
	for i, r := range report.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%*s\n", r.Kind, cell(r.Name), cell(r.StorageRequest), width, costs[i])
		logQuantity(r)
	}
	w.Flush()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	fmt.Fprintln(t.out, t.style(lines[0], bold, magenta))
	for i, line := range lines[1:] {
		kind := report.Rows[i].Kind
		fmt.Fprintln(t.out, t.style(kind, dim)+strings.TrimPrefix(line, kind))
	}

	fmt.Fprintf(t.out, "\n%s %s\n",
		t.style("Total Estimated Monthly Cost:", bold),
		t.style(FormatCost(cfg.Currency, report.Total), bold, green))
}

// NotFound reports a manifest without claims
func (t *Table) NotFound() {
	fmt.Fprintln(t.out, t.style("No 'PersistentVolumeClaim' resources found in the file.", yellow))
}

// Failure reports the error that aborted processing
func (t *Table) Failure(err error) {
	fmt.Fprintf(t.out, "%s %v\n", t.style("Error processing file:", bold, red), err)
}

// FormatCost formats an amount with two decimals behind the currency symbol
func FormatCost(currency string, cost float64) string {
	return fmt.Sprintf("%s%.2f", currency, cost)
}

// cell quotes values holding control characters, so that every row stays on
// one line and in its own column.
func cell(s string) string {
	if strings.ContainsFunc(s, unicode.IsControl) {
		return strconv.Quote(s)
	}
	return s
}

func (t *Table) style(s string, codes ...string) string {
	if !t.color {
		return s
	}
	return strings.Join(codes, "") + s + reset
}

// logQuantity traces how Kubernetes itself reads the request, which differs
// from the estimate for decimal units and for suffixes priced at zero.
func logQuantity(r pvc.Row) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	q, err := resource.ParseQuantity(r.StorageRequest)
	if err != nil {
		log.Debugf("%s: %q is not a Kubernetes quantity", r.Name, r.StorageRequest)
		return
	}
	log.Debugf("%s: %s is %s, estimated as %.4f GB", r.Name, r.StorageRequest, HumanizeBytes(q.Value()), r.SizeGB)
}
