package prometheus

import (
	"net/http"
	"strconv"
	"strings"

	goMetrics "github.com/MrEthical07/goMetrics"
	"github.com/MrEthical07/goMetrics/export/internaldefs"
)

type metricsSource interface {
	MetricsSnapshot() goMetrics.Snapshot
	Keys() []string
}

// PrometheusExporter renders suite metrics in Prometheus text exposition
// format. Every metric is exported as a gauge: accumulator values move in
// both directions across resets.
type PrometheusExporter struct {
	source metricsSource
}

// NewPrometheusExporter creates an exporter that reads from the given
// [goMetrics.Suite].
func NewPrometheusExporter(suite *goMetrics.Suite) *PrometheusExporter {
	return &PrometheusExporter{source: suite}
}

// NewPrometheusExporterFromSource creates an exporter from a custom snapshot
// source.
func NewPrometheusExporterFromSource(source metricsSource) *PrometheusExporter {
	return &PrometheusExporter{source: source}
}

// Handler returns an http.Handler that serves the rendered metrics.
func (p *PrometheusExporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_, _ = w.Write([]byte(p.Render()))
	})
}

// Render writes the current snapshot in Prometheus text exposition format.
// Metrics without a defined value are omitted entirely rather than rendered
// as zero; the run gauge carries the current run ID as a label.
func (p *PrometheusExporter) Render() string {
	if p == nil || p.source == nil {
		return ""
	}

	snapshot := p.source.MetricsSnapshot()

	var b strings.Builder
	b.Grow(4096)

	writeRunInfo(&b, snapshot.RunID)
	for _, key := range p.source.Keys() {
		value, ok := snapshot.Values[key]
		if !ok {
			continue
		}
		writeGauge(&b, internaldefs.MetricName(key), internaldefs.DefaultHelp, value)
	}
	return b.String()
}

func writeRunInfo(b *strings.Builder, runID string) {
	const name = internaldefs.Prefix + "run"
	b.WriteString("# HELP ")
	b.WriteString(name)
	b.WriteString(" Evaluation run marker; the run_id label changes on reset.\n")
	b.WriteString("# TYPE ")
	b.WriteString(name)
	b.WriteString(" gauge\n")
	b.WriteString(name)
	b.WriteString("{run_id=\"")
	b.WriteString(escapeLabel(runID))
	b.WriteString("\"} 1\n")
}

func writeGauge(b *strings.Builder, name, help string, value float64) {
	b.WriteString("# HELP ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(escapeHelp(help))
	b.WriteByte('\n')
	b.WriteString("# TYPE ")
	b.WriteString(name)
	b.WriteString(" gauge\n")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(value, 'g', -1, 64))
	b.WriteByte('\n')
}

func escapeHelp(help string) string {
	help = strings.ReplaceAll(help, "\\", "\\\\")
	help = strings.ReplaceAll(help, "\n", "\\n")
	return help
}

func escapeLabel(value string) string {
	value = strings.ReplaceAll(value, "\\", "\\\\")
	value = strings.ReplaceAll(value, "\"", "\\\"")
	value = strings.ReplaceAll(value, "\n", "\\n")
	return value
}
