package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "raggedy"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry     *prom.Registry
	filesScanned *prom.CounterVec
	documents    *prom.CounterVec
	headings     *prom.CounterVec
	bytesRead    prom.Counter
	scanDuration prom.Histogram
	scanOutcomes *prom.CounterVec
}

// NewPrometheusRecorder constructs the scan metrics and registers them on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		filesScanned: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "files_scanned_total",
			Help:      "Files seen during collection by result",
		}, []string{"result"}),
		documents: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "documents_total",
			Help:      "Documents read by dialect",
		}, []string{"dialect"}),
		headings: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "headings_total",
			Help:      "Heading lines extracted by dialect",
		}, []string{"dialect"}),
		bytesRead: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_read_total",
			Help:      "Bytes of document content read",
		}),
		scanDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Total scan duration",
			Buckets:   prom.DefBuckets,
		}),
		scanOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "scan_outcomes_total",
			Help:      "Scan outcomes by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.filesScanned, pr.documents, pr.headings, pr.bytesRead, pr.scanDuration, pr.scanOutcomes)
	return pr
}

func (p *PrometheusRecorder) IncFileResult(result FileResult) {
	if p == nil {
		return
	}
	p.filesScanned.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveDocument(dialect string, headings int, bytes int) {
	if p == nil {
		return
	}
	p.documents.WithLabelValues(dialect).Inc()
	p.headings.WithLabelValues(dialect).Add(float64(headings))
	p.bytesRead.Add(float64(bytes))
}

func (p *PrometheusRecorder) ObserveScanDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.scanDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncScanOutcome(outcome ScanOutcome) {
	if p == nil {
		return
	}
	p.scanOutcomes.WithLabelValues(string(outcome)).Inc()
}

// WriteTextfile writes every metric on the recorder's registry to filename in
// the Prometheus text exposition format. The file is replaced atomically.
func (p *PrometheusRecorder) WriteTextfile(filename string) error {
	return prom.WriteToTextfile(filename, p.registry)
}
