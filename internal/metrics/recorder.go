package metrics

import "time"

// FileResult classifies a file seen during collection.
type FileResult string

const (
	FileMatched FileResult = "matched"
	FileSkipped FileResult = "skipped"
)

// ScanOutcome is the final status of a scan.
type ScanOutcome string

const (
	ScanSuccess ScanOutcome = "success"
	ScanFailed  ScanOutcome = "failed"
)

// Recorder defines observability hooks for a scan. Implementations may forward
// to Prometheus or to a test double.
type Recorder interface {
	IncFileResult(result FileResult)
	ObserveDocument(dialect string, headings int, bytes int)
	ObserveScanDuration(d time.Duration)
	IncScanOutcome(outcome ScanOutcome)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncFileResult(FileResult)          {}
func (NoopRecorder) ObserveDocument(string, int, int)  {}
func (NoopRecorder) ObserveScanDuration(time.Duration) {}
func (NoopRecorder) IncScanOutcome(ScanOutcome)        {}
