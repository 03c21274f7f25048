// Package metrics provides scan metrics for raggedy.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics collection needs no nil checks at call sites:
//
//	scanner := docs.NewScanner()                      // NoopRecorder
//	scanner = scanner.WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// raggedy is a batch tool, so there is no scrape endpoint. When a metrics file
// is configured the registry is written once per run in the Prometheus text
// format (see WriteTextfile), ready for a node_exporter textfile collector.
package metrics
