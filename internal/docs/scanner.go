package docs

import (
	"context"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/raggedy/internal/foundation/errors"
	"git.home.luguber.info/inful/raggedy/internal/logfields"
	"git.home.luguber.info/inful/raggedy/internal/metrics"
	"git.home.luguber.info/inful/raggedy/internal/observability"
)

// Scanner collects and reads the documentation files below a root directory.
type Scanner struct {
	recorder metrics.Recorder
}

// NewScanner creates a Scanner that records no metrics.
func NewScanner() *Scanner {
	return &Scanner{recorder: metrics.NoopRecorder{}}
}

// WithRecorder sets the metrics recorder; nil restores the no-op recorder.
func (s *Scanner) WithRecorder(r metrics.Recorder) *Scanner {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// Scan collects every documentation file below root and reads it into a
// Document, in collection order. The first failure aborts the whole scan and
// no documents are returned.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Document, error) {
	start := time.Now()
	if observability.GetContext(ctx).RunID == "" {
		ctx = observability.WithRunID(ctx, observability.NewRunID())
	}

	docs, err := s.scan(ctx, root)
	s.recorder.ObserveScanDuration(time.Since(start))
	if err != nil {
		s.recorder.IncScanOutcome(metrics.ScanFailed)
		return nil, err
	}
	s.recorder.IncScanOutcome(metrics.ScanSuccess)

	observability.InfoContext(ctx, "Scan completed",
		logfields.Root(root),
		logfields.Count(len(docs)),
		logfields.Digest(ComputeDigest(docs)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return docs, nil
}

func (s *Scanner) scan(ctx context.Context, root string) ([]Document, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.FileSystemError("cannot resolve scan root").
			WithContext("path", root).
			WithCause(err).
			Build()
	}
	observability.InfoContext(ctx, "Starting documentation scan", logfields.Root(absRoot))

	collectCtx, endCollect := observability.StartStage(ctx, "collect")
	paths, err := s.CollectPaths(collectCtx, absRoot)
	endCollect(err)
	if err != nil {
		return nil, err
	}
	observability.DebugContext(collectCtx, "Collected documentation paths", logfields.Count(len(paths)))

	readCtx, endRead := observability.StartStage(ctx, "read")
	docs, err := s.readAll(readCtx, paths, absRoot)
	endRead(err)
	return docs, err
}

func (s *Scanner) readAll(ctx context.Context, paths []string, root string) ([]Document, error) {
	docs := make([]Document, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, canceled(err)
		}

		doc, err := ReadDocument(path, root)
		if err != nil {
			return nil, err
		}

		s.recorder.ObserveDocument(doc.Dialect.String(), len(doc.Headings), len(doc.Content))
		observability.DebugContext(ctx, "Document read",
			logfields.File(doc.RelPath),
			logfields.Dialect(doc.Dialect.String()),
			logfields.Headings(len(doc.Headings)),
			logfields.Bytes(len(doc.Content)))
		docs = append(docs, doc)
	}
	return docs, nil
}
