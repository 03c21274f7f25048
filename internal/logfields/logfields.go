package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyStage      = "stage"
	KeyRoot       = "root"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyDialect    = "dialect"
	KeyCount      = "count"
	KeyHeadings   = "headings"
	KeyBytes      = "bytes"
	KeyFormat     = "format"
	KeyDigest     = "digest"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Root(p string) slog.Attr         { return slog.String(KeyRoot, p) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Dialect(d string) slog.Attr      { return slog.String(KeyDialect, d) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Headings(n int) slog.Attr        { return slog.Int(KeyHeadings, n) }
func Bytes(n int) slog.Attr           { return slog.Int(KeyBytes, n) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Digest(d string) slog.Attr       { return slog.String(KeyDigest, d) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
