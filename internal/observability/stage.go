package observability

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/raggedy/internal/logfields"
)

// StartStage tags ctx with the stage name and returns a function that logs the
// stage duration (and err, when non-nil) at debug level.
func StartStage(ctx context.Context, stage string) (context.Context, func(err error)) {
	ctx = WithStage(ctx, stage)
	start := time.Now()
	DebugContext(ctx, "Stage started")

	return ctx, func(err error) {
		attrs := []slog.Attr{logfields.DurationMS(float64(time.Since(start).Microseconds()) / 1000)}
		if err != nil {
			attrs = append(attrs, logfields.Error(err))
		}
		DebugContext(ctx, "Stage ended", attrs...)
	}
}
