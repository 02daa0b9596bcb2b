package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tomblancdev/dropbox-go"
)

// Logging creates an interceptor that logs calls using slog.
// It logs the start and end of each call with a per-call id, the status and
// the duration. A nil logger uses slog.Default.
func Logging(logger *slog.Logger) dropbox.Interceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return func(ctx context.Context, info *dropbox.CallInfo, next dropbox.Invoker) error {
		start := time.Now()
		log := logger.With(
			slog.String("call_id", uuid.NewString()),
			slog.String("endpoint", info.Endpoint),
			slog.String("mode", mode(info)),
		)

		log.DebugContext(ctx, "call started", slog.String("url", info.URL))

		err := next(ctx, info)
		duration := time.Since(start)

		if err != nil {
			log.ErrorContext(ctx, "call failed",
				slog.Int("status", info.Status),
				slog.Duration("duration", duration),
				slog.Any("error", err),
			)
			return err
		}

		log.InfoContext(ctx, "call completed",
			slog.Int("status", info.Status),
			slog.Bool("empty", info.Empty),
			slog.Duration("duration", duration),
		)
		return nil
	}
}
