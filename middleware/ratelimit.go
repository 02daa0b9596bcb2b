package middleware

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/tomblancdev/dropbox-go"
)

// RateLimit creates an interceptor that waits for a token from limiter before
// each call. A call whose context ends while waiting fails without being sent.
func RateLimit(limiter *rate.Limiter) dropbox.Interceptor {
	return func(ctx context.Context, info *dropbox.CallInfo, next dropbox.Invoker) error {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		return next(ctx, info)
	}
}
