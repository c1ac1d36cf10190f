package main

import (
	"time"

	"milan/internal/ratelimiter"
)

// sweepDraftsEvery drops wizard drafts that have sat idle past the
// registry's timeout.
func (app *application) sweepDraftsEvery(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if n := app.drafts.Sweep(); n > 0 {
				app.logger.Infow("swept idle drafts", "count", n, "remaining", app.drafts.Len())
			}
		}
	}()
}

// pruneRateLimiterEvery forgets clients whose window has closed.
func (app *application) pruneRateLimiterEvery(frame time.Duration, rl *ratelimiter.FixedWindowRateLimiter) {
	go func() {
		ticker := time.NewTicker(frame)
		defer ticker.Stop()

		for range ticker.C {
			if n := rl.Prune(); n > 0 {
				app.logger.Debugw("pruned rate limiter windows", "count", n)
			}
		}
	}()
}
