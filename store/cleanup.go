package store

import (
	"context"
	"log/slog"
	"time"
)

// StartCleanupLoop runs a goroutine that removes codes older than maxAge
// every interval. One sweep happens immediately so files left over from a
// previous run do not outlive a restart. Stops when ctx is cancelled.
func StartCleanupLoop(ctx context.Context, s *Store, interval, maxAge time.Duration, log *slog.Logger) {
	go cleanupLoop(ctx, s, interval, maxAge, log)
}

func cleanupLoop(ctx context.Context, s *Store, interval, maxAge time.Duration, log *slog.Logger) {
	s.Sweep(maxAge, log)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("cleanup loop stopped")
			return
		case <-ticker.C:
			s.Sweep(maxAge, log)
		}
	}
}

// Sweep removes codes older than maxAge. Failures are logged, never fatal.
func (s *Store) Sweep(maxAge time.Duration, log *slog.Logger) {
	n, err := s.DeleteOlderThan(time.Now().Add(-maxAge))
	if err != nil {
		log.Warn("cleanup sweep failed", "error", err)
		return
	}
	if n > 0 {
		log.Info("removed expired codes", "count", n)
	}
}
