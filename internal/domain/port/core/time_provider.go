package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain.
// Aggregation windows and room deadlines always read the clock through this
// interface so tests can pin it.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Until(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
