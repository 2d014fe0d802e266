// Package limiter wraps a token-bucket rate limiter used to throttle login
// attempts.
package limiter

import (
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Limiter struct {
	logger *zap.Logger
	l      *rate.Limiter
}

// New creates a limiter allowing limit events per second with the given
// burst.
func New(logger *zap.Logger, limit, burst int) *Limiter {
	return &Limiter{logger: logger, l: rate.NewLimiter(rate.Limit(limit), burst)}
}

// Allow reports whether one more event may proceed now.
func (l *Limiter) Allow() bool {
	allowed := l.l.Allow()
	if !allowed {
		l.logger.Debug("Rate limit exceeded",
			zap.Float64("limit", float64(l.l.Limit())),
			zap.Int("burst", l.l.Burst()),
		)
	}
	return allowed
}
