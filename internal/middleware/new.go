package middleware

import (
	"task-orchestrator/config"
	"task-orchestrator/pkg/log"
)

// RateLimitRecorder counts requests rejected by RateLimit.
type RateLimitRecorder interface {
	RecordRateLimited()
}

type Middleware struct {
	l        log.Logger
	cors     config.CORSConfig
	limiter  *rateLimiter
	recorder RateLimitRecorder
}

// New builds the middleware set. recorder may be nil.
func New(l log.Logger, cfg *config.Config, recorder RateLimitRecorder) Middleware {
	mw := Middleware{
		l:        l,
		cors:     cfg.CORS,
		recorder: recorder,
	}
	if cfg.RateLimit.Enabled {
		mw.limiter = newRateLimiter(cfg.RateLimit.RequestsPerMin)
	}
	return mw
}
