package middleware

import (
	"crm-task-bridge/config"
	"crm-task-bridge/pkg/log"
)

type Middleware struct {
	l           log.Logger
	authKey     string
	corsOrigin  string
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg config.APIConfig) Middleware {
	return Middleware{
		l:           l,
		authKey:     cfg.AuthKey,
		corsOrigin:  cfg.CORSOrigin,
		rateLimiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
