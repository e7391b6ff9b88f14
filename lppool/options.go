package lppool

import "go.uber.org/zap"

type Option func(*Pool)

// WithLogger makes the pool log committed operations at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}
