package migration

import (
	"github.com/ivan-rueda-duarte/winsec/pkg/util"
	"go.uber.org/zap"
)

// Option represents Service constructor option.
type Option func(*cfg)

type cfg struct {
	log     *zap.Logger
	pool    util.WorkerPool
	metrics MetricsRegister
}

func defaultCfg() *cfg {
	return &cfg{
		log:     zap.NewNop(),
		pool:    util.NewPseudoWorkerPool(),
		metrics: nopMetrics{},
	}
}

// WithLogger returns option to set logger.
func WithLogger(v *zap.Logger) Option {
	return func(c *cfg) {
		c.log = v
	}
}

// WithWorkerPool returns option to set the pool processing resources
// concurrently. Default pool is synchronous.
func WithWorkerPool(v util.WorkerPool) Option {
	return func(c *cfg) {
		c.pool = v
	}
}

// WithMetrics returns option to set the metrics register.
func WithMetrics(v MetricsRegister) Option {
	return func(c *cfg) {
		c.metrics = v
	}
}
