package notification

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type healthChecker interface {
	Health(ctx context.Context) error
}

// Probe periodically checks CRM availability and publishes the result as a
// gauge. It never affects delivery; the dispatcher keeps trying regardless.
type Probe struct {
	target   healthChecker
	interval time.Duration
	logger   logger.Logger
}

func NewProbe(target healthChecker, interval time.Duration, logger logger.Logger) *Probe {
	return &Probe{
		target:   target,
		interval: interval,
		logger:   logger,
	}
}

func (p *Probe) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("crm probe started",
		logger.Duration("interval", p.interval),
	)

	p.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("crm probe stopped")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Probe) tick(ctx context.Context) {
	if err := p.target.Health(ctx); err != nil {
		crmUp.Set(0)
		p.logger.Warn("crm health check failed",
			logger.String("error", err.Error()),
		)
		return
	}

	crmUp.Set(1)
}
