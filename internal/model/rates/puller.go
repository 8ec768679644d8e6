package rates

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/finance-app/internal/logger"
)

type pullerConfig interface {
	PullingDelayMinutes() int64
}

// Puller refreshes the rate cache on a schedule so conversions rarely
// hit the TTL path.
type Puller struct {
	service      *Service
	pullingDelay int64
}

func NewPuller(service *Service, config pullerConfig) *Puller {
	return &Puller{
		service:      service,
		pullingDelay: config.PullingDelayMinutes(),
	}
}

func (p *Puller) Pull(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(p.pullingDelay) * time.Minute)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start pulling rates")
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop pulling rates")
			return
		// fake first tick to pull rates immediately
		case <-firstTick:
			p.pullOnce(ctx)
		case <-ticker.C:
			p.pullOnce(ctx)
		}
	}
}

func (p *Puller) pullOnce(ctx context.Context) {
	logger.Info("Pulling current rates...")

	span, ctx := opentracing.StartSpanFromContext(ctx, "pullRates")
	defer span.Finish()

	if err := p.service.Refresh(ctx); err != nil {
		ext.Error.Set(span, true)
		logger.Error("cannot pull rates", zap.Error(err))
		return
	}

	logger.Info("Successfully pulled current rates")
}
