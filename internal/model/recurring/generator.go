package recurring

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/finance-app/internal/entity/transaction"
	"max.ks1230/finance-app/internal/logger"
)

type recurringStorage interface {
	ListActiveRecurring(ctx context.Context, asOf time.Time) ([]transaction.Recurring, error)
	SetRecurringLastGenerated(ctx context.Context, id uuid.UUID, date time.Time) error
}

type transactionSpawner interface {
	SpawnFromTemplate(ctx context.Context, rec transaction.Recurring, date time.Time) error
}

type config interface {
	GenerationDelayMinutes() int64
}

// Generator materializes ledger entries from active recurring templates.
// Each sweep catches up every occurrence a template owes, so missed runs
// are repaired on the next tick.
type Generator struct {
	storage         recurringStorage
	spawner         transactionSpawner
	generationDelay int64
}

func NewGenerator(storage recurringStorage, spawner transactionSpawner, config config) *Generator {
	return &Generator{
		storage:         storage,
		spawner:         spawner,
		generationDelay: config.GenerationDelayMinutes(),
	}
}

func (g *Generator) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(g.generationDelay) * time.Minute)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start generating recurring transactions")
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop generating recurring transactions")
			return
		// fake first tick to generate immediately
		case <-firstTick:
			g.generateOnce(ctx)
		case <-ticker.C:
			g.generateOnce(ctx)
		}
	}
}

func (g *Generator) generateOnce(ctx context.Context) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "generateRecurring")
	defer span.Finish()

	now := time.Now()
	templates, err := g.storage.ListActiveRecurring(ctx, now)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("cannot list recurring templates", zap.Error(err))
		return
	}

	for _, rec := range templates {
		g.generateTemplate(ctx, rec, now)
	}
}

func (g *Generator) generateTemplate(ctx context.Context, rec transaction.Recurring, asOf time.Time) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "generateTemplate")
	defer span.Finish()
	span.SetTag("template", rec.ID.String())

	for _, date := range DueDates(rec, asOf) {
		if err := g.spawner.SpawnFromTemplate(ctx, rec, date); err != nil {
			ext.Error.Set(span, true)
			logger.Error("cannot spawn transaction from template",
				zap.Error(err), zap.String("template", rec.ID.String()))
			return
		}
		if err := g.storage.SetRecurringLastGenerated(ctx, rec.ID, date); err != nil {
			ext.Error.Set(span, true)
			logger.Error("cannot advance template",
				zap.Error(err), zap.String("template", rec.ID.String()))
			return
		}
	}
}
