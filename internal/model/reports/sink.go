package reports

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finance-app/internal/logger"
)

type reportsCache interface {
	CacheReport(userID string, period string, report []byte) error
}

// Sink stores generated reports where the API can serve them from.
type Sink struct {
	cache reportsCache
}

func NewSink(cache reportsCache) *Sink {
	return &Sink{cache: cache}
}

func (s *Sink) AcceptReport(_ context.Context, report *Result) error {
	logger.Info("AcceptReport", zap.String("userID", report.UserID.String()),
		zap.String("period", report.Period))

	payload, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}
	return errors.Wrap(
		s.cache.CacheReport(report.UserID.String(), report.Period, payload),
		"cache report",
	)
}
