package rates

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/finance-app/internal/entity/currency"
	"max.ks1230/finance-app/internal/logger"
)

const (
	ratePrecision   = 6
	amountPrecision = 2
)

type ratesStorage interface {
	GetRate(ctx context.Context, code string) (currency.Rate, error)
	ListRates(ctx context.Context) ([]currency.Rate, error)
	SaveRates(ctx context.Context, rates []currency.Rate) error
	LatestRateUpdate(ctx context.Context) (time.Time, error)
}

type ratesProvider interface {
	GetRates(ctx context.Context, base string, relatives []string) (map[string]decimal.Decimal, error)
}

type config interface {
	RateCacheTTLHours() int64
}

// Service converts amounts between supported currencies through the
// base-relative rate cache, refreshing the cache when it goes stale.
type Service struct {
	storage  ratesStorage
	provider ratesProvider
	cacheTTL time.Duration

	refreshMu sync.Mutex
}

func NewService(storage ratesStorage, provider ratesProvider, config config) *Service {
	return &Service{
		storage:  storage,
		provider: provider,
		cacheTTL: time.Duration(config.RateCacheTTLHours()) * time.Hour,
	}
}

// Rate resolves the multiplier that turns one unit of from into to.
// Both rates are cached relative to the base currency, so the pair rate
// is their quotient, rounded half up to six decimal places.
func (s *Service) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if !currency.IsSupported(from) {
		return decimal.Zero, fmt.Errorf("unknown currency %s", from)
	}
	if !currency.IsSupported(to) {
		return decimal.Zero, fmt.Errorf("unknown currency %s", to)
	}
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	s.refreshIfStale(ctx)

	fromRate, err := s.storage.GetRate(ctx, from)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "resolve rate")
	}
	toRate, err := s.storage.GetRate(ctx, to)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "resolve rate")
	}
	if !fromRate.BaseRate.IsPositive() {
		return decimal.Zero, fmt.Errorf("no rate cached for %s", from)
	}
	if !toRate.BaseRate.IsPositive() {
		return decimal.Zero, fmt.Errorf("no rate cached for %s", to)
	}

	return toRate.BaseRate.DivRound(fromRate.BaseRate, ratePrecision), nil
}

// Convert normalizes amount from one currency into another. The converted
// amount is rounded half up to two decimal places.
func (s *Service) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (currency.Conversion, error) {
	rate, err := s.Rate(ctx, from, to)
	if err != nil {
		return currency.Conversion{}, err
	}
	return currency.Conversion{
		Amount: amount.Mul(rate).Round(amountPrecision),
		Rate:   rate,
	}, nil
}

// ListRates returns the cached base-relative rates for every supported
// currency, refreshing the cache first if it has expired.
func (s *Service) ListRates(ctx context.Context) ([]currency.Rate, error) {
	s.refreshIfStale(ctx)
	return s.storage.ListRates(ctx)
}

// Refresh pulls current rates from the provider and replaces the cache.
// When the provider is unreachable an empty cache is seeded with static
// fallback rates; a populated cache keeps serving its last known values.
func (s *Service) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	pulled, err := s.provider.GetRates(ctx, currency.Base, nonBaseCurrencies())
	if err != nil {
		return s.fallback(ctx, err)
	}
	pulled[currency.Base] = decimal.NewFromInt(1)

	return s.saveRates(ctx, pulled)
}

func (s *Service) fallback(ctx context.Context, cause error) error {
	latest, err := s.storage.LatestRateUpdate(ctx)
	if err != nil {
		return errors.Wrap(err, "check rate cache")
	}
	if !latest.IsZero() {
		return errors.Wrap(cause, "pull rates")
	}

	logger.Warn("rates provider unreachable, seeding fallback rates", zap.Error(cause))
	return s.saveRates(ctx, currency.FallbackRates())
}

func (s *Service) saveRates(ctx context.Context, values map[string]decimal.Decimal) error {
	now := time.Now()
	rates := make([]currency.Rate, 0, len(values))
	for code, value := range values {
		if !currency.IsSupported(code) {
			continue
		}
		if !value.IsPositive() {
			logger.Warn("dropping non-positive rate", zap.String("code", code))
			continue
		}
		rates = append(rates, currency.Rate{
			Code:      code,
			Name:      currency.Names[code],
			BaseRate:  value,
			UpdatedAt: now,
		})
	}
	return errors.Wrap(s.storage.SaveRates(ctx, rates), "save rates")
}

func (s *Service) refreshIfStale(ctx context.Context) {
	latest, err := s.storage.LatestRateUpdate(ctx)
	if err != nil {
		logger.Error("cannot check rate cache age", zap.Error(err))
		return
	}
	if time.Since(latest) < s.cacheTTL {
		return
	}

	if err = s.Refresh(ctx); err != nil {
		// keep serving the stale cache
		logger.Error("cannot refresh rates", zap.Error(err))
	}
}

func nonBaseCurrencies() []string {
	var relatives []string
	for _, curr := range currency.Currencies {
		if curr != currency.Base {
			relatives = append(relatives, curr)
		}
	}
	return relatives
}
