package rates

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finance-app/internal/entity/currency"
	"max.ks1230/finance-app/internal/model/rates/mock"
)

func freshStorage(m minimock.Tester, values map[string]string) *mock.RatesStorageMock {
	storage := mock.NewRatesStorageMock(m)
	storage.LatestRateUpdateMock.Return(time.Now(), nil)
	storage.GetRateMock.Set(func(_ context.Context, code string) (currency.Rate, error) {
		val, ok := values[code]
		if !ok {
			return currency.Rate{}, errors.New("not found")
		}
		return currency.Rate{
			Code:     code,
			BaseRate: decimal.RequireFromString(val),
		}, nil
	})
	return storage
}

func Test_OnConvert_ShouldConvertThroughBaseRates(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	cfg.RateCacheTTLHoursMock.Return(24)
	storage := freshStorage(m, map[string]string{"USD": "1", "PHP": "56.50"})

	service := NewService(storage, mock.NewRatesProviderMock(m), cfg)
	conv, err := service.Convert(ctx, decimal.NewFromInt(100), "USD", "PHP")

	require.NoError(t, err)
	assert.Equal(t, "5650.00", conv.Amount.StringFixed(2))
	assert.Equal(t, "56.500000", conv.Rate.StringFixed(6))
}

func Test_OnConvert_ShouldRoundTripCloseToOriginal(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	cfg.RateCacheTTLHoursMock.Return(24)
	storage := freshStorage(m, map[string]string{"EUR": "0.92", "PHP": "56.50"})

	service := NewService(storage, mock.NewRatesProviderMock(m), cfg)
	there, err := service.Convert(ctx, decimal.NewFromInt(250), "EUR", "PHP")
	require.NoError(t, err)
	back, err := service.Convert(ctx, there.Amount, "PHP", "EUR")
	require.NoError(t, err)

	diff := back.Amount.Sub(decimal.NewFromInt(250)).Abs()
	assert.True(t, diff.LessThan(decimal.RequireFromString("0.05")), "got %s", back.Amount)
}

func Test_OnConvert_SameCurrencyIsIdentity(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	cfg.RateCacheTTLHoursMock.Return(24)
	storage := mock.NewRatesStorageMock(m)

	service := NewService(storage, mock.NewRatesProviderMock(m), cfg)
	conv, err := service.Convert(ctx, decimal.RequireFromString("123.456"), "PHP", "PHP")

	require.NoError(t, err)
	assert.Equal(t, "1", conv.Rate.String())
	assert.Equal(t, "123.46", conv.Amount.StringFixed(2))
}

func Test_OnConvert_UnknownCurrencyFails(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	cfg.RateCacheTTLHoursMock.Return(24)

	service := NewService(mock.NewRatesStorageMock(m), mock.NewRatesProviderMock(m), cfg)
	_, err := service.Convert(ctx, decimal.NewFromInt(10), "XXX", "PHP")

	assert.Error(t, err)
}

func Test_OnConvert_ZeroCachedRateFails(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	cfg.RateCacheTTLHoursMock.Return(24)
	storage := freshStorage(m, map[string]string{"USD": "1", "PHP": "0"})

	service := NewService(storage, mock.NewRatesProviderMock(m), cfg)

	_, err := service.Convert(ctx, decimal.NewFromInt(100), "USD", "PHP")
	assert.Error(t, err)

	_, err = service.Convert(ctx, decimal.NewFromInt(100), "PHP", "USD")
	assert.Error(t, err)
}

func Test_OnRefresh_ShouldSaveProviderRatesWithBase(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	cfg.RateCacheTTLHoursMock.Return(24)

	provider := mock.NewRatesProviderMock(m)
	provider.GetRatesMock.
		Inspect(func(_ context.Context, base string, _ []string) {
			assert.Equal(t, "USD", base)
		}).
		Return(map[string]decimal.Decimal{
			"PHP": decimal.RequireFromString("56.50"),
			"EUR": decimal.RequireFromString("0.92"),
		}, nil)

	var saved []currency.Rate
	storage := mock.NewRatesStorageMock(m)
	storage.SaveRatesMock.Set(func(_ context.Context, rates []currency.Rate) error {
		saved = rates
		return nil
	})

	service := NewService(storage, provider, cfg)
	require.NoError(t, service.Refresh(ctx))

	byCode := make(map[string]currency.Rate, len(saved))
	for _, r := range saved {
		byCode[r.Code] = r
	}
	assert.Len(t, saved, 3)
	assert.Equal(t, "1", byCode["USD"].BaseRate.String())
	assert.Equal(t, "56.5", byCode["PHP"].BaseRate.String())
}

func Test_OnRefresh_ShouldDropNonPositiveProviderRates(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	cfg.RateCacheTTLHoursMock.Return(24)

	provider := mock.NewRatesProviderMock(m)
	provider.GetRatesMock.Return(map[string]decimal.Decimal{
		"PHP": decimal.RequireFromString("56.50"),
		"EUR": decimal.Zero,
		"GBP": decimal.RequireFromString("-0.79"),
	}, nil)

	var saved []currency.Rate
	storage := mock.NewRatesStorageMock(m)
	storage.SaveRatesMock.Set(func(_ context.Context, rates []currency.Rate) error {
		saved = rates
		return nil
	})

	service := NewService(storage, provider, cfg)
	require.NoError(t, service.Refresh(ctx))

	codes := make([]string, 0, len(saved))
	for _, r := range saved {
		codes = append(codes, r.Code)
	}
	assert.ElementsMatch(t, []string{"USD", "PHP"}, codes)
}

func Test_OnRefresh_ProviderDownSeedsFallbackWhenCacheEmpty(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	cfg.RateCacheTTLHoursMock.Return(24)

	provider := mock.NewRatesProviderMock(m)
	provider.GetRatesMock.Return(nil, errors.New("api down"))

	var saved []currency.Rate
	storage := mock.NewRatesStorageMock(m)
	storage.LatestRateUpdateMock.Return(time.Time{}, nil)
	storage.SaveRatesMock.Set(func(_ context.Context, rates []currency.Rate) error {
		saved = rates
		return nil
	})

	service := NewService(storage, provider, cfg)
	require.NoError(t, service.Refresh(ctx))

	assert.Len(t, saved, len(currency.Currencies))
}

func Test_OnRefresh_ProviderDownKeepsPopulatedCache(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	cfg.RateCacheTTLHoursMock.Return(24)

	provider := mock.NewRatesProviderMock(m)
	provider.GetRatesMock.Return(nil, errors.New("api down"))

	storage := mock.NewRatesStorageMock(m)
	storage.LatestRateUpdateMock.Return(time.Now().Add(-48*time.Hour), nil)

	service := NewService(storage, provider, cfg)
	err := service.Refresh(ctx)

	assert.Error(t, err)
}
