package transactions

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finance-app/internal/entity/currency"
	"max.ks1230/finance-app/internal/entity/transaction"
	"max.ks1230/finance-app/internal/model/transactions/mock"
)

func Test_OnValidate_ShouldRejectBadRequests(t *testing.T) {
	s := NewService(nil, nil, nil)

	valid := NewTransaction{
		LabelID:  uuid.New(),
		Amount:   decimal.NewFromInt(100),
		Currency: "PHP",
		Status:   transaction.StatusPending,
	}
	assert.NoError(t, s.validate(valid))

	negative := valid
	negative.Amount = decimal.NewFromInt(-5)
	assert.Error(t, s.validate(negative))

	zero := valid
	zero.Amount = decimal.Zero
	assert.Error(t, s.validate(zero))

	badCurrency := valid
	badCurrency.Currency = "XXX"
	assert.Error(t, s.validate(badCurrency))

	badStatus := valid
	badStatus.Status = "settled"
	assert.Error(t, s.validate(badStatus))
}

func Test_OnNormalize_ShouldConvertIntoPrimaryCurrency(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	m := minimock.NewController(t)
	profiles := mock.NewUserProfilesMock(m)
	profiles.PrimaryCurrencyMock.Return("PHP", nil)
	converter := mock.NewConverterMock(m)
	converter.ConvertMock.
		Inspect(func(_ context.Context, _ decimal.Decimal, from, to string) {
			assert.Equal(t, "USD", from)
			assert.Equal(t, "PHP", to)
		}).
		Return(currency.Conversion{
			Amount: decimal.RequireFromString("5650.00"),
			Rate:   decimal.RequireFromString("56.500000"),
		}, nil)

	s := NewService(nil, converter, profiles)
	conv, err := s.normalize(ctx, userID, decimal.NewFromInt(100), "USD")

	require.NoError(t, err)
	assert.Equal(t, "5650.00", conv.Amount.StringFixed(2))
	assert.Equal(t, "56.500000", conv.Rate.StringFixed(6))
}

func Test_OnNormalize_RateOutageKeepsAmountAsEntered(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	m := minimock.NewController(t)
	profiles := mock.NewUserProfilesMock(m)
	profiles.PrimaryCurrencyMock.Return("PHP", nil)
	converter := mock.NewConverterMock(m)
	converter.ConvertMock.Return(currency.Conversion{}, errors.New("rates api down"))

	s := NewService(nil, converter, profiles)
	conv, err := s.normalize(ctx, userID, decimal.RequireFromString("99.999"), "USD")

	require.NoError(t, err)
	assert.Equal(t, "100.00", conv.Amount.StringFixed(2))
	assert.True(t, conv.Rate.IsZero())
}

func Test_OnNormalize_UnknownProfileFails(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	profiles := mock.NewUserProfilesMock(m)
	profiles.PrimaryCurrencyMock.Return("", errors.New("profile lookup failed"))

	s := NewService(nil, mock.NewConverterMock(m), profiles)
	_, err := s.normalize(ctx, uuid.New(), decimal.NewFromInt(10), "USD")

	assert.Error(t, err)
}

func entryAt(day int, created time.Time) Entry {
	return Entry{
		ID:        uuid.New(),
		Date:      time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC),
		CreatedAt: created,
	}
}

func Test_OnPage_ShouldSliceWithinBounds(t *testing.T) {
	now := time.Now()
	entries := []Entry{entryAt(4, now), entryAt(3, now), entryAt(2, now), entryAt(1, now)}

	assert.Len(t, page(entries, 0, 2), 2)
	assert.Len(t, page(entries, 2, 2), 2)
	assert.Len(t, page(entries, 3, 2), 1)
	assert.Empty(t, page(entries, 4, 2))
	assert.Empty(t, page(entries, 10, 2))
	assert.Len(t, page(entries, 0, 0), 4)
}

func Test_OnEntryViews_ShouldKeepTransactionFields(t *testing.T) {
	income := transaction.Income{
		ID:              uuid.New(),
		SourceName:      "Salary",
		Amount:          decimal.NewFromInt(1000),
		Currency:        "USD",
		ConvertedAmount: decimal.RequireFromString("56500.00"),
		ExchangeRate:    decimal.RequireFromString("56.500000"),
		Status:          transaction.StatusComplete,
	}

	entry := incomeEntry(income)

	assert.Equal(t, transaction.TypeIncome, entry.Type)
	assert.Equal(t, "Salary", entry.Label)
	assert.Equal(t, "56500.00", entry.ConvertedAmount.StringFixed(2))

	expense := transaction.Expense{
		ID:           uuid.New(),
		CategoryName: "Food",
		Amount:       decimal.NewFromInt(250),
		Currency:     "PHP",
		Status:       transaction.StatusPending,
	}

	entry = expenseEntry(expense)

	assert.Equal(t, transaction.TypeExpense, entry.Type)
	assert.Equal(t, "Food", entry.Label)
	assert.Equal(t, transaction.StatusPending, entry.Status)
}
