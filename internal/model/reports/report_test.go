package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finance-app/internal/model/storage"
)

func Test_OnBreakdown_ShouldFoldTailIntoOthers(t *testing.T) {
	totals := []storage.CategoryTotal{
		{Name: "Food", Total: decimal.NewFromInt(500)},
		{Name: "Transport", Total: decimal.NewFromInt(300)},
		{Name: "Shopping", Total: decimal.NewFromInt(200)},
		{Name: "Health", Total: decimal.NewFromInt(100)},
	}

	records := Breakdown(totals, 2)

	require.Len(t, records, 3)
	assert.Equal(t, "Food", records[0].Category)
	assert.Equal(t, "Transport", records[1].Category)
	assert.Equal(t, "Others", records[2].Category)
	assert.Equal(t, "300", records[2].Amount.String())
}

func Test_OnBreakdown_NoOthersWhenAllFit(t *testing.T) {
	totals := []storage.CategoryTotal{
		{Name: "Food", Total: decimal.NewFromInt(500)},
		{Name: "Transport", Total: decimal.NewFromInt(300)},
	}

	records := Breakdown(totals, 5)

	require.Len(t, records, 2)
	assert.Equal(t, "Food", records[0].Category)
	assert.Equal(t, "Transport", records[1].Category)
}

func Test_OnPeriodStart_ShouldResolveKnownPeriods(t *testing.T) {
	asOf := time.Date(2024, time.March, 14, 15, 0, 0, 0, time.UTC)

	start, err := PeriodStart(PeriodMonth, asOf)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), start)

	start, err = PeriodStart(PeriodYear, asOf)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), start)

	start, err = PeriodStart(PeriodAll, asOf)
	require.NoError(t, err)
	assert.True(t, start.IsZero())
}

func Test_OnPeriodStart_UnknownPeriodFails(t *testing.T) {
	_, err := PeriodStart("decade", time.Now())
	assert.Error(t, err)
}
