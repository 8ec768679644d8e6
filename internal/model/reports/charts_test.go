package reports

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnTrendChartURL_ShouldEncodeConfig(t *testing.T) {
	points := []TrendPoint{
		{Month: "2024-02", Amount: decimal.NewFromInt(1200)},
		{Month: "2024-03", Amount: decimal.RequireFromString("850.50")},
	}

	chart := TrendChartURL(points)

	require.True(t, strings.HasPrefix(chart, "https://quickchart.io/chart?c="))
	assert.Contains(t, chart, "2024-03")
	assert.Contains(t, chart, "850.50")
}

func Test_OnChartURLs_EmptyInputYieldsNoChart(t *testing.T) {
	assert.Empty(t, TrendChartURL(nil))
	assert.Empty(t, BreakdownChartURL(nil))
}

func Test_OnBreakdownChartURL_ShouldListCategories(t *testing.T) {
	records := []Record{
		{Category: "Food", Amount: decimal.NewFromInt(500)},
		{Category: "Others", Amount: decimal.NewFromInt(120)},
	}

	chart := BreakdownChartURL(records)

	require.NotEmpty(t, chart)
	assert.Contains(t, chart, "Food")
	assert.Contains(t, chart, "doughnut")
}
