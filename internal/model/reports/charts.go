package reports

import (
	"encoding/json"
	"fmt"
	"net/url"
)

const (
	chartBaseURL = "https://quickchart.io/chart"
	chartWidth   = 800
	chartHeight  = 400
)

var breakdownPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFEAA7", "#DDA0DD",
}

// TrendChartURL builds a line-chart image URL for the monthly spending trend.
// Empty input yields an empty URL.
func TrendChartURL(points []TrendPoint) string {
	if len(points) == 0 {
		return ""
	}

	labels := make([]string, 0, len(points))
	data := make([]json.Number, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Month)
		data = append(data, json.Number(p.Amount.StringFixed(2)))
	}

	return chartURL(map[string]any{
		"type": "line",
		"data": map[string]any{
			"labels": labels,
			"datasets": []map[string]any{{
				"label":       "Monthly Spending",
				"data":        data,
				"borderColor": "rgba(255, 107, 107, 1)",
				"fill":        false,
			}},
		},
	})
}

// BreakdownChartURL builds a doughnut-chart image URL for the category
// breakdown. Empty input yields an empty URL.
func BreakdownChartURL(records []Record) string {
	if len(records) == 0 {
		return ""
	}

	labels := make([]string, 0, len(records))
	data := make([]json.Number, 0, len(records))
	colors := make([]string, 0, len(records))
	for i, r := range records {
		labels = append(labels, r.Category)
		data = append(data, json.Number(r.Amount.StringFixed(2)))
		colors = append(colors, breakdownPalette[i%len(breakdownPalette)])
	}

	return chartURL(map[string]any{
		"type": "doughnut",
		"data": map[string]any{
			"labels": labels,
			"datasets": []map[string]any{{
				"data":            data,
				"backgroundColor": colors,
			}},
		},
	})
}

func chartURL(config map[string]any) string {
	encoded, err := json.Marshal(config)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s?c=%s&width=%d&height=%d",
		chartBaseURL, url.QueryEscape(string(encoded)), chartWidth, chartHeight)
}
