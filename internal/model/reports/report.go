package reports

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
)

const (
	PeriodAll   = ""
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Request asks for a dashboard report to be generated asynchronously.
type Request struct {
	UserID uuid.UUID `json:"user_id"`
	Period string    `json:"period"`
}

// Record is one slice of the category breakdown.
type Record struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// TrendPoint is one month of the spending trend.
type TrendPoint struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// DayPoint is one day of the current-month spending trend.
type DayPoint struct {
	Day    string          `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}

// ChartLinks are pre-built chart image URLs for the report figures.
type ChartLinks struct {
	Trend     string `json:"trend"`
	Breakdown string `json:"breakdown"`
}

// RecentEntry is one of the latest ledger entries shown on the dashboard.
type RecentEntry struct {
	Type            string          `json:"type"`
	Label           string          `json:"label"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description,omitempty"`
	Status          string          `json:"status"`
}

// Result is a generated dashboard report. All amounts are in the user's
// primary currency.
type Result struct {
	UserID       uuid.UUID       `json:"user_id"`
	Period       string          `json:"period"`
	Currency     string          `json:"currency"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
	Breakdown    []Record        `json:"breakdown"`
	Trend        []TrendPoint    `json:"trend"`
	DailyTrend   []DayPoint      `json:"daily_trend"`
	Charts       ChartLinks      `json:"charts"`
	Recent       []RecentEntry   `json:"recent"`
	GeneratedAt  time.Time       `json:"generated_at"`
}

// Summary is the lightweight dashboard header, computed synchronously.
// All amounts are in the user's primary currency.
type Summary struct {
	Currency      string          `json:"currency"`
	MonthIncome   decimal.Decimal `json:"month_income"`
	MonthExpense  decimal.Decimal `json:"month_expense"`
	MonthNet      decimal.Decimal `json:"month_net"`
	NetSavings    decimal.Decimal `json:"net_savings"`
	ActiveBudgets int64           `json:"active_budgets"`
	Transactions  int64           `json:"transactions"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// PeriodStart resolves the lower date bound of a report period. The all
// period has no bound.
func PeriodStart(period string, asOf time.Time) (time.Time, error) {
	n := now.With(asOf)
	switch period {
	case PeriodAll:
		return time.Time{}, nil
	case PeriodWeek:
		return n.BeginningOfWeek(), nil
	case PeriodMonth:
		return n.BeginningOfMonth(), nil
	case PeriodYear:
		return n.BeginningOfYear(), nil
	}
	return time.Time{}, fmt.Errorf("report period %s is not supported", period)
}

func Periods() []string {
	return []string{PeriodAll, PeriodWeek, PeriodMonth, PeriodYear}
}
