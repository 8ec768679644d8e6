package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/finance-app/internal/logger"
	"max.ks1230/finance-app/internal/model/storage"
	"max.ks1230/finance-app/internal/model/transactions"
)

const (
	topCategories = 4
	trendMonths   = 12
	recentEntries = 5
)

type reportsStorage interface {
	SumCompleteIncomes(ctx context.Context, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
	SumCompleteExpenses(ctx context.Context, userID uuid.UUID, f storage.SpendFilter) (decimal.Decimal, error)
	MonthlyExpenseTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]storage.PeriodTotal, error)
	DailyExpenseTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]storage.PeriodTotal, error)
	CategoryExpenseTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]storage.CategoryTotal, error)
	CountActiveBudgets(ctx context.Context, userID uuid.UUID) (int64, error)
	CountTransactions(ctx context.Context, userID uuid.UUID) (int64, error)
}

type transactionsLister interface {
	List(ctx context.Context, userID uuid.UUID, f transactions.ListFilter) ([]transactions.Entry, error)
}

type userProfiles interface {
	PrimaryCurrency(ctx context.Context, userID uuid.UUID) (string, error)
}

// Generator assembles dashboard reports. Amounts come out of the ledger
// already normalized, so no conversion happens here.
type Generator struct {
	storage  reportsStorage
	lister   transactionsLister
	profiles userProfiles
}

func NewGenerator(storage reportsStorage, lister transactionsLister, profiles userProfiles) *Generator {
	return &Generator{
		storage:  storage,
		lister:   lister,
		profiles: profiles,
	}
}

func (g *Generator) GenerateReport(ctx context.Context, req Request) (*Result, error) {
	logger.Info("GenerateReport - start",
		zap.String("userID", req.UserID.String()), zap.String("period", req.Period))
	defer logger.Info("GenerateReport - end")

	asOf := time.Now()
	from, err := PeriodStart(req.Period, asOf)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	primary, err := g.profiles.PrimaryCurrency(ctx, req.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	totalIncome, err := g.storage.SumCompleteIncomes(ctx, req.UserID, from, time.Time{})
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}
	totalExpense, err := g.storage.SumCompleteExpenses(ctx, req.UserID, storage.SpendFilter{From: from})
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	categories, err := g.storage.CategoryExpenseTotals(ctx, req.UserID, from, time.Time{})
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	trendFrom := now.With(asOf).BeginningOfMonth().AddDate(0, -(trendMonths - 1), 0)
	months, err := g.storage.MonthlyExpenseTotals(ctx, req.UserID, trendFrom, time.Time{})
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	days, err := g.storage.DailyExpenseTotals(ctx, req.UserID, now.With(asOf).BeginningOfMonth(), time.Time{})
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	recent, err := g.lister.List(ctx, req.UserID, transactions.ListFilter{Limit: recentEntries})
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	breakdown := Breakdown(categories, topCategories)
	monthlyTrend := trend(months)

	return &Result{
		UserID:       req.UserID,
		Period:       req.Period,
		Currency:     primary,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Net:          totalIncome.Sub(totalExpense),
		Breakdown:    breakdown,
		Trend:        monthlyTrend,
		DailyTrend:   dailyTrend(days),
		Charts: ChartLinks{
			Trend:     TrendChartURL(monthlyTrend),
			Breakdown: BreakdownChartURL(breakdown),
		},
		Recent:      recentFromEntries(recent),
		GeneratedAt: asOf,
	}, nil
}

// Summary computes the dashboard header synchronously: the current month
// against the all-time ledger.
func (g *Generator) Summary(ctx context.Context, userID uuid.UUID) (Summary, error) {
	asOf := time.Now()
	monthStart := now.With(asOf).BeginningOfMonth()

	primary, err := g.profiles.PrimaryCurrency(ctx, userID)
	if err != nil {
		return Summary{}, errors.Wrap(err, "summarize dashboard")
	}

	monthIncome, err := g.storage.SumCompleteIncomes(ctx, userID, monthStart, time.Time{})
	if err != nil {
		return Summary{}, errors.Wrap(err, "summarize dashboard")
	}
	monthExpense, err := g.storage.SumCompleteExpenses(ctx, userID, storage.SpendFilter{From: monthStart})
	if err != nil {
		return Summary{}, errors.Wrap(err, "summarize dashboard")
	}

	allIncome, err := g.storage.SumCompleteIncomes(ctx, userID, time.Time{}, time.Time{})
	if err != nil {
		return Summary{}, errors.Wrap(err, "summarize dashboard")
	}
	allExpense, err := g.storage.SumCompleteExpenses(ctx, userID, storage.SpendFilter{})
	if err != nil {
		return Summary{}, errors.Wrap(err, "summarize dashboard")
	}

	activeBudgets, err := g.storage.CountActiveBudgets(ctx, userID)
	if err != nil {
		return Summary{}, errors.Wrap(err, "summarize dashboard")
	}
	total, err := g.storage.CountTransactions(ctx, userID)
	if err != nil {
		return Summary{}, errors.Wrap(err, "summarize dashboard")
	}

	return Summary{
		Currency:      primary,
		MonthIncome:   monthIncome,
		MonthExpense:  monthExpense,
		MonthNet:      monthIncome.Sub(monthExpense),
		NetSavings:    allIncome.Sub(allExpense),
		ActiveBudgets: activeBudgets,
		Transactions:  total,
		GeneratedAt:   asOf,
	}, nil
}

// Breakdown keeps the top spending categories and folds the rest into an
// Others bucket. The input is expected biggest first.
func Breakdown(totals []storage.CategoryTotal, top int) []Record {
	records := make([]Record, 0, top+1)
	others := decimal.Zero
	for i, t := range totals {
		if i < top {
			records = append(records, Record{Category: t.Name, Amount: t.Total})
			continue
		}
		others = others.Add(t.Total)
	}
	if others.IsPositive() {
		records = append(records, Record{Category: "Others", Amount: others})
	}
	return records
}

func trend(months []storage.PeriodTotal) []TrendPoint {
	points := make([]TrendPoint, 0, len(months))
	for _, m := range months {
		points = append(points, TrendPoint{
			Month:  m.Period.Format("2006-01"),
			Amount: m.Total,
		})
	}
	return points
}

func dailyTrend(days []storage.PeriodTotal) []DayPoint {
	points := make([]DayPoint, 0, len(days))
	for _, d := range days {
		points = append(points, DayPoint{
			Day:    d.Period.Format("2006-01-02"),
			Amount: d.Total,
		})
	}
	return points
}

func recentFromEntries(entries []transactions.Entry) []RecentEntry {
	recent := make([]RecentEntry, 0, len(entries))
	for _, e := range entries {
		recent = append(recent, RecentEntry{
			Type:            e.Type,
			Label:           e.Label,
			Amount:          e.Amount,
			Currency:        e.Currency,
			ConvertedAmount: e.ConvertedAmount,
			Date:            e.Date,
			Description:     e.Description,
			Status:          e.Status,
		})
	}
	return recent
}
