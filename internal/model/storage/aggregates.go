package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-app/internal/entity/transaction"
)

// SpendFilter narrows expense sums. Zero time bounds are open; empty
// CategoryIDs / BudgetID apply no linkage filter.
type SpendFilter struct {
	From        time.Time
	To          time.Time
	BudgetID    uuid.NullUUID
	CategoryIDs []uuid.UUID
}

type PeriodTotal struct {
	Period time.Time
	Total  decimal.Decimal
}

type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
}

// SumCompleteExpenses totals converted_amount over complete expenses
// matching the filter. Pending rows never count.
func (s *PostgresStorage) SumCompleteExpenses(ctx context.Context, userID uuid.UUID, f SpendFilter) (decimal.Decimal, error) {
	query := psql.Select("COALESCE(SUM(converted_amount), 0)").
		From("expense").
		Where(sq.Eq{"user_id": userID, "status": transaction.StatusComplete})
	query = applySpendFilter(query, f)

	var total decimal.Decimal
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&total)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "sum expenses")
	}
	return total, nil
}

func (s *PostgresStorage) SumCompleteIncomes(ctx context.Context, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	query := psql.Select("COALESCE(SUM(converted_amount), 0)").
		From("income").
		Where(sq.Eq{"user_id": userID, "status": transaction.StatusComplete})
	query = applySpendFilter(query, SpendFilter{From: from, To: to})

	var total decimal.Decimal
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&total)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "sum incomes")
	}
	return total, nil
}

// MonthlyExpenseTotals groups complete expenses by calendar month.
func (s *PostgresStorage) MonthlyExpenseTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]PeriodTotal, error) {
	query := psql.Select("date_trunc('month', transaction_date) AS period", "SUM(converted_amount)").
		From("expense").
		Where(sq.Eq{"user_id": userID, "status": transaction.StatusComplete}).
		GroupBy("period").
		OrderBy("period")
	query = applySpendFilter(query, SpendFilter{From: from, To: to})

	return s.queryPeriodTotals(ctx, query, "monthly expense totals")
}

// DailyExpenseTotals groups complete expenses by transaction date.
func (s *PostgresStorage) DailyExpenseTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]PeriodTotal, error) {
	query := psql.Select("transaction_date AS period", "SUM(converted_amount)").
		From("expense").
		Where(sq.Eq{"user_id": userID, "status": transaction.StatusComplete}).
		GroupBy("period").
		OrderBy("period")
	query = applySpendFilter(query, SpendFilter{From: from, To: to})

	return s.queryPeriodTotals(ctx, query, "daily expense totals")
}

// CategoryExpenseTotals groups complete expenses by category name,
// biggest spender first.
func (s *PostgresStorage) CategoryExpenseTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]CategoryTotal, error) {
	query := psql.Select("c.name", "SUM(e.converted_amount) AS total").
		From("expense e").
		Join("category c ON c.id = e.category_id").
		Where(sq.Eq{"e.user_id": userID, "e.status": transaction.StatusComplete}).
		GroupBy("c.name").
		OrderBy("total DESC")
	if !from.IsZero() {
		query = query.Where(sq.GtOrEq{"e.transaction_date": from})
	}
	if !to.IsZero() {
		query = query.Where(sq.LtOrEq{"e.transaction_date": to})
	}

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "category expense totals")
	}
	defer rows.Close()

	totals := make([]CategoryTotal, 0)
	for rows.Next() {
		var t CategoryTotal
		if err = rows.Scan(&t.Name, &t.Total); err != nil {
			return nil, errors.Wrap(err, "category expense totals")
		}
		totals = append(totals, t)
	}
	return totals, errors.Wrap(rows.Err(), "category expense totals")
}

func (s *PostgresStorage) CountTransactions(ctx context.Context, userID uuid.UUID) (int64, error) {
	var incomes, expenses int64

	err := psql.Select("COUNT(*)").From("income").Where(sq.Eq{"user_id": userID}).
		RunWith(s.db).QueryRowContext(ctx).Scan(&incomes)
	if err != nil {
		return 0, errors.Wrap(err, "count incomes")
	}
	err = psql.Select("COUNT(*)").From("expense").Where(sq.Eq{"user_id": userID}).
		RunWith(s.db).QueryRowContext(ctx).Scan(&expenses)
	if err != nil {
		return 0, errors.Wrap(err, "count expenses")
	}
	return incomes + expenses, nil
}

func applySpendFilter(query sq.SelectBuilder, f SpendFilter) sq.SelectBuilder {
	if !f.From.IsZero() {
		query = query.Where(sq.GtOrEq{"transaction_date": f.From})
	}
	if !f.To.IsZero() {
		query = query.Where(sq.LtOrEq{"transaction_date": f.To})
	}
	if f.BudgetID.Valid {
		query = query.Where(sq.Eq{"budget_id": f.BudgetID.UUID})
	}
	if len(f.CategoryIDs) > 0 {
		query = query.Where(sq.Eq{"category_id": f.CategoryIDs})
	}
	return query
}

func (s *PostgresStorage) queryPeriodTotals(ctx context.Context, query sq.SelectBuilder, op string) ([]PeriodTotal, error) {
	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	defer rows.Close()

	totals := make([]PeriodTotal, 0)
	for rows.Next() {
		var t PeriodTotal
		if err = rows.Scan(&t.Period, &t.Total); err != nil {
			return nil, errors.Wrap(err, op)
		}
		totals = append(totals, t)
	}
	return totals, errors.Wrap(rows.Err(), op)
}
