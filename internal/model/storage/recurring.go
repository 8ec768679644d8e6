package storage

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"max.ks1230/finance-app/internal/entity/transaction"
)

var recurringColumns = []string{
	"id", "user_id", "tx_type", "label_id", "amount", "currency", "description",
	"recurrence_pattern", "custom_interval_days", "start_date", "end_date",
	"last_generated_date", "is_active", "budget_id", "created_at",
}

func scanRecurring(row sq.RowScanner) (transaction.Recurring, error) {
	var rec transaction.Recurring
	var endDate, lastGenerated sql.NullTime
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Type, &rec.LabelID, &rec.Amount,
		&rec.Currency, &rec.Description, &rec.Pattern, &rec.CustomIntervalDays,
		&rec.StartDate, &endDate, &lastGenerated, &rec.IsActive, &rec.BudgetID, &rec.CreatedAt)
	if endDate.Valid {
		rec.EndDate = &endDate.Time
	}
	if lastGenerated.Valid {
		rec.LastGeneratedDate = &lastGenerated.Time
	}
	return rec, err
}

func (s *PostgresStorage) CreateRecurring(ctx context.Context, rec transaction.Recurring) error {
	query := psql.Insert("recurring_transaction").
		Columns("id", "user_id", "tx_type", "label_id", "amount", "currency", "description",
			"recurrence_pattern", "custom_interval_days", "start_date", "end_date",
			"last_generated_date", "is_active", "budget_id").
		Values(rec.ID, rec.UserID, rec.Type, rec.LabelID, rec.Amount, rec.Currency, rec.Description,
			rec.Pattern, rec.CustomIntervalDays, rec.StartDate, rec.EndDate,
			rec.LastGeneratedDate, rec.IsActive, rec.BudgetID)
	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "create recurring transaction")
}

func (s *PostgresStorage) GetRecurring(ctx context.Context, userID, id uuid.UUID) (transaction.Recurring, error) {
	query := psql.Select(recurringColumns...).
		From("recurring_transaction").
		Where(sq.Eq{"id": id, "user_id": userID})

	rec, err := scanRecurring(query.RunWith(s.db).QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return transaction.Recurring{}, ErrNotFound
	}
	return rec, errors.Wrap(err, "get recurring transaction")
}

func (s *PostgresStorage) ListRecurring(ctx context.Context, userID uuid.UUID) ([]transaction.Recurring, error) {
	query := psql.Select(recurringColumns...).
		From("recurring_transaction").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	return s.queryRecurring(ctx, query, "list recurring transactions")
}

// ListActiveRecurring returns every active template that may still owe
// occurrences as of the given date. Templates past their end date stay
// listed until they have generated through it; dueness itself is decided
// by the generator.
func (s *PostgresStorage) ListActiveRecurring(ctx context.Context, asOf time.Time) ([]transaction.Recurring, error) {
	return s.queryRecurring(ctx, activeRecurringQuery(asOf), "list active recurring transactions")
}

func activeRecurringQuery(asOf time.Time) sq.SelectBuilder {
	return psql.Select(recurringColumns...).
		From("recurring_transaction").
		Where(sq.Eq{"is_active": true}).
		Where(sq.LtOrEq{"start_date": asOf}).
		Where(sq.Or{
			sq.Eq{"end_date": nil},
			sq.Eq{"last_generated_date": nil},
			sq.Expr("last_generated_date < end_date"),
		})
}

func (s *PostgresStorage) queryRecurring(ctx context.Context, query sq.SelectBuilder, op string) ([]transaction.Recurring, error) {
	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	defer rows.Close()

	recs := make([]transaction.Recurring, 0)
	for rows.Next() {
		rec, err := scanRecurring(rows)
		if err != nil {
			return nil, errors.Wrap(err, op)
		}
		recs = append(recs, rec)
	}
	return recs, errors.Wrap(rows.Err(), op)
}

func (s *PostgresStorage) SetRecurringLastGenerated(ctx context.Context, id uuid.UUID, date time.Time) error {
	query := psql.Update("recurring_transaction").
		Set("last_generated_date", date).
		Where(sq.Eq{"id": id})
	return execExpectingRow(ctx, s.db, query, "set last generated date")
}

func (s *PostgresStorage) SetRecurringActive(ctx context.Context, userID, id uuid.UUID, active bool) error {
	query := psql.Update("recurring_transaction").
		Set("is_active", active).
		Where(sq.Eq{"id": id, "user_id": userID})
	return execExpectingRow(ctx, s.db, query, "set recurring active")
}

// DeleteRecurring removes the template. Ledger entries it already spawned
// keep their recurring_id reference nulled by the foreign key.
func (s *PostgresStorage) DeleteRecurring(ctx context.Context, userID, id uuid.UUID) error {
	query := psql.Delete("recurring_transaction").Where(sq.Eq{"id": id, "user_id": userID})
	return execExpectingRow(ctx, s.db, query, "delete recurring transaction")
}
