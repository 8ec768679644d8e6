package storage

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"max.ks1230/finance-app/internal/entity/budget"
)

var budgetColumns = []string{
	"id", "user_id", "name", "budget_type", "amount", "currency",
	"recurrence_pattern", "start_date", "end_date", "status", "created_at", "updated_at",
}

func scanBudget(row sq.RowScanner) (budget.Budget, error) {
	var b budget.Budget
	var endDate sql.NullTime
	err := row.Scan(&b.ID, &b.UserID, &b.Name, &b.Type, &b.Amount, &b.Currency,
		&b.Pattern, &b.StartDate, &endDate, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if endDate.Valid {
		b.EndDate = &endDate.Time
	}
	return b, err
}

func (s *PostgresStorage) CreateBudget(ctx context.Context, b budget.Budget) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		query := psql.Insert("budget").
			Columns("id", "user_id", "name", "budget_type", "amount", "currency",
				"recurrence_pattern", "start_date", "end_date", "status").
			Values(b.ID, b.UserID, b.Name, b.Type, b.Amount, b.Currency,
				b.Pattern, b.StartDate, b.EndDate, b.Status)
		if _, err := query.RunWith(tx).ExecContext(ctx); err != nil {
			return errors.Wrap(err, "create budget")
		}
		return replaceBudgetCategories(ctx, tx, b)
	})
}

func (s *PostgresStorage) UpdateBudget(ctx context.Context, b budget.Budget) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		query := psql.Update("budget").
			Set("name", b.Name).
			Set("budget_type", b.Type).
			Set("amount", b.Amount).
			Set("currency", b.Currency).
			Set("recurrence_pattern", b.Pattern).
			Set("start_date", b.StartDate).
			Set("end_date", b.EndDate).
			Set("updated_at", time.Now()).
			Where(sq.Eq{"id": b.ID, "user_id": b.UserID})
		res, err := query.RunWith(tx).ExecContext(ctx)
		if err != nil {
			return errors.Wrap(err, "update budget")
		}
		affected, err := res.RowsAffected()
		if err == nil && affected == 0 {
			return ErrNotFound
		}
		return replaceBudgetCategories(ctx, tx, b)
	})
}

func replaceBudgetCategories(ctx context.Context, tx *sql.Tx, b budget.Budget) error {
	del := psql.Delete("budget_category").Where(sq.Eq{"budget_id": b.ID})
	if _, err := del.RunWith(tx).ExecContext(ctx); err != nil {
		return errors.Wrap(err, "clear budget categories")
	}
	if b.Type != budget.TypeCategoryFilter || len(b.CategoryIDs) == 0 {
		return nil
	}

	ins := psql.Insert("budget_category").Columns("budget_id", "category_id")
	for _, catID := range b.CategoryIDs {
		ins = ins.Values(b.ID, catID)
	}
	_, err := ins.RunWith(tx).ExecContext(ctx)
	return errors.Wrap(err, "set budget categories")
}

func (s *PostgresStorage) GetBudget(ctx context.Context, userID, id uuid.UUID) (budget.Budget, error) {
	query := psql.Select(budgetColumns...).
		From("budget").
		Where(sq.Eq{"id": id, "user_id": userID})

	b, err := scanBudget(query.RunWith(s.db).QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return budget.Budget{}, ErrNotFound
	}
	if err != nil {
		return budget.Budget{}, errors.Wrap(err, "get budget")
	}

	b.CategoryIDs, err = s.budgetCategoryIDs(ctx, b.ID)
	return b, err
}

func (s *PostgresStorage) ListBudgets(ctx context.Context, userID uuid.UUID) ([]budget.Budget, error) {
	query := psql.Select(budgetColumns...).
		From("budget").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list budgets")
	}
	defer rows.Close()

	budgets := make([]budget.Budget, 0)
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, errors.Wrap(err, "list budgets")
		}
		budgets = append(budgets, b)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list budgets")
	}

	for i := range budgets {
		budgets[i].CategoryIDs, err = s.budgetCategoryIDs(ctx, budgets[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return budgets, nil
}

func (s *PostgresStorage) budgetCategoryIDs(ctx context.Context, budgetID uuid.UUID) ([]uuid.UUID, error) {
	query := psql.Select("category_id").
		From("budget_category").
		Where(sq.Eq{"budget_id": budgetID})

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "budget categories")
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "budget categories")
		}
		ids = append(ids, id)
	}
	return ids, errors.Wrap(rows.Err(), "budget categories")
}

func (s *PostgresStorage) SetBudgetStatus(ctx context.Context, userID, id uuid.UUID, status string) error {
	query := psql.Update("budget").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id, "user_id": userID})
	return execExpectingRow(ctx, s.db, query, "set budget status")
}

func (s *PostgresStorage) DeleteBudget(ctx context.Context, userID, id uuid.UUID) error {
	query := psql.Delete("budget").Where(sq.Eq{"id": id, "user_id": userID})
	return execExpectingRow(ctx, s.db, query, "delete budget")
}

func (s *PostgresStorage) CountActiveBudgets(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := psql.Select("COUNT(*)").
		From("budget").
		Where(sq.Eq{"user_id": userID, "status": budget.StatusActive}).
		RunWith(s.db).QueryRowContext(ctx).Scan(&count)
	return count, errors.Wrap(err, "count active budgets")
}
