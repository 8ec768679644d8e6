package storage

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"max.ks1230/finance-app/internal/entity/transaction"
)

const (
	categoryTable     = "category"
	incomeSourceTable = "income_source"
)

var labelColumns = []string{"id", "user_id", "name", "icon", "is_predefined"}

func (s *PostgresStorage) CreateCategory(ctx context.Context, l transaction.Label) error {
	return s.createLabel(ctx, categoryTable, l)
}

func (s *PostgresStorage) CreateIncomeSource(ctx context.Context, l transaction.Label) error {
	return s.createLabel(ctx, incomeSourceTable, l)
}

func (s *PostgresStorage) GetCategory(ctx context.Context, userID, id uuid.UUID) (transaction.Label, error) {
	return s.getLabel(ctx, categoryTable, userID, id)
}

func (s *PostgresStorage) GetIncomeSource(ctx context.Context, userID, id uuid.UUID) (transaction.Label, error) {
	return s.getLabel(ctx, incomeSourceTable, userID, id)
}

func (s *PostgresStorage) ListCategories(ctx context.Context, userID uuid.UUID) ([]transaction.Label, error) {
	return s.listLabels(ctx, categoryTable, userID)
}

func (s *PostgresStorage) ListIncomeSources(ctx context.Context, userID uuid.UUID) ([]transaction.Label, error) {
	return s.listLabels(ctx, incomeSourceTable, userID)
}

func (s *PostgresStorage) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	return s.deleteLabel(ctx, categoryTable, userID, id)
}

func (s *PostgresStorage) DeleteIncomeSource(ctx context.Context, userID, id uuid.UUID) error {
	return s.deleteLabel(ctx, incomeSourceTable, userID, id)
}

func (s *PostgresStorage) createLabel(ctx context.Context, table string, l transaction.Label) error {
	query := psql.Insert(table).
		Columns(labelColumns...).
		Values(l.ID, l.UserID, l.Name, l.Icon, l.IsPredefined).
		Suffix("ON CONFLICT (user_id, name) DO NOTHING")
	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrapf(err, "create %s", table)
}

func (s *PostgresStorage) getLabel(ctx context.Context, table string, userID, id uuid.UUID) (transaction.Label, error) {
	query := psql.Select(labelColumns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID})

	var l transaction.Label
	err := query.RunWith(s.db).QueryRowContext(ctx).
		Scan(&l.ID, &l.UserID, &l.Name, &l.Icon, &l.IsPredefined)
	if errors.Is(err, sql.ErrNoRows) {
		return transaction.Label{}, ErrNotFound
	}
	if err != nil {
		return transaction.Label{}, errors.Wrapf(err, "get %s", table)
	}
	return l, nil
}

func (s *PostgresStorage) listLabels(ctx context.Context, table string, userID uuid.UUID) ([]transaction.Label, error) {
	query := psql.Select(labelColumns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", table)
	}
	defer rows.Close()

	labels := make([]transaction.Label, 0)
	for rows.Next() {
		var l transaction.Label
		if err = rows.Scan(&l.ID, &l.UserID, &l.Name, &l.Icon, &l.IsPredefined); err != nil {
			return nil, errors.Wrapf(err, "list %s", table)
		}
		labels = append(labels, l)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "list %s", table)
	}
	return labels, nil
}

func (s *PostgresStorage) deleteLabel(ctx context.Context, table string, userID, id uuid.UUID) error {
	query := psql.Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID, "is_predefined": false})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrapf(err, "delete %s", table)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}
