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

func (s *PostgresStorage) CreateIncome(ctx context.Context, rec transaction.Income) error {
	query := psql.Insert("income").
		Columns("id", "user_id", "source_id", "amount", "currency", "converted_amount",
			"exchange_rate", "transaction_date", "description", "status", "recurring_id").
		Values(rec.ID, rec.UserID, rec.SourceID, rec.Amount, rec.Currency, rec.ConvertedAmount,
			rec.ExchangeRate, rec.Date, rec.Description, rec.Status, rec.RecurringID)
	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "create income")
}

func (s *PostgresStorage) CreateExpense(ctx context.Context, rec transaction.Expense) error {
	query := psql.Insert("expense").
		Columns("id", "user_id", "category_id", "amount", "currency", "converted_amount",
			"exchange_rate", "transaction_date", "description", "status", "budget_id", "recurring_id").
		Values(rec.ID, rec.UserID, rec.CategoryID, rec.Amount, rec.Currency, rec.ConvertedAmount,
			rec.ExchangeRate, rec.Date, rec.Description, rec.Status, rec.BudgetID, rec.RecurringID)
	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "create expense")
}

func incomeQuery() sq.SelectBuilder {
	return psql.Select("i.id", "i.user_id", "i.source_id", "s.name", "i.amount", "i.currency",
		"i.converted_amount", "i.exchange_rate", "i.transaction_date", "i.description",
		"i.status", "i.recurring_id", "i.created_at").
		From("income i").
		Join("income_source s ON s.id = i.source_id")
}

func expenseQuery() sq.SelectBuilder {
	return psql.Select("e.id", "e.user_id", "e.category_id", "c.name", "e.amount", "e.currency",
		"e.converted_amount", "e.exchange_rate", "e.transaction_date", "e.description",
		"e.status", "e.budget_id", "e.recurring_id", "e.created_at").
		From("expense e").
		Join("category c ON c.id = e.category_id")
}

func scanIncome(row sq.RowScanner) (transaction.Income, error) {
	var rec transaction.Income
	err := row.Scan(&rec.ID, &rec.UserID, &rec.SourceID, &rec.SourceName, &rec.Amount,
		&rec.Currency, &rec.ConvertedAmount, &rec.ExchangeRate, &rec.Date,
		&rec.Description, &rec.Status, &rec.RecurringID, &rec.CreatedAt)
	return rec, err
}

func scanExpense(row sq.RowScanner) (transaction.Expense, error) {
	var rec transaction.Expense
	err := row.Scan(&rec.ID, &rec.UserID, &rec.CategoryID, &rec.CategoryName, &rec.Amount,
		&rec.Currency, &rec.ConvertedAmount, &rec.ExchangeRate, &rec.Date,
		&rec.Description, &rec.Status, &rec.BudgetID, &rec.RecurringID, &rec.CreatedAt)
	return rec, err
}

func (s *PostgresStorage) GetIncome(ctx context.Context, userID, id uuid.UUID) (transaction.Income, error) {
	query := incomeQuery().Where(sq.Eq{"i.id": id, "i.user_id": userID})
	rec, err := scanIncome(query.RunWith(s.db).QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return transaction.Income{}, ErrNotFound
	}
	return rec, errors.Wrap(err, "get income")
}

func (s *PostgresStorage) GetExpense(ctx context.Context, userID, id uuid.UUID) (transaction.Expense, error) {
	query := expenseQuery().Where(sq.Eq{"e.id": id, "e.user_id": userID})
	rec, err := scanExpense(query.RunWith(s.db).QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return transaction.Expense{}, ErrNotFound
	}
	return rec, errors.Wrap(err, "get expense")
}

// TransactionFilter narrows listing queries. Zero values mean "no filter".
type TransactionFilter struct {
	Status  string
	LabelID uuid.UUID
	Search  string
	Limit   uint64
}

func (s *PostgresStorage) ListIncomes(ctx context.Context, userID uuid.UUID, f TransactionFilter) ([]transaction.Income, error) {
	query := incomeQuery().
		Where(sq.Eq{"i.user_id": userID}).
		OrderBy("i.transaction_date DESC", "i.created_at DESC")
	query = applyFilter(query, f, "i", "s")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list incomes")
	}
	defer rows.Close()

	recs := make([]transaction.Income, 0)
	for rows.Next() {
		rec, err := scanIncome(rows)
		if err != nil {
			return nil, errors.Wrap(err, "list incomes")
		}
		recs = append(recs, rec)
	}
	return recs, errors.Wrap(rows.Err(), "list incomes")
}

func (s *PostgresStorage) ListExpenses(ctx context.Context, userID uuid.UUID, f TransactionFilter) ([]transaction.Expense, error) {
	query := expenseQuery().
		Where(sq.Eq{"e.user_id": userID}).
		OrderBy("e.transaction_date DESC", "e.created_at DESC")
	query = applyFilter(query, f, "e", "c")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list expenses")
	}
	defer rows.Close()

	recs := make([]transaction.Expense, 0)
	for rows.Next() {
		rec, err := scanExpense(rows)
		if err != nil {
			return nil, errors.Wrap(err, "list expenses")
		}
		recs = append(recs, rec)
	}
	return recs, errors.Wrap(rows.Err(), "list expenses")
}

func applyFilter(query sq.SelectBuilder, f TransactionFilter, txAlias, labelAlias string) sq.SelectBuilder {
	if f.Status != "" {
		query = query.Where(sq.Eq{txAlias + ".status": f.Status})
	}
	if f.LabelID != uuid.Nil {
		query = query.Where(sq.Eq{labelAlias + ".id": f.LabelID})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where(sq.Or{
			sq.ILike{labelAlias + ".name": pattern},
			sq.ILike{txAlias + ".description": pattern},
		})
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}
	return query
}

func (s *PostgresStorage) UpdateIncome(ctx context.Context, rec transaction.Income) error {
	query := psql.Update("income").
		Set("source_id", rec.SourceID).
		Set("amount", rec.Amount).
		Set("currency", rec.Currency).
		Set("converted_amount", rec.ConvertedAmount).
		Set("exchange_rate", rec.ExchangeRate).
		Set("transaction_date", rec.Date).
		Set("description", rec.Description).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": rec.ID, "user_id": rec.UserID})
	return execExpectingRow(ctx, s.db, query, "update income")
}

func (s *PostgresStorage) UpdateExpense(ctx context.Context, rec transaction.Expense) error {
	query := psql.Update("expense").
		Set("category_id", rec.CategoryID).
		Set("amount", rec.Amount).
		Set("currency", rec.Currency).
		Set("converted_amount", rec.ConvertedAmount).
		Set("exchange_rate", rec.ExchangeRate).
		Set("transaction_date", rec.Date).
		Set("description", rec.Description).
		Set("budget_id", rec.BudgetID).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": rec.ID, "user_id": rec.UserID})
	return execExpectingRow(ctx, s.db, query, "update expense")
}

func (s *PostgresStorage) DeleteIncome(ctx context.Context, userID, id uuid.UUID) error {
	query := psql.Delete("income").Where(sq.Eq{"id": id, "user_id": userID})
	return execExpectingRow(ctx, s.db, query, "delete income")
}

func (s *PostgresStorage) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	query := psql.Delete("expense").Where(sq.Eq{"id": id, "user_id": userID})
	return execExpectingRow(ctx, s.db, query, "delete expense")
}

// CompleteIncome flips a pending income to complete and credits the user's
// primary wallet in the same transaction. Completing an already complete
// income is a no-op.
func (s *PostgresStorage) CompleteIncome(ctx context.Context, userID, id uuid.UUID) error {
	return s.completeTransaction(ctx, "income", userID, id, false)
}

// CompleteExpense flips a pending expense to complete and debits the user's
// primary wallet in the same transaction.
func (s *PostgresStorage) CompleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	return s.completeTransaction(ctx, "expense", userID, id, true)
}

func (s *PostgresStorage) completeTransaction(ctx context.Context, table string, userID, id uuid.UUID, debit bool) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		row := psql.Select("status", "converted_amount").
			From(table).
			Where(sq.Eq{"id": id, "user_id": userID}).
			Suffix("FOR UPDATE").
			RunWith(tx).
			QueryRowContext(ctx)

		var rec transaction.Income
		err := row.Scan(&rec.Status, &rec.ConvertedAmount)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return errors.Wrapf(err, "complete %s", table)
		}
		if rec.Status == transaction.StatusComplete {
			return nil
		}

		update := psql.Update(table).
			Set("status", transaction.StatusComplete).
			Set("updated_at", time.Now()).
			Where(sq.Eq{"id": id})
		if _, err = update.RunWith(tx).ExecContext(ctx); err != nil {
			return errors.Wrapf(err, "complete %s", table)
		}

		delta := rec.ConvertedAmount
		if debit {
			delta = delta.Neg()
		}
		return adjustPrimaryBalance(ctx, tx, userID, delta)
	})
}

func execExpectingRow(ctx context.Context, db *sql.DB, query sq.Sqlizer, op string) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, op)
	}
	res, err := db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return errors.Wrap(err, op)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}
