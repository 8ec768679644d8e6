package storage

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-app/internal/entity/wallet"
)

var walletColumns = []string{
	"id", "user_id", "currency", "balance", "is_primary", "created_at", "updated_at",
}

func scanWallet(row sq.RowScanner) (wallet.Wallet, error) {
	var w wallet.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Currency, &w.Balance, &w.IsPrimary, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

func (s *PostgresStorage) GetWallet(ctx context.Context, userID, walletID uuid.UUID) (wallet.Wallet, error) {
	query := psql.Select(walletColumns...).
		From("wallet").
		Where(sq.Eq{"id": walletID, "user_id": userID})

	w, err := scanWallet(query.RunWith(s.db).QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return wallet.Wallet{}, ErrNotFound
	}
	if err != nil {
		return wallet.Wallet{}, errors.Wrap(err, "get wallet")
	}
	return w, nil
}

func (s *PostgresStorage) ListWallets(ctx context.Context, userID uuid.UUID) ([]wallet.Wallet, error) {
	query := psql.Select(walletColumns...).
		From("wallet").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("is_primary DESC", "currency")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list wallets")
	}
	defer rows.Close()

	wallets := make([]wallet.Wallet, 0)
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, errors.Wrap(err, "list wallets")
		}
		wallets = append(wallets, w)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list wallets")
	}
	return wallets, nil
}

// CreateWallet inserts a wallet; when it is flagged primary, every other
// wallet of the user is demoted in the same transaction.
func (s *PostgresStorage) CreateWallet(ctx context.Context, w wallet.Wallet) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if w.IsPrimary {
			if err := demoteWallets(ctx, tx, w.UserID); err != nil {
				return err
			}
		}
		query := psql.Insert("wallet").
			Columns("id", "user_id", "currency", "balance", "is_primary").
			Values(w.ID, w.UserID, w.Currency, w.Balance, w.IsPrimary)
		_, err := query.RunWith(tx).ExecContext(ctx)
		return errors.Wrap(err, "create wallet")
	})
}

// SetPrimaryWallet promotes one wallet and demotes the rest atomically.
func (s *PostgresStorage) SetPrimaryWallet(ctx context.Context, userID, walletID uuid.UUID) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := demoteWallets(ctx, tx, userID); err != nil {
			return err
		}
		query := psql.Update("wallet").
			Set("is_primary", true).
			Set("updated_at", time.Now()).
			Where(sq.Eq{"id": walletID, "user_id": userID})
		res, err := query.RunWith(tx).ExecContext(ctx)
		if err != nil {
			return errors.Wrap(err, "promote wallet")
		}
		affected, err := res.RowsAffected()
		if err == nil && affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *PostgresStorage) DeleteWallet(ctx context.Context, userID, walletID uuid.UUID) error {
	query := psql.Delete("wallet").
		Where(sq.Eq{"id": walletID, "user_id": userID, "is_primary": false})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "delete wallet")
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func demoteWallets(ctx context.Context, tx *sql.Tx, userID uuid.UUID) error {
	query := psql.Update("wallet").
		Set("is_primary", false).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"user_id": userID, "is_primary": true})
	_, err := query.RunWith(tx).ExecContext(ctx)
	return errors.Wrap(err, "demote wallets")
}

// adjustPrimaryBalance shifts the primary wallet of the user by delta, which
// may be negative. The balance check constraint rejects overdrafts.
func adjustPrimaryBalance(ctx context.Context, tx *sql.Tx, userID uuid.UUID, delta decimal.Decimal) error {
	query := psql.Update("wallet").
		Set("balance", sq.Expr("balance + ?", delta)).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"user_id": userID, "is_primary": true})
	res, err := query.RunWith(tx).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "adjust wallet balance")
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return errors.New("user has no primary wallet")
	}
	return nil
}
