package storage

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-app/internal/entity/user"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

func (s *PostgresStorage) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	query := psql.Select("id", "user_id", "primary_currency", "created_at", "updated_at").
		From("user_profile").
		Where(sq.Eq{"user_id": userID})

	var res user.Profile
	var curr string
	err := query.RunWith(s.db).QueryRowContext(ctx).
		Scan(&res.ID, &res.UserID, &curr, &res.CreatedAt, &res.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Profile{}, ErrNotFound
	}
	if err != nil {
		return user.Profile{}, errors.Wrap(err, "get profile")
	}
	res.SetPrimaryCurrency(curr)
	return res, nil
}

// CreateProfile inserts the profile together with its primary wallet in the
// profile currency.
func (s *PostgresStorage) CreateProfile(ctx context.Context, rec user.Profile, primaryCurrency string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		profile := psql.Insert("user_profile").
			Columns("id", "user_id", "primary_currency").
			Values(rec.ID, rec.UserID, primaryCurrency)
		if _, err := profile.RunWith(tx).ExecContext(ctx); err != nil {
			return errors.Wrap(err, "create profile")
		}

		wal := psql.Insert("wallet").
			Columns("id", "user_id", "currency", "balance", "is_primary").
			Values(uuid.New(), rec.UserID, primaryCurrency, decimal.Zero, true)
		if _, err := wal.RunWith(tx).ExecContext(ctx); err != nil {
			return errors.Wrap(err, "create primary wallet")
		}
		return nil
	})
}

func (s *PostgresStorage) SaveProfile(ctx context.Context, rec user.Profile, primaryCurrency string) error {
	query := psql.Update("user_profile").
		Set("primary_currency", primaryCurrency).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"user_id": rec.UserID})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "save profile")
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}
