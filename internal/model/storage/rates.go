package storage

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"max.ks1230/finance-app/internal/entity/currency"
)

func (s *PostgresStorage) GetRate(ctx context.Context, code string) (currency.Rate, error) {
	query := psql.Select("code", "name", "exchange_rate", "last_updated").
		From("currency_cache").
		Where(sq.Eq{"code": code})

	var rate currency.Rate
	err := query.RunWith(s.db).QueryRowContext(ctx).
		Scan(&rate.Code, &rate.Name, &rate.BaseRate, &rate.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return currency.Rate{}, ErrNotFound
	}
	if err != nil {
		return currency.Rate{}, errors.Wrap(err, "get rate")
	}
	return rate, nil
}

func (s *PostgresStorage) ListRates(ctx context.Context) ([]currency.Rate, error) {
	query := psql.Select("code", "name", "exchange_rate", "last_updated").
		From("currency_cache").
		OrderBy("code")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list rates")
	}
	defer rows.Close()

	rates := make([]currency.Rate, 0)
	for rows.Next() {
		var rate currency.Rate
		if err = rows.Scan(&rate.Code, &rate.Name, &rate.BaseRate, &rate.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "list rates")
		}
		rates = append(rates, rate)
	}
	return rates, errors.Wrap(rows.Err(), "list rates")
}

func (s *PostgresStorage) SaveRates(ctx context.Context, rates []currency.Rate) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, rate := range rates {
			query := psql.Insert("currency_cache").
				Columns("code", "name", "exchange_rate", "last_updated").
				Values(rate.Code, rate.Name, rate.BaseRate, rate.UpdatedAt).
				Suffix("ON CONFLICT (code) DO UPDATE SET " +
					"exchange_rate = EXCLUDED.exchange_rate, last_updated = EXCLUDED.last_updated")
			if _, err := query.RunWith(tx).ExecContext(ctx); err != nil {
				return errors.Wrap(err, "save rates")
			}
		}
		return nil
	})
}

// LatestRateUpdate reports when the cache was last refreshed. A zero time
// means the cache is empty.
func (s *PostgresStorage) LatestRateUpdate(ctx context.Context) (time.Time, error) {
	var latest sql.NullTime
	err := psql.Select("MAX(last_updated)").
		From("currency_cache").
		RunWith(s.db).QueryRowContext(ctx).Scan(&latest)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "latest rate update")
	}
	if !latest.Valid {
		return time.Time{}, nil
	}
	return latest.Time, nil
}
