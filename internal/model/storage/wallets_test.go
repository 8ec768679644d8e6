package storage

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finance-app/internal/entity/wallet"
)

func walletTestStorage(t *testing.T) (*PostgresStorage, sqlmock.Sqlmock) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &PostgresStorage{db: db}, dbMock
}

func Test_OnSetPrimaryWallet_DemotesOthersBeforePromoting(t *testing.T) {
	s, dbMock := walletTestStorage(t)
	userID, walletID := uuid.New(), uuid.New()

	dbMock.ExpectBegin()
	dbMock.ExpectExec("UPDATE wallet SET is_primary").
		WithArgs(false, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	dbMock.ExpectExec("UPDATE wallet SET is_primary").
		WithArgs(true, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	require.NoError(t, s.SetPrimaryWallet(context.Background(), userID, walletID))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func Test_OnSetPrimaryWallet_UnknownWalletRollsBack(t *testing.T) {
	s, dbMock := walletTestStorage(t)

	dbMock.ExpectBegin()
	dbMock.ExpectExec("UPDATE wallet SET is_primary").
		WithArgs(false, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectExec("UPDATE wallet SET is_primary").
		WithArgs(true, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectRollback()

	err := s.SetPrimaryWallet(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func Test_OnCreateWallet_PrimaryDemotesExistingInSameTx(t *testing.T) {
	s, dbMock := walletTestStorage(t)
	w := wallet.Wallet{ID: uuid.New(), UserID: uuid.New(), Currency: "PHP", IsPrimary: true}

	dbMock.ExpectBegin()
	dbMock.ExpectExec("UPDATE wallet SET is_primary").
		WithArgs(false, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectExec("INSERT INTO wallet").
		WithArgs(w.ID, w.UserID, w.Currency, sqlmock.AnyArg(), true).
		WillReturnResult(sqlmock.NewResult(1, 1))
	dbMock.ExpectCommit()

	require.NoError(t, s.CreateWallet(context.Background(), w))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
