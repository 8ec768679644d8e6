package wallets

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-app/internal/entity/currency"
	"max.ks1230/finance-app/internal/entity/wallet"
)

type walletsStorage interface {
	GetWallet(ctx context.Context, userID, walletID uuid.UUID) (wallet.Wallet, error)
	ListWallets(ctx context.Context, userID uuid.UUID) ([]wallet.Wallet, error)
	CreateWallet(ctx context.Context, w wallet.Wallet) error
	SetPrimaryWallet(ctx context.Context, userID, walletID uuid.UUID) error
	DeleteWallet(ctx context.Context, userID, walletID uuid.UUID) error
}

// Service manages per-currency wallets. Exactly one wallet per user is
// primary; it receives the balance effect of completed transactions.
type Service struct {
	storage walletsStorage
}

func NewService(storage walletsStorage) *Service {
	return &Service{storage: storage}
}

// NewWallet carries the user-supplied fields of a wallet to create.
type NewWallet struct {
	Currency  string
	Balance   decimal.Decimal
	IsPrimary bool
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, req NewWallet) (wallet.Wallet, error) {
	if !currency.IsSupported(req.Currency) {
		return wallet.Wallet{}, fmt.Errorf("unknown currency %s", req.Currency)
	}
	if req.Balance.IsNegative() {
		return wallet.Wallet{}, fmt.Errorf("wallet balance cannot be negative")
	}

	w := wallet.Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		Currency:  req.Currency,
		Balance:   req.Balance,
		IsPrimary: req.IsPrimary,
	}
	if err := s.storage.CreateWallet(ctx, w); err != nil {
		return wallet.Wallet{}, err
	}
	return s.storage.GetWallet(ctx, userID, w.ID)
}

func (s *Service) Get(ctx context.Context, userID, walletID uuid.UUID) (wallet.Wallet, error) {
	return s.storage.GetWallet(ctx, userID, walletID)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]wallet.Wallet, error) {
	return s.storage.ListWallets(ctx, userID)
}

// SetPrimary promotes the wallet; the previous primary is demoted in the
// same transaction so the single-primary invariant holds.
func (s *Service) SetPrimary(ctx context.Context, userID, walletID uuid.UUID) (wallet.Wallet, error) {
	if err := s.storage.SetPrimaryWallet(ctx, userID, walletID); err != nil {
		return wallet.Wallet{}, err
	}
	return s.storage.GetWallet(ctx, userID, walletID)
}

// Delete refuses to remove the primary wallet; promote another one first.
func (s *Service) Delete(ctx context.Context, userID, walletID uuid.UUID) error {
	w, err := s.storage.GetWallet(ctx, userID, walletID)
	if err != nil {
		return err
	}
	if w.IsPrimary {
		return fmt.Errorf("cannot delete the primary wallet")
	}
	return s.storage.DeleteWallet(ctx, userID, walletID)
}
