package transactions

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"max.ks1230/finance-app/internal/entity/transaction"
	"max.ks1230/finance-app/internal/model/storage"
)

// CreateCategory adds a user-defined expense category. Names are unique
// per user.
func (s *Service) CreateCategory(ctx context.Context, userID uuid.UUID, name, icon string) (transaction.Label, error) {
	return s.createLabel(ctx, userID, name, icon,
		s.storage.CreateCategory, s.storage.GetCategory)
}

// CreateIncomeSource adds a user-defined income source.
func (s *Service) CreateIncomeSource(ctx context.Context, userID uuid.UUID, name, icon string) (transaction.Label, error) {
	return s.createLabel(ctx, userID, name, icon,
		s.storage.CreateIncomeSource, s.storage.GetIncomeSource)
}

func (s *Service) createLabel(
	ctx context.Context,
	userID uuid.UUID,
	name, icon string,
	create func(context.Context, transaction.Label) error,
	get func(context.Context, uuid.UUID, uuid.UUID) (transaction.Label, error),
) (transaction.Label, error) {
	if name == "" {
		return transaction.Label{}, fmt.Errorf("label name is required")
	}

	l := transaction.Label{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
		Icon:   icon,
	}
	if err := create(ctx, l); err != nil {
		return transaction.Label{}, err
	}

	created, err := get(ctx, userID, l.ID)
	if errors.Is(err, storage.ErrNotFound) {
		// the insert was a no-op, the name is already taken
		return transaction.Label{}, fmt.Errorf("label %s already exists", name)
	}
	return created, err
}

func (s *Service) ListCategories(ctx context.Context, userID uuid.UUID) ([]transaction.Label, error) {
	return s.storage.ListCategories(ctx, userID)
}

func (s *Service) ListIncomeSources(ctx context.Context, userID uuid.UUID) ([]transaction.Label, error) {
	return s.storage.ListIncomeSources(ctx, userID)
}

// DeleteCategory removes a user-defined category. Predefined labels
// cannot be deleted.
func (s *Service) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	return s.storage.DeleteCategory(ctx, userID, id)
}

func (s *Service) DeleteIncomeSource(ctx context.Context, userID, id uuid.UUID) error {
	return s.storage.DeleteIncomeSource(ctx, userID, id)
}
