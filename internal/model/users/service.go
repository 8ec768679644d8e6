package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finance-app/internal/entity/currency"
	"max.ks1230/finance-app/internal/entity/transaction"
	"max.ks1230/finance-app/internal/entity/user"
	"max.ks1230/finance-app/internal/logger"
	"max.ks1230/finance-app/internal/model/storage"
)

type profilesStorage interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	CreateProfile(ctx context.Context, rec user.Profile, primaryCurrency string) error
	SaveProfile(ctx context.Context, rec user.Profile, primaryCurrency string) error
	CreateCategory(ctx context.Context, l transaction.Label) error
	CreateIncomeSource(ctx context.Context, l transaction.Label) error
}

type config interface {
	DefaultCurrency() string
}

// Service manages user profiles. A profile is created lazily on first
// touch, together with a primary wallet and a predefined label set.
type Service struct {
	storage         profilesStorage
	defaultCurrency string
}

func NewService(storage profilesStorage, config config) *Service {
	return &Service{
		storage:         storage,
		defaultCurrency: config.DefaultCurrency(),
	}
}

type predefinedLabel struct {
	name string
	icon string
}

var predefinedCategories = []predefinedLabel{
	{"Food", "🍜"},
	{"Transport", "🚌"},
	{"Housing", "🏠"},
	{"Utilities", "💡"},
	{"Entertainment", "🎬"},
	{"Health", "💊"},
	{"Shopping", "🛒"},
	{"Education", "📚"},
	{"Other", "📦"},
}

var predefinedSources = []predefinedLabel{
	{"Salary", "💼"},
	{"Business", "🏪"},
	{"Investments", "📈"},
	{"Gifts", "🎁"},
	{"Other", "📦"},
}

// GetOrCreate returns the user's profile, provisioning one with defaults
// when none exists yet.
func (s *Service) GetOrCreate(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	profile, err := s.storage.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return user.Profile{}, err
	}

	rec := user.Profile{ID: uuid.New(), UserID: userID}
	if err = s.storage.CreateProfile(ctx, rec, s.defaultCurrency); err != nil {
		return user.Profile{}, err
	}
	s.seedLabels(ctx, userID)

	logger.Info("provisioned new profile", zap.String("user", userID.String()))
	return s.storage.GetProfile(ctx, userID)
}

func (s *Service) seedLabels(ctx context.Context, userID uuid.UUID) {
	for _, l := range predefinedCategories {
		err := s.storage.CreateCategory(ctx, transaction.Label{
			ID:           uuid.New(),
			UserID:       userID,
			Name:         l.name,
			Icon:         l.icon,
			IsPredefined: true,
		})
		if err != nil {
			logger.Error("cannot seed category", zap.Error(err), zap.String("name", l.name))
		}
	}
	for _, l := range predefinedSources {
		err := s.storage.CreateIncomeSource(ctx, transaction.Label{
			ID:           uuid.New(),
			UserID:       userID,
			Name:         l.name,
			Icon:         l.icon,
			IsPredefined: true,
		})
		if err != nil {
			logger.Error("cannot seed income source", zap.Error(err), zap.String("name", l.name))
		}
	}
}

// SetPrimaryCurrency switches the currency new transactions are normalized
// into. Existing records keep the rate they were converted at.
func (s *Service) SetPrimaryCurrency(ctx context.Context, userID uuid.UUID, code string) (user.Profile, error) {
	if !currency.IsSupported(code) {
		return user.Profile{}, fmt.Errorf("unknown currency %s", code)
	}

	profile, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return user.Profile{}, err
	}
	if err = s.storage.SaveProfile(ctx, profile, code); err != nil {
		return user.Profile{}, err
	}
	profile.SetPrimaryCurrency(code)
	return profile, nil
}

// PrimaryCurrency resolves the currency amounts should be normalized into
// for the user.
func (s *Service) PrimaryCurrency(ctx context.Context, userID uuid.UUID) (string, error) {
	profile, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return "", err
	}
	return profile.PrimaryCurrency(s.defaultCurrency), nil
}
