package transactions

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-app/internal/entity/currency"
	"max.ks1230/finance-app/internal/entity/transaction"
)

// NewTemplate carries the user-supplied fields of a recurring template.
type NewTemplate struct {
	Type               string
	LabelID            uuid.UUID
	Amount             decimal.Decimal
	Currency           string
	Description        string
	Pattern            string
	CustomIntervalDays int
	StartDate          time.Time
	EndDate            *time.Time
	BudgetID           uuid.NullUUID
}

func (s *Service) CreateTemplate(ctx context.Context, userID uuid.UUID, req NewTemplate) (transaction.Recurring, error) {
	if req.Type != transaction.TypeIncome && req.Type != transaction.TypeExpense {
		return transaction.Recurring{}, fmt.Errorf("unknown transaction type %s", req.Type)
	}
	if !req.Amount.IsPositive() {
		return transaction.Recurring{}, fmt.Errorf("amount must be positive")
	}
	if !currency.IsSupported(req.Currency) {
		return transaction.Recurring{}, fmt.Errorf("unknown currency %s", req.Currency)
	}
	if !validPattern(req.Pattern) {
		return transaction.Recurring{}, fmt.Errorf("unknown recurrence pattern %s", req.Pattern)
	}
	if req.Pattern == transaction.PatternCustom && req.CustomIntervalDays <= 0 {
		return transaction.Recurring{}, fmt.Errorf("custom pattern needs a positive interval")
	}
	if req.StartDate.IsZero() {
		return transaction.Recurring{}, fmt.Errorf("start date is required")
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return transaction.Recurring{}, fmt.Errorf("end date is before start date")
	}

	var err error
	if req.Type == transaction.TypeIncome {
		_, err = s.storage.GetIncomeSource(ctx, userID, req.LabelID)
	} else {
		_, err = s.storage.GetCategory(ctx, userID, req.LabelID)
	}
	if err != nil {
		return transaction.Recurring{}, err
	}

	rec := transaction.Recurring{
		ID:                 uuid.New(),
		UserID:             userID,
		Type:               req.Type,
		LabelID:            req.LabelID,
		Amount:             req.Amount,
		Currency:           req.Currency,
		Description:        req.Description,
		Pattern:            req.Pattern,
		CustomIntervalDays: req.CustomIntervalDays,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		IsActive:           true,
		BudgetID:           req.BudgetID,
	}
	if err = s.storage.CreateRecurring(ctx, rec); err != nil {
		return transaction.Recurring{}, err
	}
	return s.storage.GetRecurring(ctx, userID, rec.ID)
}

func (s *Service) GetTemplate(ctx context.Context, userID, id uuid.UUID) (transaction.Recurring, error) {
	return s.storage.GetRecurring(ctx, userID, id)
}

func (s *Service) ListTemplates(ctx context.Context, userID uuid.UUID) ([]transaction.Recurring, error) {
	return s.storage.ListRecurring(ctx, userID)
}

func (s *Service) SetTemplateActive(ctx context.Context, userID, id uuid.UUID, active bool) (transaction.Recurring, error) {
	if err := s.storage.SetRecurringActive(ctx, userID, id, active); err != nil {
		return transaction.Recurring{}, err
	}
	return s.storage.GetRecurring(ctx, userID, id)
}

func (s *Service) DeleteTemplate(ctx context.Context, userID, id uuid.UUID) error {
	return s.storage.DeleteRecurring(ctx, userID, id)
}

// SpawnFromTemplate materializes one pending ledger entry from a template.
// The entry settles like any other pending transaction, so wallet balances
// only move once the user confirms it.
func (s *Service) SpawnFromTemplate(ctx context.Context, rec transaction.Recurring, date time.Time) error {
	conv, err := s.normalize(ctx, rec.UserID, rec.Amount, rec.Currency)
	if err != nil {
		return err
	}

	recurringID := uuid.NullUUID{UUID: rec.ID, Valid: true}
	if rec.Type == transaction.TypeIncome {
		return s.storage.CreateIncome(ctx, transaction.Income{
			ID:              uuid.New(),
			UserID:          rec.UserID,
			SourceID:        rec.LabelID,
			Amount:          rec.Amount,
			Currency:        rec.Currency,
			ConvertedAmount: conv.Amount,
			ExchangeRate:    conv.Rate,
			Date:            date,
			Description:     rec.Description,
			Status:          transaction.StatusPending,
			RecurringID:     recurringID,
		})
	}
	return s.storage.CreateExpense(ctx, transaction.Expense{
		ID:              uuid.New(),
		UserID:          rec.UserID,
		CategoryID:      rec.LabelID,
		Amount:          rec.Amount,
		Currency:        rec.Currency,
		ConvertedAmount: conv.Amount,
		ExchangeRate:    conv.Rate,
		Date:            date,
		Description:     rec.Description,
		Status:          transaction.StatusPending,
		BudgetID:        rec.BudgetID,
		RecurringID:     recurringID,
	})
}

func validPattern(pattern string) bool {
	for _, p := range transaction.RecurrencePatterns {
		if p == pattern {
			return true
		}
	}
	return false
}
