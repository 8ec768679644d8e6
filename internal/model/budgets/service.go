package budgets

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-app/internal/entity/budget"
	"max.ks1230/finance-app/internal/entity/transaction"
	"max.ks1230/finance-app/internal/model/storage"
)

type budgetsStorage interface {
	CreateBudget(ctx context.Context, b budget.Budget) error
	UpdateBudget(ctx context.Context, b budget.Budget) error
	GetBudget(ctx context.Context, userID, id uuid.UUID) (budget.Budget, error)
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]budget.Budget, error)
	SetBudgetStatus(ctx context.Context, userID, id uuid.UUID, status string) error
	DeleteBudget(ctx context.Context, userID, id uuid.UUID) error

	GetCategory(ctx context.Context, userID, id uuid.UUID) (transaction.Label, error)
	SumCompleteExpenses(ctx context.Context, userID uuid.UUID, f storage.SpendFilter) (decimal.Decimal, error)
}

// Service manages spending limits. Spent totals are never stored; they are
// recomputed from complete expenses so linked and filtered spend can never
// drift out of sync with the ledger.
type Service struct {
	storage budgetsStorage
}

func NewService(storage budgetsStorage) *Service {
	return &Service{storage: storage}
}

// NewBudget carries the user-supplied fields of a budget.
type NewBudget struct {
	Name        string
	Type        string
	Amount      decimal.Decimal
	Currency    string
	Pattern     string
	StartDate   time.Time
	EndDate     *time.Time
	CategoryIDs []uuid.UUID
}

func (s *Service) validate(ctx context.Context, userID uuid.UUID, req NewBudget) error {
	if req.Name == "" {
		return fmt.Errorf("budget name is required")
	}
	if req.Type != budget.TypeManual && req.Type != budget.TypeCategoryFilter {
		return fmt.Errorf("unknown budget type %s", req.Type)
	}
	if !req.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	if !validPattern(req.Pattern) {
		return fmt.Errorf("unknown recurrence pattern %s", req.Pattern)
	}
	if req.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("end date is before start date")
	}
	if req.Type == budget.TypeCategoryFilter && len(req.CategoryIDs) == 0 {
		return fmt.Errorf("category filter budget needs at least one category")
	}
	for _, catID := range req.CategoryIDs {
		if _, err := s.storage.GetCategory(ctx, userID, catID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, req NewBudget) (budget.Budget, error) {
	if err := s.validate(ctx, userID, req); err != nil {
		return budget.Budget{}, err
	}

	b := budget.Budget{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Type:        req.Type,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Pattern:     req.Pattern,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      budget.StatusActive,
		CategoryIDs: req.CategoryIDs,
	}
	if err := s.storage.CreateBudget(ctx, b); err != nil {
		return budget.Budget{}, err
	}
	return s.storage.GetBudget(ctx, userID, b.ID)
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, req NewBudget) (budget.Budget, error) {
	if err := s.validate(ctx, userID, req); err != nil {
		return budget.Budget{}, err
	}

	b, err := s.storage.GetBudget(ctx, userID, id)
	if err != nil {
		return budget.Budget{}, err
	}
	b.Name = req.Name
	b.Type = req.Type
	b.Amount = req.Amount
	b.Currency = req.Currency
	b.Pattern = req.Pattern
	b.StartDate = req.StartDate
	b.EndDate = req.EndDate
	b.CategoryIDs = req.CategoryIDs
	if err = s.storage.UpdateBudget(ctx, b); err != nil {
		return budget.Budget{}, err
	}
	return s.storage.GetBudget(ctx, userID, id)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (budget.Budget, error) {
	return s.storage.GetBudget(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]budget.Budget, error) {
	return s.storage.ListBudgets(ctx, userID)
}

func (s *Service) SetStatus(ctx context.Context, userID, id uuid.UUID, status string) (budget.Budget, error) {
	if status != budget.StatusActive && status != budget.StatusInactive {
		return budget.Budget{}, fmt.Errorf("unknown budget status %s", status)
	}
	if err := s.storage.SetBudgetStatus(ctx, userID, id, status); err != nil {
		return budget.Budget{}, err
	}
	return s.storage.GetBudget(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.storage.DeleteBudget(ctx, userID, id)
}

// CalculateSpent recomputes the spent total for the budget's current
// window. Manual budgets count only expenses linked to them; filter
// budgets count any complete expense in their categories.
func (s *Service) CalculateSpent(ctx context.Context, b budget.Budget, asOf time.Time) (decimal.Decimal, error) {
	from, to := Window(b, asOf)
	filter := storage.SpendFilter{From: from, To: to}
	switch b.Type {
	case budget.TypeManual:
		filter.BudgetID = uuid.NullUUID{UUID: b.ID, Valid: true}
	case budget.TypeCategoryFilter:
		if len(b.CategoryIDs) == 0 {
			return decimal.Zero, nil
		}
		filter.CategoryIDs = b.CategoryIDs
	}
	return s.storage.SumCompleteExpenses(ctx, b.UserID, filter)
}

// Progress returns the budget with its recomputed display numbers.
func (s *Service) Progress(ctx context.Context, userID, id uuid.UUID) (Progress, error) {
	b, err := s.storage.GetBudget(ctx, userID, id)
	if err != nil {
		return Progress{}, err
	}
	return s.progress(ctx, b, time.Now())
}

// ListProgress returns every budget of the user with display numbers.
func (s *Service) ListProgress(ctx context.Context, userID uuid.UUID) ([]Progress, error) {
	bs, err := s.storage.ListBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	progresses := make([]Progress, 0, len(bs))
	for _, b := range bs {
		p, err := s.progress(ctx, b, now)
		if err != nil {
			return nil, err
		}
		progresses = append(progresses, p)
	}
	return progresses, nil
}

func (s *Service) progress(ctx context.Context, b budget.Budget, asOf time.Time) (Progress, error) {
	spent, err := s.CalculateSpent(ctx, b, asOf)
	if err != nil {
		return Progress{}, err
	}
	return NewProgress(b, spent, asOf), nil
}

func validPattern(pattern string) bool {
	switch pattern {
	case budget.PatternOneTime, budget.PatternDaily, budget.PatternWeekly,
		budget.PatternMonthly, budget.PatternYearly:
		return true
	}
	return false
}
