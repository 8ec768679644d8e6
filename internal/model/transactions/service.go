package transactions

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/finance-app/internal/entity/currency"
	"max.ks1230/finance-app/internal/entity/transaction"
	"max.ks1230/finance-app/internal/logger"
	"max.ks1230/finance-app/internal/model/storage"
)

type transactionsStorage interface {
	CreateIncome(ctx context.Context, rec transaction.Income) error
	CreateExpense(ctx context.Context, rec transaction.Expense) error
	GetIncome(ctx context.Context, userID, id uuid.UUID) (transaction.Income, error)
	GetExpense(ctx context.Context, userID, id uuid.UUID) (transaction.Expense, error)
	ListIncomes(ctx context.Context, userID uuid.UUID, f storage.TransactionFilter) ([]transaction.Income, error)
	ListExpenses(ctx context.Context, userID uuid.UUID, f storage.TransactionFilter) ([]transaction.Expense, error)
	UpdateIncome(ctx context.Context, rec transaction.Income) error
	UpdateExpense(ctx context.Context, rec transaction.Expense) error
	DeleteIncome(ctx context.Context, userID, id uuid.UUID) error
	DeleteExpense(ctx context.Context, userID, id uuid.UUID) error
	CompleteIncome(ctx context.Context, userID, id uuid.UUID) error
	CompleteExpense(ctx context.Context, userID, id uuid.UUID) error

	CreateCategory(ctx context.Context, l transaction.Label) error
	GetCategory(ctx context.Context, userID, id uuid.UUID) (transaction.Label, error)
	ListCategories(ctx context.Context, userID uuid.UUID) ([]transaction.Label, error)
	DeleteCategory(ctx context.Context, userID, id uuid.UUID) error
	CreateIncomeSource(ctx context.Context, l transaction.Label) error
	GetIncomeSource(ctx context.Context, userID, id uuid.UUID) (transaction.Label, error)
	ListIncomeSources(ctx context.Context, userID uuid.UUID) ([]transaction.Label, error)
	DeleteIncomeSource(ctx context.Context, userID, id uuid.UUID) error

	CreateRecurring(ctx context.Context, rec transaction.Recurring) error
	GetRecurring(ctx context.Context, userID, id uuid.UUID) (transaction.Recurring, error)
	ListRecurring(ctx context.Context, userID uuid.UUID) ([]transaction.Recurring, error)
	SetRecurringActive(ctx context.Context, userID, id uuid.UUID, active bool) error
	DeleteRecurring(ctx context.Context, userID, id uuid.UUID) error
}

type converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (currency.Conversion, error)
}

type userProfiles interface {
	PrimaryCurrency(ctx context.Context, userID uuid.UUID) (string, error)
}

// Service records incomes and expenses. Amounts are normalized into the
// user's primary currency at creation time; the rate they were converted
// at is stored alongside so history survives later rate changes.
type Service struct {
	storage   transactionsStorage
	converter converter
	profiles  userProfiles
}

func NewService(storage transactionsStorage, converter converter, profiles userProfiles) *Service {
	return &Service{
		storage:   storage,
		converter: converter,
		profiles:  profiles,
	}
}

// NewTransaction carries user-supplied fields shared by incomes and
// expenses. LabelID is the income source or the expense category.
type NewTransaction struct {
	LabelID     uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	Date        time.Time
	Description string
	Status      string
	BudgetID    uuid.NullUUID // expenses only
}

func (s *Service) validate(req NewTransaction) error {
	if !req.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	if !currency.IsSupported(req.Currency) {
		return fmt.Errorf("unknown currency %s", req.Currency)
	}
	if req.Status != transaction.StatusPending && req.Status != transaction.StatusComplete {
		return fmt.Errorf("unknown status %s", req.Status)
	}
	return nil
}

// normalize converts the amount into the user's primary currency. When no
// rate can be resolved the original amount is kept with a zero rate so the
// record is never lost to a rates outage.
func (s *Service) normalize(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, from string) (currency.Conversion, error) {
	primary, err := s.profiles.PrimaryCurrency(ctx, userID)
	if err != nil {
		return currency.Conversion{}, err
	}

	conv, err := s.converter.Convert(ctx, amount, from, primary)
	if err != nil {
		logger.Warn("cannot convert amount, keeping it as entered",
			zap.Error(err), zap.String("from", from), zap.String("to", primary))
		return currency.Conversion{Amount: amount.Round(2), Rate: decimal.Zero}, nil
	}
	return conv, nil
}

func (s *Service) AddIncome(ctx context.Context, userID uuid.UUID, req NewTransaction) (transaction.Income, error) {
	if err := s.validate(req); err != nil {
		return transaction.Income{}, err
	}
	if _, err := s.storage.GetIncomeSource(ctx, userID, req.LabelID); err != nil {
		return transaction.Income{}, err
	}

	conv, err := s.normalize(ctx, userID, req.Amount, req.Currency)
	if err != nil {
		return transaction.Income{}, err
	}

	rec := transaction.Income{
		ID:              uuid.New(),
		UserID:          userID,
		SourceID:        req.LabelID,
		Amount:          req.Amount,
		Currency:        req.Currency,
		ConvertedAmount: conv.Amount,
		ExchangeRate:    conv.Rate,
		Date:            dateOrNow(req.Date),
		Description:     req.Description,
		Status:          transaction.StatusPending,
	}
	if err = s.storage.CreateIncome(ctx, rec); err != nil {
		return transaction.Income{}, err
	}
	if req.Status == transaction.StatusComplete {
		if err = s.storage.CompleteIncome(ctx, userID, rec.ID); err != nil {
			return transaction.Income{}, err
		}
	}
	return s.storage.GetIncome(ctx, userID, rec.ID)
}

func (s *Service) AddExpense(ctx context.Context, userID uuid.UUID, req NewTransaction) (transaction.Expense, error) {
	if err := s.validate(req); err != nil {
		return transaction.Expense{}, err
	}
	if _, err := s.storage.GetCategory(ctx, userID, req.LabelID); err != nil {
		return transaction.Expense{}, err
	}

	conv, err := s.normalize(ctx, userID, req.Amount, req.Currency)
	if err != nil {
		return transaction.Expense{}, err
	}

	rec := transaction.Expense{
		ID:              uuid.New(),
		UserID:          userID,
		CategoryID:      req.LabelID,
		Amount:          req.Amount,
		Currency:        req.Currency,
		ConvertedAmount: conv.Amount,
		ExchangeRate:    conv.Rate,
		Date:            dateOrNow(req.Date),
		Description:     req.Description,
		Status:          transaction.StatusPending,
		BudgetID:        req.BudgetID,
	}
	if err = s.storage.CreateExpense(ctx, rec); err != nil {
		return transaction.Expense{}, err
	}
	if req.Status == transaction.StatusComplete {
		if err = s.storage.CompleteExpense(ctx, userID, rec.ID); err != nil {
			return transaction.Expense{}, err
		}
	}
	return s.storage.GetExpense(ctx, userID, rec.ID)
}

func (s *Service) GetIncome(ctx context.Context, userID, id uuid.UUID) (transaction.Income, error) {
	return s.storage.GetIncome(ctx, userID, id)
}

func (s *Service) GetExpense(ctx context.Context, userID, id uuid.UUID) (transaction.Expense, error) {
	return s.storage.GetExpense(ctx, userID, id)
}

// UpdateIncome replaces the editable fields and re-normalizes the amount at
// the current rate. The wallet effect of an already complete income is not
// retroactively adjusted.
func (s *Service) UpdateIncome(ctx context.Context, userID, id uuid.UUID, req NewTransaction) (transaction.Income, error) {
	if err := s.validate(req); err != nil {
		return transaction.Income{}, err
	}
	if _, err := s.storage.GetIncomeSource(ctx, userID, req.LabelID); err != nil {
		return transaction.Income{}, err
	}

	rec, err := s.storage.GetIncome(ctx, userID, id)
	if err != nil {
		return transaction.Income{}, err
	}

	conv, err := s.normalize(ctx, userID, req.Amount, req.Currency)
	if err != nil {
		return transaction.Income{}, err
	}

	rec.SourceID = req.LabelID
	rec.Amount = req.Amount
	rec.Currency = req.Currency
	rec.ConvertedAmount = conv.Amount
	rec.ExchangeRate = conv.Rate
	rec.Date = dateOrNow(req.Date)
	rec.Description = req.Description
	if err = s.storage.UpdateIncome(ctx, rec); err != nil {
		return transaction.Income{}, err
	}
	return s.storage.GetIncome(ctx, userID, id)
}

func (s *Service) UpdateExpense(ctx context.Context, userID, id uuid.UUID, req NewTransaction) (transaction.Expense, error) {
	if err := s.validate(req); err != nil {
		return transaction.Expense{}, err
	}
	if _, err := s.storage.GetCategory(ctx, userID, req.LabelID); err != nil {
		return transaction.Expense{}, err
	}

	rec, err := s.storage.GetExpense(ctx, userID, id)
	if err != nil {
		return transaction.Expense{}, err
	}

	conv, err := s.normalize(ctx, userID, req.Amount, req.Currency)
	if err != nil {
		return transaction.Expense{}, err
	}

	rec.CategoryID = req.LabelID
	rec.Amount = req.Amount
	rec.Currency = req.Currency
	rec.ConvertedAmount = conv.Amount
	rec.ExchangeRate = conv.Rate
	rec.Date = dateOrNow(req.Date)
	rec.Description = req.Description
	rec.BudgetID = req.BudgetID
	if err = s.storage.UpdateExpense(ctx, rec); err != nil {
		return transaction.Expense{}, err
	}
	return s.storage.GetExpense(ctx, userID, id)
}

// CompleteIncome settles a pending income, crediting the primary wallet.
func (s *Service) CompleteIncome(ctx context.Context, userID, id uuid.UUID) (transaction.Income, error) {
	if err := s.storage.CompleteIncome(ctx, userID, id); err != nil {
		return transaction.Income{}, err
	}
	return s.storage.GetIncome(ctx, userID, id)
}

// CompleteExpense settles a pending expense, debiting the primary wallet.
func (s *Service) CompleteExpense(ctx context.Context, userID, id uuid.UUID) (transaction.Expense, error) {
	if err := s.storage.CompleteExpense(ctx, userID, id); err != nil {
		return transaction.Expense{}, err
	}
	return s.storage.GetExpense(ctx, userID, id)
}

func (s *Service) DeleteIncome(ctx context.Context, userID, id uuid.UUID) error {
	return s.storage.DeleteIncome(ctx, userID, id)
}

func (s *Service) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	return s.storage.DeleteExpense(ctx, userID, id)
}

func dateOrNow(d time.Time) time.Time {
	if d.IsZero() {
		return time.Now()
	}
	return d
}

// Entry is one row of the combined income/expense listing.
type Entry struct {
	ID              uuid.UUID
	Type            string
	Label           string
	Amount          decimal.Decimal
	Currency        string
	ConvertedAmount decimal.Decimal
	ExchangeRate    decimal.Decimal
	Date            time.Time
	Description     string
	Status          string
	CreatedAt       time.Time
}

// ListFilter narrows and pages the combined listing.
type ListFilter struct {
	Type    string // income, expense or empty for both
	Status  string
	LabelID uuid.UUID
	Search  string
	Limit   int
	Offset  int
}

// List merges incomes and expenses into one ledger view, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, f ListFilter) ([]Entry, error) {
	storageFilter := storage.TransactionFilter{
		Status:  f.Status,
		LabelID: f.LabelID,
		Search:  f.Search,
	}

	var entries []Entry
	if f.Type == "" || f.Type == transaction.TypeIncome {
		incomes, err := s.storage.ListIncomes(ctx, userID, storageFilter)
		if err != nil {
			return nil, err
		}
		for _, rec := range incomes {
			entries = append(entries, incomeEntry(rec))
		}
	}
	if f.Type == "" || f.Type == transaction.TypeExpense {
		expenses, err := s.storage.ListExpenses(ctx, userID, storageFilter)
		if err != nil {
			return nil, err
		}
		for _, rec := range expenses {
			entries = append(entries, expenseEntry(rec))
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return page(entries, f.Offset, f.Limit), nil
}

func page(entries []Entry, offset, limit int) []Entry {
	if offset >= len(entries) {
		return []Entry{}
	}
	entries = entries[offset:]
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}

func incomeEntry(rec transaction.Income) Entry {
	return Entry{
		ID:              rec.ID,
		Type:            transaction.TypeIncome,
		Label:           rec.SourceName,
		Amount:          rec.Amount,
		Currency:        rec.Currency,
		ConvertedAmount: rec.ConvertedAmount,
		ExchangeRate:    rec.ExchangeRate,
		Date:            rec.Date,
		Description:     rec.Description,
		Status:          rec.Status,
		CreatedAt:       rec.CreatedAt,
	}
}

func expenseEntry(rec transaction.Expense) Entry {
	return Entry{
		ID:              rec.ID,
		Type:            transaction.TypeExpense,
		Label:           rec.CategoryName,
		Amount:          rec.Amount,
		Currency:        rec.Currency,
		ConvertedAmount: rec.ConvertedAmount,
		ExchangeRate:    rec.ExchangeRate,
		Date:            rec.Date,
		Description:     rec.Description,
		Status:          rec.Status,
		CreatedAt:       rec.CreatedAt,
	}
}
