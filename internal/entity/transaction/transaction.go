package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "pending"
	StatusComplete = "complete"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Label is a user-scoped category (expenses) or income source (incomes).
type Label struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Icon         string
	IsPredefined bool
}

// Income is a ledger entry. Amount and Currency hold the value as entered;
// ConvertedAmount and ExchangeRate hold it normalized to the user's primary
// currency. ExchangeRate is zero when no conversion was applied.
type Income struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	SourceID        uuid.UUID
	SourceName      string
	Amount          decimal.Decimal
	Currency        string
	ConvertedAmount decimal.Decimal
	ExchangeRate    decimal.Decimal
	Date            time.Time
	Description     string
	Status          string
	RecurringID     uuid.NullUUID
	CreatedAt       time.Time
}

// Expense mirrors Income with an optional budget link.
type Expense struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	CategoryID      uuid.UUID
	CategoryName    string
	Amount          decimal.Decimal
	Currency        string
	ConvertedAmount decimal.Decimal
	ExchangeRate    decimal.Decimal
	Date            time.Time
	Description     string
	Status          string
	BudgetID        uuid.NullUUID
	RecurringID     uuid.NullUUID
	CreatedAt       time.Time
}
