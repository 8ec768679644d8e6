package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeManual         = "manual"
	TypeCategoryFilter = "category_filter"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

const (
	PatternOneTime = "one_time"
	PatternDaily   = "daily"
	PatternWeekly  = "weekly"
	PatternMonthly = "monthly"
	PatternYearly  = "yearly"
)

// Budget is a spending limit over a date range. Manual budgets count only
// expenses explicitly linked to them; category_filter budgets count any
// complete expense whose category is in CategoryIDs.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Type        string
	Amount      decimal.Decimal
	Currency    string
	Pattern     string
	StartDate   time.Time
	EndDate     *time.Time
	Status      string
	CategoryIDs []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (b *Budget) IsActive() bool {
	return b.Status == StatusActive
}

// Remaining returns the unclamped leftover for a given spent total.
func (b *Budget) Remaining(spent decimal.Decimal) decimal.Decimal {
	return b.Amount.Sub(spent)
}

// PercentUsed returns spent as a percentage of the limit, zero for a zero
// limit.
func (b *Budget) PercentUsed(spent decimal.Decimal) decimal.Decimal {
	if b.Amount.IsZero() {
		return decimal.Zero
	}
	return spent.Div(b.Amount).Mul(decimal.NewFromInt(100))
}
