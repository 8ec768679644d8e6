package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PatternDaily   = "daily"
	PatternWeekly  = "weekly"
	PatternMonthly = "monthly"
	PatternYearly  = "yearly"
	PatternCustom  = "custom"
)

var RecurrencePatterns = []string{
	PatternDaily, PatternWeekly, PatternMonthly, PatternYearly, PatternCustom,
}

// Recurring is a template that periodically materializes Income or Expense
// rows. It is not a ledger entry itself.
type Recurring struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Type               string
	LabelID            uuid.UUID // income source or expense category
	Amount             decimal.Decimal
	Currency           string
	Description        string
	Pattern            string
	CustomIntervalDays int
	StartDate          time.Time
	EndDate            *time.Time
	LastGeneratedDate  *time.Time
	IsActive           bool
	BudgetID           uuid.NullUUID
	CreatedAt          time.Time
}
