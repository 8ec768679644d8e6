package wallet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet tracks a user's balance in one currency. At most one wallet per
// user carries IsPrimary.
type Wallet struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Currency  string
	Balance   decimal.Decimal
	IsPrimary bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
