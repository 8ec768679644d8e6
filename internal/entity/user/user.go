package user

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds per-user settings. The user itself is an external identity;
// only its UUID is known here.
type Profile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	primaryCurrency string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (p *Profile) PrimaryCurrency(def string) string {
	if p.primaryCurrency != "" {
		return p.primaryCurrency
	}
	return def
}

func (p *Profile) SetPrimaryCurrency(curr string) {
	p.primaryCurrency = curr
}
