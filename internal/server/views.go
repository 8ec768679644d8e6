package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-app/internal/entity/currency"
	"max.ks1230/finance-app/internal/entity/transaction"
	"max.ks1230/finance-app/internal/entity/user"
	"max.ks1230/finance-app/internal/entity/wallet"
	"max.ks1230/finance-app/internal/model/budgets"
	"max.ks1230/finance-app/internal/model/transactions"
)

type profileView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	PrimaryCurrency string    `json:"primary_currency"`
	CreatedAt       time.Time `json:"created_at"`
}

func newProfileView(p user.Profile, primaryCurrency string) profileView {
	return profileView{
		ID:              p.ID,
		UserID:          p.UserID,
		PrimaryCurrency: primaryCurrency,
		CreatedAt:       p.CreatedAt,
	}
}

type walletView struct {
	ID        uuid.UUID       `json:"id"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	IsPrimary bool            `json:"is_primary"`
	CreatedAt time.Time       `json:"created_at"`
}

func newWalletView(w wallet.Wallet) walletView {
	return walletView{
		ID:        w.ID,
		Currency:  w.Currency,
		Balance:   w.Balance,
		IsPrimary: w.IsPrimary,
		CreatedAt: w.CreatedAt,
	}
}

func newWalletViews(ws []wallet.Wallet) []walletView {
	views := make([]walletView, 0, len(ws))
	for _, w := range ws {
		views = append(views, newWalletView(w))
	}
	return views
}

type labelView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Icon         string    `json:"icon,omitempty"`
	IsPredefined bool      `json:"is_predefined"`
}

func newLabelView(l transaction.Label) labelView {
	return labelView{ID: l.ID, Name: l.Name, Icon: l.Icon, IsPredefined: l.IsPredefined}
}

func newLabelViews(ls []transaction.Label) []labelView {
	views := make([]labelView, 0, len(ls))
	for _, l := range ls {
		views = append(views, newLabelView(l))
	}
	return views
}

type transactionView struct {
	ID              uuid.UUID       `json:"id"`
	Type            string          `json:"type"`
	LabelID         uuid.UUID       `json:"label_id"`
	Label           string          `json:"label"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description,omitempty"`
	Status          string          `json:"status"`
	BudgetID        *uuid.UUID      `json:"budget_id,omitempty"`
	RecurringID     *uuid.UUID      `json:"recurring_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func newIncomeView(rec transaction.Income) transactionView {
	return transactionView{
		ID:              rec.ID,
		Type:            transaction.TypeIncome,
		LabelID:         rec.SourceID,
		Label:           rec.SourceName,
		Amount:          rec.Amount,
		Currency:        rec.Currency,
		ConvertedAmount: rec.ConvertedAmount,
		ExchangeRate:    rec.ExchangeRate,
		Date:            rec.Date,
		Description:     rec.Description,
		Status:          rec.Status,
		RecurringID:     nullableID(rec.RecurringID),
		CreatedAt:       rec.CreatedAt,
	}
}

func newExpenseView(rec transaction.Expense) transactionView {
	return transactionView{
		ID:              rec.ID,
		Type:            transaction.TypeExpense,
		LabelID:         rec.CategoryID,
		Label:           rec.CategoryName,
		Amount:          rec.Amount,
		Currency:        rec.Currency,
		ConvertedAmount: rec.ConvertedAmount,
		ExchangeRate:    rec.ExchangeRate,
		Date:            rec.Date,
		Description:     rec.Description,
		Status:          rec.Status,
		BudgetID:        nullableID(rec.BudgetID),
		RecurringID:     nullableID(rec.RecurringID),
		CreatedAt:       rec.CreatedAt,
	}
}

type entryView struct {
	ID              uuid.UUID       `json:"id"`
	Type            string          `json:"type"`
	Label           string          `json:"label"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description,omitempty"`
	Status          string          `json:"status"`
}

func newEntryViews(entries []transactions.Entry) []entryView {
	views := make([]entryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, entryView{
			ID:              e.ID,
			Type:            e.Type,
			Label:           e.Label,
			Amount:          e.Amount,
			Currency:        e.Currency,
			ConvertedAmount: e.ConvertedAmount,
			ExchangeRate:    e.ExchangeRate,
			Date:            e.Date,
			Description:     e.Description,
			Status:          e.Status,
		})
	}
	return views
}

type recurringView struct {
	ID                 uuid.UUID       `json:"id"`
	Type               string          `json:"type"`
	LabelID            uuid.UUID       `json:"label_id"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	Description        string          `json:"description,omitempty"`
	Pattern            string          `json:"pattern"`
	CustomIntervalDays int             `json:"custom_interval_days,omitempty"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            *time.Time      `json:"end_date,omitempty"`
	LastGeneratedDate  *time.Time      `json:"last_generated_date,omitempty"`
	IsActive           bool            `json:"is_active"`
	BudgetID           *uuid.UUID      `json:"budget_id,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

func newRecurringView(rec transaction.Recurring) recurringView {
	return recurringView{
		ID:                 rec.ID,
		Type:               rec.Type,
		LabelID:            rec.LabelID,
		Amount:             rec.Amount,
		Currency:           rec.Currency,
		Description:        rec.Description,
		Pattern:            rec.Pattern,
		CustomIntervalDays: rec.CustomIntervalDays,
		StartDate:          rec.StartDate,
		EndDate:            rec.EndDate,
		LastGeneratedDate:  rec.LastGeneratedDate,
		IsActive:           rec.IsActive,
		BudgetID:           nullableID(rec.BudgetID),
		CreatedAt:          rec.CreatedAt,
	}
}

func newRecurringViews(recs []transaction.Recurring) []recurringView {
	views := make([]recurringView, 0, len(recs))
	for _, rec := range recs {
		views = append(views, newRecurringView(rec))
	}
	return views
}

type budgetView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Pattern     string          `json:"pattern"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	Status      string          `json:"status"`
	CategoryIDs []uuid.UUID     `json:"category_ids,omitempty"`

	Spent               decimal.Decimal `json:"spent"`
	Remaining           decimal.Decimal `json:"remaining"`
	Overspent           bool            `json:"overspent"`
	PercentUsed         decimal.Decimal `json:"percent_used"`
	ActualPercent       decimal.Decimal `json:"actual_percent"`
	WindowStart         time.Time       `json:"window_start"`
	WindowEnd           *time.Time      `json:"window_end,omitempty"`
	DaysRemaining       int             `json:"days_remaining"`
	DailyAllowance      decimal.Decimal `json:"daily_allowance"`
	TimeProgressPercent decimal.Decimal `json:"time_progress_percent"`
}

func newBudgetView(p budgets.Progress) budgetView {
	b := p.Budget
	view := budgetView{
		ID:          b.ID,
		Name:        b.Name,
		Type:        b.Type,
		Amount:      b.Amount,
		Currency:    b.Currency,
		Pattern:     b.Pattern,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Status:      b.Status,
		CategoryIDs: b.CategoryIDs,

		Spent:               p.Spent,
		Remaining:           p.Remaining,
		Overspent:           p.Overspent,
		PercentUsed:         p.PercentUsed,
		ActualPercent:       p.ActualPercent,
		WindowStart:         p.WindowStart,
		DaysRemaining:       p.DaysRemaining,
		DailyAllowance:      p.DailyAllowance,
		TimeProgressPercent: p.TimeProgressPercent,
	}
	if !p.WindowEnd.IsZero() {
		end := p.WindowEnd
		view.WindowEnd = &end
	}
	return view
}

func newBudgetViews(ps []budgets.Progress) []budgetView {
	views := make([]budgetView, 0, len(ps))
	for _, p := range ps {
		views = append(views, newBudgetView(p))
	}
	return views
}

type rateView struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	BaseRate  decimal.Decimal `json:"base_rate"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func newRateViews(rates []currency.Rate) []rateView {
	views := make([]rateView, 0, len(rates))
	for _, r := range rates {
		views = append(views, rateView{
			Code:      r.Code,
			Name:      r.Name,
			BaseRate:  r.BaseRate,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return views
}

func nullableID(id uuid.NullUUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	val := id.UUID
	return &val
}
