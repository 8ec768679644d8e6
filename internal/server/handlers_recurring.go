package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-app/internal/model/transactions"
)

type templateRequest struct {
	Type               string          `json:"type" binding:"required"`
	LabelID            uuid.UUID       `json:"label_id" binding:"required"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	Currency           string          `json:"currency" binding:"required"`
	Description        string          `json:"description"`
	Pattern            string          `json:"pattern" binding:"required"`
	CustomIntervalDays int             `json:"custom_interval_days"`
	StartDate          string          `json:"start_date" binding:"required"`
	EndDate            string          `json:"end_date"`
	BudgetID           *uuid.UUID      `json:"budget_id"`
}

func (r templateRequest) toNewTemplate() (transactions.NewTemplate, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return transactions.NewTemplate{}, fmt.Errorf("invalid start_date %q, want YYYY-MM-DD", r.StartDate)
	}

	req := transactions.NewTemplate{
		Type:               r.Type,
		LabelID:            r.LabelID,
		Amount:             r.Amount,
		Currency:           r.Currency,
		Description:        r.Description,
		Pattern:            r.Pattern,
		CustomIntervalDays: r.CustomIntervalDays,
		StartDate:          start,
	}
	if r.EndDate != "" {
		end, err := time.Parse(dateLayout, r.EndDate)
		if err != nil {
			return transactions.NewTemplate{}, fmt.Errorf("invalid end_date %q, want YYYY-MM-DD", r.EndDate)
		}
		req.EndDate = &end
	}
	if r.BudgetID != nil {
		req.BudgetID = uuid.NullUUID{UUID: *r.BudgetID, Valid: true}
	}
	return req, nil
}

func (h *handler) createTemplate(c *gin.Context) {
	var body templateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	req, err := body.toNewTemplate()
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	rec, err := h.deps.Transactions.CreateTemplate(c.Request.Context(), currentUser(c), req)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusCreated, newRecurringView(rec))
}

func (h *handler) getTemplate(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	rec, err := h.deps.Transactions.GetTemplate(c.Request.Context(), currentUser(c), id)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newRecurringView(rec))
}

func (h *handler) listTemplates(c *gin.Context) {
	recs, err := h.deps.Transactions.ListTemplates(c.Request.Context(), currentUser(c))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newRecurringViews(recs))
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *handler) setTemplateActive(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	var req setActiveRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	rec, err := h.deps.Transactions.SetTemplateActive(c.Request.Context(), currentUser(c), id, *req.Active)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newRecurringView(rec))
}

func (h *handler) deleteTemplate(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if err = h.deps.Transactions.DeleteTemplate(c.Request.Context(), currentUser(c), id); err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"deleted": id})
}
