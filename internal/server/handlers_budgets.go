package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-app/internal/model/budgets"
)

type budgetRequest struct {
	Name        string          `json:"name" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency"`
	Pattern     string          `json:"pattern" binding:"required"`
	StartDate   string          `json:"start_date" binding:"required"`
	EndDate     string          `json:"end_date"`
	CategoryIDs []uuid.UUID     `json:"category_ids"`
}

func (r budgetRequest) toNewBudget() (budgets.NewBudget, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return budgets.NewBudget{}, fmt.Errorf("invalid start_date %q, want YYYY-MM-DD", r.StartDate)
	}

	req := budgets.NewBudget{
		Name:        r.Name,
		Type:        r.Type,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Pattern:     r.Pattern,
		StartDate:   start,
		CategoryIDs: r.CategoryIDs,
	}
	if r.EndDate != "" {
		end, err := time.Parse(dateLayout, r.EndDate)
		if err != nil {
			return budgets.NewBudget{}, fmt.Errorf("invalid end_date %q, want YYYY-MM-DD", r.EndDate)
		}
		req.EndDate = &end
	}
	return req, nil
}

func (h *handler) createBudget(c *gin.Context) {
	var body budgetRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	req, err := body.toNewBudget()
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	b, err := h.deps.Budgets.Create(c.Request.Context(), currentUser(c), req)
	if err != nil {
		failFrom(c, err)
		return
	}
	progress, err := h.deps.Budgets.Progress(c.Request.Context(), currentUser(c), b.ID)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusCreated, newBudgetView(progress))
}

func (h *handler) getBudget(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	progress, err := h.deps.Budgets.Progress(c.Request.Context(), currentUser(c), id)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newBudgetView(progress))
}

func (h *handler) listBudgets(c *gin.Context) {
	progresses, err := h.deps.Budgets.ListProgress(c.Request.Context(), currentUser(c))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newBudgetViews(progresses))
}

func (h *handler) updateBudget(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	var body budgetRequest
	if err = c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	req, err := body.toNewBudget()
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if _, err = h.deps.Budgets.Update(c.Request.Context(), currentUser(c), id, req); err != nil {
		failFrom(c, err)
		return
	}
	progress, err := h.deps.Budgets.Progress(c.Request.Context(), currentUser(c), id)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newBudgetView(progress))
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *handler) setBudgetStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	var req setStatusRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if _, err = h.deps.Budgets.SetStatus(c.Request.Context(), currentUser(c), id, req.Status); err != nil {
		failFrom(c, err)
		return
	}
	progress, err := h.deps.Budgets.Progress(c.Request.Context(), currentUser(c), id)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newBudgetView(progress))
}

func (h *handler) deleteBudget(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if err = h.deps.Budgets.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"deleted": id})
}
