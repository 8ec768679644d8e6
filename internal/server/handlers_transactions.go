package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-app/internal/entity/transaction"
	"max.ks1230/finance-app/internal/model/transactions"
)

const dateLayout = "2006-01-02"

type transactionRequest struct {
	LabelID     uuid.UUID       `json:"label_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"required"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	BudgetID    *uuid.UUID      `json:"budget_id"`
}

func (r transactionRequest) toNewTransaction() (transactions.NewTransaction, error) {
	req := transactions.NewTransaction{
		LabelID:     r.LabelID,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Description: r.Description,
		Status:      r.Status,
	}
	if req.Status == "" {
		req.Status = transaction.StatusPending
	}
	if r.Date != "" {
		date, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return transactions.NewTransaction{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", r.Date)
		}
		req.Date = date
	}
	if r.BudgetID != nil {
		req.BudgetID = uuid.NullUUID{UUID: *r.BudgetID, Valid: true}
	}
	return req, nil
}

func (h *handler) createIncome(c *gin.Context) {
	var body transactionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	req, err := body.toNewTransaction()
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	rec, err := h.deps.Transactions.AddIncome(c.Request.Context(), currentUser(c), req)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusCreated, newIncomeView(rec))
}

func (h *handler) createExpense(c *gin.Context) {
	var body transactionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	req, err := body.toNewTransaction()
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	rec, err := h.deps.Transactions.AddExpense(c.Request.Context(), currentUser(c), req)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusCreated, newExpenseView(rec))
}

func (h *handler) getIncome(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	rec, err := h.deps.Transactions.GetIncome(c.Request.Context(), currentUser(c), id)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newIncomeView(rec))
}

func (h *handler) getExpense(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	rec, err := h.deps.Transactions.GetExpense(c.Request.Context(), currentUser(c), id)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newExpenseView(rec))
}

func (h *handler) updateIncome(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	var body transactionRequest
	if err = c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	req, err := body.toNewTransaction()
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	rec, err := h.deps.Transactions.UpdateIncome(c.Request.Context(), currentUser(c), id, req)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newIncomeView(rec))
}

func (h *handler) updateExpense(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	var body transactionRequest
	if err = c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	req, err := body.toNewTransaction()
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	rec, err := h.deps.Transactions.UpdateExpense(c.Request.Context(), currentUser(c), id, req)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newExpenseView(rec))
}

func (h *handler) completeIncome(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	rec, err := h.deps.Transactions.CompleteIncome(c.Request.Context(), currentUser(c), id)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newIncomeView(rec))
}

func (h *handler) completeExpense(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	rec, err := h.deps.Transactions.CompleteExpense(c.Request.Context(), currentUser(c), id)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newExpenseView(rec))
}

func (h *handler) deleteIncome(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if err = h.deps.Transactions.DeleteIncome(c.Request.Context(), currentUser(c), id); err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *handler) deleteExpense(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if err = h.deps.Transactions.DeleteExpense(c.Request.Context(), currentUser(c), id); err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *handler) listTransactions(c *gin.Context) {
	filter := transactions.ListFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Search: c.Query("search"),
		Limit:  intQuery(c, "limit"),
		Offset: intQuery(c, "offset"),
	}
	if raw := c.Query("label_id"); raw != "" {
		labelID, err := uuid.Parse(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, fmt.Errorf("invalid label_id %q", raw))
			return
		}
		filter.LabelID = labelID
	}

	entries, err := h.deps.Transactions.List(c.Request.Context(), currentUser(c), filter)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newEntryViews(entries))
}

func intQuery(c *gin.Context, name string) int {
	val, err := strconv.Atoi(c.Query(name))
	if err != nil || val < 0 {
		return 0
	}
	return val
}
