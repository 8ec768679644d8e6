package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (h *handler) getProfile(c *gin.Context) {
	userID := currentUser(c)
	ctx := c.Request.Context()

	profile, err := h.deps.Users.GetOrCreate(ctx, userID)
	if err != nil {
		failFrom(c, err)
		return
	}
	primary, err := h.deps.Users.PrimaryCurrency(ctx, userID)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newProfileView(profile, primary))
}

type setCurrencyRequest struct {
	Currency string `json:"currency" binding:"required"`
}

func (h *handler) setPrimaryCurrency(c *gin.Context) {
	var req setCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	profile, err := h.deps.Users.SetPrimaryCurrency(c.Request.Context(), currentUser(c), req.Currency)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newProfileView(profile, req.Currency))
}

func (h *handler) listCurrencies(c *gin.Context) {
	rates, err := h.deps.Rates.ListRates(c.Request.Context())
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newRateViews(rates))
}

func (h *handler) convertAmount(c *gin.Context) {
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil || !amount.IsPositive() {
		fail(c, http.StatusBadRequest, fmt.Errorf("amount must be a positive number"))
		return
	}
	from, to := c.Query("from"), c.Query("to")

	conv, err := h.deps.Rates.Convert(c.Request.Context(), amount, from, to)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	ok(c, http.StatusOK, gin.H{
		"amount":    amount,
		"from":      from,
		"to":        to,
		"converted": conv.Amount,
		"rate":      conv.Rate,
	})
}
