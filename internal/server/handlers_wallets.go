package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-app/internal/model/wallets"
)

func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return id, nil
}

type createWalletRequest struct {
	Currency  string          `json:"currency" binding:"required"`
	Balance   decimal.Decimal `json:"balance"`
	IsPrimary bool            `json:"is_primary"`
}

func (h *handler) createWallet(c *gin.Context) {
	var req createWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	w, err := h.deps.Wallets.Create(c.Request.Context(), currentUser(c), wallets.NewWallet{
		Currency:  req.Currency,
		Balance:   req.Balance,
		IsPrimary: req.IsPrimary,
	})
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusCreated, newWalletView(w))
}

func (h *handler) getWallet(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	w, err := h.deps.Wallets.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newWalletView(w))
}

func (h *handler) listWallets(c *gin.Context) {
	ws, err := h.deps.Wallets.List(c.Request.Context(), currentUser(c))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newWalletViews(ws))
}

func (h *handler) setPrimaryWallet(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	w, err := h.deps.Wallets.SetPrimary(c.Request.Context(), currentUser(c), id)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newWalletView(w))
}

func (h *handler) deleteWallet(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if err = h.deps.Wallets.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"deleted": id})
}
