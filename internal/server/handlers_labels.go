package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createLabelRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

func (h *handler) createCategory(c *gin.Context) {
	var req createLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	l, err := h.deps.Transactions.CreateCategory(c.Request.Context(), currentUser(c), req.Name, req.Icon)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusCreated, newLabelView(l))
}

func (h *handler) listCategories(c *gin.Context) {
	ls, err := h.deps.Transactions.ListCategories(c.Request.Context(), currentUser(c))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newLabelViews(ls))
}

func (h *handler) deleteCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if err = h.deps.Transactions.DeleteCategory(c.Request.Context(), currentUser(c), id); err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *handler) createSource(c *gin.Context) {
	var req createLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	l, err := h.deps.Transactions.CreateIncomeSource(c.Request.Context(), currentUser(c), req.Name, req.Icon)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusCreated, newLabelView(l))
}

func (h *handler) listSources(c *gin.Context) {
	ls, err := h.deps.Transactions.ListIncomeSources(c.Request.Context(), currentUser(c))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, newLabelViews(ls))
}

func (h *handler) deleteSource(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if err = h.deps.Transactions.DeleteIncomeSource(c.Request.Context(), currentUser(c), id); err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"deleted": id})
}
