package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"max.ks1230/finance-app/internal/clients/cache"
	"max.ks1230/finance-app/internal/model/reports"
)

// getSummary serves the lightweight dashboard header synchronously.
func (h *handler) getSummary(c *gin.Context) {
	summary, err := h.deps.Reports.Summary(c.Request.Context(), currentUser(c))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, summary)
}

// getDashboard serves the cached dashboard report. On a miss a generation
// request is queued and the client is told to come back.
func (h *handler) getDashboard(c *gin.Context) {
	userID := currentUser(c)
	period := c.Query("period")
	if _, err := reports.PeriodStart(period, time.Now()); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	payload, err := h.deps.ReportsCache.GetReport(userID.String(), period)
	if err == nil {
		c.Data(http.StatusOK, "application/json", payload)
		return
	}
	if !errors.Is(err, cache.ErrMiss) {
		fail(c, http.StatusInternalServerError, err)
		return
	}

	if err = h.queueReport(userID, period); err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	ok(c, http.StatusAccepted, gin.H{"status": "pending"})
}

// refreshDashboard drops the cached report and queues regeneration.
func (h *handler) refreshDashboard(c *gin.Context) {
	userID := currentUser(c)
	period := c.Query("period")
	if _, err := reports.PeriodStart(period, time.Now()); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if err := h.deps.ReportsCache.InvalidateReports(userID.String(), []string{period}); err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	if err := h.queueReport(userID, period); err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	ok(c, http.StatusAccepted, gin.H{"status": "pending"})
}

func (h *handler) queueReport(userID uuid.UUID, period string) error {
	payload, err := json.Marshal(reports.Request{UserID: userID, Period: period})
	if err != nil {
		return errors.Wrap(err, "marshal report request")
	}
	return h.deps.Producer.ProduceMessage(userID.String(), payload)
}
