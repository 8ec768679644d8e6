package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"max.ks1230/finance-app/internal/model/storage"
)

func ok(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": err.Error()})
}

// failFrom maps service errors onto status codes: unknown rows are 404,
// the rest are reported as bad requests.
func failFrom(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		fail(c, http.StatusNotFound, err)
		return
	}
	fail(c, http.StatusBadRequest, err)
}
