package api

import (
	"context"
	"net/http"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/utils"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// presentError translates the sentinel errors of the models package into
// HTTP statuses. It reports true when an error was written so handlers can
// bail out.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
	return true
}
