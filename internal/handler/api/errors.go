package api

import (
	"errors"
	"net/http"

	"meetingsync/internal/handler/httperr"
	"meetingsync/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError maps engine errors onto HTTP statuses. Recoverable resource
// failures become 503 so callers know a retry can help.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrResourceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	case errors.Is(err, errs.ErrInvalidTimeRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time range", nil)
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	case errors.Is(err, errs.ErrProviderUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Video provider unavailable", nil)
	default:
		if cde, ok := errs.AsConflictDetectionError(err); ok {
			switch cde.Type {
			case errs.ConflictErrorValidation:
				httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
				return
			case errs.ConflictErrorResource:
				httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Scheduling data temporarily unavailable", nil)
				return
			case errs.ConflictErrorNetwork:
				httperr.AbortWithError(c, http.StatusBadGateway, err, "Video provider unavailable", nil)
				return
			}
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
