package api

import (
	"net/http"

	reqdto "meetingsync/internal/handler/dto/request"
	resdto "meetingsync/internal/handler/dto/response"
	"meetingsync/internal/handler/httperr"
	"meetingsync/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ValidationHandler struct {
	validator usecase.MeetingValidator
}

func NewValidationHandler(validator usecase.MeetingValidator) *ValidationHandler {
	return &ValidationHandler{validator: validator}
}

// ValidateMeeting runs one full conflict-detection pass over a proposed
// meeting. A response with conflicts is still HTTP 200: detecting conflicts
// is the endpoint working, not failing.
func (h *ValidationHandler) ValidateMeeting(c *gin.Context) {
	var req reqdto.ValidateMeetingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	draft, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.validator.ValidateMeeting(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromConflictResult(result))
}
