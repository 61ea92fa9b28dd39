package api

import (
	"net/http"

	reqdto "meetingsync/internal/handler/dto/request"
	resdto "meetingsync/internal/handler/dto/response"
	"meetingsync/internal/handler/httperr"
	"meetingsync/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	booking usecase.BookingService
}

func NewBookingHandler(booking usecase.BookingService) *BookingHandler {
	return &BookingHandler{booking: booking}
}

// BookMeeting validates and commits a meeting in one call. When validation
// blocks submission the conflict report comes back with 409 and no hosted
// session is created.
func (h *BookingHandler) BookMeeting(c *gin.Context) {
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

	result, err := h.booking.BookMeeting(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if !result.Validation.CanSubmit {
		status = http.StatusConflict
	}
	c.JSON(status, resdto.FromBookingResult(result))
}

func (h *BookingHandler) RescheduleSession(c *gin.Context) {
	var req reqdto.RescheduleSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	rng, err := req.ToRange()
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.booking.RescheduleSession(c.Request.Context(), req.AccountRef, c.Param("id"), rng); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) CancelSession(c *gin.Context) {
	accountRef := c.Query("accountRef")
	if err := h.booking.CancelSession(c.Request.Context(), accountRef, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
