package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"meetingsync/internal/domain/schedule"
	resdto "meetingsync/internal/handler/dto/response"
	"meetingsync/internal/handler/httperr"
	"meetingsync/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	availability usecase.AvailabilityService
}

func NewRoomHandler(availability usecase.AvailabilityService) *RoomHandler {
	return &RoomHandler{availability: availability}
}

func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}
	rng, ok := parseRange(c)
	if !ok {
		return
	}
	excludeID, ok := parseExcludeMeetingID(c)
	if !ok {
		return
	}

	avail, err := h.availability.CheckRoomAvailability(c.Request.Context(), roomID, rng, excludeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomAvailability(avail))
}

func (h *RoomHandler) FindAvailable(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}

	rooms, err := h.availability.FindAvailableRooms(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRooms(rooms))
}

func (h *RoomHandler) FindOptimal(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}
	participants := 0
	if raw := c.Query("participants"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidQuery(err), "Invalid participants count", nil)
			return
		}
		participants = n
	}

	rooms, err := h.availability.FindOptimalRooms(c.Request.Context(), rng, participants, c.Query("location"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRooms(rooms))
}

func (h *RoomHandler) GetUtilization(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}
	start, end, ok := parseTimes(c)
	if !ok {
		return
	}

	utilization, err := h.availability.GetRoomUtilization(c.Request.Context(), roomID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utilization)
}

// parseTimes reads the start/end query parameters as RFC3339.
func parseTimes(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start parameter, want RFC3339", nil)
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid end parameter, want RFC3339", nil)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func parseRange(c *gin.Context) (schedule.TimeRange, bool) {
	start, end, ok := parseTimes(c)
	if !ok {
		return schedule.TimeRange{}, false
	}
	rng, err := schedule.NewTimeRange(start, end)
	if err != nil {
		respondError(c, err)
		return schedule.TimeRange{}, false
	}
	return rng, true
}

func parseExcludeMeetingID(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("excludeMeetingId")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid excludeMeetingId format", nil)
		return nil, false
	}
	return &id, true
}

func errInvalidQuery(err error) error {
	if err != nil {
		return err
	}
	return errNegativeCount
}

var errNegativeCount = errors.New("participants count cannot be negative")
