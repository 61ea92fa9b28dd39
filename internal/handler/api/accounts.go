package api

import (
	"net/http"

	resdto "meetingsync/internal/handler/dto/response"
	"meetingsync/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	capacity usecase.CapacityService
}

func NewAccountHandler(capacity usecase.CapacityService) *AccountHandler {
	return &AccountHandler{capacity: capacity}
}

// GetLoadBalancing snapshots per-account load for the requested range,
// ascending by utilization, for admin capacity dashboards.
func (h *AccountHandler) GetLoadBalancing(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}

	loads, err := h.capacity.GetAccountLoadBalancing(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AccountLoadResponse{Accounts: loads})
}

func (h *AccountHandler) CheckCapacity(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}
	excludeID, ok := parseExcludeMeetingID(c)
	if !ok {
		return
	}

	result, err := h.capacity.CheckConcurrentMeetingCapacity(c.Request.Context(), rng, excludeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCapacityResult(result))
}
