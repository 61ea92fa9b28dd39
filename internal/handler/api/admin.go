package api

import (
	"net/http"

	"meetingsync/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the operational hooks of the account-directory cache.
type AdminHandler struct {
	capacity usecase.CapacityService
}

func NewAdminHandler(capacity usecase.CapacityService) *AdminHandler {
	return &AdminHandler{capacity: capacity}
}

func (h *AdminHandler) ClearCache(c *gin.Context) {
	h.capacity.ClearCache()
	c.JSON(http.StatusOK, gin.H{"status": "cache cleared"})
}

func (h *AdminHandler) GetCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.capacity.CacheStats())
}
