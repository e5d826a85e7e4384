package handlers

import (
	"net/http"

	"slotdesk/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OverrideHandler exposes the staff day-override endpoints.
type OverrideHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewOverrideHandler constructs an OverrideHandler.
func NewOverrideHandler(svc booking.BookingService, logger *zap.Logger) *OverrideHandler {
	return &OverrideHandler{Service: svc, Logger: logger}
}

// SetOverride handles PUT /api/overrides/:date.
func (h *OverrideHandler) SetOverride(c *gin.Context) {
	var patch booking.OverridePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validationError", "message": err.Error()})
		return
	}
	patch.Date = c.Param("date")

	ov, warnings, err := h.Service.SetDayOverride(patch)
	if err != nil {
		respondError(c, err)
		return
	}
	body := gin.H{"override": ov}
	if len(warnings) > 0 {
		body["warnings"] = warnings
	}
	c.JSON(http.StatusOK, body)
}

// GetOverride handles GET /api/overrides/:date.
func (h *OverrideHandler) GetOverride(c *gin.Context) {
	ov, err := h.Service.GetDayOverride(c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	if ov == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notFound", "message": "no override for this date"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"override": ov})
}
