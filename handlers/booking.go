package handlers

import (
	"net/http"

	"slotdesk/models"
	"slotdesk/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the availability read path and the booking mutator.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// QueryAvailability handles GET /api/availability?date=...&serviceId=...
func (h *BookingHandler) QueryAvailability(c *gin.Context) {
	date := c.Query("date")
	serviceID := c.Query("serviceId")
	if date == "" || serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validationError", "message": "date and serviceId are required"})
		return
	}

	slots, err := h.Service.QueryAvailability(date, serviceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "serviceId": serviceID, "slots": slots})
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req booking.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validationError", "message": err.Error()})
		return
	}
	// The public form and the admin console share this endpoint; the channel
	// is declared by the caller and defaults to manual.
	b, err := h.Service.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	b, err := h.Service.Cancel(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// RescheduleBooking handles POST /api/bookings/:id/reschedule.
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	var req booking.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validationError", "message": err.Error()})
		return
	}
	req.BookingID = c.Param("id")
	b, err := h.Service.Reschedule(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// CompleteBooking handles POST /api/bookings/:id/complete.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	b, err := h.Service.Complete(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// DeleteBooking handles DELETE /api/bookings/:id (admin).
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	b, err := h.Service.AdminDelete(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// ListBookings handles GET /api/bookings?date=... (admin day view).
func (h *BookingHandler) ListBookings(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validationError", "message": "date is required"})
		return
	}
	bookings, err := h.Service.ListByDate(date)
	if err != nil {
		respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "bookings": bookings})
}
