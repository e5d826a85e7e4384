package handlers

import (
	"errors"
	"net/http"

	"slotdesk/services/booking"
	"slotdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps booking error codes to HTTP statuses. Everything in the
// taxonomy is user-recoverable; unknown errors are infrastructure failures.
func statusFor(code string) int {
	switch code {
	case booking.CodeServiceNotFound:
		return http.StatusNotFound
	case booking.CodeSlotConflict, booking.CodeStaleAvailability:
		return http.StatusConflict
	case booking.CodeDayClosed, booking.CodeHolidayBlocked, booking.CodeOutOfBusinessHours:
		return http.StatusUnprocessableEntity
	case booking.CodeValidationError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a booking error with its suggestions when present, and
// hides infrastructure failures behind a generic message.
func respondError(c *gin.Context, err error) {
	var be *booking.Error
	if errors.As(err, &be) {
		body := gin.H{"error": be.Code, "message": be.Message}
		if len(be.Suggestions) > 0 {
			body["suggestions"] = be.Suggestions
		}
		c.JSON(statusFor(be.Code), body)
		return
	}
	utils.GetLogger().Error("request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "internal",
		"message": "Something went wrong on our side. Please try again later.",
	})
}
