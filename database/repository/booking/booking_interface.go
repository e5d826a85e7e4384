package bookingRepo

import (
	"errors"

	"slotdesk/models"
)

// ErrDuplicateSlot is returned by Create/Update when the unique index on
// (date, time, professional) rejects a second Confirmed booking for the same
// slot. It is the storage-level backstop behind the commit-time conflict
// check.
var ErrDuplicateSlot = errors.New("slot already taken by a confirmed booking")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetByDate retrieves all bookings for a date, any status.
	GetByDate(date string) ([]models.Booking, error)
	// GetActiveByDate retrieves bookings that occupy grid cells on a date
	// (status not Cancelled or Deleted).
	GetActiveByDate(date string) ([]models.Booking, error)
	// GetActiveByPhone retrieves a client's upcoming non-cancelled bookings.
	GetActiveByPhone(phone string) ([]models.Booking, error)
	// Create inserts a new booking. Returns ErrDuplicateSlot if a confirmed
	// booking already holds the same (date, time, professional).
	Create(b *models.Booking) error
	// Update rewrites an existing booking in place (same ID). Returns
	// ErrDuplicateSlot on a slot collision.
	Update(b *models.Booking) error
	// SetStatus flips the status of a booking.
	SetStatus(id, status string) error
}
