package booking

import (
	"slotdesk/database/repository/booking"
	"slotdesk/database/repository/client"
	"slotdesk/database/repository/override"
	"slotdesk/database/repository/service"
	"slotdesk/models"
	"slotdesk/services/schedule"
)

// CreateRequest carries everything needed to create a booking, regardless of
// the entry channel.
type CreateRequest struct {
	Date            string  `json:"date" binding:"required"`
	Time            string  `json:"time" binding:"required"`
	ServiceID       string  `json:"serviceId" binding:"required"`
	ClientName      string  `json:"clientName" binding:"required"`
	ClientPhone     string  `json:"clientPhone" binding:"required"`
	ClientBirthdate string  `json:"clientBirthdate,omitempty"`
	ProfessionalID  string  `json:"professionalId,omitempty"`
	Origin          string  `json:"origin,omitempty"`
	DiscountPct     float64 `json:"discountPct,omitempty"`
	DiscountNote    string  `json:"discountNote,omitempty"`
}

// RescheduleRequest moves an existing booking; empty fields keep their
// current value.
type RescheduleRequest struct {
	BookingID string `json:"-"`
	NewDate   string `json:"newDate,omitempty"`
	NewTime   string `json:"newTime,omitempty"`
	ServiceID string `json:"serviceId,omitempty"`
}

// OverridePatch is the staff request to adjust one date's availability.
type OverridePatch struct {
	Date          string   `json:"-"`
	Closed        *bool    `json:"closed,omitempty"`
	AddBlocked    []string `json:"addBlocked,omitempty"`
	RemoveBlocked []string `json:"removeBlocked,omitempty"`
	AddExtra      []string `json:"addExtra,omitempty"`
	RemoveExtra   []string `json:"removeExtra,omitempty"`
}

// BookingService is the channel-agnostic operation contract shared by the web
// form, the admin console and the chat agent.
type BookingService interface {
	// QueryAvailability returns the valid start times for a service on a
	// date, ascending. Reads may be served from the short-lived cache.
	QueryAvailability(date, serviceID string) ([]string, error)
	// Create validates and commits a new booking. On a conflict it returns a
	// slotConflict Error carrying up to two alternative starts.
	Create(req CreateRequest) (*models.Booking, error)
	// Cancel flips a booking to Cancelled; the row is kept and its cells
	// immediately reappear in availability.
	Cancel(id string) (*models.Booking, error)
	// Reschedule moves a booking in place, keeping its ID and recording the
	// previous slot in the audit field.
	Reschedule(req RescheduleRequest) (*models.Booking, error)
	// Complete marks a booking as done.
	Complete(id string) (*models.Booking, error)
	// AdminDelete marks a past or cancelled booking Deleted.
	AdminDelete(id string) (*models.Booking, error)
	// ListByDate returns all bookings for a date, any status (admin day view).
	ListByDate(date string) ([]models.Booking, error)
	// SetDayOverride applies a patch to one date's override. The returned
	// warnings flag confirmed bookings the new override would orphan.
	SetDayOverride(patch OverridePatch) (*models.DayOverride, []string, error)
	// GetDayOverride returns the override for a date, nil if none.
	GetDayOverride(date string) (*models.DayOverride, error)
	// GetServices returns the service catalogue.
	GetServices() ([]models.Service, error)
	// FindActiveByPhone returns a client's upcoming confirmed bookings
	// (used by the chat channel for cancel/reschedule lookups).
	FindActiveByPhone(phone string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService against the Mongo
// repositories and the pure schedule package.
type DefaultBookingService struct {
	Bookings       bookingRepo.BookingRepository
	Clients        clientRepo.ClientRepository
	Overrides      overrideRepo.OverrideRepository
	Services       serviceRepo.ServiceRepository
	Week           schedule.WeekTable
	Holidays       schedule.Holidays
	DefaultMinutes int
	Cache          SlotCache
}
