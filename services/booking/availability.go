package booking

import (
	"fmt"

	"slotdesk/models"
	"slotdesk/services/schedule"
	"slotdesk/utils"
)

// dayState is one authoritative read of everything availability depends on
// for a single date.
type dayState struct {
	override  *models.DayOverride
	bookings  []models.Booking
	catalogue []models.Service
}

func (s *DefaultBookingService) loadDay(date string) (*dayState, error) {
	ov, err := s.Overrides.Get(date)
	if err != nil {
		return nil, fmt.Errorf("load override for %s: %w", date, err)
	}
	bookings, err := s.Bookings.GetActiveByDate(date)
	if err != nil {
		return nil, fmt.Errorf("load bookings for %s: %w", date, err)
	}
	catalogue, err := s.Services.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load service catalogue: %w", err)
	}
	return &dayState{override: ov, bookings: bookings, catalogue: catalogue}, nil
}

// cache never returns a nil interface; the nil *AvailabilityCache behind it
// treats every read as a miss and every write as a no-op.
func (s *DefaultBookingService) cache() SlotCache {
	if s.Cache == nil {
		return (*AvailabilityCache)(nil)
	}
	return s.Cache
}

func (s *DefaultBookingService) findService(id string) (*models.Service, error) {
	svc, err := s.Services.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("load service %s: %w", id, err)
	}
	if svc == nil {
		return nil, NewError(CodeServiceNotFound, "service %s does not exist", id)
	}
	return svc, nil
}

// QueryAvailability returns the valid start times for a service on a date.
// Browsing reads go through the 30-second cache; everything commit-related
// uses resolveFresh instead.
func (s *DefaultBookingService) QueryAvailability(date, serviceID string) ([]string, error) {
	if _, err := schedule.Weekday(date); err != nil {
		return nil, NewError(CodeValidationError, "invalid date %q", date)
	}
	svc, err := s.findService(serviceID)
	if err != nil {
		return nil, err
	}

	if slots, ok := s.cache().Get(date, serviceID); ok {
		return slots, nil
	}

	slots, err := s.resolveFresh(date, *svc, nil)
	if err != nil {
		return nil, err
	}
	s.cache().Put(date, serviceID, slots)
	return slots, nil
}

// resolveFresh recomputes availability from an authoritative read. When day
// is non-nil that read is reused (callers that already loaded the day for
// validation).
func (s *DefaultBookingService) resolveFresh(date string, svc models.Service, day *dayState) ([]string, error) {
	if day == nil {
		var err error
		day, err = s.loadDay(date)
		if err != nil {
			return nil, err
		}
	}
	slots := schedule.Resolve(date, svc, s.Week, day.override, s.Holidays,
		day.bookings, day.catalogue, s.DefaultMinutes, utils.GetLogger())
	if slots == nil {
		slots = []string{}
	}
	return slots, nil
}

// GetServices returns the service catalogue.
func (s *DefaultBookingService) GetServices() ([]models.Service, error) {
	return s.Services.GetAll()
}

// FindActiveByPhone returns a client's upcoming confirmed bookings.
func (s *DefaultBookingService) FindActiveByPhone(phone string) ([]models.Booking, error) {
	if phone == "" {
		return nil, NewError(CodeValidationError, "phone is required")
	}
	return s.Bookings.GetActiveByPhone(phone)
}
