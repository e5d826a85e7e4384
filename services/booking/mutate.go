package booking

import (
	"errors"
	"fmt"
	"time"

	"slotdesk/database/repository/booking"
	"slotdesk/models"
	"slotdesk/services/schedule"
	"slotdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates and commits a new booking. The flow is: commit-time
// conflict check → client upsert by phone → insert. A storage-level
// unique-index rejection is mapped to the same slotConflict the pre-check
// produces, so the caller sees one failure mode regardless of which layer
// caught the race.
func (s *DefaultBookingService) Create(req CreateRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if req.Date == "" || req.Time == "" || req.ServiceID == "" || req.ClientName == "" || req.ClientPhone == "" {
		return nil, NewError(CodeValidationError, "date, time, serviceId, clientName and clientPhone are required")
	}
	origin := req.Origin
	switch origin {
	case "":
		origin = models.OriginManual
	case models.OriginManual, models.OriginExternalLink, models.OriginBot:
	default:
		return nil, NewError(CodeValidationError, "unknown origin %q", req.Origin)
	}

	svc, err := s.findService(req.ServiceID)
	if err != nil {
		return nil, err
	}

	start := schedule.NormalizeTime(req.Time)
	day, err := s.validateSlot(req.Date, start, *svc, "")
	if err != nil {
		return nil, err
	}

	client, err := s.Clients.UpsertByPhone(&models.Client{
		Name:      req.ClientName,
		Phone:     req.ClientPhone,
		Birthdate: req.ClientBirthdate,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert client: %w", err)
	}

	b := &models.Booking{
		ID:             uuid.New().String(),
		Date:           req.Date,
		Time:           start,
		ServiceID:      svc.ID,
		ServiceName:    svc.Name,
		ClientName:     client.Name,
		ClientPhone:    client.Phone,
		ProfessionalID: req.ProfessionalID,
		Status:         models.BookingStatusConfirmed,
		Origin:         origin,
		DiscountPct:    req.DiscountPct,
		DiscountNote:   req.DiscountNote,
	}
	if err := s.Bookings.Create(b); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			logger.Info("create lost the slot race, unique index caught it",
				zap.String("date", req.Date), zap.String("time", start))
			return nil, NewSlotConflict(req.Date, start, s.suggestions(req.Date, *svc, day, start))
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	s.cache().Invalidate(req.Date)
	logger.Info("booking created",
		zap.String("id", b.ID), zap.String("date", b.Date),
		zap.String("time", b.Time), zap.String("origin", b.Origin))
	return b, nil
}

// Cancel flips a booking to Cancelled. The row is kept; its cells reappear in
// availability as soon as the date's cache entry is invalidated.
func (s *DefaultBookingService) Cancel(id string) (*models.Booking, error) {
	b, err := s.getBooking(id)
	if err != nil {
		return nil, err
	}
	if b.Status == models.BookingStatusCancelled {
		return b, nil
	}
	if err := s.Bookings.SetStatus(id, models.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	b.Status = models.BookingStatusCancelled
	s.cache().Invalidate(b.Date)
	utils.GetLogger().Info("booking cancelled", zap.String("id", id), zap.String("date", b.Date))
	return b, nil
}

// Reschedule moves a booking in place: same ID, new date/time/service, with
// the previous slot kept in the audit field. This is the one canonical
// strategy for every channel; nothing deletes-and-recreates.
func (s *DefaultBookingService) Reschedule(req RescheduleRequest) (*models.Booking, error) {
	b, err := s.getBooking(req.BookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusConfirmed {
		return nil, NewError(CodeValidationError, "only confirmed bookings can be rescheduled")
	}
	if req.NewDate == "" && req.NewTime == "" && req.ServiceID == "" {
		return nil, NewError(CodeValidationError, "nothing to reschedule")
	}

	newDate := b.Date
	if req.NewDate != "" {
		newDate = req.NewDate
	}
	newTime := schedule.NormalizeTime(b.Time)
	if req.NewTime != "" {
		newTime = schedule.NormalizeTime(req.NewTime)
	}
	svc := &models.Service{ID: b.ServiceID, Name: b.ServiceName}
	if req.ServiceID != "" {
		if svc, err = s.findService(req.ServiceID); err != nil {
			return nil, err
		}
	} else if b.ServiceID != "" {
		if svc, err = s.findService(b.ServiceID); err != nil {
			return nil, err
		}
	}

	day, err := s.validateSlot(newDate, newTime, *svc, b.ID)
	if err != nil {
		return nil, err
	}

	oldDate, oldTime := b.Date, b.Time
	b.PreviousSlot = oldDate + " " + oldTime
	b.Date = newDate
	b.Time = newTime
	b.ServiceID = svc.ID
	b.ServiceName = svc.Name

	if err := s.Bookings.Update(b); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, NewSlotConflict(newDate, newTime, s.suggestions(newDate, *svc, day, newTime))
		}
		return nil, fmt.Errorf("reschedule booking: %w", err)
	}

	s.cache().Invalidate(oldDate)
	if newDate != oldDate {
		s.cache().Invalidate(newDate)
	}
	utils.GetLogger().Info("booking rescheduled",
		zap.String("id", b.ID),
		zap.String("from", b.PreviousSlot),
		zap.String("to", newDate+" "+newTime))
	return b, nil
}

// Complete marks a confirmed booking as done.
func (s *DefaultBookingService) Complete(id string) (*models.Booking, error) {
	b, err := s.getBooking(id)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusConfirmed {
		return nil, NewError(CodeValidationError, "only confirmed bookings can be completed")
	}
	if err := s.Bookings.SetStatus(id, models.BookingStatusCompleted); err != nil {
		return nil, fmt.Errorf("complete booking: %w", err)
	}
	b.Status = models.BookingStatusCompleted
	s.cache().Invalidate(b.Date)
	return b, nil
}

// AdminDelete marks a row Deleted. Only past or cancelled rows qualify;
// upcoming confirmed bookings must be cancelled first.
func (s *DefaultBookingService) AdminDelete(id string) (*models.Booking, error) {
	b, err := s.getBooking(id)
	if err != nil {
		return nil, err
	}
	today := time.Now().Format("2006-01-02")
	if b.Status == models.BookingStatusConfirmed && b.Date >= today {
		return nil, NewError(CodeValidationError, "cannot delete an upcoming confirmed booking; cancel it first")
	}
	if err := s.Bookings.SetStatus(id, models.BookingStatusDeleted); err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}
	b.Status = models.BookingStatusDeleted
	s.cache().Invalidate(b.Date)
	return b, nil
}

// ListByDate returns all bookings for a date, any status.
func (s *DefaultBookingService) ListByDate(date string) ([]models.Booking, error) {
	if _, err := schedule.Weekday(date); err != nil {
		return nil, NewError(CodeValidationError, "invalid date %q", date)
	}
	return s.Bookings.GetByDate(date)
}

func (s *DefaultBookingService) getBooking(id string) (*models.Booking, error) {
	if id == "" {
		return nil, NewError(CodeValidationError, "booking id is required")
	}
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("load booking %s: %w", id, err)
	}
	if b == nil {
		return nil, NewError(CodeValidationError, "booking %s does not exist", id)
	}
	return b, nil
}
