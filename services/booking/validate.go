package booking

import (
	"slotdesk/models"
	"slotdesk/services/schedule"
	"slotdesk/utils"
)

// validateSlot is the commit-time conflict validator. It re-reads the date's
// state authoritatively (never through the cache), checks the requested start
// against the same base-grid and boundary rules the resolver applies, and
// rejects with slotConflict if any cell of the candidate booking intersects
// existing occupancy. excludeID skips one booking's own cells, for
// reschedules.
//
// This is a check-then-act: two writers can both pass it before either insert
// lands. The unique index in the booking repository is the backstop, and the
// caller must map its rejection to slotConflict as well.
func (s *DefaultBookingService) validateSlot(date, start string, svc models.Service, excludeID string) (*dayState, error) {
	day, err := s.loadDay(date)
	if err != nil {
		return nil, err
	}

	start = schedule.NormalizeTime(start)
	startMin, err := schedule.MinuteOfDay(start)
	if err != nil {
		return nil, NewError(CodeValidationError, "invalid time %q", start)
	}
	if _, err := schedule.Weekday(date); err != nil {
		return nil, NewError(CodeValidationError, "invalid date %q", date)
	}

	ov := day.override
	base := schedule.BaseSlots(date, s.Week, ov, s.Holidays)

	// Day-level rejections, most specific first: a start that is an explicit
	// extra slot is always a legal grid position.
	if !base[start] {
		if ov != nil && ov.Closed {
			return nil, NewError(CodeDayClosed, "%s is closed", date)
		}
		if s.Holidays.IsHoliday(date) {
			return nil, NewError(CodeHolidayBlocked, "%s is a holiday", date)
		}
		wd, _ := schedule.Weekday(date)
		if !s.Week.Hours(wd).Open {
			return nil, NewError(CodeDayClosed, "%s is closed", date)
		}
		return nil, s.outOfHours(date, svc, day, start)
	}

	duration := svc.DurationMinutes
	if duration <= 0 {
		duration = s.DefaultMinutes
	}
	if startMin+duration > schedule.ClosingBoundary(date, s.Week, ov, s.Holidays) {
		return nil, s.outOfHours(date, svc, day, start)
	}

	occ := schedule.Occupied(excludeBooking(day.bookings, excludeID), day.catalogue, ov, s.DefaultMinutes, utils.GetLogger())
	for _, cell := range occupiedBy(startMin, duration) {
		if occ[cell] {
			return nil, s.slotLost(date, svc, day, start)
		}
		if !base[cell] {
			return nil, s.outOfHours(date, svc, day, start)
		}
	}

	return day, nil
}

// slotLost classifies a losing start. If the cache still advertised it, the
// caller acted on an availability list that has since diverged from the
// authoritative state; otherwise it is a plain collision.
func (s *DefaultBookingService) slotLost(date string, svc models.Service, day *dayState, start string) error {
	if cached, ok := s.cache().Get(date, svc.ID); ok && containsStart(cached, start) {
		e := NewError(CodeStaleAvailability, "%s %s was still listed but has just been taken", date, start)
		e.Suggestions = s.suggestions(date, svc, day, start)
		return e
	}
	return NewSlotConflict(date, start, s.suggestions(date, svc, day, start))
}

func containsStart(slots []string, start string) bool {
	for _, s := range slots {
		if s == start {
			return true
		}
	}
	return false
}

func (s *DefaultBookingService) outOfHours(date string, svc models.Service, day *dayState, start string) error {
	e := NewError(CodeOutOfBusinessHours, "%s %s is outside bookable hours", date, start)
	e.Suggestions = s.suggestions(date, svc, day, start)
	return e
}

// suggestions picks up to two alternative starts from a fresh resolve,
// preferring the first ones after the requested time.
func (s *DefaultBookingService) suggestions(date string, svc models.Service, day *dayState, requested string) []string {
	valid, err := s.resolveFresh(date, svc, day)
	if err != nil {
		return nil
	}
	var after []string
	for _, v := range valid {
		if v > requested {
			after = append(after, v)
		}
	}
	pool := after
	if len(pool) == 0 {
		pool = valid
	}
	if len(pool) > 2 {
		pool = pool[:2]
	}
	return pool
}

// occupiedBy renders the candidate booking's cells as HH:MM strings.
func occupiedBy(startMin, durationMinutes int) []string {
	cells := schedule.BookingCells(startMin, durationMinutes)
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = schedule.FormatMinute(c)
	}
	return out
}

func excludeBooking(bookings []models.Booking, id string) []models.Booking {
	if id == "" {
		return bookings
	}
	out := bookings[:0:0]
	for _, b := range bookings {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}
