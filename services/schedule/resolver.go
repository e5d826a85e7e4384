package schedule

import (
	"slotdesk/models"

	"go.uber.org/zap"
)

// BaseSlots is the set of grid positions that exist at all on a date, before
// occupancy is considered: the extra slots alone when the day is closed by
// override, otherwise the weekday grid plus the extra slots.
func BaseSlots(date string, week WeekTable, ov *models.DayOverride, holidays Holidays) map[string]bool {
	base := make(map[string]bool)
	if ov == nil || !ov.Closed {
		for _, s := range Grid(date, week, ov, holidays) {
			base[s] = true
		}
	}
	if ov != nil {
		for _, s := range ov.ExtraSlots {
			base[NormalizeTime(s)] = true
		}
	}
	return base
}

// ClosingBoundary is the minute of day past which no booking may extend. On a
// day whose base grid is empty (closed or holiday) only the extra slots define
// it; on an open day an extra slot past closing extends it, while an early
// extra slot never shrinks it below the weekday closing hour.
func ClosingBoundary(date string, week WeekTable, ov *models.DayOverride, holidays Holidays) int {
	boundary := 0

	gridOpen := (ov == nil || !ov.Closed) && !holidays.IsHoliday(date)
	if gridOpen {
		if wd, err := Weekday(date); err == nil {
			if hours := week.Hours(wd); hours.Open {
				boundary = hours.EndHour * 60
			}
		}
	}

	if ov != nil {
		for _, s := range ov.ExtraSlots {
			if m, err := MinuteOfDay(NormalizeTime(s)); err == nil && m+SlotMinutes > boundary {
				boundary = m + SlotMinutes
			}
		}
	}
	return boundary
}

// Resolve computes the valid start times for one service on one date:
//
//  1. base = override.closed ? extraSlots : grid ∪ extraSlots
//  2. occupied = occupancy of active bookings ∪ blocked slots
//  3. free = base − occupied
//  4. a start is accepted only if the whole service duration fits before the
//     closing boundary and every 30-minute cell it spans is free.
func Resolve(date string, svc models.Service, week WeekTable, ov *models.DayOverride, holidays Holidays, bookings []models.Booking, catalogue []models.Service, defaultMinutes int, logger *zap.Logger) []string {
	base := BaseSlots(date, week, ov, holidays)
	if len(base) == 0 {
		return nil
	}

	occupied := Occupied(bookings, catalogue, ov, defaultMinutes, logger)

	free := make(map[string]bool, len(base))
	for s := range base {
		if !occupied[s] {
			free[s] = true
		}
	}

	boundary := ClosingBoundary(date, week, ov, holidays)

	duration := svc.DurationMinutes
	if duration <= 0 {
		duration = defaultMinutes
	}
	steps := (duration + SlotMinutes - 1) / SlotMinutes

	var accepted []string
	for s := range free {
		start, err := MinuteOfDay(s)
		if err != nil {
			continue
		}
		if start+duration > boundary {
			continue
		}
		fits := true
		for i := 0; i < steps; i++ {
			if !free[FormatMinute(start+i*SlotMinutes)] {
				fits = false
				break
			}
		}
		if fits {
			accepted = append(accepted, s)
		}
	}
	SortTimes(accepted)
	return accepted
}
