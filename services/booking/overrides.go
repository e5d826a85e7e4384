package booking

import (
	"fmt"

	"slotdesk/models"
	"slotdesk/services/schedule"
	"slotdesk/utils"

	"go.uber.org/zap"
)

// SetDayOverride applies a staff patch to one date's override. The patch is
// merged into the stored override (add/remove semantics for both slot sets).
// Confirmed bookings the new override would strand (on a closed day without
// a matching extra slot, or sitting on a newly blocked slot) are returned as
// warnings rather than silently orphaned.
func (s *DefaultBookingService) SetDayOverride(patch OverridePatch) (*models.DayOverride, []string, error) {
	if _, err := schedule.Weekday(patch.Date); err != nil {
		return nil, nil, NewError(CodeValidationError, "invalid date %q", patch.Date)
	}
	for _, t := range append(append(append(patch.AddBlocked, patch.RemoveBlocked...), patch.AddExtra...), patch.RemoveExtra...) {
		if _, err := schedule.MinuteOfDay(schedule.NormalizeTime(t)); err != nil {
			return nil, nil, NewError(CodeValidationError, "invalid time %q", t)
		}
	}

	ov, err := s.Overrides.Get(patch.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("load override: %w", err)
	}
	if ov == nil {
		ov = &models.DayOverride{Date: patch.Date}
	}
	if patch.Closed != nil {
		ov.Closed = *patch.Closed
	}
	ov.BlockedSlots = mergeSlots(ov.BlockedSlots, patch.AddBlocked, patch.RemoveBlocked)
	ov.ExtraSlots = mergeSlots(ov.ExtraSlots, patch.AddExtra, patch.RemoveExtra)

	warnings, err := s.overrideWarnings(ov)
	if err != nil {
		return nil, nil, err
	}

	if err := s.Overrides.Upsert(ov); err != nil {
		return nil, nil, fmt.Errorf("store override: %w", err)
	}
	s.cache().Invalidate(patch.Date)
	utils.GetLogger().Info("day override updated",
		zap.String("date", patch.Date), zap.Bool("closed", ov.Closed),
		zap.Int("warnings", len(warnings)))
	return ov, warnings, nil
}

// GetDayOverride returns the override for a date, nil if none.
func (s *DefaultBookingService) GetDayOverride(date string) (*models.DayOverride, error) {
	if _, err := schedule.Weekday(date); err != nil {
		return nil, NewError(CodeValidationError, "invalid date %q", date)
	}
	return s.Overrides.Get(date)
}

// overrideWarnings lists confirmed bookings the override would strand.
func (s *DefaultBookingService) overrideWarnings(ov *models.DayOverride) ([]string, error) {
	bookings, err := s.Bookings.GetActiveByDate(ov.Date)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	blocked := make(map[string]bool, len(ov.BlockedSlots))
	for _, t := range ov.BlockedSlots {
		blocked[schedule.NormalizeTime(t)] = true
	}

	var warnings []string
	for _, b := range bookings {
		if b.Status != models.BookingStatusConfirmed {
			continue
		}
		t := schedule.NormalizeTime(b.Time)
		switch {
		case ov.Closed && !ov.HasExtra(t):
			warnings = append(warnings, fmt.Sprintf("booking %s at %s is stranded: day closed without a matching extra slot", b.ID, t))
		case blocked[t]:
			warnings = append(warnings, fmt.Sprintf("booking %s at %s sits on a blocked slot", b.ID, t))
		}
	}
	return warnings, nil
}

func mergeSlots(current, add, remove []string) []string {
	set := make(map[string]bool, len(current)+len(add))
	for _, t := range current {
		set[schedule.NormalizeTime(t)] = true
	}
	for _, t := range add {
		set[schedule.NormalizeTime(t)] = true
	}
	for _, t := range remove {
		delete(set, schedule.NormalizeTime(t))
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	schedule.SortTimes(out)
	return out
}
