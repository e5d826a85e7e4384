package schedule

import (
	"reflect"
	"testing"

	"slotdesk/models"

	"go.uber.org/zap"
)

func resolve(t *testing.T, svc models.Service, ov *models.DayOverride, holidays Holidays, bookings []models.Booking) []string {
	t.Helper()
	return Resolve("2026-09-02", svc, testWeek(), ov, holidays, bookings, testCatalogue(), 60, zap.NewNop())
}

func TestResolve_EmptyOpenDay(t *testing.T) {
	// Wednesday 13:00-19:00, no bookings: a 30-minute service fits every cell.
	slots := resolve(t, models.Service{ID: "cut", DurationMinutes: 30}, nil, nil, nil)

	if len(slots) != 12 {
		t.Fatalf("expected 12 slots, got %d: %v", len(slots), slots)
	}
	if slots[0] != "13:00" || slots[11] != "18:30" {
		t.Fatalf("unexpected slot range: %v", slots)
	}
}

func TestResolve_DurationBlocksNeighbours(t *testing.T) {
	// A confirmed 60-minute booking at 14:00 occupies {14:00, 14:30}. For
	// another 60-minute service that also removes 13:30 as a start, since its
	// second cell would land on 14:00.
	bookings := []models.Booking{
		{ID: "b1", Time: "14:00", ServiceID: "combo", Status: models.BookingStatusConfirmed},
	}

	slots := resolve(t, models.Service{ID: "combo", DurationMinutes: 60}, nil, nil, bookings)

	for _, gone := range []string{"13:30", "14:00", "14:30"} {
		if containsTime(slots, gone) {
			t.Fatalf("%s should be unavailable, got %v", gone, slots)
		}
	}
	if !containsTime(slots, "13:00") || !containsTime(slots, "15:00") {
		t.Fatalf("13:00 and 15:00 should stay available, got %v", slots)
	}

	// A 30-minute service only loses the occupied cells themselves.
	short := resolve(t, models.Service{ID: "cut", DurationMinutes: 30}, nil, nil, bookings)
	if !containsTime(short, "13:30") {
		t.Fatalf("13:30 should be available for a 30-minute service, got %v", short)
	}
	if containsTime(short, "14:00") || containsTime(short, "14:30") {
		t.Fatalf("occupied cells leaked into availability: %v", short)
	}
}

func TestResolve_ClosedDayWithExtras(t *testing.T) {
	ov := &models.DayOverride{Date: "2026-09-02", Closed: true, ExtraSlots: []string{"19:30"}}

	slots := resolve(t, models.Service{ID: "cut", DurationMinutes: 30}, ov, nil, nil)
	if !reflect.DeepEqual(slots, []string{"19:30"}) {
		t.Fatalf("expected exactly [19:30], got %v", slots)
	}

	// A 60-minute service cannot fit: 19:30 is the only base cell and the
	// boundary sits at 20:00.
	long := resolve(t, models.Service{ID: "combo", DurationMinutes: 60}, ov, nil, nil)
	if len(long) != 0 {
		t.Fatalf("expected no slots for a 60-minute service, got %v", long)
	}
}

func TestResolve_HolidayBlocksGridNotExtras(t *testing.T) {
	holidays := HolidaysFromConfig([]string{"2026-09-02"})

	slots := resolve(t, models.Service{ID: "cut", DurationMinutes: 30}, nil, holidays, nil)
	if len(slots) != 0 {
		t.Fatalf("holiday should yield no default slots, got %v", slots)
	}

	ov := &models.DayOverride{Date: "2026-09-02", ExtraSlots: []string{"10:00"}}
	slots = resolve(t, models.Service{ID: "cut", DurationMinutes: 30}, ov, holidays, nil)
	if !reflect.DeepEqual(slots, []string{"10:00"}) {
		t.Fatalf("extra slots should survive a holiday, got %v", slots)
	}
}

func TestResolve_BlockedSlotsRemoved(t *testing.T) {
	ov := &models.DayOverride{Date: "2026-09-02", BlockedSlots: []string{"13:00", "18:30"}}

	slots := resolve(t, models.Service{ID: "cut", DurationMinutes: 30}, ov, nil, nil)
	if len(slots) != 10 {
		t.Fatalf("expected 10 slots, got %d: %v", len(slots), slots)
	}
	if containsTime(slots, "13:00") || containsTime(slots, "18:30") {
		t.Fatalf("blocked slots leaked: %v", slots)
	}
}

func TestResolve_ExtraSlotExtendsOpenDay(t *testing.T) {
	// An extra slot past closing extends the boundary instead of truncating it.
	ov := &models.DayOverride{Date: "2026-09-02", ExtraSlots: []string{"19:00"}}

	slots := resolve(t, models.Service{ID: "cut", DurationMinutes: 30}, ov, nil, nil)
	if !containsTime(slots, "19:00") {
		t.Fatalf("extra slot 19:00 should be offered, got %v", slots)
	}
	if !containsTime(slots, "18:30") {
		t.Fatalf("regular grid must survive an extra slot, got %v", slots)
	}

	// An early extra slot must not shrink the day either.
	early := &models.DayOverride{Date: "2026-09-02", ExtraSlots: []string{"09:00"}}
	slots = resolve(t, models.Service{ID: "cut", DurationMinutes: 30}, early, nil, nil)
	if !containsTime(slots, "09:00") || !containsTime(slots, "18:30") {
		t.Fatalf("early extra slot shrank the day: %v", slots)
	}
}

func TestResolve_CancelledBookingFreesSlots(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", Time: "14:00", ServiceID: "combo", Status: models.BookingStatusCancelled},
	}
	slots := resolve(t, models.Service{ID: "cut", DurationMinutes: 30}, nil, nil, bookings)
	if !containsTime(slots, "14:00") || !containsTime(slots, "14:30") {
		t.Fatalf("cancelled booking must free its cells, got %v", slots)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", Time: "15:00", ServiceID: "color", Status: models.BookingStatusConfirmed},
	}
	ov := &models.DayOverride{Date: "2026-09-02", BlockedSlots: []string{"13:00"}}

	first := resolve(t, models.Service{ID: "cut", DurationMinutes: 30}, ov, nil, bookings)
	second := resolve(t, models.Service{ID: "cut", DurationMinutes: 30}, ov, nil, bookings)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs produced different slot lists: %v vs %v", first, second)
	}
}

func TestBaseSlots_ClosedUsesExtrasOnly(t *testing.T) {
	ov := &models.DayOverride{Date: "2026-09-02", Closed: true, ExtraSlots: []string{"19:30", "20:00"}}
	base := BaseSlots("2026-09-02", testWeek(), ov, nil)
	if len(base) != 2 || !base["19:30"] || !base["20:00"] {
		t.Fatalf("expected extras-only base, got %v", base)
	}
}

func TestClosingBoundary(t *testing.T) {
	// Open Wednesday closes at 19:00.
	if b := ClosingBoundary("2026-09-02", testWeek(), nil, nil); b != 19*60 {
		t.Fatalf("expected 1140, got %d", b)
	}
	// Extra slot past closing extends it.
	ov := &models.DayOverride{ExtraSlots: []string{"19:30"}}
	if b := ClosingBoundary("2026-09-02", testWeek(), ov, nil); b != 20*60 {
		t.Fatalf("expected 1200, got %d", b)
	}
	// Early extra slot keeps the weekday closing hour.
	ov = &models.DayOverride{ExtraSlots: []string{"09:00"}}
	if b := ClosingBoundary("2026-09-02", testWeek(), ov, nil); b != 19*60 {
		t.Fatalf("expected 1140, got %d", b)
	}
	// Closed day: only extras count.
	ov = &models.DayOverride{Closed: true, ExtraSlots: []string{"19:30"}}
	if b := ClosingBoundary("2026-09-02", testWeek(), ov, nil); b != 20*60 {
		t.Fatalf("expected 1200, got %d", b)
	}
}

func containsTime(slots []string, s string) bool {
	for _, v := range slots {
		if v == s {
			return true
		}
	}
	return false
}
