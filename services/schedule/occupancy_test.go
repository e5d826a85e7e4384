package schedule

import (
	"testing"

	"slotdesk/models"

	"go.uber.org/zap"
)

func testCatalogue() []models.Service {
	return []models.Service{
		{ID: "cut", Name: "Corte", DurationMinutes: 30},
		{ID: "color", Name: "Coloração, raiz", DurationMinutes: 90},
		{ID: "combo", Name: "Corte e Escova", DurationMinutes: 60},
	}
}

func TestBookingCells_EndExclusive(t *testing.T) {
	// A 45-minute service starting at 14:00 occupies exactly {14:00, 14:30}:
	// the cell equal to the end time is not occupied.
	cells := BookingCells(14*60, 45)
	if len(cells) != 2 || cells[0] != 14*60 || cells[1] != 14*60+30 {
		t.Fatalf("expected [840 870], got %v", cells)
	}

	cells = BookingCells(14*60, 60)
	if len(cells) != 2 || cells[1] != 14*60+30 {
		t.Fatalf("60-minute booking should occupy 2 cells, got %v", cells)
	}

	cells = BookingCells(14*60, 90)
	if len(cells) != 3 {
		t.Fatalf("90-minute booking should occupy 3 cells, got %v", cells)
	}
}

func TestResolveService(t *testing.T) {
	cat := testCatalogue()

	cases := []struct {
		name     string
		id       string
		svcName  string
		kind     MatchKind
		duration int
	}{
		{"by id", "color", "", MatchExact, 90},
		{"fuzzy diacritic insensitive", "", "coloracao", MatchFuzzy, 90},
		{"fuzzy first comma token", "", "Corte, com lavagem", MatchFuzzy, 30},
		{"unknown falls back to default", "", "massagem", MatchDefault, 60},
		{"empty falls back to default", "", "", MatchDefault, 60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := ResolveService(cat, tc.id, tc.svcName, 60)
			if m.Kind != tc.kind {
				t.Fatalf("expected kind %v, got %v", tc.kind, m.Kind)
			}
			if m.DurationMinutes != tc.duration {
				t.Fatalf("expected duration %d, got %d", tc.duration, m.DurationMinutes)
			}
		})
	}
}

func TestOccupied_BasicAndBlocked(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", Time: "14:00", ServiceID: "combo", Status: models.BookingStatusConfirmed},
		{ID: "b2", Time: "10:00:00", ServiceID: "cut", Status: models.BookingStatusConfirmed},
		{ID: "b3", Time: "16:00", ServiceID: "cut", Status: models.BookingStatusCancelled},
	}
	ov := &models.DayOverride{BlockedSlots: []string{"11:00"}}

	occ := Occupied(bookings, testCatalogue(), ov, 60, zap.NewNop())

	for _, want := range []string{"14:00", "14:30", "10:00", "11:00"} {
		if !occ[want] {
			t.Fatalf("expected %s occupied, got %v", want, occ)
		}
	}
	if occ["15:00"] {
		t.Fatalf("15:00 should be free (end-exclusive)")
	}
	if occ["16:00"] {
		t.Fatalf("cancelled booking must not occupy cells")
	}
	if occ["10:30"] {
		t.Fatalf("30-minute booking must occupy a single cell")
	}
}

func TestOccupied_DefaultDurationFallback(t *testing.T) {
	// Unresolvable service assumes the default 60 minutes, widening the block.
	bookings := []models.Booking{
		{ID: "b1", Time: "14:00", ServiceName: "mistério", Status: models.BookingStatusConfirmed},
	}

	occ := Occupied(bookings, testCatalogue(), nil, 60, zap.NewNop())
	if !occ["14:00"] || !occ["14:30"] {
		t.Fatalf("default 60-minute fallback should occupy two cells, got %v", occ)
	}
}

func TestNormalizeTime(t *testing.T) {
	if got := NormalizeTime("14:00:00"); got != "14:00" {
		t.Fatalf("expected 14:00, got %s", got)
	}
	if got := NormalizeTime("14:00"); got != "14:00" {
		t.Fatalf("expected 14:00, got %s", got)
	}
}

func TestMinuteOfDayRoundTrip(t *testing.T) {
	m, err := MinuteOfDay("18:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != 18*60+30 {
		t.Fatalf("expected 1110, got %d", m)
	}
	if FormatMinute(m) != "18:30" {
		t.Fatalf("round trip failed: %s", FormatMinute(m))
	}
	if _, err := MinuteOfDay("25:00"); err == nil {
		t.Fatalf("expected error for 25:00")
	}
}
