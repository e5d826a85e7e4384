package schedule

import (
	"testing"
	"time"

	"slotdesk/config"
	"slotdesk/models"
)

func testWeek() WeekTable {
	return WeekTable{
		time.Tuesday:   {Open: true, StartHour: 9, EndHour: 19},
		time.Wednesday: {Open: true, StartHour: 13, EndHour: 19},
		time.Saturday:  {Open: true, StartHour: 9, EndHour: 14},
	}
}

func TestGrid_OpenWednesday(t *testing.T) {
	// 2026-09-02 is a Wednesday.
	grid := Grid("2026-09-02", testWeek(), nil, nil)

	if len(grid) != 12 {
		t.Fatalf("expected 12 slots, got %d: %v", len(grid), grid)
	}
	if grid[0] != "13:00" {
		t.Fatalf("expected first slot 13:00, got %s", grid[0])
	}
	if grid[len(grid)-1] != "18:30" {
		t.Fatalf("expected last slot 18:30, got %s", grid[len(grid)-1])
	}
}

func TestGrid_ClosedWeekday(t *testing.T) {
	// 2026-09-07 is a Monday, absent from the table.
	if grid := Grid("2026-09-07", testWeek(), nil, nil); grid != nil {
		t.Fatalf("expected empty grid on a closed weekday, got %v", grid)
	}
}

func TestGrid_ClosedByOverride(t *testing.T) {
	ov := &models.DayOverride{Date: "2026-09-02", Closed: true, ExtraSlots: []string{"19:30"}}
	if grid := Grid("2026-09-02", testWeek(), ov, nil); grid != nil {
		t.Fatalf("expected empty base grid on closed-by-override day, got %v", grid)
	}
}

func TestGrid_Holiday(t *testing.T) {
	holidays := HolidaysFromConfig([]string{"2026-09-02"})
	if grid := Grid("2026-09-02", testWeek(), nil, holidays); grid != nil {
		t.Fatalf("expected empty grid on a holiday, got %v", grid)
	}
}

func TestGrid_InvalidDate(t *testing.T) {
	if grid := Grid("not-a-date", testWeek(), nil, nil); grid != nil {
		t.Fatalf("expected empty grid for invalid date, got %v", grid)
	}
}

func TestWeekTableFromConfig(t *testing.T) {
	table := WeekTableFromConfig(map[string]config.DayHoursConfig{
		"Wednesday": {Open: true, Start: 13, End: 19},
		"bogus":     {Open: true, Start: 1, End: 2},
	})

	hours := table.Hours(time.Wednesday)
	if !hours.Open || hours.StartHour != 13 || hours.EndHour != 19 {
		t.Fatalf("unexpected wednesday hours: %+v", hours)
	}
	if table.Hours(time.Monday).Open {
		t.Fatalf("monday should be closed")
	}
	if len(table) != 1 {
		t.Fatalf("unknown weekday keys should be ignored, got %d entries", len(table))
	}
}

func TestParseWeekday(t *testing.T) {
	wd, ok := ParseWeekday(" Wednesday ")
	if !ok || wd != time.Wednesday {
		t.Fatalf("expected wednesday, got %v ok=%v", wd, ok)
	}
	if _, ok := ParseWeekday("someday"); ok {
		t.Fatalf("expected unknown weekday to fail")
	}
}
