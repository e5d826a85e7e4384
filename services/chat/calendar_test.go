package chat

import (
	"testing"
	"time"
)

func TestForwardCalendar(t *testing.T) {
	cal := ForwardCalendar(testNow(), forwardDays)
	if len(cal) != forwardDays {
		t.Fatalf("expected %d entries, got %d", forwardDays, len(cal))
	}
	if cal[0].Date != "2026-09-01" || cal[0].Offset != 0 {
		t.Fatalf("calendar must start today, got %+v", cal[0])
	}
	if cal[1].Date != "2026-09-02" || cal[1].Weekday != time.Wednesday {
		t.Fatalf("unexpected second entry: %+v", cal[1])
	}
	for i, e := range cal {
		if e.Offset != i {
			t.Fatalf("offsets must be contiguous, got %+v at %d", e, i)
		}
	}
}

func TestResolveDateRef(t *testing.T) {
	// testNow is Tuesday 2026-09-01.
	cases := []struct {
		ref  string
		want string
		ok   bool
	}{
		{"2026-09-10", "2026-09-10", true},
		{"today", "2026-09-01", true},
		{"tomorrow", "2026-09-02", true},
		{"wednesday", "2026-09-02", true},
		{"Tuesday", "2026-09-01", true},       // bare weekday includes today
		{"next tuesday", "2026-09-08", true},  // "next" skips today
		{"next wednesday", "2026-09-02", true},
		{"  Saturday ", "2026-09-05", true},
		{"someday", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ResolveDateRef(tc.ref, testNow())
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ResolveDateRef(%q) = %q, %v; want %q, %v", tc.ref, got, ok, tc.want, tc.ok)
		}
	}
}
