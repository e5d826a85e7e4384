// Package schedule holds the pure scheduling math: the weekday hours table,
// the holiday calendar, the 30-minute slot grid, occupancy and the
// availability resolver. Nothing in this package touches storage or caches.
package schedule

import (
	"strings"
	"time"

	"slotdesk/config"
)

// SlotMinutes is the grid granularity. Every candidate start time and every
// occupied cell is a multiple of this.
const SlotMinutes = 30

// DayHours is the default open window for one weekday.
type DayHours struct {
	Open      bool
	StartHour int
	EndHour   int
}

// WeekTable maps weekdays to their default hours. Weekdays without an entry
// are closed.
type WeekTable map[time.Weekday]DayHours

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday resolves an English weekday name, case-insensitive.
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// WeekTableFromConfig builds the table from configuration. Unknown weekday
// keys are ignored.
func WeekTableFromConfig(m map[string]config.DayHoursConfig) WeekTable {
	table := make(WeekTable, len(m))
	for name, h := range m {
		wd, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			continue
		}
		table[wd] = DayHours{Open: h.Open, StartHour: h.Start, EndHour: h.End}
	}
	return table
}

// Hours returns the configured hours for a weekday.
func (t WeekTable) Hours(wd time.Weekday) DayHours {
	return t[wd]
}

// Holidays is the set of fully excluded dates ("2006-01-02"). A holiday
// removes the default grid but never removes explicit extra slots.
type Holidays map[string]struct{}

// HolidaysFromConfig builds the holiday set from configuration.
func HolidaysFromConfig(dates []string) Holidays {
	h := make(Holidays, len(dates))
	for _, d := range dates {
		h[d] = struct{}{}
	}
	return h
}

// IsHoliday reports whether the date is a holiday.
func (h Holidays) IsHoliday(date string) bool {
	_, ok := h[date]
	return ok
}
