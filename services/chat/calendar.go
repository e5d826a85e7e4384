package chat

import (
	"strings"
	"time"

	"slotdesk/services/schedule"
)

// CalendarEntry is one row of the forward-looking calendar used to resolve
// relative date references.
type CalendarEntry struct {
	Date    string
	Weekday time.Weekday
	Offset  int // days from today
}

// forwardDays is how far ahead the relative-date calendar reaches.
const forwardDays = 15

// ForwardCalendar builds the explicit table of the next n days. Relative
// references are always resolved against this table, never by ad hoc weekday
// arithmetic.
func ForwardCalendar(now time.Time, n int) []CalendarEntry {
	entries := make([]CalendarEntry, 0, n)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i := 0; i < n; i++ {
		d := day.AddDate(0, 0, i)
		entries = append(entries, CalendarEntry{
			Date:    d.Format("2006-01-02"),
			Weekday: d.Weekday(),
			Offset:  i,
		})
	}
	return entries
}

// ResolveDateRef turns a date reference from the classifier into a concrete
// "2006-01-02" date. Supported forms: an explicit date, "today", "tomorrow",
// a weekday name, and "next <weekday>" (the first occurrence strictly after
// today).
func ResolveDateRef(ref string, now time.Time) (string, bool) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return "", false
	}

	if _, err := time.Parse("2006-01-02", ref); err == nil {
		return ref, true
	}

	cal := ForwardCalendar(now, forwardDays)
	switch ref {
	case "today":
		return cal[0].Date, true
	case "tomorrow":
		return cal[1].Date, true
	}

	skipToday := false
	if rest, ok := strings.CutPrefix(ref, "next "); ok {
		ref = rest
		skipToday = true
	}
	wd, ok := schedule.ParseWeekday(ref)
	if !ok {
		return "", false
	}
	for _, e := range cal {
		if skipToday && e.Offset == 0 {
			continue
		}
		if e.Weekday == wd {
			return e.Date, true
		}
	}
	return "", false
}
