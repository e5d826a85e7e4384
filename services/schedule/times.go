package schedule

import (
	"fmt"
	"sort"
	"time"
)

// MinuteOfDay parses "HH:MM" into minutes from midnight.
func MinuteOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinute renders minutes from midnight as "HH:MM".
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// NormalizeTime strips a trailing seconds component, so "14:00:00" and
// "14:00" compare equal everywhere.
func NormalizeTime(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

// Weekday resolves the weekday of a "2006-01-02" date.
func Weekday(date string) (time.Weekday, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d.Weekday(), nil
}

// SortTimes orders HH:MM strings ascending by minute of day. Malformed
// entries sort last.
func SortTimes(times []string) {
	sort.Slice(times, func(i, j int) bool {
		a, errA := MinuteOfDay(times[i])
		b, errB := MinuteOfDay(times[j])
		if errA != nil {
			return false
		}
		if errB != nil {
			return true
		}
		return a < b
	})
}
