package schedule

import "slotdesk/models"

// Grid produces the default 30-minute candidate grid for a date. It is a pure
// function of the date, the weekday table, the day override and the holiday
// calendar:
//
//   - closed-by-override days have an empty base grid (only extra slots can
//     make such a day bookable, and those are added by the resolver);
//   - holidays have an empty base grid for the same reason;
//   - otherwise the grid runs from the weekday's opening hour up to, but not
//     including, the closing hour; a booking cannot start at the closing
//     boundary.
func Grid(date string, week WeekTable, ov *models.DayOverride, holidays Holidays) []string {
	if ov != nil && ov.Closed {
		return nil
	}
	if holidays.IsHoliday(date) {
		return nil
	}

	wd, err := Weekday(date)
	if err != nil {
		return nil
	}
	hours := week.Hours(wd)
	if !hours.Open || hours.EndHour <= hours.StartHour {
		return nil
	}

	var grid []string
	for m := hours.StartHour * 60; m < hours.EndHour*60; m += SlotMinutes {
		grid = append(grid, FormatMinute(m))
	}
	return grid
}
