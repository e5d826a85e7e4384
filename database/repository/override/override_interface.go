package overrideRepo

import "slotdesk/models"

// OverrideRepository defines methods for day-override data access.
type OverrideRepository interface {
	// Get retrieves the override for a date, nil if the date has none.
	Get(date string) (*models.DayOverride, error)
	// Upsert stores the override for its date.
	Upsert(o *models.DayOverride) error
}
