package models

import "time"

// DayOverride is a per-date staff exception to the default weekday hours.
// When Closed is true the weekday grid is ignored entirely and only
// ExtraSlots remain bookable. On an open day ExtraSlots add start times and
// BlockedSlots remove them.
type DayOverride struct {
	Date         string    `bson:"date" json:"date"`
	Closed       bool      `bson:"closed" json:"closed"`
	BlockedSlots []string  `bson:"blocked_slots" json:"blockedSlots"`
	ExtraSlots   []string  `bson:"extra_slots" json:"extraSlots"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// HasExtra reports whether the given HH:MM is listed as an extra slot.
func (o *DayOverride) HasExtra(hhmm string) bool {
	if o == nil {
		return false
	}
	for _, s := range o.ExtraSlots {
		if s == hhmm {
			return true
		}
	}
	return false
}
