package models

import "time"

// ConversationContext holds the partially-filled booking fields of one chat
// session, keyed by (channel, phone). It is a plain struct with named optional
// fields; expiry is decided by IsExpired, never by ad hoc timestamp checks at
// call sites.
type ConversationContext struct {
	Channel               string    `json:"channel"`
	Phone                 string    `json:"phone"`
	ServiceID             string    `json:"serviceId,omitempty"`
	Date                  string    `json:"date,omitempty"` // "2006-01-02"
	Time                  string    `json:"time,omitempty"` // "HH:MM"
	AvailabilityConfirmed bool      `json:"availabilityConfirmed"`
	ClientName            string    `json:"clientName,omitempty"`
	ClientBirthdate       string    `json:"clientBirthdate,omitempty"`
	LastContact           time.Time `json:"lastContact"`
}

// IsExpired reports whether the context must be discarded: its remembered
// date is strictly in the past, or more than 24h have elapsed since the last
// contact.
func (c *ConversationContext) IsExpired(now time.Time) bool {
	if c == nil {
		return true
	}
	if c.Date != "" {
		if d, err := time.ParseInLocation("2006-01-02", c.Date, now.Location()); err == nil {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			if d.Before(today) {
				return true
			}
		}
	}
	return !c.LastContact.IsZero() && now.Sub(c.LastContact) > 24*time.Hour
}
