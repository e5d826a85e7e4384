package models

import "time"

// Service is a bookable service offered by the business. Duration drives how
// many 30-minute grid cells a booking of this service occupies. Immutable once
// bookings reference it, except through the admin endpoints.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	DurationMinutes int       `bson:"duration_minutes" json:"durationMinutes"`
	Price           float64   `bson:"price" json:"price"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
