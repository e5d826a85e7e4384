package models

import "time"

// Client is a person who books appointments. Phone is the natural key: every
// booking attempt upserts the client by phone.
type Client struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone" json:"phone"`
	Birthdate string    `bson:"birthdate,omitempty" json:"birthdate,omitempty"` // "2006-01-02"
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
