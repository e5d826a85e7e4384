package models

import "time"

// Booking statuses. Cancelled and Deleted rows stay in the collection but do
// not occupy grid cells.
const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
	BookingStatusDeleted   = "Deleted"
	BookingStatusCompleted = "Completed"
)

// Booking origins, one per entry channel.
const (
	OriginManual       = "manual"
	OriginExternalLink = "external-link"
	OriginBot          = "bot"
)

// Booking represents one appointment. Date is "2006-01-02", Time is "HH:MM"
// on the 30-minute grid.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	Date           string    `bson:"date" json:"date"`
	Time           string    `bson:"time" json:"time"`
	ServiceID      string    `bson:"service_id" json:"serviceId"`
	ServiceName    string    `bson:"service_name" json:"serviceName"` // fallback when ServiceID is absent
	ClientName     string    `bson:"client_name" json:"clientName"`
	ClientPhone    string    `bson:"client_phone" json:"clientPhone"`
	ProfessionalID string    `bson:"professional_id,omitempty" json:"professionalId,omitempty"`
	Status         string    `bson:"status" json:"status"`
	Origin         string    `bson:"origin" json:"origin"`
	DiscountPct    float64   `bson:"discount_pct,omitempty" json:"discountPct,omitempty"`
	DiscountNote   string    `bson:"discount_note,omitempty" json:"discountNote,omitempty"`
	PreviousSlot   string    `bson:"previous_slot,omitempty" json:"previousSlot,omitempty"` // audit trail: "date time" before the last reschedule
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// Active reports whether the booking occupies grid cells.
func (b *Booking) Active() bool {
	return b.Status != BookingStatusCancelled && b.Status != BookingStatusDeleted
}
