// Package chat drives the slot-filling booking conversation. It contains no
// scheduling math of its own: every availability answer comes from the
// booking service, and every reply is composed from templates parameterized
// by actual results: the session cannot claim a booking exists unless the
// mutator returned one this turn.
package chat

import (
	"time"

	"slotdesk/services/booking"
)

// Intent is the structured output of the upstream classifier. Natural
// language understanding itself happens before this package is reached.
type Intent struct {
	Type      string `json:"type"`                // "book", "provide", "cancel", "abort"
	Service   string `json:"service,omitempty"`   // service id or name
	DateRef   string `json:"dateRef,omitempty"`   // "2026-09-03", "today", "next wednesday"
	TimeRef   string `json:"timeRef,omitempty"`   // "15:00"
	Name      string `json:"name,omitempty"`
	Birthdate string `json:"birthdate,omitempty"` // "2006-01-02"
}

// Reply is one conversational turn back to the channel. Committed is true
// only when a booking was actually created during this turn.
type Reply struct {
	Text      string `json:"reply"`
	Committed bool   `json:"committed"`
}

// Session states, derived from which context fields are still missing.
const (
	StateCollectingService     = "CollectingService"
	StateCollectingDate        = "CollectingDate"
	StateCollectingTime        = "CollectingTime"
	StateVerifyingAvailability = "VerifyingAvailability"
	StateCollectingClientInfo  = "CollectingClientInfo"
	StateCommitting            = "Committing"
)

// ChatService advances one conversation by one turn.
type ChatService interface {
	Advance(channel, phone string, intent Intent) (Reply, error)
}

// DefaultChatService implements ChatService on top of the context store and
// the booking service.
type DefaultChatService struct {
	Store    ContextStore
	Bookings booking.BookingService
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultChatService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
