package chat

import (
	"context"
	"errors"

	"slotdesk/models"
	"slotdesk/services/booking"
	"slotdesk/services/schedule"
	"slotdesk/utils"

	"go.uber.org/zap"
)

// Advance runs one turn of the slot-filling state machine. The state is
// derived from which context fields are still missing, so a field that is
// already present is never asked for again. Availability is always verified
// before client info is collected, and the commit itself goes through the
// booking mutator's own conflict validation.
func (s *DefaultChatService) Advance(channel, phone string, intent Intent) (Reply, error) {
	if channel == "" || phone == "" {
		return Reply{}, booking.NewError(booking.CodeValidationError, "channel and phone are required")
	}
	rctx := context.Background()
	logger := utils.GetLogger()
	now := s.now()

	c, err := s.Store.Get(rctx, channel, phone)
	if err != nil {
		logger.Error("chat: context load failed", zap.Error(err))
		c = &models.ConversationContext{Channel: channel, Phone: phone}
	}
	if c.IsExpired(now) {
		c = &models.ConversationContext{Channel: channel, Phone: phone}
	}
	c.LastContact = now

	switch intent.Type {
	case "abort":
		if err := s.Store.Clear(rctx, channel, phone); err != nil {
			logger.Warn("chat: context clear failed", zap.Error(err))
		}
		return cancelledSessionReply(), nil
	case "cancel":
		return s.handleCancel(phone), nil
	}

	catalogue, err := s.Bookings.GetServices()
	if err != nil {
		logger.Error("chat: service catalogue load failed", zap.Error(err))
		return apologyReply(), nil
	}

	// Fold the intent's fields into the context. Any change to the service,
	// date or time drops the verification flag: the slot has to be
	// re-checked before client info or commit.
	if intent.Service != "" {
		match := schedule.ResolveService(catalogue, intent.Service, intent.Service, 0)
		if match.Kind == schedule.MatchDefault {
			s.save(rctx, c)
			return unknownServiceReply(intent.Service, catalogue), nil
		}
		if match.Service.ID != c.ServiceID {
			c.AvailabilityConfirmed = false
		}
		c.ServiceID = match.Service.ID
	}
	if intent.DateRef != "" {
		date, ok := ResolveDateRef(intent.DateRef, now)
		if !ok {
			s.save(rctx, c)
			return unknownDateReply(intent.DateRef), nil
		}
		if date != c.Date {
			c.AvailabilityConfirmed = false
		}
		c.Date = date
	}
	if intent.TimeRef != "" {
		t := schedule.NormalizeTime(intent.TimeRef)
		if t != c.Time {
			c.AvailabilityConfirmed = false
		}
		c.Time = t
	}
	if intent.Name != "" {
		c.ClientName = intent.Name
	}
	if intent.Birthdate != "" {
		c.ClientBirthdate = intent.Birthdate
	}

	return s.step(rctx, c, catalogue), nil
}

// State derives the current session state from the filled fields.
func State(c *models.ConversationContext) string {
	switch {
	case c.ServiceID == "":
		return StateCollectingService
	case c.Date == "":
		return StateCollectingDate
	case c.Time == "":
		return StateCollectingTime
	case !c.AvailabilityConfirmed:
		return StateVerifyingAvailability
	case c.ClientName == "":
		return StateCollectingClientInfo
	default:
		return StateCommitting
	}
}

// step produces the reply for the current state, advancing through several
// states in one turn where possible (verification flows straight into
// collecting client info, a fully filled context commits immediately).
func (s *DefaultChatService) step(rctx context.Context, c *models.ConversationContext, catalogue []models.Service) Reply {
	switch State(c) {
	case StateCollectingService:
		s.save(rctx, c)
		return askServiceReply(catalogue)

	case StateCollectingDate:
		s.save(rctx, c)
		return askDateReply(serviceName(catalogue, c.ServiceID))

	case StateCollectingTime:
		slots, err := s.Bookings.QueryAvailability(c.Date, c.ServiceID)
		if err != nil {
			return s.availabilityFailure(rctx, c, err)
		}
		if len(slots) == 0 {
			date := c.Date
			c.Date = ""
			s.save(rctx, c)
			return noSlotsReply(date)
		}
		s.save(rctx, c)
		return askTimeReply(c.Date, slots)

	case StateVerifyingAvailability:
		slots, err := s.Bookings.QueryAvailability(c.Date, c.ServiceID)
		if err != nil {
			return s.availabilityFailure(rctx, c, err)
		}
		if !containsSlot(slots, c.Time) {
			requested := c.Time
			c.Time = ""
			s.save(rctx, c)
			return slotTakenReply(requested, firstTwo(slots))
		}
		c.AvailabilityConfirmed = true
		if c.ClientName == "" {
			s.save(rctx, c)
			return slotWorksReply(c.Date, c.Time)
		}
		return s.commit(rctx, c)

	case StateCollectingClientInfo:
		s.save(rctx, c)
		return askNameReply()

	default: // StateCommitting
		return s.commit(rctx, c)
	}
}

// commit calls the booking mutator. Only its returned booking can produce the
// confirmed wording; every failure keeps or resets the context with neutral
// phrasing.
func (s *DefaultChatService) commit(rctx context.Context, c *models.ConversationContext) Reply {
	logger := utils.GetLogger()

	b, err := s.Bookings.Create(booking.CreateRequest{
		Date:            c.Date,
		Time:            c.Time,
		ServiceID:       c.ServiceID,
		ClientName:      c.ClientName,
		ClientPhone:     c.Phone,
		ClientBirthdate: c.ClientBirthdate,
		Origin:          models.OriginBot,
	})
	if err == nil {
		if clearErr := s.Store.Clear(rctx, c.Channel, c.Phone); clearErr != nil {
			logger.Warn("chat: context clear after commit failed", zap.Error(clearErr))
		}
		return confirmedReply(b)
	}

	var be *booking.Error
	if errors.As(err, &be) {
		switch be.Code {
		case booking.CodeSlotConflict, booking.CodeStaleAvailability:
			// The slot was confirmed earlier this session but lost at
			// commit time.
			requested := c.Time
			c.Time = ""
			c.AvailabilityConfirmed = false
			s.save(rctx, c)
			return slotTakenReply(requested, be.Suggestions)
		case booking.CodeDayClosed, booking.CodeHolidayBlocked, booking.CodeOutOfBusinessHours:
			date := c.Date
			c.Date = ""
			c.Time = ""
			c.AvailabilityConfirmed = false
			s.save(rctx, c)
			return noSlotsReply(date)
		}
	}

	logger.Error("chat: booking commit failed", zap.Error(err))
	s.save(rctx, c)
	return apologyReply()
}

func (s *DefaultChatService) handleCancel(phone string) Reply {
	upcoming, err := s.Bookings.FindActiveByPhone(phone)
	if err != nil {
		utils.GetLogger().Error("chat: booking lookup failed", zap.Error(err))
		return apologyReply()
	}
	if len(upcoming) == 0 {
		return nothingToCancelReply()
	}
	cancelled, err := s.Bookings.Cancel(upcoming[0].ID)
	if err != nil {
		utils.GetLogger().Error("chat: cancel failed", zap.Error(err))
		return apologyReply()
	}
	return bookingCancelledReply(cancelled)
}

// availabilityFailure maps a failed availability read to a reply. Recoverable
// scheduling errors clear the date and ask for another day; anything else is
// an infrastructure apology.
func (s *DefaultChatService) availabilityFailure(rctx context.Context, c *models.ConversationContext, err error) Reply {
	var be *booking.Error
	if errors.As(err, &be) {
		date := c.Date
		c.Date = ""
		c.Time = ""
		c.AvailabilityConfirmed = false
		s.save(rctx, c)
		return noSlotsReply(date)
	}
	utils.GetLogger().Error("chat: availability read failed", zap.Error(err))
	s.save(rctx, c)
	return apologyReply()
}

func (s *DefaultChatService) save(rctx context.Context, c *models.ConversationContext) {
	if err := s.Store.Set(rctx, c); err != nil {
		utils.GetLogger().Warn("chat: context save failed", zap.Error(err))
	}
}

func serviceName(catalogue []models.Service, id string) string {
	for _, svc := range catalogue {
		if svc.ID == id {
			return svc.Name
		}
	}
	return "appointment"
}

func containsSlot(slots []string, t string) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}

func firstTwo(slots []string) []string {
	if len(slots) > 2 {
		return slots[:2]
	}
	return slots
}
