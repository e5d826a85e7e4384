package handlers

// HandlerBundle groups all route handlers for registration.
type HandlerBundle struct {
	Booking  *BookingHandler
	Override *OverrideHandler
	Chat     *ChatHandler
	Service  *ServiceHandler
}
