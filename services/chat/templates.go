package chat

import (
	"fmt"
	"strings"

	"slotdesk/models"
)

// Reply templates. Each one is parameterized by the data that justifies its
// wording; in particular confirmedReply takes the booking the mutator
// actually returned, so no code path can phrase success without one.

func askServiceReply(catalogue []models.Service) Reply {
	if len(catalogue) == 0 {
		return Reply{Text: "Which service would you like to book?"}
	}
	names := make([]string, 0, len(catalogue))
	for _, s := range catalogue {
		names = append(names, s.Name)
	}
	return Reply{Text: fmt.Sprintf("Which service would you like to book? We offer: %s.", strings.Join(names, ", "))}
}

func unknownServiceReply(ref string, catalogue []models.Service) Reply {
	r := askServiceReply(catalogue)
	r.Text = fmt.Sprintf("I couldn't find a service called %q. %s", ref, r.Text)
	return r
}

func askDateReply(svc string) Reply {
	return Reply{Text: fmt.Sprintf("What day works for your %s? You can say a date or something like \"next Wednesday\".", svc)}
}

func unknownDateReply(ref string) Reply {
	return Reply{Text: fmt.Sprintf("Sorry, I couldn't work out which day %q is. Could you give me a date?", ref)}
}

func askTimeReply(date string, slots []string) Reply {
	if len(slots) > 8 {
		slots = slots[:8]
	}
	return Reply{Text: fmt.Sprintf("On %s we have: %s. Which time suits you?", date, strings.Join(slots, ", "))}
}

func noSlotsReply(date string) Reply {
	return Reply{Text: fmt.Sprintf("There are no open times on %s. Would another day work?", date)}
}

// slotWorksReply is the neutral phrasing used when availability checks out
// but no booking exists yet.
func slotWorksReply(date, start string) Reply {
	return Reply{Text: fmt.Sprintf("%s at %s works — should we continue? What name should I put the booking under?", date, start)}
}

func askNameReply() Reply {
	return Reply{Text: "What name should I put the booking under?"}
}

func slotTakenReply(start string, suggestions []string) Reply {
	if len(suggestions) == 0 {
		return Reply{Text: fmt.Sprintf("%s is no longer available. Would another day work?", start)}
	}
	return Reply{Text: fmt.Sprintf("%s is no longer available. Could %s work instead?", start, strings.Join(suggestions, " or "))}
}

// confirmedReply is the only template that claims a booking exists, and it
// requires the booking the mutator returned.
func confirmedReply(b *models.Booking) Reply {
	return Reply{
		Text:      fmt.Sprintf("All set, %s! Your %s is booked for %s at %s.", b.ClientName, b.ServiceName, b.Date, b.Time),
		Committed: true,
	}
}

func cancelledSessionReply() Reply {
	return Reply{Text: "No problem, I've dropped that. Just message me whenever you want to book."}
}

func bookingCancelledReply(b *models.Booking) Reply {
	return Reply{Text: fmt.Sprintf("Your %s on %s at %s has been cancelled.", b.ServiceName, b.Date, b.Time)}
}

func nothingToCancelReply() Reply {
	return Reply{Text: "I couldn't find an upcoming booking under this number."}
}

func apologyReply() Reply {
	return Reply{Text: "Sorry, something went wrong on our side. Please try again in a moment."}
}
