package schedule

import (
	"strings"
	"unicode"

	"slotdesk/models"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MatchKind tags how a booking's service was resolved.
type MatchKind int

const (
	// MatchExact means the booking's service ID matched the catalogue.
	MatchExact MatchKind = iota
	// MatchFuzzy means the stored service name matched a catalogue entry
	// after diacritics folding.
	MatchFuzzy
	// MatchDefault means nothing matched and the default duration was
	// assumed. This silently widens the occupied block and is always logged.
	MatchDefault
)

// ServiceMatch is the tagged result of resolving a booking's service.
type ServiceMatch struct {
	Kind            MatchKind
	Service         *models.Service
	DurationMinutes int
}

// foldDiacritics strips combining marks so "Coloração" matches "coloracao".
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// ResolveService resolves a booking's service against the catalogue: by ID
// first, then by a diacritic-insensitive substring match against the first
// comma-separated token of the stored name, finally falling back to the
// default duration.
func ResolveService(catalogue []models.Service, serviceID, serviceName string, defaultMinutes int) ServiceMatch {
	if serviceID != "" {
		for i := range catalogue {
			if catalogue[i].ID == serviceID {
				return ServiceMatch{Kind: MatchExact, Service: &catalogue[i], DurationMinutes: catalogue[i].DurationMinutes}
			}
		}
	}

	token := serviceName
	if idx := strings.Index(token, ","); idx >= 0 {
		token = token[:idx]
	}
	token = strings.ToLower(strings.TrimSpace(foldDiacritics(token)))
	if token != "" {
		for i := range catalogue {
			name := strings.ToLower(foldDiacritics(catalogue[i].Name))
			if strings.Contains(name, token) || strings.Contains(token, name) {
				return ServiceMatch{Kind: MatchFuzzy, Service: &catalogue[i], DurationMinutes: catalogue[i].DurationMinutes}
			}
		}
	}

	return ServiceMatch{Kind: MatchDefault, DurationMinutes: defaultMinutes}
}

// BookingCells returns the grid cells occupied by a booking starting at
// startMin with the given duration. The interval is half-open: the cell equal
// to the end time is NOT occupied, so a 45-minute booking at 14:00 occupies
// exactly {14:00, 14:30}.
func BookingCells(startMin, durationMinutes int) []int {
	var cells []int
	for m := startMin; m < startMin+durationMinutes; m += SlotMinutes {
		cells = append(cells, m)
	}
	return cells
}

// Occupied maps a date's active bookings (plus the override's blocked slots)
// onto the set of occupied HH:MM cells. Bookings must already be filtered to
// active statuses. Default-duration fallbacks are logged at Warn so operators
// can see which rows silently widened the block.
func Occupied(bookings []models.Booking, catalogue []models.Service, ov *models.DayOverride, defaultMinutes int, logger *zap.Logger) map[string]bool {
	occupied := make(map[string]bool)

	for _, b := range bookings {
		if !b.Active() {
			continue
		}
		start, err := MinuteOfDay(NormalizeTime(b.Time))
		if err != nil {
			logger.Warn("occupancy: booking with unparseable time skipped",
				zap.String("bookingId", b.ID), zap.String("time", b.Time))
			continue
		}

		match := ResolveService(catalogue, b.ServiceID, b.ServiceName, defaultMinutes)
		if match.Kind == MatchDefault {
			logger.Warn("occupancy: service unresolved, default duration assumed",
				zap.String("bookingId", b.ID),
				zap.String("serviceId", b.ServiceID),
				zap.String("serviceName", b.ServiceName),
				zap.Int("assumedMinutes", match.DurationMinutes))
		}

		for _, cell := range BookingCells(start, match.DurationMinutes) {
			occupied[FormatMinute(cell)] = true
		}
	}

	if ov != nil {
		for _, s := range ov.BlockedSlots {
			occupied[NormalizeTime(s)] = true
		}
	}
	return occupied
}
