package dialog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IntentKind tags the purpose of an inbound utterance.
type IntentKind int

const (
	IntentFallback IntentKind = iota
	IntentIntroduceName
	IntentProvidePhone
	IntentRequestBooking
	IntentAskLocation
)

func (k IntentKind) String() string {
	switch k {
	case IntentIntroduceName:
		return "introduce_name"
	case IntentProvidePhone:
		return "provide_phone"
	case IntentRequestBooking:
		return "request_booking"
	case IntentAskLocation:
		return "ask_location"
	default:
		return "fallback"
	}
}

// Service is a bookable treatment. The value is the canonical wire string
// sent to the booking back-end.
type Service string

const (
	ServiceNone        Service = ""
	ServiceBotox       Service = "botox"
	ServiceSmileDesign Service = "diseño de sonrisa"
)

// Intent is the classification result plus any extracted slots. Only the
// slots of the matched kind are populated.
type Intent struct {
	Kind    IntentKind
	Name    string
	Phone   string
	Date    string
	Time    string
	Service Service
}

// SlotsComplete reports whether a booking intent carries date, time and
// service.
func (i Intent) SlotsComplete() bool {
	return i.Date != "" && i.Time != "" && i.Service != ServiceNone
}

var weekdays = map[string]struct{}{
	"lunes":     {},
	"martes":    {},
	"miércoles": {},
	"jueves":    {},
	"viernes":   {},
	"sábado":    {},
	"domingo":   {},
}

// Classify applies the keyword rules in priority order; the first matching
// rule wins. Matching is done on the lowercased message and relies on exact
// accented characters; slot text for name and phone is sliced from the
// original message so user casing survives.
func Classify(body string) Intent {
	lower, offsets := lowerWithOffsets(body)

	if idx := strings.LastIndex(lower, "soy"); idx >= 0 {
		return Intent{
			Kind: IntentIntroduceName,
			Name: strings.TrimSpace(body[offsets[idx+len("soy")]:]),
		}
	}

	if strings.Contains(lower, "mi teléfono es") {
		idx := strings.LastIndex(lower, "es")
		return Intent{
			Kind:  IntentProvidePhone,
			Phone: strings.TrimSpace(body[offsets[idx+len("es")]:]),
		}
	}

	if strings.Contains(lower, "quiero una cita") || strings.Contains(lower, "reserva") {
		return extractBookingSlots(lower)
	}

	if strings.Contains(lower, "dónde estáis") || strings.Contains(lower, "ubicación") {
		return Intent{Kind: IntentAskLocation}
	}

	return Intent{Kind: IntentFallback}
}

// lowerWithOffsets lowercases s rune by rune and records, for every byte
// position of the lowered string (plus one past the end), the byte offset of
// the corresponding rune in s. Lowercasing can change a rune's UTF-8 width
// (e.g. "Ⱥ" is two bytes, "ⱥ" three), so indexes found in the lowered string
// must be mapped back before slicing the original.
func lowerWithOffsets(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		lr := unicode.ToLower(r)
		for j := 0; j < utf8.RuneLen(lr); j++ {
			offsets = append(offsets, i)
		}
		b.WriteRune(lr)
	}
	offsets = append(offsets, len(s))
	return b.String(), offsets
}

// extractBookingSlots scans tokens once, left to right; later tokens
// overwrite earlier ones for the same slot.
func extractBookingSlots(lower string) Intent {
	intent := Intent{Kind: IntentRequestBooking}
	for _, token := range strings.Fields(lower) {
		if _, ok := weekdays[token]; ok {
			intent.Date = token
		}
		if strings.Contains(token, ":") {
			intent.Time = token
		}
		switch {
		case strings.Contains(token, "botox"):
			intent.Service = ServiceBotox
		case strings.Contains(token, "diseño"), strings.Contains(token, "carillas"):
			intent.Service = ServiceSmileDesign
		}
	}
	return intent
}
