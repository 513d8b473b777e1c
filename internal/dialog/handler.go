package dialog

import (
	"context"
	"errors"
	"fmt"

	"github.com/sonrisashollywood/whatsapp-assistant/internal/koibox"
	observemetrics "github.com/sonrisashollywood/whatsapp-assistant/internal/observability/metrics"
	"github.com/sonrisashollywood/whatsapp-assistant/internal/profile"
	"github.com/sonrisashollywood/whatsapp-assistant/pkg/logging"
)

// Reserver issues a single reservation attempt against the booking back-end.
type Reserver interface {
	Reserve(ctx context.Context, res koibox.Reservation) koibox.Outcome
}

// Handler orchestrates one request: classify the message, update the user
// profile or dispatch a booking, and compose the reply. All durable state
// lives in the profile store; requests are independent.
type Handler struct {
	store   profile.Store
	booking Reserver
	logger  *logging.Logger
	metrics *observemetrics.WebhookMetrics
}

// NewHandler creates a dialog handler.
func NewHandler(store profile.Store, booking Reserver, logger *logging.Logger, metrics *observemetrics.WebhookMetrics) *Handler {
	if store == nil {
		panic("dialog: profile store cannot be nil")
	}
	if booking == nil {
		panic("dialog: booking client cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:   store,
		booking: booking,
		logger:  logger,
		metrics: metrics,
	}
}

// Respond produces the reply for one inbound message. The reply is always a
// non-empty string; store and booking failures degrade to user-facing text.
func (h *Handler) Respond(ctx context.Context, userID, body string) string {
	intent := Classify(body)
	h.metrics.ObserveInbound(intent.Kind.String())

	switch intent.Kind {
	case IntentIntroduceName:
		h.putField(ctx, userID, profile.FieldName, intent.Name)
		return fmt.Sprintf(replyGreeting, intent.Name)

	case IntentProvidePhone:
		h.putField(ctx, userID, profile.FieldPhone, intent.Phone)
		return fmt.Sprintf(replyPhoneSaved, intent.Phone)

	case IntentRequestBooking:
		if !intent.SlotsComplete() {
			return replyMissingSlots
		}
		return h.book(ctx, userID, intent)

	case IntentAskLocation:
		return replyLocation

	default:
		return replyFallback
	}
}

// book reads the persisted contact fields and, when both are present, issues
// the reservation. No profile writes happen on this path.
func (h *Handler) book(ctx context.Context, userID string, intent Intent) string {
	name := h.getField(ctx, userID, profile.FieldName)
	phone := h.getField(ctx, userID, profile.FieldPhone)
	if name == "" || phone == "" {
		return replyMissingContact
	}

	outcome := h.booking.Reserve(ctx, koibox.Reservation{
		Nombre:   name,
		Telefono: phone,
		Fecha:    intent.Date,
		Hora:     intent.Time,
		Servicio: string(intent.Service),
	})
	h.metrics.ObserveBooking(outcome.String())
	h.logger.Info("reservation dispatched",
		"user_id", userID,
		"fecha", intent.Date,
		"hora", intent.Time,
		"servicio", string(intent.Service),
		"outcome", outcome.String(),
	)

	if outcome != koibox.OutcomeConfirmed {
		return replyBookingFailed
	}
	return fmt.Sprintf(replyConfirmed, name, intent.Date, intent.Time)
}

// putField writes a profile field. Write failures are logged but the user is
// still told the value was saved; the next message simply re-collects it.
func (h *Handler) putField(ctx context.Context, userID, field, value string) {
	if err := h.store.Put(ctx, userID, field, value); err != nil {
		h.logger.Error("profile write failed", "user_id", userID, "field", field, "error", err)
	}
}

// getField reads a profile field, treating store errors as absent.
func (h *Handler) getField(ctx context.Context, userID, field string) string {
	value, err := h.store.Get(ctx, userID, field)
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			h.logger.Warn("profile read failed", "user_id", userID, "field", field, "error", err)
		}
		return ""
	}
	return value
}
