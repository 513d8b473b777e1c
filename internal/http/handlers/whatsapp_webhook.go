package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	observemetrics "github.com/sonrisashollywood/whatsapp-assistant/internal/observability/metrics"
	"github.com/sonrisashollywood/whatsapp-assistant/pkg/logging"
)

var webhookTracer = otel.Tracer("sonrisas.internal.http.webhook")

// Responder produces the reply for one inbound message.
type Responder interface {
	Respond(ctx context.Context, userID, body string) string
}

// WhatsAppWebhookHandler accepts form-encoded messages from the WhatsApp
// gateway and returns the assistant reply as plain text.
type WhatsAppWebhookHandler struct {
	dialog  Responder
	logger  *logging.Logger
	metrics *observemetrics.WebhookMetrics
}

// NewWhatsAppWebhookHandler creates the webhook handler.
func NewWhatsAppWebhookHandler(dialog Responder, logger *logging.Logger, metrics *observemetrics.WebhookMetrics) *WhatsAppWebhookHandler {
	if dialog == nil {
		panic("handlers: dialog responder cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &WhatsAppWebhookHandler{
		dialog:  dialog,
		logger:  logger,
		metrics: metrics,
	}
}

// Handle processes POST /webhook requests. The gateway supplies WaId (user
// id) and Body (message text) as form fields; the reply goes back in the
// response body.
func (h *WhatsAppWebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, span := webhookTracer.Start(r.Context(), "webhook.whatsapp")
	defer span.End()
	start := time.Now()

	if err := r.ParseForm(); err != nil {
		h.logger.Error("failed to parse webhook form", "error", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		span.RecordError(err)
		return
	}

	userID := strings.TrimSpace(r.FormValue("WaId"))
	body := r.FormValue("Body")
	if userID == "" || body == "" {
		h.logger.Warn("webhook missing required fields", "has_wa_id", userID != "")
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("sonrisas.wa_id", userID))

	reply := h.dialog.Respond(ctx, userID, body)

	h.metrics.ObserveLatency(time.Since(start).Seconds())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(reply))
}

// HealthCheck returns a simple health check response.
func (h *WhatsAppWebhookHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
