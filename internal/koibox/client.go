package koibox

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sonrisashollywood/whatsapp-assistant/pkg/logging"
)

const defaultTimeout = 10 * time.Second

// Client issues reservation calls against the Koibox back-end. A reservation
// either confirms (HTTP 200) or it does not; transport errors and timeouts
// count as not confirmed. No retries.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logging.Logger
	tracer     trace.Tracer
}

// NewClient creates a Koibox client with bearer-token auth and a bounded
// per-call timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
		tracer: otel.Tracer("sonrisas.internal.koibox"),
	}
}

// Reserve posts the reservation and maps the response to a binary outcome.
func (c *Client) Reserve(ctx context.Context, res Reservation) Outcome {
	ctx, span := c.tracer.Start(ctx, "koibox.reserve")
	defer span.End()
	span.SetAttributes(
		attribute.String("sonrisas.koibox.fecha", res.Fecha),
		attribute.String("sonrisas.koibox.servicio", res.Servicio),
	)

	body, err := json.Marshal(res)
	if err != nil {
		span.RecordError(err)
		c.logger.Error("failed to encode reservation", "error", err)
		return OutcomeNotConfirmed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/reservar", bytes.NewReader(body))
	if err != nil {
		span.RecordError(err)
		c.logger.Error("failed to build reservation request", "error", err)
		return OutcomeNotConfirmed
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		c.logger.Warn("reservation call failed", "error", err)
		return OutcomeNotConfirmed
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("sonrisas.koibox.status", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("reservation not confirmed", "status", resp.StatusCode)
		return OutcomeNotConfirmed
	}
	return OutcomeConfirmed
}
