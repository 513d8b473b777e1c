package metrics

import "github.com/prometheus/client_golang/prometheus"

// WebhookMetrics exposes counters/histograms for the conversational webhook.
type WebhookMetrics struct {
	inboundTotal   *prometheus.CounterVec
	bookingTotal   *prometheus.CounterVec
	webhookLatency prometheus.Histogram
}

func NewWebhookMetrics(reg prometheus.Registerer) *WebhookMetrics {
	m := &WebhookMetrics{
		inboundTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sonrisas",
			Subsystem: "dialog",
			Name:      "inbound_messages_total",
			Help:      "Inbound WhatsApp messages by classified intent",
		}, []string{"intent"}),
		bookingTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sonrisas",
			Subsystem: "dialog",
			Name:      "booking_attempts_total",
			Help:      "Koibox reservation attempts by outcome",
		}, []string{"outcome"}),
		webhookLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sonrisas",
			Subsystem: "webhook",
			Name:      "latency_seconds",
			Help:      "Latency of webhook request handling",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.inboundTotal, m.bookingTotal, m.webhookLatency)
	return m
}

func (m *WebhookMetrics) ObserveInbound(intent string) {
	if m == nil {
		return
	}
	m.inboundTotal.WithLabelValues(intent).Inc()
}

func (m *WebhookMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingTotal.WithLabelValues(outcome).Inc()
}

func (m *WebhookMetrics) ObserveLatency(seconds float64) {
	if m == nil {
		return
	}
	m.webhookLatency.Observe(seconds)
}
