package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommandsTotal counts interpreted voice commands by detected intent
	// and internal result kind (ok, validation, transport, format).
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vocalis_commands_total",
		Help: "Total voice commands processed",
	}, []string{"intent", "kind"})

	// InterpretLatency measures the round-trip to the language model.
	InterpretLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vocalis_interpret_latency_seconds",
		Help:    "Latency of language model interpretation calls",
		Buckets: prometheus.DefBuckets,
	})

	// RegistrationsTotal counts successful account registrations.
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vocalis_registrations_total",
		Help: "Total user registrations",
	})

	// MediaUploadsTotal counts avatar uploads to the media host by outcome.
	MediaUploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vocalis_media_uploads_total",
		Help: "Total avatar uploads to the media host",
	}, []string{"status"})
)
