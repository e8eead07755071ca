package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_declaracao_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_declaracao_active_connections",
			Help: "Number of active connections",
		},
	)

	// DeclarationsGenerated counts declaration requests by outcome
	// (success, invalid, error)
	DeclarationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_declaracao_declarations_total",
			Help: "Number of residency declarations requested, by outcome",
		},
		[]string{"status"},
	)

	// RenderDuration tracks how long the PDF layout takes
	RenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "app_declaracao_render_duration_seconds",
			Help:    "Duration of PDF rendering in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	// DocumentSize tracks the size of rendered documents
	DocumentSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "app_declaracao_document_size_bytes",
			Help:    "Size of rendered PDF documents in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 2, 8),
		},
	)

	// LogoMissing counts renders that had to skip the letterhead logo
	LogoMissing = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_declaracao_logo_missing_total",
			Help: "Number of renders without the letterhead logo, by reason",
		},
		[]string{"reason"},
	)

	// IdentifierWarnings counts identifiers that were accepted but look wrong
	IdentifierWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_declaracao_identifier_warnings_total",
			Help: "Number of identifiers accepted as typed despite failing checks",
		},
		[]string{"field"},
	)

	// ReplacedCharacters counts characters replaced during Latin-1 encoding
	ReplacedCharacters = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "app_declaracao_replaced_characters_total",
			Help: "Number of characters outside Latin-1 replaced in rendered documents",
		},
	)
)
