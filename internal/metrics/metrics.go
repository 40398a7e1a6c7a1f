package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	Enrollments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnrollments,
			Help: HelpTextEnrollments,
		},
		[]string{LabelKind, LabelTrack},
	)

	Graduations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGraduations,
			Help: HelpTextGraduations,
		},
		[]string{LabelKind, LabelTrack},
	)

	Dropouts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropouts,
			Help: HelpTextDropouts,
		},
		[]string{LabelTrack},
	)

	QuartersAdvanced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuartersAdvanced,
			Help: HelpTextQuartersAdvanced,
		},
	)

	TuitionCharged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTuitionCharged,
			Help: HelpTextTuitionCharged,
		},
	)

	StatBonusesApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStatBonusesApplied,
			Help: HelpTextStatBonusesApplied,
		},
		[]string{LabelStat},
	)

	UnknownStatsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUnknownStatsSkipped,
			Help: HelpTextUnknownStatsSkipped,
		},
		[]string{LabelStat},
	)

	NewGamesStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNewGamesStarted,
			Help: HelpTextNewGamesStarted,
		},
	)
)
