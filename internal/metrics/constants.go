package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameEnrollments        = "education_enrollments_total"
	MetricNameGraduations        = "education_graduations_total"
	MetricNameDropouts           = "education_dropouts_total"
	MetricNameQuartersAdvanced   = "education_quarters_advanced_total"
	MetricNameTuitionCharged     = "education_tuition_charged_total"
	MetricNameStatBonusesApplied = "stat_bonuses_applied_total"
	MetricNameUnknownStatsSkipped = "unknown_stats_skipped_total"
	MetricNameNewGamesStarted    = "new_games_started_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextEnrollments        = "Total number of program enrollments"
	HelpTextGraduations        = "Total number of program completions"
	HelpTextDropouts           = "Total number of program drop-outs"
	HelpTextQuartersAdvanced   = "Total number of quarter ticks processed"
	HelpTextTuitionCharged     = "Total money charged as tuition"
	HelpTextStatBonusesApplied = "Total number of stat bonuses applied"
	HelpTextUnknownStatsSkipped = "Total number of reward bonuses skipped for unknown stats"
	HelpTextNewGamesStarted    = "Total number of new games started"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelKind   = "kind"
	LabelTrack  = "track"
	LabelStat   = "stat"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
