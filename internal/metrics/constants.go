package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Game metric names
const (
	MetricNameGameActions      = "game_actions_total"
	MetricNameCropsPlanted     = "crops_planted_total"
	MetricNameCropsHarvested   = "crops_harvested_total"
	MetricNameHarvestYield     = "harvest_yield_total"
	MetricNameMerchantsSpawned = "merchants_spawned_total"
	MetricNameTradesCompleted  = "trades_completed_total"
	MetricNamePlayersCreated   = "players_created_total"
)

// Metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextGameActions      = "Total number of game actions by action and outcome"
	HelpTextCropsPlanted     = "Total number of crops planted"
	HelpTextCropsHarvested   = "Total number of crops harvested"
	HelpTextHarvestYield     = "Total seeds credited by harvests"
	HelpTextMerchantsSpawned = "Total number of merchants spawned by rotation"
	HelpTextTradesCompleted  = "Total number of completed merchant trades"
	HelpTextPlayersCreated   = "Total number of players created"
)

// Metric label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelAction  = "action"
	LabelOutcome = "outcome"
	LabelCrop    = "crop"
	LabelItem    = "item"
)

// Outcome label values
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
