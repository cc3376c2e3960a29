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

// Game Metrics
var (
	GameActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGameActions,
			Help: HelpTextGameActions,
		},
		[]string{LabelAction, LabelOutcome},
	)

	CropsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsPlanted,
			Help: HelpTextCropsPlanted,
		},
		[]string{LabelCrop},
	)

	CropsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsHarvested,
			Help: HelpTextCropsHarvested,
		},
		[]string{LabelCrop},
	)

	HarvestYield = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvestYield,
			Help: HelpTextHarvestYield,
		},
		[]string{LabelCrop},
	)

	MerchantsSpawned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMerchantsSpawned,
			Help: HelpTextMerchantsSpawned,
		},
	)

	TradesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTradesCompleted,
			Help: HelpTextTradesCompleted,
		},
		[]string{LabelItem},
	)

	PlayersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlayersCreated,
			Help: HelpTextPlayersCreated,
		},
	)
)

// RecordAction increments the action counter with an ok/error outcome
func RecordAction(action string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	GameActions.WithLabelValues(action, outcome).Inc()
}
