package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterRecoveredPanics     *prometheus.CounterVec
	CounterRateLimitedRequests prometheus.Counter
	CounterCommands            *prometheus.CounterVec
	CounterFoodEntries         prometheus.Counter
	CounterWeightSamples       prometheus.Counter
	CounterExerciseToggles     prometheus.Counter
	CounterThemeToggles        prometheus.Counter
	CounterDashboardCache      *prometheus.CounterVec

	// gauges
	GaugeRequests        prometheus.Gauge
	GaugeLifeSignal      prometheus.Gauge
	GaugeActiveSessions  prometheus.Gauge
	GaugeRealtimeClients prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("befit", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("befit", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request",
			Help:      "The total number of incoming requests",
		}, []string{"method", "status"}),
		CounterRecoveredPanics: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "recovered_panics",
			Help:      "Handler panics recovered by the middleware, per route",
		}, []string{"route"}),
		CounterRateLimitedRequests: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rate_limited_requests",
			Help:      "The total number of rate limited requests",
		}),
		CounterCommands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "commands",
			Help:      "The total number of dispatched commands",
		}, []string{"command", "outcome"}),
		CounterFoodEntries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "food_entries_added",
			Help:      "The total number of added food entries",
		}),
		CounterWeightSamples: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "weight_samples_added",
			Help:      "The total number of added weight samples",
		}),
		CounterExerciseToggles: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "exercise_toggles",
			Help:      "The total number of exercise completion toggles",
		}),
		CounterThemeToggles: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "theme_changes",
			Help:      "The total number of display mode changes",
		}),
		CounterDashboardCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "dashboard_cache",
			Help:      "Dashboard cache lookups by result",
		}, []string{"result"}),

		GaugeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "current_requests",
			Help:      "Current number of requests served",
		}),
		GaugeLifeSignal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "life_signal",
			Help:      "Shows whether the service is alive",
		}),
		GaugeActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "active_workout_sessions",
			Help:      "Workout sessions started and not yet finished or dismissed",
		}),
		GaugeRealtimeClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "realtime_clients",
			Help:      "Connected websocket clients",
		}),

		HistogramRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Histogram of response time for requests in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"route", "method", "status_code"}),
	}
}
