package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the dashboard core.
type Metrics struct {
	ReportsCreated     *prometheus.CounterVec // labels: source={user,simulator}
	SocialPostsCreated *prometheus.CounterVec // labels: source={user,simulator}
	ReportsVerified    prometheus.Counter

	NotificationsPushed    prometheus.Counter
	NotificationsExpired   prometheus.Counter
	NotificationsDismissed prometheus.Counter

	SimulatorTicks prometheus.Counter
	LoginAttempts  *prometheus.CounterVec // labels: outcome={success,rejected,invalid}

	ActiveMarkers prometheus.Gauge
	StatsCoverage prometheus.Gauge
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsCreated,
		m.SocialPostsCreated,
		m.ReportsVerified,
		m.NotificationsPushed,
		m.NotificationsExpired,
		m.NotificationsDismissed,
		m.SimulatorTicks,
		m.LoginAttempts,
		m.ActiveMarkers,
		m.StatsCoverage,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oceanguard",
			Name:      "reports_created_total",
			Help:      "Hazard reports added to the store, by source.",
		}, []string{"source"}),
		SocialPostsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oceanguard",
			Name:      "social_posts_created_total",
			Help:      "Social posts added to the store, by source.",
		}, []string{"source"}),
		ReportsVerified: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceanguard",
			Name:      "reports_verified_total",
			Help:      "Reports transitioned to verified.",
		}),
		NotificationsPushed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceanguard",
			Name:      "notifications_pushed_total",
			Help:      "Notifications pushed to the queue.",
		}),
		NotificationsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceanguard",
			Name:      "notifications_expired_total",
			Help:      "Notifications removed by auto-expiry.",
		}),
		NotificationsDismissed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceanguard",
			Name:      "notifications_dismissed_total",
			Help:      "Notifications removed by explicit dismissal.",
		}),
		SimulatorTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceanguard",
			Name:      "simulator_ticks_total",
			Help:      "Completed background simulation ticks.",
		}),
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oceanguard",
			Name:      "login_attempts_total",
			Help:      "Login and signup attempts, by outcome.",
		}, []string{"outcome"}),
		ActiveMarkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "oceanguard",
			Name:      "active_markers",
			Help:      "Markers currently present on the map layer.",
		}),
		StatsCoverage: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "oceanguard",
			Name:      "stats_coverage_percent",
			Help:      "Current monitoring coverage percentage.",
		}),
	}
}
