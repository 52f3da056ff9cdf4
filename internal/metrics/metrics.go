package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Set holds the tracker collectors on a private registry, so multiple
// trackers in one process never collide on registration.
type Set struct {
	registry *prometheus.Registry

	Polls           prometheus.Counter
	PollErrors      prometheus.Counter
	ProductsFetched prometheus.Counter
	TokensLeft      prometheus.Gauge
}

// NewSet creates and registers all tracker collectors.
func NewSet() *Set {
	s := &Set{
		registry: prometheus.NewRegistry(),
		Polls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "keepa_tracker_polls_total",
			Help: "Completed poll cycles.",
		}),
		PollErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "keepa_tracker_poll_errors_total",
			Help: "Poll cycles that ended in an error.",
		}),
		ProductsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "keepa_tracker_products_fetched_total",
			Help: "Products returned across all poll cycles.",
		}),
		TokensLeft: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "keepa_tracker_tokens_left",
			Help: "API tokens left after the most recent response.",
		}),
	}
	s.registry.MustRegister(s.Polls, s.PollErrors, s.ProductsFetched, s.TokensLeft)
	return s
}

// Handler serves the set's registry in Prometheus text format.
func (s *Set) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
