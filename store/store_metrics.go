package store

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentStore wraps all store methods to instrument the underlying calls.
func InstrumentStore(s HighScoreStore) HighScoreStore { return &metrics{s} }

var (
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "store",
			Name:      "calls",
			Help:      "Calls processed by the high score store.",
		},
		[]string{"method"},
	)
	storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "Failed calls to the high score store.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return t.ObserveDuration
}

func countError(method string, err error) error {
	if err != nil {
		storeErrors.WithLabelValues(method).Inc()
	}
	return err
}

func init() {
	prometheus.MustRegister(storeCalls, storeErrors)
}

type metrics struct{ s HighScoreStore }

func (m *metrics) GetHighScore(c context.Context) (int, error) {
	defer instrument("GetHighScore")()
	score, err := m.s.GetHighScore(c)
	return score, countError("GetHighScore", err)
}

func (m *metrics) SetHighScore(c context.Context, score int) error {
	defer instrument("SetHighScore")()
	return countError("SetHighScore", m.s.SetHighScore(c, score))
}

// Close closes the wrapped store if it holds resources.
func (m *metrics) Close() error {
	if c, ok := m.s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
