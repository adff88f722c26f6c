package session

import "github.com/prometheus/client_golang/prometheus"

var (
	ticksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "ticks_total",
			Help:      "Ticks that advanced the snake.",
		},
	)
	foodEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "food_eaten_total",
			Help:      "Food consumed across all sessions.",
		},
	)
	gamesOver = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "games_over_total",
			Help:      "Sessions that ended, by cause.",
		},
		[]string{"cause"},
	)
)

func init() {
	prometheus.MustRegister(ticksTotal, foodEaten, gamesOver)
}
