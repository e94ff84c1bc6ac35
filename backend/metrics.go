package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	aiMovesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "renju_ai_moves_total",
		Help: "Automated moves selected, by selector stage.",
	}, []string{"source"})

	searchDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "renju_search_duration_seconds",
		Help:    "Wall time spent selecting an automated move.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 13),
	})

	searchNodesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "renju_search_nodes_total",
		Help: "Alpha-beta nodes visited.",
	})

	searchTimeoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "renju_search_timeouts_total",
		Help: "Searches cut short by the deadline.",
	})

	movesRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "renju_moves_rejected_total",
		Help: "Rejected placements, by reason.",
	}, []string{"reason"})

	gamesStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "renju_games_started_total",
		Help: "Games started.",
	})

	gamesFinishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "renju_games_finished_total",
		Help: "Finished games, by outcome.",
	}, []string{"outcome"})
)

func observeSearch(result SearchResult) {
	aiMovesTotal.WithLabelValues(string(result.Source)).Inc()
	searchDurationSeconds.Observe(result.Elapsed.Seconds())
	searchNodesTotal.Add(float64(result.Nodes))
	if result.TimedOut {
		searchTimeoutsTotal.Inc()
	}
}
