package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ConnectedParticipants = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tictac_connected_participants",
			Help: "Number of currently connected participants",
		},
	)
	LiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tictac_live_sessions",
			Help: "Number of live game sessions",
		},
	)
	MovesApplied = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tictac_moves_applied_total",
			Help: "Total moves accepted by the session state machine",
		},
	)
	ChallengesProposed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tictac_challenges_proposed_total",
			Help: "Total challenge proposals delivered to opponents",
		},
	)
)

func init() {
	prometheus.MustRegister(ConnectedParticipants)
	prometheus.MustRegister(LiveSessions)
	prometheus.MustRegister(MovesApplied)
	prometheus.MustRegister(ChallengesProposed)
}
