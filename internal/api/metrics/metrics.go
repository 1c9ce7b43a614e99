// Package metrics defines the builder's Prometheus metrics. Everything is
// registered against the registerer handed to New so tests and multiple
// routers can each own a registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rpg_builder"

type Metrics struct {
	// CharactersCreatedTotal is labelled by class (Warrior, Mage, Rogue).
	CharactersCreatedTotal *prometheus.CounterVec
	// GuildsCreatedTotal is labelled by guild type.
	GuildsCreatedTotal *prometheus.CounterVec
	GuildsRemovedTotal prometheus.Counter
	// GuildListSize observes the list length after every guild change.
	GuildListSize prometheus.Histogram
	// SignInAttemptsTotal is labelled by result: success, invalid, rejected.
	SignInAttemptsTotal *prometheus.CounterVec
	GuardRedirectsTotal prometheus.Counter
}

// New creates and registers all metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CharactersCreatedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "characters_created_total",
				Help:      "Total number of characters created, by class.",
			},
			[]string{"class"},
		),
		GuildsCreatedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "guilds_created_total",
				Help:      "Total number of guilds created, by type.",
			},
			[]string{"type"},
		),
		GuildsRemovedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guilds_removed_total",
			Help:      "Total number of guilds removed by name.",
		}),
		GuildListSize: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "guild_list_size",
			Help:      "Guild list length observed after each change.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
		}),
		SignInAttemptsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "signin_attempts_total",
				Help:      "Sign-in submissions, by result.",
			},
			[]string{"result"},
		),
		GuardRedirectsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guard_redirects_total",
			Help:      "Requests to protected pages redirected to sign-in.",
		}),
	}
}
