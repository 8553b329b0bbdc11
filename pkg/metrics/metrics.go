// Package metrics concentra os coletores prometheus expostos em /metrics
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "sdr_dashboard"

// Resultados possíveis de uma mutação
const (
	OutcomeApplied = "applied"
	OutcomeIgnored = "ignored"
	OutcomeFailed  = "failed"
)

// Collectors agrupa todos os coletores da aplicação
type Collectors struct {
	Registry *prometheus.Registry

	Mutations        *prometheus.CounterVec
	PersistenceSaves *prometheus.CounterVec
	PendingKeys      prometheus.Gauge
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
}

// New registra os coletores em um registry próprio, para que testes
// possam criar instâncias independentes
func New() *Collectors {
	c := &Collectors{
		Registry: prometheus.NewRegistry(),
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Mutações recebidas pelo painel, por operação e resultado.",
		}, []string{"operation", "outcome"}),
		PersistenceSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_saves_total",
			Help:      "Gravações no armazenamento, por resultado.",
		}, []string{"outcome"}),
		PendingKeys: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "persistence_pending_keys",
			Help:      "Coleções com gravação pendente.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requisições HTTP atendidas.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	c.Registry.MustRegister(
		c.Mutations,
		c.PersistenceSaves,
		c.PendingKeys,
		c.HTTPRequests,
		c.HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Mutation incrementa o contador da operação; aceita receptor nil
func (c *Collectors) Mutation(operation, outcome string) {
	if c == nil {
		return
	}
	c.Mutations.WithLabelValues(operation, outcome).Inc()
}

func (c *Collectors) Persisted(ok bool) {
	if c == nil {
		return
	}
	outcome := OutcomeApplied
	if !ok {
		outcome = OutcomeFailed
	}
	c.PersistenceSaves.WithLabelValues(outcome).Inc()
}

func (c *Collectors) SetPending(n int) {
	if c == nil {
		return
	}
	c.PendingKeys.Set(float64(n))
}
