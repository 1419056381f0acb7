package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/grsnucleo/portal-grs/internal/utils"
)

// Metricas agrupa as métricas HTTP e de autenticação da API
type Metricas struct {
	registry        *prometheus.Registry
	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	activeRequests  prometheus.Gauge
	logins          *prometheus.CounterVec
}

// Nova cria e registra as métricas num registry próprio
func Nova() *Metricas {
	reg := prometheus.NewRegistry()
	m := &Metricas{
		registry: reg,
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_grs_requests_total",
				Help: "Total de requisições HTTP por rota, método e status",
			},
			[]string{"path", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portal_grs_request_duration_seconds",
				Help:    "Duração das requisições HTTP em segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "portal_grs_active_requests",
			Help: "Requisições em andamento",
		}),
		logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_grs_logins_total",
				Help: "Tentativas de login por resultado",
			},
			[]string{"resultado"},
		),
	}
	reg.MustRegister(
		m.requestCounter,
		m.requestDuration,
		m.activeRequests,
		m.logins,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler expõe o endpoint do Prometheus
func (m *Metricas) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware registra contagem e duração por template de rota
func (m *Metricas) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := "unknown"
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}

		m.activeRequests.Inc()
		defer m.activeRequests.Dec()

		start := time.Now()
		sw := utils.NewStatusWriter(w)
		next.ServeHTTP(sw, r)

		m.requestCounter.WithLabelValues(path, r.Method, strconv.Itoa(sw.Status)).Inc()
		m.requestDuration.WithLabelValues(path, r.Method).Observe(time.Since(start).Seconds())
	})
}

// LoginRegistrado conta uma tentativa de login ("sucesso" ou "falha")
func (m *Metricas) LoginRegistrado(resultado string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(resultado).Inc()
}
