package main

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridflow/powerflow"
)

// runMetrics tracks sweep progress for scraping while a long run executes.
type runMetrics struct {
	demand     prometheus.Gauge
	totalPower prometheus.Gauge
	rows       prometheus.Counter
}

func newRunMetrics(reg *prometheus.Registry) *runMetrics {
	return &runMetrics{
		demand: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "gridflow_demand_amperes",
			Help: "Per-consumer current demand of the latest accepted step",
		}),
		totalPower: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "gridflow_total_power_watts",
			Help: "Total consumed power of the latest accepted step",
		}),
		rows: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "gridflow_rows_total",
			Help: "Accepted demand steps so far",
		}),
	}
}

func (m *runMetrics) observe(row powerflow.Row) {
	m.demand.Set(row.Current)
	m.totalPower.Set(row.TotalPower)
	m.rows.Inc()
}

// serveMetrics exposes the registry on addr for the lifetime of the
// process. The sweep does not wait for scrapes.
func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server: %v", err)
		}
	}()
}
