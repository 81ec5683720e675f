package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "tender_evaluations_total", Help: "Tender evaluations by decision outcome"},
		[]string{"decision"},
	)
	SessionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "session_requests_total", Help: "Requests issued against the session API"},
		[]string{"endpoint"},
	)
	SessionErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "session_errors_total", Help: "Failed session API requests"},
		[]string{"endpoint"},
	)
	CurrentTick = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "session_current_tick", Help: "Latest tick observed from the session clock"},
	)
)

func init() {
	prometheus.MustRegister(EvaluationsTotal, SessionRequestsTotal, SessionErrorsTotal, CurrentTick)
}

func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{ Addr: addr, Handler: mux }
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
