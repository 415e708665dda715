package metrics

import (
	"context"
	"net/http"
	"path"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Metrics raccoglie contatori e latenze delle RPC del career-svc.
type Metrics struct {
	Registry *prometheus.Registry
	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New crea un registry dedicato con i collector di processo e runtime.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "career",
			Subsystem: "grpc",
			Name:      "inflight_requests",
			Help:      "RPC in corso.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "career",
			Subsystem: "grpc",
			Name:      "requests_total",
			Help:      "RPC gestite per metodo e codice.",
		}, []string{"method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "career",
			Subsystem: "grpc",
			Name:      "request_duration_seconds",
			Help:      "Durata delle RPC.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms .. ~2.5s
		}, []string{"method"}),
	}
	m.Registry.MustRegister(
		m.inFlight,
		m.requests,
		m.duration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler espone il registry in formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// UnaryServerInterceptor misura ogni RPC; va messo prima del gate auth
// cosi' conta anche le chiamate rifiutate.
func (m *Metrics) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		resp, err := handler(ctx, req)

		method := path.Base(info.FullMethod)
		m.requests.WithLabelValues(method, status.Code(err).String()).Inc()
		m.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
		return resp, err
	}
}
