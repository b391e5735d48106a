package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "splitwise"

var (
	httpRequestsTotal *prometheus.CounterVec
	upstreamTotal     *prometheus.CounterVec
	registryInstances prometheus.Gauge
	registerOnce      sync.Once
)

// Register initializes Prometheus metrics on the default registry.
func Register() {
	registerOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed.",
		}, []string{"service", "method", "path", "status"})

		upstreamTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_upstream_requests_total",
			Help:      "Requests forwarded by the gateway, by route and upstream status.",
		}, []string{"route", "status"})

		registryInstances = promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_instances",
			Help:      "Instances currently held by the registry.",
		})
	})
}

// IncRequest increments the http_requests_total counter with the given labels.
func IncRequest(service, method, path string, status int) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(service, method, path, strconv.Itoa(status)).Inc()
}

func IncUpstream(route string, status int) {
	if upstreamTotal == nil {
		return
	}
	upstreamTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func SetRegistryInstances(n int) {
	if registryInstances == nil {
		return
	}
	registryInstances.Set(float64(n))
}

func Handler() http.Handler {
	return promhttp.Handler()
}
