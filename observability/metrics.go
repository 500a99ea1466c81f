package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the prometheus collectors of the service.
// Collectors are registered on the registerer given to NewMetrics so tests
// can use an isolated registry.
type Metrics struct {
	KeychainCacheHits   prometheus.Counter
	KeychainCacheMisses prometheus.Counter
	KeychainFetchErrors prometheus.Counter
	Downloads           *prometheus.CounterVec
	DownloadBytes       prometheus.Counter
	RequestCounter      *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		KeychainCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flight_parser",
			Subsystem: "keychain",
			Name:      "cache_hits_total",
			Help:      "Keychain lookups served from the cache",
		}),
		KeychainCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flight_parser",
			Subsystem: "keychain",
			Name:      "cache_misses_total",
			Help:      "Keychain lookups that required the remote keychain service",
		}),
		KeychainFetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flight_parser",
			Subsystem: "keychain",
			Name:      "fetch_errors_total",
			Help:      "Failed calls to the remote keychain service",
		}),
		Downloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flight_parser",
			Subsystem: "download",
			Name:      "total",
			Help:      "Flight log downloads by outcome",
		}, []string{"outcome"}),
		DownloadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flight_parser",
			Subsystem: "download",
			Name:      "bytes_total",
			Help:      "Bytes written to temporary flight log files",
		}),
		RequestCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flight_parser",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of API requests",
		}, []string{"method", "path", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "flight_parser",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"method", "path"}),
	}
	reg.MustRegister(
		m.KeychainCacheHits,
		m.KeychainCacheMisses,
		m.KeychainFetchErrors,
		m.Downloads,
		m.DownloadBytes,
		m.RequestCounter,
		m.RequestDuration,
	)
	return m
}
