package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	MembersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_members_created_total",
			Help: "Total number of members enrolled",
		},
	)

	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_payments_recorded_total",
			Help: "Total number of payments recorded",
		},
		[]string{"mode"},
	)

	InstallmentsSettledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_installments_settled_total",
			Help: "Total number of installments settled by recorded payments",
		},
	)

	ExportsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_exports_generated_total",
			Help: "Total number of CSV exports generated",
		},
		[]string{"entity"},
	)

	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_cache_hits_total",
			Help: "Snapshot cache hits and misses",
		},
		[]string{"entity", "result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordMemberCreated() {
	MembersCreatedTotal.Inc()
}

func RecordPayment(mode string) {
	PaymentsRecordedTotal.WithLabelValues(mode).Inc()
}

func RecordInstallmentSettled() {
	InstallmentsSettledTotal.Inc()
}

func RecordExport(entity string) {
	ExportsGeneratedTotal.WithLabelValues(entity).Inc()
}

func RecordCacheLookup(entity string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheHitsTotal.WithLabelValues(entity, result).Inc()
}
