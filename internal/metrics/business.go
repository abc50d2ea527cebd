// SPDX-License-Identifier: MIT
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Lookup metrics
	lookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lookupbot_lookup_duration_seconds",
		Help:    "Duration of outbound lookup calls by identifier kind and status",
		Buckets: prometheus.ExponentialBuckets(0.05, 2.0, 10),
	}, []string{"kind", "status"})

	lookupTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lookupbot_lookup_total",
		Help: "Outbound lookups by identifier kind and outcome",
	}, []string{"kind", "outcome"}) // outcome=success|timeout|http_status|transport|parse

	// Report metrics
	reportFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lookupbot_report_fallbacks_total",
		Help: "Reports replaced by the apology text after a formatting failure",
	}, []string{"kind"})

	reportsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lookupbot_reports_rendered_total",
		Help: "Reports rendered by identifier kind and record presence",
	}, []string{"kind", "records"}) // records=present|empty
)

// ObserveLookup records one outbound lookup. status is 0 when no HTTP
// response was received.
func ObserveLookup(kind, outcome string, status int, d time.Duration) {
	statusLabel := "0"
	if status > 0 {
		statusLabel = strconv.Itoa(status)
	}
	lookupDuration.WithLabelValues(kind, statusLabel).Observe(d.Seconds())
	lookupTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordReportFallback counts an apology report.
func RecordReportFallback(kind string) {
	reportFallbacks.WithLabelValues(kind).Inc()
}

// RecordReportRendered counts a successfully rendered report.
func RecordReportRendered(kind string, hasRecords bool) {
	records := "empty"
	if hasRecords {
		records = "present"
	}
	reportsRendered.WithLabelValues(kind, records).Inc()
}
