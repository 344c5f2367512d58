package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveRejection(t *testing.T) {
	m := NewWithRegistry("salon", prometheus.NewRegistry())

	m.ObserveRejection("overlap_detected")
	m.ObserveRejection("overlap_detected")
	m.ObserveRejection("no_shift_assigned")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValidationRejections.WithLabelValues("salon", "overlap_detected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationRejections.WithLabelValues("salon", "no_shift_assigned")))
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := NewWithRegistry("salon", prometheus.NewRegistry())

	m.ObserveHTTPRequest("GET", "/api/v1/available-slots", 200, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("salon", "GET", "/api/v1/available-slots", "200")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRejection("overlap_detected")
		m.ObserveSlotSearch(3)
		m.ObserveDBQuery("query", time.Millisecond)
		m.SetDBConnections("idle", 1)
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
	})
}
