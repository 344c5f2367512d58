package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллекция Prometheus метрик сервиса
type Metrics struct {
	service string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBConnections   *prometheus.GaugeVec

	ValidationRejections *prometheus.CounterVec
	SlotSearchResults    *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в глобальном реестре (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		service: serviceName,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "route"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"service", "operation"},
		),
		DBConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_connections",
				Help: "Database connection pool state",
			},
			[]string{"service", "state"},
		),
		ValidationRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduling_validation_rejections_total",
				Help: "Appointments rejected by the conflict validator, by reason",
			},
			[]string{"service", "reason"},
		),
		SlotSearchResults: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scheduling_slot_search_results",
				Help:    "Number of slots returned by availability search",
				Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
			},
			[]string{"service"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBConnections,
		m.ValidationRejections,
		m.SlotSearchResults,
	)

	return m
}

// ObserveHTTPRequest записывает результат HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.service, method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.service, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(state string, value int) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues(m.service, state).Set(float64(value))
}

// ObserveRejection учитывает отказ валидатора по причине reason
func (m *Metrics) ObserveRejection(reason string) {
	if m == nil {
		return
	}
	m.ValidationRejections.WithLabelValues(m.service, reason).Inc()
}

// ObserveSlotSearch учитывает количество найденных слотов
func (m *Metrics) ObserveSlotSearch(count int) {
	if m == nil {
		return
	}
	m.SlotSearchResults.WithLabelValues(m.service).Observe(float64(count))
}
