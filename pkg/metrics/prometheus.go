package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Prometheus struct {
	checkouts       *prometheus.CounterVec
	statusChanges   *prometheus.CounterVec
	useCaseTotal    *prometheus.CounterVec
	useCaseDuration *prometheus.HistogramVec
	httpDuration    *prometheus.HistogramVec
	notifications   *prometheus.CounterVec
}

func NewPrometheusMetrics(reg prometheus.Registerer, serviceName string) *Prometheus {
	m := &Prometheus{
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "toolrent_checkout_total",
			Help:        "Total checkout attempts by outcome.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"outcome"}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "toolrent_order_status_changes_total",
			Help:        "Total order status changes.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		useCaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_usecase_total",
			Help:        "Total number of use case executions.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_usecase_duration_seconds",
			Help:        "Use case execution latency.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_http_duration_seconds",
			Help:        "HTTP request latency.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status_code"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "toolrent_notifications_total",
			Help:        "Total outbound notifications by channel and status.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"channel", "status"}),
	}

	reg.MustRegister(
		m.checkouts,
		m.statusChanges,
		m.useCaseTotal,
		m.useCaseDuration,
		m.httpDuration,
		m.notifications,
	)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func (p *Prometheus) RecordCheckout(outcome string) {
	p.checkouts.WithLabelValues(outcome).Inc()
}

func (p *Prometheus) RecordOrderStatusChange(status string) {
	p.statusChanges.WithLabelValues(status).Inc()
}

func (p *Prometheus) RecordUseCaseExecution(useCase string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	p.useCaseTotal.WithLabelValues(useCase, status).Inc()
	p.useCaseDuration.WithLabelValues(useCase, status).Observe(duration.Seconds())
}

func (p *Prometheus) ObserveHTTPRequestDuration(method, path, code string, duration float64) {
	p.httpDuration.WithLabelValues(method, path, code).Observe(duration)
}

func (p *Prometheus) RecordNotification(channel, status string) {
	p.notifications.WithLabelValues(channel, status).Inc()
}
