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

	InvoicesComputedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_invoices_computed_total",
			Help: "Total number of invoices computed",
		},
	)

	AttendanceMarksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_attendance_marks_total",
			Help: "Total number of attendance mark/unmark operations",
		},
		[]string{"action", "result"},
	)

	SubscriptionsAssignedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_subscriptions_assigned_total",
			Help: "Total number of plan subscriptions assigned",
		},
		[]string{"category"},
	)

	PaymentResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_payment_resets_total",
			Help: "Total number of monthly payment resets applied",
		},
	)

	RemindersQueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_reminders_queued_total",
			Help: "Total number of payment reminder emails queued",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymdesk_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordAttendance(action, result string) {
	AttendanceMarksTotal.WithLabelValues(action, result).Inc()
}

func RecordInvoice() {
	InvoicesComputedTotal.Inc()
}

func RecordSubscription(category string) {
	SubscriptionsAssignedTotal.WithLabelValues(category).Inc()
}

func RecordPaymentReset() {
	PaymentResetsTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordReminderQueued() {
	RemindersQueuedTotal.Inc()
}
