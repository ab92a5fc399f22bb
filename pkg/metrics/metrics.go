package metrics

import "time"

type Metrics interface {
	// Business
	RecordCheckout(outcome string)
	RecordOrderStatusChange(status string)
	RecordUseCaseExecution(useCaseName string, success bool, duration time.Duration)

	// Infrastructure
	ObserveHTTPRequestDuration(method, path, statusCode string, duration float64)
	RecordNotification(channel, status string)
}
