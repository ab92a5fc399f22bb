package checkout

import (
	"context"
	"time"

	"github.com/ToolRent/GoToolRent/pkg/metrics"
)

type MetricsDecorator struct {
	Next    UseCase
	Metrics metrics.Metrics
}

func (d *MetricsDecorator) Execute(ctx context.Context, input CheckoutInput) ResultDTO {
	start := time.Now()
	result := d.Next.Execute(ctx, input)
	outcome := "success"
	if !result.IsSuccess {
		outcome = "failure"
	}
	d.Metrics.RecordCheckout(outcome)
	d.Metrics.RecordUseCaseExecution("Checkout", result.IsSuccess, time.Since(start))
	return result
}
