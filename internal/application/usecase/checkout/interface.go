package checkout

import (
	"context"
)

// UseCase converts a purchase/rental request into a persisted order, an
// inventory adjustment and two outbound notifications. Expected failure
// paths come back as a structured result, not an error.
type UseCase interface {
	Execute(ctx context.Context, input CheckoutInput) ResultDTO
}
