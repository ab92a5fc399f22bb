package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ToolRent/GoToolRent/internal/application/port/outbound"
	"github.com/ToolRent/GoToolRent/internal/domain/entity"
	"github.com/ToolRent/GoToolRent/internal/domain/specification"
	"github.com/ToolRent/GoToolRent/pkg/logger"
)

const (
	defaultProductStatus = "purchase"
	unknownField         = "unknown"
)

// OperatorContact is where checkout notifications go.
type OperatorContact struct {
	SMSFrom string
	SMSTo   string
	EmailTo string
}

// UseCaseImpl runs the checkout workflow:
//
//  1. validate the request (no transaction opened yet)
//  2. fetch the product with its category
//  3. create the order and flush it
//  4. notify: SMS best effort, email decides the overall result
//  5. decrement stock, floored at zero, and flush
//
// The order flush in step 3 is deliberately not wrapped together with
// step 5 in one transaction, and an email failure in step 4 still
// reports overall failure after the order row is durable. Both quirks
// are kept for compatibility with the system this replaces; the
// corrected shape would span steps 3-5 in a single transaction and
// treat notification failure as non-fatal.
type UseCaseImpl struct {
	UowFactory outbound.UnitOfWorkFactory
	SMS        outbound.SMSSender
	Email      outbound.EmailSender
	Log        logger.Logger
	Operator   OperatorContact

	// NotifyAdminUser resolves the admin user's email as the mail target
	// instead of the operator address.
	NotifyAdminUser bool

	// Now is replaceable in tests.
	Now func() time.Time
}

func NewCheckoutUseCase(
	factory outbound.UnitOfWorkFactory,
	sms outbound.SMSSender,
	email outbound.EmailSender,
	log logger.Logger,
	operator OperatorContact,
) *UseCaseImpl {
	return &UseCaseImpl{
		UowFactory: factory,
		SMS:        sms,
		Email:      email,
		Log:        log,
		Operator:   operator,
		Now:        time.Now,
	}
}

func (uc *UseCaseImpl) Execute(ctx context.Context, input CheckoutInput) ResultDTO {
	if msg := validate(input); msg != "" {
		return failure(msg)
	}

	uow := uc.UowFactory.New()
	defer uow.Close(ctx)

	product, err := uow.Products().GetBySpec(ctx, specification.ProductByID(input.ProductID))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return failure(fmt.Sprintf("product %d not found", input.ProductID))
		}
		uc.Log.Error(ctx, "checkout: product lookup failed",
			logger.Int64("product_id", input.ProductID), logger.WithError(err))
		return failure("checkout failed: could not load product")
	}

	order, err := uc.createOrder(ctx, uow, input)
	if err != nil {
		uc.Log.Error(ctx, "checkout: order creation failed",
			logger.Int64("product_id", input.ProductID), logger.WithError(err))
		return failure("checkout failed: could not create order")
	}

	body := notificationBody(order, product)

	if err := uc.SMS.SendSMS(ctx, uc.Operator.SMSFrom, uc.Operator.SMSTo, body); err != nil {
		// SMS is best effort: log and move on.
		uc.Log.Warn(ctx, "checkout: sms notification failed",
			logger.Int64("order_id", order.ID), logger.WithError(err))
	}

	emailErr := uc.Email.SendEmail(ctx, uc.emailTarget(ctx, uow),
		fmt.Sprintf("New order #%d", order.ID), emailBody(order, product))

	product.DecrementQuantity()
	if err := uow.Products().Update(ctx, product); err != nil {
		uc.Log.Error(ctx, "checkout: stock decrement staging failed",
			logger.Int64("product_id", product.ID), logger.WithError(err))
		return failure("checkout failed: could not adjust stock")
	}
	if _, err := uow.Flush(ctx); err != nil {
		uc.Log.Error(ctx, "checkout: stock decrement flush failed",
			logger.Int64("product_id", product.ID), logger.WithError(err))
		return failure("checkout failed: could not adjust stock")
	}

	if emailErr != nil {
		uc.Log.Error(ctx, "checkout: email notification failed",
			logger.Int64("order_id", order.ID), logger.WithError(emailErr))
		return failure(fmt.Sprintf("order %d created but confirmation email failed", order.ID))
	}

	uc.Log.Info(ctx, "checkout completed",
		logger.Int64("order_id", order.ID),
		logger.Int64("product_id", product.ID),
		logger.Int("quantity_left", product.Quantity),
	)
	return success(fmt.Sprintf("order %d placed", order.ID))
}

func validate(input CheckoutInput) string {
	var missing []string
	if input.CustomerName == "" {
		missing = append(missing, "customer name")
	}
	if input.CustomerEmail == "" {
		missing = append(missing, "customer email")
	}
	if input.CustomerPhone == "" {
		missing = append(missing, "customer phone")
	}
	if input.ProductID <= 0 {
		missing = append(missing, "product id")
	}
	if len(missing) > 0 {
		return fmt.Sprintf("%v: missing %s", entity.ErrValidation, strings.Join(missing, ", "))
	}
	return ""
}

func (uc *UseCaseImpl) createOrder(ctx context.Context, uow outbound.UnitOfWork, input CheckoutInput) (*entity.Order, error) {
	productStatus := input.ProductStatus
	if productStatus == "" {
		productStatus = defaultProductStatus
	}
	order, err := entity.NewOrder(input.ProductID, productStatus, uc.Now())
	if err != nil {
		return nil, err
	}
	order.RentalPeriod = input.RentalPeriod
	order.CustomerName = input.CustomerName
	order.CustomerEmail = input.CustomerEmail
	order.CustomerPhone = input.CustomerPhone
	order.CustomerAddress = orDefault(input.CustomerAddress)

	if err := uow.Orders().Add(ctx, order); err != nil {
		return nil, err
	}
	if _, err := uow.Flush(ctx); err != nil {
		return nil, err
	}
	return order, nil
}

func orDefault(v string) string {
	if v == "" {
		return unknownField
	}
	return v
}

// emailTarget resolves where the order email goes. With NotifyAdminUser
// set it looks up the admin account through the repository escape hatch,
// falling back to the operator address when none exists.
func (uc *UseCaseImpl) emailTarget(ctx context.Context, uow outbound.UnitOfWork) string {
	if !uc.NotifyAdminUser {
		return uc.Operator.EmailTo
	}
	admin, err := uow.Users().Find(ctx, specification.Where("role = ?", entity.RoleAdmin))
	if err != nil {
		uc.Log.Warn(ctx, "checkout: admin user lookup failed, using operator address",
			logger.WithError(err))
		return uc.Operator.EmailTo
	}
	return admin.Email
}

func notificationBody(order *entity.Order, product *entity.Product) string {
	category := ""
	if product.Category != nil {
		category = product.Category.Name
	}
	return fmt.Sprintf("Order #%d: %s %s (%s) for %s, phone %s",
		order.ID, product.Brand, product.Name, category, order.CustomerName, order.CustomerPhone)
}

func emailBody(order *entity.Order, product *entity.Product) string {
	category := ""
	if product.Category != nil {
		category = product.Category.Name
	}
	return fmt.Sprintf(
		"<h2>New order #%d</h2>"+
			"<p>Product: %s %s %s (%s)</p>"+
			"<p>Type: %s, rental period: %s</p>"+
			"<p>Customer: %s &lt;%s&gt;, %s</p>"+
			"<p>Address: %s</p>",
		order.ID,
		product.Brand, product.Name, product.Model, category,
		order.ProductStatus, order.RentalPeriod,
		order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.CustomerAddress,
	)
}
