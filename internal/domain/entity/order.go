package entity

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusNewOrder   OrderStatus = "NEW_ORDER"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// ParseOrderStatus validates a caller-supplied status value. There is no
// enforced transition graph: any status may be set to any other.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusNewOrder, StatusProcessing, StatusShipped, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("%w: %w: %q", ErrValidation, ErrUnknownOrderStatus, s)
}

// Order is a single purchase or rental of one product.
type Order struct {
	ID        int64       `db:"id" json:"id"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
	Status    OrderStatus `db:"status" json:"status"`
	// ProductStatus describes purchase vs rental, free text.
	ProductStatus   string `db:"product_status" json:"productStatus"`
	RentalPeriod    string `db:"rental_period" json:"rentalPeriod,omitempty"`
	CustomerName    string `db:"customer_name" json:"customerName"`
	CustomerEmail   string `db:"customer_email" json:"customerEmail"`
	CustomerPhone   string `db:"customer_phone" json:"customerPhone"`
	CustomerAddress string `db:"customer_address" json:"customerAddress"`
	ProductID       int64  `db:"product_id" json:"productId"`

	Product *Product `db:"-" json:"product,omitempty"`
}

func NewOrder(productID int64, productStatus string, createdAt time.Time) (*Order, error) {
	if productID <= 0 {
		return nil, ErrProductIsRequired
	}
	return &Order{
		CreatedAt:     createdAt,
		Status:        StatusNewOrder,
		ProductStatus: productStatus,
		ProductID:     productID,
	}, nil
}

func (o *Order) SetStatus(s OrderStatus) error {
	if _, err := ParseOrderStatus(string(s)); err != nil {
		return err
	}
	o.Status = s
	return nil
}
