package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
)

// OrderRequest payload for order create and update. The owner is never taken from the body.
type OrderRequest struct {
	OrderItems      []domain.OrderItem `json:"orderItems"`
	ShippingAddress *string            `json:"shippingAddress"`
	PaymentMethod   *string            `json:"paymentMethod"`
	TotalPrice      *decimal.Decimal   `json:"totalPrice"`
}
