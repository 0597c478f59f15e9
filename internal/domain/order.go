package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one product line of an order.
type OrderItem struct {
	IDProduct string `json:"idProduct" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// Order records what a user bought. No payment or fulfilment state is tracked.
type Order struct {
	ID              string          `json:"id"`
	IDUser          string          `json:"idUser" validate:"required,uuid"`
	OrderItems      []OrderItem     `json:"orderItems" validate:"required,min=1,dive"`
	ShippingAddress string          `json:"shippingAddress" validate:"required,max=250"`
	PaymentMethod   string          `json:"paymentMethod" validate:"max=50"`
	TotalPrice      decimal.Decimal `json:"totalPrice" validate:"gte=0.01"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
