package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name" validate:"required,max=150"`
	Description   string          `json:"description" validate:"max=250"`
	Price         decimal.Decimal `json:"price" validate:"gte=0.01"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
	Image         string          `json:"image" validate:"required,max=2048"`
	IDCategory    string          `json:"idCategory" validate:"required,uuid"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
