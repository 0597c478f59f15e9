package dto

import "github.com/shopspring/decimal"

// CategoryRequest payload for category create and update. Update treats nil as unchanged.
type CategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ProductRequest payload for product create and update. Update treats nil as unchanged.
type ProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stockQuantity"`
	Image         *string          `json:"image"`
	IDCategory    *string          `json:"idCategory"`
}
