package models

import "github.com/shopspring/decimal"

type Product struct {
	ProductName     string          `json:"product_name"`
	Price           decimal.Decimal `json:"price"`
	AvailableAmount Quantity        `json:"available_amount"`
}
