package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Purchase struct {
	PurchaseID Identifier      `json:"purchase_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Products   []PurchaseLine  `json:"products"`
}

type PurchaseLine struct {
	ProductName string   `json:"product_name"`
	Amount      Quantity `json:"amount"`
}

// ProductDetails renders the purchased lines as "name (xN), ...".
func (p Purchase) ProductDetails() string {
	parts := make([]string, 0, len(p.Products))
	for _, line := range p.Products {
		parts = append(parts, fmt.Sprintf("%s (x%s)", line.ProductName, line.Amount))
	}
	return strings.Join(parts, ", ")
}
