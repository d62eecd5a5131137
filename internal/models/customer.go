package models

import "github.com/shopspring/decimal"

// CustomerRecord is a customer as returned by a directory search. It is
// display data only and is never modified after decoding.
type CustomerRecord struct {
	Name      string            `json:"name"`
	Surname   string            `json:"surname"`
	Email     string            `json:"email"`
	Purchases []PurchaseSummary `json:"purchases"`
}

// FullName joins name and surname the way customer cards show them.
func (c CustomerRecord) FullName() string {
	return c.Name + " " + c.Surname
}

type PurchaseSummary struct {
	PurchaseID Identifier      `json:"purchase_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// CustomerListItem is one row of the full customer listing.
type CustomerListItem struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}
