package dto

import (
	"storefront-console/internal/models"

	"github.com/shopspring/decimal"
)

// ---------- Storefront backend requests ----------

// AddProductRequest is the body of POST /add-product. Every field is the
// form text as typed, trimmed; the backend parses the numbers.
type AddProductRequest struct {
	ProductName     string `json:"product_name"`
	Price           string `json:"price"`
	AvailableAmount string `json:"available_amount"`
}

// MakePurchaseRequest is the body of POST /make-purchase
type MakePurchaseRequest struct {
	CustomerEmail    string `json:"customer_email"`
	ProductName      string `json:"product_name"`
	AmountToPurchase string `json:"amount_to_purchase"`
}

// AddCustomerRequest is the body of POST /add-customer
type AddCustomerRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

// ---------- Storefront backend responses ----------

// MessageResponse is returned by the add-product and make-purchase endpoints
type MessageResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SearchCustomersResponse carries either customers or an error. An empty
// error string counts as absent.
type SearchCustomersResponse struct {
	Customers []models.CustomerRecord `json:"customers"`
	Error     string                  `json:"error,omitempty"`
}

type AddCustomerResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// TotalPriceResponse leaves TotalPrice nil when the backend omits it.
type TotalPriceResponse struct {
	TotalPrice *decimal.Decimal `json:"total_price"`
}
