package dto

import (
	"strings"

	"storefront-console/internal/models"
)

// CustomerLookupForm is submitted by the search and search-or-add buttons.
// Every field is optional.
type CustomerLookupForm struct {
	Name    string `json:"name" form:"name"`
	Surname string `json:"surname" form:"surname"`
	Email   string `json:"email" form:"email"`
}

func (f CustomerLookupForm) Criteria() models.SearchCriteria {
	return models.NewSearchCriteria(f.Name, f.Surname, f.Email)
}

func (f CustomerLookupForm) Values() map[string]string {
	return map[string]string{"name": f.Name, "surname": f.Surname, "email": f.Email}
}

// AddProductForm only has to be filled in. The backend owns every rule
// about what a valid price or amount is.
type AddProductForm struct {
	ProductName     string `json:"product_name" form:"product_name" validate:"required"`
	Price           string `json:"price" form:"price" validate:"required"`
	AvailableAmount string `json:"available_amount" form:"available_amount" validate:"required"`
}

// Trimmed returns the form with surrounding whitespace removed
func (f AddProductForm) Trimmed() AddProductForm {
	return AddProductForm{
		ProductName:     strings.TrimSpace(f.ProductName),
		Price:           strings.TrimSpace(f.Price),
		AvailableAmount: strings.TrimSpace(f.AvailableAmount),
	}
}

func (f AddProductForm) Values() map[string]string {
	return map[string]string{"product_name": f.ProductName, "price": f.Price, "available_amount": f.AvailableAmount}
}

type MakePurchaseForm struct {
	CustomerEmail    string `json:"customer_email" form:"customer_email" validate:"required"`
	ProductName      string `json:"product_name" form:"product_name" validate:"required"`
	AmountToPurchase string `json:"amount_to_purchase" form:"amount_to_purchase" validate:"required"`
}

func (f MakePurchaseForm) Trimmed() MakePurchaseForm {
	return MakePurchaseForm{
		CustomerEmail:    strings.TrimSpace(f.CustomerEmail),
		ProductName:      strings.TrimSpace(f.ProductName),
		AmountToPurchase: strings.TrimSpace(f.AmountToPurchase),
	}
}

func (f MakePurchaseForm) Values() map[string]string {
	return map[string]string{"customer_email": f.CustomerEmail, "product_name": f.ProductName, "amount_to_purchase": f.AmountToPurchase}
}

// AuditQuery filters GET /console/audit
type AuditQuery struct {
	Action string `query:"action" validate:"omitempty,max=100"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

// ActionResponse is returned by every console action
type ActionResponse struct {
	Action  string                   `json:"action"`
	Region  models.Region            `json:"region"`
	Render  models.RenderInstruction `json:"render"`
	States  []models.LookupState     `json:"states,omitempty"`
	TraceID string                   `json:"trace_id,omitempty"`
}

type RegionResponse struct {
	Region models.Region            `json:"region"`
	Render models.RenderInstruction `json:"render"`
	Empty  bool                     `json:"empty"`
}

type AuditLogListResponse struct {
	Entries []*models.AuditLog `json:"entries"`
	Total   int64              `json:"total"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
}
