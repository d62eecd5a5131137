package services

import (
	"fmt"

	"storefront-console/internal/dto"
	"storefront-console/internal/models"
)

// User-visible messages
const (
	MsgSearching             = "Searching..."
	MsgSearchFailed          = "Error retrieving customer data."
	MsgIdentityRequired      = "Please enter Name, Surname, and Email to add a new customer."
	MsgNoCustomers           = "No customers found."
	MsgCustomerAdded         = "Customer added successfully."
	MsgCustomerAddFailed     = "Failed to add customer."
	MsgCustomerAddError      = "Error adding customer."
	MsgMatchingCustomers     = "Matching Customers:"
	MsgNoCustomerPurchases   = "No purchases found for this customer."
	MsgPurchasesHeading      = "Purchases:"
	MsgProductFieldsRequired = "Please fill out all required fields."
	MsgPurchaseFieldsMissing = "All fields are required!"
	MsgPurchaseFailed        = "Failed to process purchase."
	MsgNoProducts            = "No products found."
	MsgNoPurchases           = "No purchases found."
	MsgNoPurchaseData        = "No purchase data available."
	MsgCustomersListFailed   = "Error retrieving data."
	MsgProductsListFailed    = "Error retrieving products."
	MsgPurchasesListFailed   = "Error retrieving purchases."
	MsgTotalFailed           = "Error retrieving total price."
)

// customerCards renders search matches. An empty match list becomes the
// no-customers message rather than an empty card list.
func customerCards(customers []models.CustomerRecord) models.RenderInstruction {
	if len(customers) == 0 {
		return models.Failure(MsgNoCustomers)
	}

	cards := make([]models.CustomerCard, 0, len(customers))
	for _, c := range customers {
		card := models.CustomerCard{
			Name:  c.FullName(),
			Email: c.Email,
		}
		if len(c.Purchases) == 0 {
			card.NoPurchasesLabel = MsgNoCustomerPurchases
		} else {
			card.PurchasesHeading = MsgPurchasesHeading
		}
		for _, p := range c.Purchases {
			card.Purchases = append(card.Purchases, models.PurchaseCard{
				PurchaseID: p.PurchaseID.String(),
				TotalPrice: p.TotalPrice.String(),
			})
		}
		cards = append(cards, card)
	}

	return models.RenderInstruction{
		Variant: models.VariantInfo,
		Heading: MsgMatchingCustomers,
		Cards:   cards,
	}
}

func customerLines(items []models.CustomerListItem) models.RenderInstruction {
	if len(items) == 0 {
		return models.Info(MsgNoCustomers)
	}
	lines := make([]string, 0, len(items))
	for _, c := range items {
		lines = append(lines, fmt.Sprintf("Name: %s %s, Email: %s", c.Name, c.Surname, c.Email))
	}
	return models.List("", lines)
}

func productLines(products []models.Product) models.RenderInstruction {
	if len(products) == 0 {
		return models.Info(MsgNoProducts)
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("Product: %s, Price: %s, Amount: %s", p.ProductName, p.Price.String(), p.AvailableAmount))
	}
	return models.List("", lines)
}

func purchaseLines(purchases []models.Purchase) models.RenderInstruction {
	if len(purchases) == 0 {
		return models.Info(MsgNoPurchases)
	}
	lines := make([]string, 0, len(purchases))
	for _, p := range purchases {
		lines = append(lines, fmt.Sprintf("Purchase ID: %s, Total price: %s, Products: %s", p.PurchaseID, p.TotalPrice.String(), p.ProductDetails()))
	}
	return models.List("", lines)
}

func totalLine(resp *dto.TotalPriceResponse) models.RenderInstruction {
	if resp == nil || resp.TotalPrice == nil {
		return models.Info(MsgNoPurchaseData)
	}
	return models.Info("Total Price: $" + resp.TotalPrice.String())
}
