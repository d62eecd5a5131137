package models

// Region names a result area of the console page.
type Region string

const (
	RegionProductMessage  Region = "product-message"
	RegionPurchaseResults Region = "purchase-results"
	RegionCustomerList    Region = "customer-list"
	RegionSearchResults   Region = "search-results"
	RegionProducts        Region = "products"
	RegionPurchases       Region = "purchases"
	RegionTotalPrice      Region = "total-price"
)

// Regions lists every region in page order.
var Regions = []Region{
	RegionProductMessage,
	RegionPurchaseResults,
	RegionCustomerList,
	RegionSearchResults,
	RegionProducts,
	RegionPurchases,
	RegionTotalPrice,
}

// ListingRegions are cleared before every listing action. The customer
// search results and purchase results are deliberately absent.
var ListingRegions = []Region{
	RegionCustomerList,
	RegionProducts,
	RegionPurchases,
	RegionTotalPrice,
	RegionProductMessage,
}

func ParseRegion(s string) (Region, bool) {
	for _, r := range Regions {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// Form names an input form of the console page.
type Form string

const (
	FormAddProduct   Form = "add-product-form"
	FormMakePurchase Form = "make-purchase-form"
	FormCustomer     Form = "customer-form"
)

// FormFields lists the inputs of each form.
var FormFields = map[Form][]string{
	FormAddProduct:   {"product_name", "price", "available_amount"},
	FormMakePurchase: {"customer_email", "product_name", "amount_to_purchase"},
	FormCustomer:     {"name", "surname", "email"},
}
