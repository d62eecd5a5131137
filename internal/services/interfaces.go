package services

import (
	"context"
	"time"

	"storefront-console/internal/dto"
	"storefront-console/internal/models"
)

// DirectoryClientInterface is the storefront backend as seen by the console.
// Errors are *TransportError or *DomainError.
type DirectoryClientInterface interface {
	SearchCustomers(ctx context.Context, criteria models.SearchCriteria) (*dto.SearchCustomersResponse, error)
	AddCustomer(ctx context.Context, req dto.AddCustomerRequest) (*dto.AddCustomerResponse, error)
	AddProduct(ctx context.Context, req dto.AddProductRequest) (*dto.MessageResponse, error)
	MakePurchase(ctx context.Context, req dto.MakePurchaseRequest) (*dto.MessageResponse, error)
	ListCustomers(ctx context.Context) ([]models.CustomerListItem, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListPurchases(ctx context.Context) ([]models.Purchase, error)
	TotalPurchasePrice(ctx context.Context) (*dto.TotalPriceResponse, error)
}

// PresenterInterface turns render instructions into visible page state.
//
// Begin issues a new token for region. Render applies instr to region unless
// instr carries a token older than the newest one issued for that region, and
// reports whether it was applied. Untokened instructions always apply.
type PresenterInterface interface {
	Begin(region models.Region) uint64
	Render(region models.Region, instr models.RenderInstruction) bool
	Clear(regions ...models.Region)
	ResetForm(form models.Form)
}

// CustomerLookupControllerInterface runs a customer search with optional fallback creation
type CustomerLookupControllerInterface interface {
	Lookup(ctx context.Context, criteria models.SearchCriteria, createIfMissing bool) *models.LookupResult
}

// StorefrontServiceInterface covers the single request, single render actions of the page
type StorefrontServiceInterface interface {
	AddProduct(ctx context.Context, form dto.AddProductForm) *models.ActionResult
	MakePurchase(ctx context.Context, form dto.MakePurchaseForm) *models.ActionResult
	ListCustomers(ctx context.Context) *models.ActionResult
	ListProducts(ctx context.Context) *models.ActionResult
	ListPurchases(ctx context.Context) *models.ActionResult
	ShowTotal(ctx context.Context) *models.ActionResult
}

// AuditServiceInterface records console actions. Record never fails the caller.
type AuditServiceInterface interface {
	Record(ctx context.Context, entry AuditEntry)
	List(action string, offset, limit int) ([]*models.AuditLog, int64, error)
}

// ConsoleLoggerInterface emits the structured events of console actions
type ConsoleLoggerInterface interface {
	LogLookupStarted(ctx context.Context, criteria models.SearchCriteria, createIfMissing bool, token uint64)
	LogLookupCompleted(ctx context.Context, state models.LookupState, resultsCount int, durationMs int64)
	LogLookupFailed(ctx context.Context, errorMsg string, durationMs int64)
	LogFallbackCreate(ctx context.Context, email string, outcome string)
	LogStaleRenderDiscarded(ctx context.Context, region models.Region, token uint64)
	LogTransportError(ctx context.Context, operation string, err error)
	LogActionCompleted(ctx context.Context, action string, outcome string, durationMs int64)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
