package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"time"

	"storefront-console/internal/dto"
	"storefront-console/internal/models"
	"storefront-console/internal/validation"
)

// StorefrontService runs the product, purchase and listing actions of the
// console. Each action makes one directory call and renders one region.
type StorefrontService struct {
	directory DirectoryClientInterface
	presenter PresenterInterface
	validator *validation.Validator
	logger    ConsoleLoggerInterface
	metrics   MetricsRecorderInterface
	audit     AuditServiceInterface
}

func NewStorefrontService(
	directory DirectoryClientInterface,
	presenter PresenterInterface,
	logger ConsoleLoggerInterface,
	metrics MetricsRecorderInterface,
	audit AuditServiceInterface,
) StorefrontServiceInterface {
	return &StorefrontService{
		directory: directory,
		presenter: presenter,
		validator: validation.GetValidator(),
		logger:    logger,
		metrics:   metrics,
		audit:     audit,
	}
}

func (s *StorefrontService) AddProduct(ctx context.Context, form dto.AddProductForm) *models.ActionResult {
	start := time.Now()
	result := &models.ActionResult{Action: models.AuditActionProductAdded, Region: models.RegionProductMessage}
	form = form.Trimmed()

	if err := s.validator.Struct(form); err != nil {
		s.reject(ctx, result, err, MsgProductFieldsRequired)
		s.complete(ctx, result, start, form.ProductName, nil)
		return result
	}

	resp, err := s.directory.AddProduct(ctx, dto.AddProductRequest{
		ProductName:     form.ProductName,
		Price:           form.Price,
		AvailableAmount: form.AvailableAmount,
	})

	var domainErr *DomainError
	switch {
	case err == nil:
		s.render(result, models.Success(resp.Message))
		s.presenter.ResetForm(models.FormAddProduct)
	case errors.As(err, &domainErr):
		result.Err = err
		message := domainErr.Message
		if message == "" {
			message = fmt.Sprintf("Error submitting form: HTTP %d", domainErr.Status)
		}
		s.render(result, models.Failure(message))
	default:
		result.Err = err
		s.logger.LogTransportError(ctx, "add product", err)
		s.render(result, models.Failure("Error submitting form: "+transportCause(err)))
	}

	s.complete(ctx, result, start, form.ProductName, models.JSONBMap{
		"price":            form.Price,
		"available_amount": form.AvailableAmount,
	})
	return result
}

func (s *StorefrontService) MakePurchase(ctx context.Context, form dto.MakePurchaseForm) *models.ActionResult {
	start := time.Now()
	result := &models.ActionResult{Action: models.AuditActionPurchaseMade, Region: models.RegionPurchaseResults}
	form = form.Trimmed()

	if err := s.validator.Struct(form); err != nil {
		s.reject(ctx, result, err, MsgPurchaseFieldsMissing)
		s.complete(ctx, result, start, form.ProductName, nil)
		return result
	}

	resp, err := s.directory.MakePurchase(ctx, dto.MakePurchaseRequest{
		CustomerEmail:    form.CustomerEmail,
		ProductName:      form.ProductName,
		AmountToPurchase: form.AmountToPurchase,
	})

	var domainErr *DomainError
	switch {
	case err == nil:
		s.render(result, models.Success(resp.Message))
		s.presenter.ResetForm(models.FormMakePurchase)
	case errors.As(err, &domainErr):
		result.Err = err
		s.render(result, models.Failure("Error: "+domainErr.Message))
	default:
		result.Err = err
		s.logger.LogTransportError(ctx, "make purchase", err)
		s.render(result, models.Failure(MsgPurchaseFailed))
	}

	s.complete(ctx, result, start, form.ProductName, models.JSONBMap{
		"customer_email":     maskEmail(form.CustomerEmail),
		"amount_to_purchase": form.AmountToPurchase,
	})
	return result
}

func (s *StorefrontService) ListCustomers(ctx context.Context) *models.ActionResult {
	start := time.Now()
	result := s.beginListing(models.AuditActionListCustomers, models.RegionCustomerList)

	items, err := s.directory.ListCustomers(ctx)
	if err != nil {
		s.listFailed(ctx, result, err, MsgCustomersListFailed)
	} else {
		s.render(result, customerLines(items))
	}

	s.complete(ctx, result, start, "", models.JSONBMap{"count": len(items)})
	return result
}

func (s *StorefrontService) ListProducts(ctx context.Context) *models.ActionResult {
	start := time.Now()
	result := s.beginListing(models.AuditActionListProducts, models.RegionProducts)

	products, err := s.directory.ListProducts(ctx)
	if err != nil {
		s.listFailed(ctx, result, err, MsgProductsListFailed)
	} else {
		s.render(result, productLines(products))
	}

	s.complete(ctx, result, start, "", models.JSONBMap{"count": len(products)})
	return result
}

func (s *StorefrontService) ListPurchases(ctx context.Context) *models.ActionResult {
	start := time.Now()
	result := s.beginListing(models.AuditActionListPurchases, models.RegionPurchases)

	purchases, err := s.directory.ListPurchases(ctx)
	if err != nil {
		s.listFailed(ctx, result, err, MsgPurchasesListFailed)
	} else {
		s.render(result, purchaseLines(purchases))
	}

	s.complete(ctx, result, start, "", models.JSONBMap{"count": len(purchases)})
	return result
}

func (s *StorefrontService) ShowTotal(ctx context.Context) *models.ActionResult {
	start := time.Now()
	result := s.beginListing(models.AuditActionTotalViewed, models.RegionTotalPrice)

	total, err := s.directory.TotalPurchasePrice(ctx)
	if err != nil {
		s.listFailed(ctx, result, err, MsgTotalFailed)
	} else {
		s.render(result, totalLine(total))
	}

	s.complete(ctx, result, start, "", nil)
	return result
}

// beginListing clears every listing region and the product form
func (s *StorefrontService) beginListing(action string, region models.Region) *models.ActionResult {
	s.presenter.Clear(models.ListingRegions...)
	s.presenter.ResetForm(models.FormAddProduct)
	return &models.ActionResult{Action: action, Region: region}
}

func (s *StorefrontService) listFailed(ctx context.Context, result *models.ActionResult, err error, message string) {
	result.Err = err
	s.logger.LogTransportError(ctx, result.Action, err)
	s.render(result, models.Failure(message))
}

func (s *StorefrontService) render(result *models.ActionResult, instr models.RenderInstruction) {
	result.Render = instr
	s.presenter.Render(result.Region, instr)
}

// reject renders the form's missing-fields message
func (s *StorefrontService) reject(ctx context.Context, result *models.ActionResult, err error, message string) {
	fields := make([]string, 0)
	for field := range validation.FieldErrors(err) {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	result.Err = &ValidationError{Message: message, Fields: fields}
	s.logger.LogValidationFailure(ctx, result.Action, result.Err.Error())
	s.render(result, models.Failure(message))
}

func (s *StorefrontService) complete(ctx context.Context, result *models.ActionResult, start time.Time, resourceID string, metadata models.JSONBMap) {
	duration := time.Since(start)
	outcome := outcomeOf(result.Err)

	s.logger.LogActionCompleted(ctx, result.Action, outcome, duration.Milliseconds())
	s.metrics.IncrementCounter(MetricConsoleAction, map[string]string{"action": result.Action, "outcome": outcome})
	s.metrics.RecordProcessingTime(MetricConsoleAction+":"+result.Action, duration)

	s.audit.Record(ctx, AuditEntry{
		Action:     result.Action,
		Resource:   auditResource(result.Action),
		ResourceID: resourceID,
		Outcome:    outcome,
		Metadata:   metadata,
	})
}

func auditResource(action string) string {
	switch action {
	case models.AuditActionProductAdded, models.AuditActionListProducts:
		return models.AuditResourceProduct
	case models.AuditActionPurchaseMade, models.AuditActionListPurchases, models.AuditActionTotalViewed:
		return models.AuditResourcePurchase
	default:
		return models.AuditResourceCustomer
	}
}

// transportCause summarizes a transport failure without its addresses
func transportCause(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return "request timed out"
		}
		return "network error"
	}
	return "invalid response from server"
}
