package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"storefront-console/internal/config"
	"storefront-console/internal/dto"
	"storefront-console/internal/models"
)

// Storefront backend endpoints
const (
	PathAddProduct        = "/add-product"
	PathMakePurchase      = "/make-purchase"
	PathAllCustomers      = "/all-customers"
	PathAllProducts       = "/all-products"
	PathAllPurchases      = "/all-purchases"
	PathAllPurchasesPrice = "/all-purchases-price"
	PathSearchCustomers   = "/search-customers"
	PathAddCustomer       = "/add-customer"
)

const maxResponseBytes = 4 << 20

// HeaderTransport sets the headers every backend call carries
type HeaderTransport struct {
	userAgent string
	base      http.RoundTripper
}

func (t *HeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	if traceID := getRequestID(req.Context()); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	return t.base.RoundTrip(req)
}

// DirectoryClient talks JSON over HTTP to the storefront backend
type DirectoryClient struct {
	config  *config.DirectoryConfig
	client  *http.Client
	logger  *slog.Logger
	metrics MetricsRecorderInterface
}

// NewDirectoryClient creates a client for cfg.BaseURL. A nil base transport
// means http.DefaultTransport.
func NewDirectoryClient(
	cfg *config.DirectoryConfig,
	base http.RoundTripper,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) DirectoryClientInterface {
	if base == nil {
		base = http.DefaultTransport
	}

	client := &http.Client{
		Transport: &HeaderTransport{
			userAgent: cfg.UserAgent,
			base:      base,
		},
		Timeout: cfg.Timeout,
	}

	return &DirectoryClient{
		config:  cfg,
		client:  client,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *DirectoryClient) buildRequest(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
) (*http.Request, error) {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	target := s.config.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

// do sends req and reads the whole body. Only network and read failures
// are errors here; every status code is returned to the caller.
func (s *DirectoryClient) do(req *http.Request) (*http.Response, []byte, error) {
	endpoint := req.URL.Path
	start := time.Now()

	resp, err := s.client.Do(req)
	s.metrics.RecordProcessingTime(MetricDirectoryRequest+":"+endpoint, time.Since(start))
	if err != nil {
		s.metrics.IncrementCounter(MetricDirectoryRequest, map[string]string{"endpoint": endpoint, "status": "error"})
		s.logger.Error(
			"directory request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, nil, err
	}
	defer resp.Body.Close()

	s.metrics.IncrementCounter(MetricDirectoryRequest, map[string]string{"endpoint": endpoint, "status": strconv.Itoa(resp.StatusCode)})

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

// call performs one round trip and decodes the JSON body into out,
// whatever the status code.
func (s *DirectoryClient) call(ctx context.Context, op, method, path string, query url.Values, body, out any) (int, error) {
	req, err := s.buildRequest(ctx, method, path, query, body)
	if err != nil {
		return 0, newTransportError(op, err)
	}

	resp, raw, err := s.do(req)
	if err != nil {
		return 0, newTransportError(op, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn(
			"directory returned undecodable body",
			"operation", op,
			"status", resp.StatusCode,
			"body_bytes", len(raw),
		)
		return resp.StatusCode, newTransportError(op, fmt.Errorf("decode response (%d): %w", resp.StatusCode, err))
	}

	return resp.StatusCode, nil
}

// SearchCustomers forwards criteria as query parameters, empty ones omitted.
// The body decides the outcome; the status code is not consulted.
func (s *DirectoryClient) SearchCustomers(ctx context.Context, criteria models.SearchCriteria) (*dto.SearchCustomersResponse, error) {
	var out dto.SearchCustomersResponse
	if _, err := s.call(ctx, "search customers", http.MethodGet, PathSearchCustomers, criteria.QueryValues(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddCustomer reports a *DomainError when the backend does not confirm success
func (s *DirectoryClient) AddCustomer(ctx context.Context, req dto.AddCustomerRequest) (*dto.AddCustomerResponse, error) {
	var out dto.AddCustomerResponse
	status, err := s.call(ctx, "add customer", http.MethodPost, PathAddCustomer, nil, req, &out)
	if err != nil {
		return nil, err
	}
	if !out.Success {
		return &out, &DomainError{Op: "add customer", Status: status, Message: out.Error}
	}
	return &out, nil
}

func (s *DirectoryClient) AddProduct(ctx context.Context, req dto.AddProductRequest) (*dto.MessageResponse, error) {
	return s.submit(ctx, "add product", PathAddProduct, req)
}

func (s *DirectoryClient) MakePurchase(ctx context.Context, req dto.MakePurchaseRequest) (*dto.MessageResponse, error) {
	return s.submit(ctx, "make purchase", PathMakePurchase, req)
}

// submit posts a form-style request whose success is signalled by a 2xx status
func (s *DirectoryClient) submit(ctx context.Context, op, path string, body any) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	status, err := s.call(ctx, op, http.MethodPost, path, nil, body, &out)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return &out, &DomainError{Op: op, Status: status, Message: out.Error}
	}
	return &out, nil
}

func (s *DirectoryClient) ListCustomers(ctx context.Context) ([]models.CustomerListItem, error) {
	var out []models.CustomerListItem
	if _, err := s.call(ctx, "list customers", http.MethodGet, PathAllCustomers, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DirectoryClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if _, err := s.call(ctx, "list products", http.MethodGet, PathAllProducts, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DirectoryClient) ListPurchases(ctx context.Context) ([]models.Purchase, error) {
	var out []models.Purchase
	if _, err := s.call(ctx, "list purchases", http.MethodGet, PathAllPurchases, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DirectoryClient) TotalPurchasePrice(ctx context.Context) (*dto.TotalPriceResponse, error) {
	var out dto.TotalPriceResponse
	if _, err := s.call(ctx, "total purchase price", http.MethodGet, PathAllPurchasesPrice, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
