package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-console/internal/config"
	"storefront-console/internal/dto"
	"storefront-console/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectoryClient(t *testing.T, handler http.HandlerFunc) DirectoryClientInterface {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.DirectoryConfig{
		BaseURL:   server.URL,
		UserAgent: "storefront-console-test",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewDirectoryClient(cfg, nil, logger, NewPrometheusMetrics(prometheus.NewRegistry()))
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestDirectoryClient_SearchCustomers_QueryParameters(t *testing.T) {
	tests := []struct {
		name      string
		criteria  models.SearchCriteria
		wantQuery map[string]string
	}{
		{
			name:      "all fields",
			criteria:  models.SearchCriteria{Name: "Jane", Surname: "Doe", Email: "jane@example.com"},
			wantQuery: map[string]string{"name": "Jane", "surname": "Doe", "email": "jane@example.com"},
		},
		{
			name:      "only surname",
			criteria:  models.SearchCriteria{Surname: "Doe"},
			wantQuery: map[string]string{"surname": "Doe"},
		},
		{
			name:      "empty criteria is still sent",
			criteria:  models.SearchCriteria{},
			wantQuery: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			client := newTestDirectoryClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, PathSearchCustomers, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				assert.Equal(t, "storefront-console-test", r.Header.Get("User-Agent"))

				query := r.URL.Query()
				assert.Len(t, query, len(tt.wantQuery))
				for key, want := range tt.wantQuery {
					assert.Equal(t, want, query.Get(key))
				}

				writeJSON(t, w, http.StatusOK, map[string]any{"customers": []any{}})
			})

			resp, err := client.SearchCustomers(context.Background(), tt.criteria)

			require.NoError(t, err)
			assert.Empty(t, resp.Customers)
			assert.Empty(t, resp.Error)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestDirectoryClient_SearchCustomers_Found(t *testing.T) {
	email := gofakeit.Email()
	client := newTestDirectoryClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"customers":[{"name":"Jane","surname":"Doe","email":"`+email+`",
			"purchases":[{"purchase_id":7,"total_price":19.99},{"purchase_id":"a-8","total_price":"5.00"}]}]}`)
	})

	resp, err := client.SearchCustomers(context.Background(), models.SearchCriteria{Email: email})

	require.NoError(t, err)
	require.Len(t, resp.Customers, 1)
	customer := resp.Customers[0]
	assert.Equal(t, "Jane Doe", customer.FullName())
	assert.Equal(t, email, customer.Email)
	require.Len(t, customer.Purchases, 2)
	assert.Equal(t, models.Identifier("7"), customer.Purchases[0].PurchaseID)
	assert.True(t, decimal.RequireFromString("19.99").Equal(customer.Purchases[0].TotalPrice))
	assert.Equal(t, models.Identifier("a-8"), customer.Purchases[1].PurchaseID)
}

func TestDirectoryClient_SearchCustomers_NotFoundIgnoresStatus(t *testing.T) {
	client := newTestDirectoryClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "No customers found"})
	})

	resp, err := client.SearchCustomers(context.Background(), models.SearchCriteria{Name: "Nobody"})

	require.NoError(t, err)
	assert.Equal(t, "No customers found", resp.Error)
}

func TestDirectoryClient_TransportFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "html body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = io.WriteString(w, "<html>Internal Server Error</html>")
			},
		},
		{
			name: "truncated json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"customers": [`)
			},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestDirectoryClient(t, tt.handler)

			resp, err := client.SearchCustomers(context.Background(), models.SearchCriteria{})

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrTransport)
		})
	}
}

func TestDirectoryClient_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewDirectoryClient(&config.DirectoryConfig{BaseURL: baseURL}, nil, logger, NewPrometheusMetrics(prometheus.NewRegistry()))

	_, err := client.SearchCustomers(context.Background(), models.SearchCriteria{Name: "Jane"})

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "search customers", transportErr.Op)
}

func TestDirectoryClient_AddCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestDirectoryClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, PathAddCustomer, r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"name": "Jane", "surname": "Doe", "email": "jane@example.com"}, body)

			writeJSON(t, w, http.StatusCreated, map[string]bool{"success": true})
		})

		resp, err := client.AddCustomer(context.Background(), dto.AddCustomerRequest{Name: "Jane", Surname: "Doe", Email: "jane@example.com"})

		require.NoError(t, err)
		assert.True(t, resp.Success)
	})

	t.Run("rejected", func(t *testing.T) {
		client := newTestDirectoryClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusConflict, map[string]any{"success": false, "error": "Email already registered"})
		})

		resp, err := client.AddCustomer(context.Background(), dto.AddCustomerRequest{Name: "Jane", Surname: "Doe", Email: "jane@example.com"})

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Email already registered", domainErr.Message)
		assert.Equal(t, http.StatusConflict, domainErr.Status)
		require.NotNil(t, resp)
		assert.False(t, resp.Success)
	})

	t.Run("error without success flag", func(t *testing.T) {
		client := newTestDirectoryClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, map[string]string{"error": "Missing fields"})
		})

		_, err := client.AddCustomer(context.Background(), dto.AddCustomerRequest{Name: "Jane"})

		assert.ErrorIs(t, err, ErrDomain)
	})
}

func TestDirectoryClient_AddProduct(t *testing.T) {
	t.Run("form text is sent as typed", func(t *testing.T) {
		client := newTestDirectoryClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, PathAddProduct, r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Tea", body["product_name"])
			assert.Equal(t, "3.50", body["price"])
			assert.Equal(t, "12", body["available_amount"])

			writeJSON(t, w, http.StatusCreated, map[string]string{"message": "Product added successfully"})
		})

		resp, err := client.AddProduct(context.Background(), dto.AddProductRequest{
			ProductName:     "Tea",
			Price:           "3.50",
			AvailableAmount: "12",
		})

		require.NoError(t, err)
		assert.Equal(t, "Product added successfully", resp.Message)
	})

	t.Run("non-2xx is a domain error", func(t *testing.T) {
		client := newTestDirectoryClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, map[string]string{"error": "Product already exists"})
		})

		_, err := client.AddProduct(context.Background(), dto.AddProductRequest{ProductName: "Tea"})

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Product already exists", domainErr.Message)
		assert.Equal(t, http.StatusBadRequest, domainErr.Status)
	})
}

func TestDirectoryClient_MakePurchase(t *testing.T) {
	client := newTestDirectoryClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathMakePurchase, r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["customer_email"])
		assert.Equal(t, "2", body["amount_to_purchase"])

		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Purchase successful"})
	})

	resp, err := client.MakePurchase(context.Background(), dto.MakePurchaseRequest{
		CustomerEmail:    "a@b.com",
		ProductName:      "Tea",
		AmountToPurchase: "2",
	})

	require.NoError(t, err)
	assert.Equal(t, "Purchase successful", resp.Message)
}

func TestDirectoryClient_Listings(t *testing.T) {
	client := newTestDirectoryClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PathAllCustomers:
			_, _ = io.WriteString(w, `[{"name":"Jane","surname":"Doe","email":"jane@example.com"}]`)
		case PathAllProducts:
			_, _ = io.WriteString(w, `[{"product_name":"Tea","price":3.5,"available_amount":12}]`)
		case PathAllPurchases:
			_, _ = io.WriteString(w, `[{"purchase_id":1,"total_price":7,"products":[{"product_name":"Tea","amount":2}]}]`)
		case PathAllPurchasesPrice:
			_, _ = io.WriteString(w, `{"total_price":7}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	customers, err := client.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CustomerListItem{{Name: "Jane", Surname: "Doe", Email: "jane@example.com"}}, customers)

	products, err := client.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, models.Quantity("12"), products[0].AvailableAmount)
	assert.Equal(t, "3.5", products[0].Price.String())

	purchases, err := client.ListPurchases(ctx)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, "Tea (x2)", purchases[0].ProductDetails())

	total, err := client.TotalPurchasePrice(ctx)
	require.NoError(t, err)
	require.NotNil(t, total.TotalPrice)
	assert.Equal(t, "7", total.TotalPrice.String())
}

func TestDirectoryClient_Listings_StringEncodedNumbers(t *testing.T) {
	client := newTestDirectoryClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PathAllProducts:
			_, _ = io.WriteString(w, `[{"product_name":"Spiced Latte","available_amount":"18","price":"265"}]`)
		case PathAllPurchases:
			_, _ = io.WriteString(w, `[{"purchase_id":"9","total_price":"530","products":[{"product_name":"Spiced Latte","amount":"2"}]}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	products, err := client.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, models.Quantity("18"), products[0].AvailableAmount)
	assert.Equal(t, "265", products[0].Price.String())
	assert.Equal(t, []string{"Product: Spiced Latte, Price: 265, Amount: 18"}, productLines(products).Lines)

	purchases, err := client.ListPurchases(ctx)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, "Spiced Latte (x2)", purchases[0].ProductDetails())
}

func TestDirectoryClient_TotalPurchasePrice_Absent(t *testing.T) {
	client := newTestDirectoryClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	total, err := client.TotalPurchasePrice(context.Background())

	require.NoError(t, err)
	assert.Nil(t, total.TotalPrice)
}

func TestDirectoryClient_ForwardsTraceID(t *testing.T) {
	client := newTestDirectoryClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-123", r.Header.Get("X-Trace-ID"))
		_, _ = io.WriteString(w, `[]`)
	})

	ctx := WithRequestMeta(context.Background(), RequestMeta{TraceID: "trace-123"})
	_, err := client.ListCustomers(ctx)

	require.NoError(t, err)
}
