package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"storefront-console/internal/dto"
	"storefront-console/internal/models"
	"storefront-console/internal/services"
	"storefront-console/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StorefrontServiceTestSuite is the test suite for StorefrontService
type StorefrontServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	directory *service_mocks.MockDirectoryClientInterface
	presenter *service_mocks.MockPresenterInterface
	audit     *service_mocks.MockAuditServiceInterface
	service   services.StorefrontServiceInterface
}

func (s *StorefrontServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.directory = service_mocks.NewMockDirectoryClientInterface(s.ctrl)
	s.presenter = service_mocks.NewMockPresenterInterface(s.ctrl)
	s.audit = service_mocks.NewMockAuditServiceInterface(s.ctrl)

	logger := services.NewConsoleLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	metrics := services.NewPrometheusMetrics(prometheus.NewRegistry())

	s.service = services.NewStorefrontService(s.directory, s.presenter, logger, metrics, s.audit)
}

func (s *StorefrontServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStorefrontServiceSuite(t *testing.T) {
	suite.Run(t, new(StorefrontServiceTestSuite))
}

func (s *StorefrontServiceTestSuite) expectAudit(action, outcome string) {
	s.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry services.AuditEntry) {
		s.Equal(action, entry.Action)
		s.Equal(outcome, entry.Outcome)
	})
}

func (s *StorefrontServiceTestSuite) expectListingCleared() {
	gomock.InOrder(
		s.presenter.EXPECT().Clear(
			models.RegionCustomerList,
			models.RegionProducts,
			models.RegionPurchases,
			models.RegionTotalPrice,
			models.RegionProductMessage,
		),
		s.presenter.EXPECT().ResetForm(models.FormAddProduct),
	)
}

func (s *StorefrontServiceTestSuite) TestAddProduct_Success() {
	form := dto.AddProductForm{ProductName: " Tea ", Price: "3.50", AvailableAmount: "12"}

	s.directory.EXPECT().
		AddProduct(gomock.Any(), dto.AddProductRequest{
			ProductName:     "Tea",
			Price:           "3.50",
			AvailableAmount: "12",
		}).
		Return(&dto.MessageResponse{Message: "Product added successfully"}, nil)
	s.presenter.EXPECT().Render(models.RegionProductMessage, models.Success("Product added successfully")).Return(true)
	s.presenter.EXPECT().ResetForm(models.FormAddProduct)
	s.expectAudit(models.AuditActionProductAdded, models.AuditOutcomeSuccess)

	result := s.service.AddProduct(context.Background(), form)

	s.NoError(result.Err)
	s.Equal(models.RegionProductMessage, result.Region)
	s.Equal("Product added successfully", result.Render.Message)
}

func (s *StorefrontServiceTestSuite) TestAddProduct_Validation() {
	tests := []struct {
		name        string
		form        dto.AddProductForm
		wantMessage string
	}{
		{
			name:        "missing price",
			form:        dto.AddProductForm{ProductName: "Tea", AvailableAmount: "1"},
			wantMessage: services.MsgProductFieldsRequired,
		},
		{
			name:        "everything missing",
			form:        dto.AddProductForm{},
			wantMessage: services.MsgProductFieldsRequired,
		},
		{
			name:        "blank name",
			form:        dto.AddProductForm{ProductName: "   ", Price: "1", AvailableAmount: "1"},
			wantMessage: services.MsgProductFieldsRequired,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.presenter.EXPECT().Render(models.RegionProductMessage, models.Failure(tt.wantMessage)).Return(true)
			s.expectAudit(models.AuditActionProductAdded, models.AuditOutcomeValidationError)

			result := s.service.AddProduct(context.Background(), tt.form)

			s.ErrorIs(result.Err, services.ErrValidation)
			s.Equal(tt.wantMessage, result.Render.Message)
		})
	}
}

func (s *StorefrontServiceTestSuite) TestAddProduct_ForwardsUnparsedValues() {
	for _, price := range []string{"2.999", "-1", "abc"} {
		s.Run(price, func() {
			s.directory.EXPECT().
				AddProduct(gomock.Any(), dto.AddProductRequest{ProductName: "Tea", Price: price, AvailableAmount: "1.5"}).
				Return(nil, &services.DomainError{Op: "add product", Status: 400, Message: "Invalid price"})
			s.presenter.EXPECT().Render(models.RegionProductMessage, models.Failure("Invalid price")).Return(true)
			s.expectAudit(models.AuditActionProductAdded, models.AuditOutcomeDomainError)

			result := s.service.AddProduct(context.Background(), dto.AddProductForm{ProductName: "Tea", Price: " " + price, AvailableAmount: "1.5"})

			s.ErrorIs(result.Err, services.ErrDomain)
		})
	}
}

func (s *StorefrontServiceTestSuite) TestAddProduct_DomainError() {
	s.directory.EXPECT().
		AddProduct(gomock.Any(), gomock.Any()).
		Return(&dto.MessageResponse{Error: "Product already exists"}, &services.DomainError{Op: "add product", Status: 400, Message: "Product already exists"})
	s.presenter.EXPECT().Render(models.RegionProductMessage, models.Failure("Product already exists")).Return(true)
	s.expectAudit(models.AuditActionProductAdded, models.AuditOutcomeDomainError)

	result := s.service.AddProduct(context.Background(), dto.AddProductForm{ProductName: "Tea", Price: "1", AvailableAmount: "1"})

	s.ErrorIs(result.Err, services.ErrDomain)
}

func (s *StorefrontServiceTestSuite) TestAddProduct_TransportError() {
	netErr := &url.Error{Op: "Post", URL: "http://db_app:5001/add-product", Err: errors.New("connection refused")}
	s.directory.EXPECT().
		AddProduct(gomock.Any(), gomock.Any()).
		Return(nil, &services.TransportError{Op: "add product", Err: netErr})
	s.presenter.EXPECT().Render(models.RegionProductMessage, models.Failure("Error submitting form: network error")).Return(true)
	s.expectAudit(models.AuditActionProductAdded, models.AuditOutcomeTransportError)

	result := s.service.AddProduct(context.Background(), dto.AddProductForm{ProductName: "Tea", Price: "1", AvailableAmount: "1"})

	s.ErrorIs(result.Err, services.ErrTransport)
}

func (s *StorefrontServiceTestSuite) TestMakePurchase() {
	form := dto.MakePurchaseForm{CustomerEmail: "a@b.com", ProductName: "Tea", AmountToPurchase: "2"}
	request := dto.MakePurchaseRequest{CustomerEmail: "a@b.com", ProductName: "Tea", AmountToPurchase: "2"}

	tests := []struct {
		name       string
		form       dto.MakePurchaseForm
		setupMocks func()
		wantRender models.RenderInstruction
		wantOut    string
	}{
		{
			name: "success",
			form: form,
			setupMocks: func() {
				s.directory.EXPECT().MakePurchase(gomock.Any(), request).
					Return(&dto.MessageResponse{Message: "Purchase successful"}, nil)
				s.presenter.EXPECT().ResetForm(models.FormMakePurchase)
			},
			wantRender: models.Success("Purchase successful"),
			wantOut:    models.AuditOutcomeSuccess,
		},
		{
			name: "backend rejects",
			form: form,
			setupMocks: func() {
				s.directory.EXPECT().MakePurchase(gomock.Any(), request).
					Return(&dto.MessageResponse{Error: "Not enough stock"}, &services.DomainError{Op: "make purchase", Status: 400, Message: "Not enough stock"})
			},
			wantRender: models.Failure("Error: Not enough stock"),
			wantOut:    models.AuditOutcomeDomainError,
		},
		{
			name: "transport failure",
			form: form,
			setupMocks: func() {
				s.directory.EXPECT().MakePurchase(gomock.Any(), request).
					Return(nil, &services.TransportError{Op: "make purchase", Err: errors.New("invalid character '<'")})
			},
			wantRender: models.Failure(services.MsgPurchaseFailed),
			wantOut:    models.AuditOutcomeTransportError,
		},
		{
			name:       "missing field",
			form:       dto.MakePurchaseForm{CustomerEmail: "a@b.com", AmountToPurchase: "2"},
			setupMocks: func() {},
			wantRender: models.Failure(services.MsgPurchaseFieldsMissing),
			wantOut:    models.AuditOutcomeValidationError,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setupMocks()
			s.presenter.EXPECT().Render(models.RegionPurchaseResults, tt.wantRender).Return(true)
			s.expectAudit(models.AuditActionPurchaseMade, tt.wantOut)

			result := s.service.MakePurchase(context.Background(), tt.form)

			s.Equal(models.RegionPurchaseResults, result.Region)
			s.Equal(tt.wantRender, result.Render)
		})
	}
}

func (s *StorefrontServiceTestSuite) TestListCustomers() {
	s.expectListingCleared()
	s.directory.EXPECT().ListCustomers(gomock.Any()).Return([]models.CustomerListItem{
		{Name: "Jane", Surname: "Doe", Email: "jane@example.com"},
		{Name: "John", Surname: "Roe", Email: "john@example.com"},
	}, nil)
	s.presenter.EXPECT().Render(models.RegionCustomerList, models.List("", []string{
		"Name: Jane Doe, Email: jane@example.com",
		"Name: John Roe, Email: john@example.com",
	})).Return(true)
	s.expectAudit(models.AuditActionListCustomers, models.AuditOutcomeSuccess)

	result := s.service.ListCustomers(context.Background())

	s.NoError(result.Err)
}

func (s *StorefrontServiceTestSuite) TestListCustomers_Empty() {
	s.expectListingCleared()
	s.directory.EXPECT().ListCustomers(gomock.Any()).Return([]models.CustomerListItem{}, nil)
	s.presenter.EXPECT().Render(models.RegionCustomerList, models.Info(services.MsgNoCustomers)).Return(true)
	s.expectAudit(models.AuditActionListCustomers, models.AuditOutcomeSuccess)

	s.service.ListCustomers(context.Background())
}

func (s *StorefrontServiceTestSuite) TestListCustomers_TransportError() {
	s.expectListingCleared()
	s.directory.EXPECT().ListCustomers(gomock.Any()).Return(nil, &services.TransportError{Op: "list customers", Err: errors.New("EOF")})
	s.presenter.EXPECT().Render(models.RegionCustomerList, models.Failure(services.MsgCustomersListFailed)).Return(true)
	s.expectAudit(models.AuditActionListCustomers, models.AuditOutcomeTransportError)

	result := s.service.ListCustomers(context.Background())

	s.ErrorIs(result.Err, services.ErrTransport)
}

func (s *StorefrontServiceTestSuite) TestListProducts() {
	s.expectListingCleared()
	s.directory.EXPECT().ListProducts(gomock.Any()).Return([]models.Product{
		{ProductName: "Tea", Price: decimal.RequireFromString("3.5"), AvailableAmount: "12"},
	}, nil)
	s.presenter.EXPECT().Render(models.RegionProducts, models.List("", []string{
		"Product: Tea, Price: 3.5, Amount: 12",
	})).Return(true)
	s.expectAudit(models.AuditActionListProducts, models.AuditOutcomeSuccess)

	s.service.ListProducts(context.Background())
}

func (s *StorefrontServiceTestSuite) TestListProducts_EmptyAndFailure() {
	s.expectListingCleared()
	s.directory.EXPECT().ListProducts(gomock.Any()).Return(nil, nil)
	s.presenter.EXPECT().Render(models.RegionProducts, models.Info(services.MsgNoProducts)).Return(true)
	s.expectAudit(models.AuditActionListProducts, models.AuditOutcomeSuccess)
	s.service.ListProducts(context.Background())

	s.expectListingCleared()
	s.directory.EXPECT().ListProducts(gomock.Any()).Return(nil, &services.TransportError{Op: "list products", Err: errors.New("EOF")})
	s.presenter.EXPECT().Render(models.RegionProducts, models.Failure(services.MsgProductsListFailed)).Return(true)
	s.expectAudit(models.AuditActionListProducts, models.AuditOutcomeTransportError)
	s.service.ListProducts(context.Background())
}

func (s *StorefrontServiceTestSuite) TestListPurchases() {
	s.expectListingCleared()
	s.directory.EXPECT().ListPurchases(gomock.Any()).Return([]models.Purchase{
		{
			PurchaseID: "4",
			TotalPrice: decimal.RequireFromString("11.00"),
			Products: []models.PurchaseLine{
				{ProductName: "Tea", Amount: "2"},
				{ProductName: "Mug", Amount: "1"},
			},
		},
	}, nil)
	s.presenter.EXPECT().Render(models.RegionPurchases, models.List("", []string{
		"Purchase ID: 4, Total price: 11, Products: Tea (x2), Mug (x1)",
	})).Return(true)
	s.expectAudit(models.AuditActionListPurchases, models.AuditOutcomeSuccess)

	s.service.ListPurchases(context.Background())
}

func (s *StorefrontServiceTestSuite) TestListPurchases_Failure() {
	s.expectListingCleared()
	s.directory.EXPECT().ListPurchases(gomock.Any()).Return(nil, &services.TransportError{Op: "list purchases", Err: errors.New("EOF")})
	s.presenter.EXPECT().Render(models.RegionPurchases, models.Failure(services.MsgPurchasesListFailed)).Return(true)
	s.expectAudit(models.AuditActionListPurchases, models.AuditOutcomeTransportError)

	s.service.ListPurchases(context.Background())
}

func (s *StorefrontServiceTestSuite) TestShowTotal() {
	total := decimal.RequireFromString("42.5")

	tests := []struct {
		name       string
		resp       *dto.TotalPriceResponse
		err        error
		wantRender models.RenderInstruction
	}{
		{"total present", &dto.TotalPriceResponse{TotalPrice: &total}, nil, models.Info("Total Price: $42.5")},
		{"total absent", &dto.TotalPriceResponse{}, nil, models.Info(services.MsgNoPurchaseData)},
		{"transport failure", nil, &services.TransportError{Op: "total purchase price", Err: errors.New("EOF")}, models.Failure(services.MsgTotalFailed)},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.expectListingCleared()
			s.directory.EXPECT().TotalPurchasePrice(gomock.Any()).Return(tt.resp, tt.err)
			s.presenter.EXPECT().Render(models.RegionTotalPrice, tt.wantRender).Return(true)
			s.audit.EXPECT().Record(gomock.Any(), gomock.Any())

			result := s.service.ShowTotal(context.Background())

			s.Equal(models.RegionTotalPrice, result.Region)
			s.Equal(tt.wantRender, result.Render)
		})
	}
}
