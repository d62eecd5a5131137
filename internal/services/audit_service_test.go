package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"storefront-console/internal/models"
	"storefront-console/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// AuditServiceTestSuite is the test suite for AuditService
type AuditServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockAuditLogRepositoryInterface
	service  AuditServiceInterface
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.service = NewAuditService(s.mockRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) TestValidateAuditAction() {
	s.NoError(ValidateAuditAction(models.AuditActionCustomerSearch))
	s.NoError(ValidateAuditAction(models.AuditActionTotalViewed))
	s.ErrorIs(ValidateAuditAction("login"), ErrInvalidAuditAction)
	s.ErrorIs(ValidateAuditAction(""), ErrInvalidAuditAction)
}

func (s *AuditServiceTestSuite) TestRecord_StampsRequestMeta() {
	ctx := WithRequestMeta(context.Background(), RequestMeta{
		TraceID:   "trace-1",
		IPAddress: "10.0.0.5",
		UserAgent: "Mozilla/5.0",
	})

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(models.AuditActionPurchaseMade, log.Action)
			s.Equal(models.AuditResourcePurchase, log.Resource)
			s.Equal("Tea", log.ResourceID)
			s.Equal(models.AuditOutcomeSuccess, log.Outcome)
			s.Equal("trace-1", log.TraceID)
			s.Equal("10.0.0.5", log.IPAddress)
			s.Equal("Mozilla/5.0", log.UserAgent)
			s.Equal(int64(2), log.GetMetadata("amount_to_purchase", nil))
			return nil
		}).
		Times(1)

	s.service.Record(ctx, AuditEntry{
		Action:     models.AuditActionPurchaseMade,
		Resource:   models.AuditResourcePurchase,
		ResourceID: "Tea",
		Outcome:    models.AuditOutcomeSuccess,
		Metadata:   models.JSONBMap{"amount_to_purchase": int64(2)},
	})
}

func (s *AuditServiceTestSuite) TestRecord_RepositoryErrorIsSwallowed() {
	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(errors.New("database unavailable"))

	s.NotPanics(func() {
		s.service.Record(context.Background(), AuditEntry{
			Action:   models.AuditActionListProducts,
			Resource: models.AuditResourceProduct,
			Outcome:  models.AuditOutcomeSuccess,
		})
	})
}

func (s *AuditServiceTestSuite) TestRecord_UnknownActionNotStored() {
	s.mockRepo.EXPECT().Create(gomock.Any()).Times(0)

	s.service.Record(context.Background(), AuditEntry{Action: "account_created"})
}

func (s *AuditServiceTestSuite) TestList() {
	logs := []*models.AuditLog{{Action: models.AuditActionCustomerSearch}}

	s.mockRepo.EXPECT().
		List(models.AuditActionCustomerSearch, 10, 20).
		Return(logs, int64(11), nil)

	result, total, err := s.service.List(models.AuditActionCustomerSearch, 10, 20)

	s.NoError(err)
	s.Equal(int64(11), total)
	s.Equal(logs, result)
}

func (s *AuditServiceTestSuite) TestList_AllActions() {
	s.mockRepo.EXPECT().
		List("", 0, 50).
		Return([]*models.AuditLog{}, int64(0), nil)

	_, _, err := s.service.List("", 0, 50)

	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestList_InvalidAction() {
	_, _, err := s.service.List("password_reset", 0, 10)

	s.ErrorIs(err, ErrInvalidAuditAction)
}

func (s *AuditServiceTestSuite) TestDisabledAuditService() {
	service := NewDisabledAuditService()

	service.Record(context.Background(), AuditEntry{Action: models.AuditActionCustomerSearch})
	logs, total, err := service.List("", 0, 10)

	s.NoError(err)
	s.Zero(total)
	s.Empty(logs)
}
