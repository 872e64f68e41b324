package services_test

import (
	"context"
	"testing"

	"github.com/SaloneDigital/business_registry_app/internal/apperrors"
	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/core/services"
	"github.com/SaloneDigital/business_registry_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEntityRepository
	service  portssvc.TransactionSvcFacade

	entityID string
	entity   *domain.Entity
	business domain.Actor
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEntityRepository)
	audit := services.NewAuditService(suite.mockRepo, services.SHA256Digest{}, nil)
	suite.service = services.NewTransactionService(suite.mockRepo, audit)

	suite.entityID = uuid.NewString()
	suite.entity = &domain.Entity{EntityID: suite.entityID, Name: "Salone Tech Solutions"}
	suite.business = domain.Actor{Name: "Salone Tech Solutions", Role: domain.RoleBusiness, EntityID: suite.entityID}
}

func (suite *TransactionServiceTestSuite) TestAddTransaction_Success() {
	ctx := context.Background()
	suite.entity.Transactions = []domain.Transaction{
		{TransactionID: "older", Description: "Office rent"},
	}
	suite.mockRepo.On("MutateEntity", ctx, suite.entityID).Return(suite.entity, nil).Once()

	txn, err := suite.service.AddTransaction(ctx, suite.entityID, dto.AddTransactionRequest{
		Description: "Invoice #1088 paid",
		Amount:      decimal.NewFromInt(2500),
		Direction:   "CREDIT",
		Category:    "Sales",
	}, suite.business)

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.DirectionCredit, txn.Direction)
	suite.Equal("Sales", txn.Category)

	// Prepended, never appended.
	suite.Require().Len(suite.entity.Transactions, 2)
	suite.Equal(txn.TransactionID, suite.entity.Transactions[0].TransactionID)
	suite.Equal("older", suite.entity.Transactions[1].TransactionID)

	suite.Require().NotEmpty(suite.entity.History)
	suite.Equal(domain.ActionTransactionAdded, suite.entity.History[0].Action)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestAddTransaction_DefaultCategory() {
	ctx := context.Background()
	suite.mockRepo.On("MutateEntity", ctx, suite.entityID).Return(suite.entity, nil).Once()

	txn, err := suite.service.AddTransaction(ctx, suite.entityID, dto.AddTransactionRequest{
		Description: "Stationery",
		Amount:      decimal.NewFromInt(40),
		Direction:   "DEBIT",
	}, suite.business)

	suite.Require().NoError(err)
	suite.Equal("General", txn.Category)
}

func (suite *TransactionServiceTestSuite) TestAddTransaction_NonPositiveAmount() {
	ctx := context.Background()

	txn, err := suite.service.AddTransaction(ctx, suite.entityID, dto.AddTransactionRequest{
		Description: "Refund",
		Amount:      decimal.Zero,
		Direction:   "DEBIT",
	}, suite.business)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "MutateEntity", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestAddTransaction_BadDirection() {
	ctx := context.Background()

	txn, err := suite.service.AddTransaction(ctx, suite.entityID, dto.AddTransactionRequest{
		Description: "Odd entry",
		Amount:      decimal.NewFromInt(10),
		Direction:   "SIDEWAYS",
	}, suite.business)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestAddTransaction_OtherEntityForbidden() {
	ctx := context.Background()
	stranger := domain.Actor{Name: "Kono Mining PLC", Role: domain.RoleBusiness, EntityID: uuid.NewString()}

	txn, err := suite.service.AddTransaction(ctx, suite.entityID, dto.AddTransactionRequest{
		Description: "Invoice",
		Amount:      decimal.NewFromInt(10),
		Direction:   "CREDIT",
	}, stranger)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TransactionServiceTestSuite) TestListTransactions() {
	ctx := context.Background()
	suite.entity.Transactions = []domain.Transaction{
		{TransactionID: "a"}, {TransactionID: "b"},
	}
	suite.mockRepo.On("FindEntityByID", ctx, suite.entityID).Return(suite.entity, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, suite.entityID)

	suite.Require().NoError(err)
	suite.Len(txns, 2)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
