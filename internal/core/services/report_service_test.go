package services_test

import (
	"context"
	"testing"
	"time"

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

type ReportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEntityRepository
	audit    portssvc.AuditSvcFacade
	service  portssvc.ReportSvcFacade

	entityID  string
	entity    *domain.Entity
	business  domain.Actor
	registrar domain.Actor
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEntityRepository)
	suite.audit = services.NewAuditService(suite.mockRepo, services.SHA256Digest{}, nil)
	suite.service = services.NewReportService(suite.mockRepo, suite.audit)

	suite.entityID = uuid.NewString()
	suite.entity = &domain.Entity{
		EntityID: suite.entityID,
		Name:     "Salone Tech Solutions",
	}
	suite.business = domain.Actor{Name: "Salone Tech Solutions", Role: domain.RoleBusiness, EntityID: suite.entityID}
	suite.registrar = domain.Actor{Name: "Registrar", Role: domain.RoleAdmin}
}

func (suite *ReportServiceTestSuite) TestSubmitReport_FirstFiling() {
	ctx := context.Background()
	suite.mockRepo.On("MutateEntity", ctx, suite.entityID).Return(suite.entity, nil).Once()

	report, err := suite.service.SubmitReport(ctx, suite.entityID, dto.SubmitReportRequest{
		Year:              2023,
		Revenue:           decimal.NewFromInt(150000),
		TransactionVolume: 320,
	}, suite.business)

	suite.Require().NoError(err)
	suite.Equal(domain.ReportSubmitted, report.Status)
	suite.Equal(suite.business.Name, report.FiledBy)
	suite.WithinDuration(time.Now(), report.SubmissionDate, time.Second)

	suite.Require().Len(suite.entity.Reports, 1)
	suite.Equal(2023, suite.entity.Reports[0].Year)
	suite.Require().NotEmpty(suite.entity.History)
	suite.Equal(domain.ActionReportSubmitted, suite.entity.History[0].Action)
	suite.Equal("Report 2023 Submitted", suite.entity.History[0].Details)
	suite.False(suite.entity.IsWebsitePublished)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestSubmitReport_RefilingReplacesApprovedRecord() {
	ctx := context.Background()
	suite.entity.Reports = []domain.AnnualReport{
		{Year: 2023, Status: domain.ReportApproved, Revenue: decimal.NewFromInt(90000)},
		{Year: 2022, Status: domain.ReportApproved, Revenue: decimal.NewFromInt(70000)},
	}
	suite.mockRepo.On("MutateEntity", ctx, suite.entityID).Return(suite.entity, nil).Once()

	report, err := suite.service.SubmitReport(ctx, suite.entityID, dto.SubmitReportRequest{
		Year:    2023,
		Revenue: decimal.NewFromInt(95000),
	}, suite.business)

	suite.Require().NoError(err)
	suite.Equal(domain.ReportSubmitted, report.Status)

	// Still exactly one record for 2023, and it is the new one.
	suite.Require().Len(suite.entity.Reports, 2)
	suite.Equal(2023, suite.entity.Reports[0].Year)
	suite.Equal(domain.ReportSubmitted, suite.entity.Reports[0].Status)
	suite.True(suite.entity.Reports[0].Revenue.Equal(decimal.NewFromInt(95000)))
	suite.Equal(2022, suite.entity.Reports[1].Year)
}

func (suite *ReportServiceTestSuite) TestSubmitReport_PublishWebsite() {
	ctx := context.Background()
	suite.mockRepo.On("MutateEntity", ctx, suite.entityID).Return(suite.entity, nil).Once()

	_, err := suite.service.SubmitReport(ctx, suite.entityID, dto.SubmitReportRequest{
		Year:           2023,
		Revenue:        decimal.NewFromInt(1000),
		PublishWebsite: true,
	}, suite.business)

	suite.Require().NoError(err)
	suite.True(suite.entity.IsWebsitePublished)
	suite.Equal("Report 2023 Submitted & Website Updated", suite.entity.History[0].Details)
}

func (suite *ReportServiceTestSuite) TestSubmitReport_NegativeRevenue() {
	ctx := context.Background()

	report, err := suite.service.SubmitReport(ctx, suite.entityID, dto.SubmitReportRequest{
		Year:    2023,
		Revenue: decimal.NewFromInt(-5),
	}, suite.business)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "MutateEntity", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestSubmitReport_OtherEntityForbidden() {
	ctx := context.Background()
	stranger := domain.Actor{Name: "Kono Mining PLC", Role: domain.RoleBusiness, EntityID: uuid.NewString()}

	report, err := suite.service.SubmitReport(ctx, suite.entityID, dto.SubmitReportRequest{
		Year:    2023,
		Revenue: decimal.NewFromInt(1),
	}, stranger)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ReportServiceTestSuite) TestReviewReport_Approve() {
	ctx := context.Background()
	suite.entity.Reports = []domain.AnnualReport{
		{Year: 2023, Status: domain.ReportSubmitted, Revenue: decimal.NewFromInt(150000)},
	}
	suite.mockRepo.On("MutateEntity", ctx, suite.entityID).Return(suite.entity, nil).Once()

	reviewed, err := suite.service.ReviewReport(ctx, suite.entityID, 2023, true, suite.registrar)

	suite.Require().NoError(err)
	suite.Equal(domain.ReportApproved, reviewed.Status)
	suite.Equal(domain.ReportApproved, suite.entity.Reports[0].Status)
	suite.Equal(domain.ActionReportApproved, suite.entity.History[0].Action)
	suite.Equal("Report 2023 Approved", suite.entity.History[0].Details)
}

func (suite *ReportServiceTestSuite) TestReviewReport_Reject() {
	ctx := context.Background()
	suite.entity.Reports = []domain.AnnualReport{
		{Year: 2023, Status: domain.ReportSubmitted, Revenue: decimal.NewFromInt(150000)},
	}
	suite.mockRepo.On("MutateEntity", ctx, suite.entityID).Return(suite.entity, nil).Once()

	reviewed, err := suite.service.ReviewReport(ctx, suite.entityID, 2023, false, suite.registrar)

	suite.Require().NoError(err)
	suite.Equal(domain.ReportRejected, reviewed.Status)
	suite.Equal(domain.ActionReportRejected, suite.entity.History[0].Action)
	suite.Equal("Report 2023 Rejected", suite.entity.History[0].Details)
}

func (suite *ReportServiceTestSuite) TestReviewReport_NoFilingForYear() {
	ctx := context.Background()
	suite.mockRepo.On("MutateEntity", ctx, suite.entityID).Return(suite.entity, nil).Once()

	reviewed, err := suite.service.ReviewReport(ctx, suite.entityID, 2023, true, suite.registrar)

	suite.Require().Error(err)
	suite.Nil(reviewed)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	// The failed review leaves no trace on the chain.
	suite.Empty(suite.entity.History)
}

func (suite *ReportServiceTestSuite) TestReviewReport_AlreadyApproved() {
	ctx := context.Background()
	suite.entity.Reports = []domain.AnnualReport{
		{Year: 2023, Status: domain.ReportApproved, Revenue: decimal.NewFromInt(150000)},
	}
	suite.mockRepo.On("MutateEntity", ctx, suite.entityID).Return(suite.entity, nil).Once()

	reviewed, err := suite.service.ReviewReport(ctx, suite.entityID, 2023, false, suite.registrar)

	suite.Require().Error(err)
	suite.Nil(reviewed)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.Equal(domain.ReportApproved, suite.entity.Reports[0].Status)
	suite.Empty(suite.entity.History)
}

func (suite *ReportServiceTestSuite) TestReviewReport_NonAdminForbidden() {
	ctx := context.Background()

	reviewed, err := suite.service.ReviewReport(ctx, suite.entityID, 2023, true, suite.business)

	suite.Require().Error(err)
	suite.Nil(reviewed)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "MutateEntity", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestListReports() {
	ctx := context.Background()
	suite.entity.Reports = []domain.AnnualReport{
		{Year: 2023, Status: domain.ReportSubmitted},
		{Year: 2022, Status: domain.ReportApproved},
	}
	suite.mockRepo.On("FindEntityByID", ctx, suite.entityID).Return(suite.entity, nil).Once()

	reports, err := suite.service.ListReports(ctx, suite.entityID)

	suite.Require().NoError(err)
	suite.Require().Len(reports, 2)
	suite.Equal(2023, reports[0].Year)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
