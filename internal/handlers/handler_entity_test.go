package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SaloneDigital/business_registry_app/internal/apperrors"
	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/dto"
	"github.com/SaloneDigital/business_registry_app/internal/handlers"
	"github.com/SaloneDigital/business_registry_app/internal/notifications"
	"github.com/SaloneDigital/business_registry_app/internal/platform/config"
	"github.com/SaloneDigital/business_registry_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EntityService ---
type MockEntityService struct {
	mock.Mock
}

func (m *MockEntityService) CreateEntity(ctx context.Context, req dto.CreateEntityRequest, actor domain.Actor) (*domain.Entity, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}
func (m *MockEntityService) GetEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}
func (m *MockEntityService) ListEntities(ctx context.Context, params dto.ListEntitiesParams) ([]domain.Entity, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entity), args.Error(1)
}
func (m *MockEntityService) UpdateEntityDetails(ctx context.Context, entityID string, req dto.UpdateEntityRequest, actor domain.Actor) (*domain.Entity, error) {
	args := m.Called(ctx, entityID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}
func (m *MockEntityService) ChangeStatus(ctx context.Context, entityID string, status domain.EntityStatus, actor domain.Actor) (*domain.Entity, error) {
	args := m.Called(ctx, entityID, status, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}
func (m *MockEntityService) CheckNameAvailability(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
func (m *MockEntityService) DashboardSummary(ctx context.Context) (dto.DashboardSummaryResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(dto.DashboardSummaryResponse), args.Error(1)
}

var _ portssvc.EntitySvcFacade = (*MockEntityService)(nil)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) SubmitReport(ctx context.Context, entityID string, req dto.SubmitReportRequest, actor domain.Actor) (*domain.AnnualReport, error) {
	args := m.Called(ctx, entityID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnnualReport), args.Error(1)
}
func (m *MockReportService) ReviewReport(ctx context.Context, entityID string, year int, approve bool, actor domain.Actor) (*domain.AnnualReport, error) {
	args := m.Called(ctx, entityID, year, approve, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnnualReport), args.Error(1)
}
func (m *MockReportService) ListReports(ctx context.Context, entityID string) ([]domain.AnnualReport, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnnualReport), args.Error(1)
}

var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) AddTransaction(ctx context.Context, entityID string, req dto.AddTransactionRequest, actor domain.Actor) (*domain.Transaction, error) {
	args := m.Called(ctx, entityID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, entityID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock AuditService ---
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(entity *domain.Entity, action domain.AuditAction, details, actor string) domain.AuditLogEntry {
	args := m.Called(entity, action, details, actor)
	return args.Get(0).(domain.AuditLogEntry)
}
func (m *MockAuditService) VerifyChain(history []domain.AuditLogEntry) error {
	args := m.Called(history)
	return args.Error(0)
}
func (m *MockAuditService) ListHistory(ctx context.Context, entityID string) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}

var _ portssvc.AuditSvcFacade = (*MockAuditService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) VerifyCredentials(ctx context.Context, registryCode, phoneNumber string) (*dto.BusinessCredentialsResponse, error) {
	args := m.Called(ctx, registryCode, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BusinessCredentialsResponse), args.Error(1)
}
func (m *MockAuthService) VerifyOneTimeCode(ctx context.Context, challengeToken, code string) (*dto.SessionResponse, error) {
	args := m.Called(ctx, challengeToken, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SessionResponse), args.Error(1)
}
func (m *MockAuthService) CancelChallenge(ctx context.Context, challengeToken string) error {
	args := m.Called(ctx, challengeToken)
	return args.Error(0)
}
func (m *MockAuthService) LoginRegistrar(ctx context.Context, username, password string) (*dto.SessionResponse, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SessionResponse), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock AssistantService ---
type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) Chat(ctx context.Context, message string, history []dto.ChatMessage) (string, error) {
	args := m.Called(ctx, message, history)
	return args.String(0), args.Error(1)
}

var _ portssvc.AssistantSvcFacade = (*MockAssistantService)(nil)

// --- Test Suite ---
type EntityHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockEntities  *MockEntityService
	mockReports   *MockReportService
	mockTxns      *MockTransactionService
	mockAudit     *MockAuditService
	mockAuth      *MockAuthService
	mockAssistant *MockAssistantService
	jwtSecret     string
}

func (suite *EntityHandlerTestSuite) generateToken(subject string, role domain.Role, entityID, name string) string {
	token, err := utils.GenerateSessionToken(subject, string(role), entityID, name, suite.jwtSecret, "registry-test", time.Hour)
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *EntityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockEntities = new(MockEntityService)
	suite.mockReports = new(MockReportService)
	suite.mockTxns = new(MockTransactionService)
	suite.mockAudit = new(MockAuditService)
	suite.mockAuth = new(MockAuthService)
	suite.mockAssistant = new(MockAssistantService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTIssuer:         "registry-test",
		JWTExpiryDuration: time.Hour,
		AuthRateLimit:     "100-M",
		IsProduction:      true, // no swagger routes in tests
	}

	hub := notifications.NewHub(slog.Default())
	go hub.Run()

	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Entity:      suite.mockEntities,
		Report:      suite.mockReports,
		Transaction: suite.mockTxns,
		Audit:       suite.mockAudit,
		Auth:        suite.mockAuth,
		Assistant:   suite.mockAssistant,
	}, hub)
}

func (suite *EntityHandlerTestSuite) performRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *EntityHandlerTestSuite) TestListEntities_Public() {
	suite.mockEntities.On("ListEntities", mock.Anything, dto.ListEntitiesParams{Query: "tech", LegalForm: "LTD"}).
		Return([]domain.Entity{{EntityID: "c1", Name: "Salone Tech Solutions", LegalForm: domain.LegalFormLTD}}, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/entities?query=tech&legalForm=LTD", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Salone Tech Solutions")
	suite.mockEntities.AssertExpectations(suite.T())
}

func (suite *EntityHandlerTestSuite) TestGetEntity_NotFound() {
	suite.mockEntities.On("GetEntityByID", mock.Anything, "nope").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/entities/nope", "", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EntityHandlerTestSuite) TestNameCheck() {
	suite.mockEntities.On("CheckNameAvailability", mock.Anything, "New Venture Ltd").
		Return(true, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/entities/name-check?name=New+Venture+Ltd", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.NameCheckResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Available)
}

func (suite *EntityHandlerTestSuite) TestCreateEntity_RequiresAuth() {
	w := suite.performRequest(http.MethodPost, "/api/v1/entities", "", dto.CreateEntityRequest{
		Name: "New Co", LegalForm: "LTD", RegistryCode: "SL-2024-0001",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEntities.AssertNotCalled(suite.T(), "CreateEntity", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntityHandlerTestSuite) TestCreateEntity_BusinessRoleRejected() {
	token := suite.generateToken("c1", domain.RoleBusiness, "c1", "Salone Tech Solutions")

	w := suite.performRequest(http.MethodPost, "/api/v1/entities", token, dto.CreateEntityRequest{
		Name: "New Co", LegalForm: "LTD", RegistryCode: "SL-2024-0001",
	})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *EntityHandlerTestSuite) TestCreateEntity_AdminSuccess() {
	token := suite.generateToken(uuid.NewString(), domain.RoleAdmin, "", "Registrar")
	created := &domain.Entity{EntityID: "e-new", Name: "New Co", RegistryCode: "SL-2024-0001", LegalForm: domain.LegalFormLTD, Status: domain.StatusActive}

	suite.mockEntities.On("CreateEntity", mock.Anything, mock.AnythingOfType("dto.CreateEntityRequest"), mock.AnythingOfType("domain.Actor")).
		Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/entities", token, dto.CreateEntityRequest{
		Name: "New Co", LegalForm: "LTD", RegistryCode: "SL-2024-0001",
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), "e-new")
	suite.mockEntities.AssertExpectations(suite.T())
}

func (suite *EntityHandlerTestSuite) TestCreateEntity_InvalidLegalFormRejectedByBinding() {
	token := suite.generateToken(uuid.NewString(), domain.RoleAdmin, "", "Registrar")

	w := suite.performRequest(http.MethodPost, "/api/v1/entities", token, dto.CreateEntityRequest{
		Name: "Odd Co", LegalForm: "GMBH", RegistryCode: "SL-2024-0002",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEntities.AssertNotCalled(suite.T(), "CreateEntity", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntityHandlerTestSuite) TestUpdateEntity_BusinessToken() {
	token := suite.generateToken("c1", domain.RoleBusiness, "c1", "Salone Tech Solutions")
	website := "https://salonetech.sl"
	updated := &domain.Entity{EntityID: "c1", Name: "Salone Tech Solutions", Website: website}

	suite.mockEntities.On("UpdateEntityDetails", mock.Anything, "c1", mock.AnythingOfType("dto.UpdateEntityRequest"), domain.Actor{Name: "Salone Tech Solutions", Role: domain.RoleBusiness, EntityID: "c1"}).
		Return(updated, nil).Once()

	w := suite.performRequest(http.MethodPatch, "/api/v1/entities/c1", token, dto.UpdateEntityRequest{Website: &website})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockEntities.AssertExpectations(suite.T())
}

func (suite *EntityHandlerTestSuite) TestSubmitReport() {
	token := suite.generateToken("c1", domain.RoleBusiness, "c1", "Salone Tech Solutions")
	report := &domain.AnnualReport{Year: 2023, Status: domain.ReportSubmitted, Revenue: decimal.NewFromInt(1000)}

	suite.mockReports.On("SubmitReport", mock.Anything, "c1", mock.AnythingOfType("dto.SubmitReportRequest"), mock.AnythingOfType("domain.Actor")).
		Return(report, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/entities/c1/reports", token, dto.SubmitReportRequest{
		Year: 2023, Revenue: decimal.NewFromInt(1000),
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), string(domain.ReportSubmitted))
}

func (suite *EntityHandlerTestSuite) TestReviewReport_InvalidTransitionMapsToConflict() {
	token := suite.generateToken(uuid.NewString(), domain.RoleAdmin, "", "Registrar")
	approve := true

	suite.mockReports.On("ReviewReport", mock.Anything, "c1", 2023, true, mock.AnythingOfType("domain.Actor")).
		Return(nil, apperrors.ErrInvalidTransition).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/entities/c1/reports/2023/review", token, dto.ReviewReportRequest{Approve: &approve})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *EntityHandlerTestSuite) TestListHistory_Public() {
	suite.mockAudit.On("ListHistory", mock.Anything, "c1").
		Return([]domain.AuditLogEntry{{EntryID: "a1", Action: domain.ActionRegistration, Hash: "0xabc", PreviousHash: domain.GenesisHash}}, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/entities/c1/history", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), domain.GenesisHash)
}

func (suite *EntityHandlerTestSuite) TestBusinessCredentials() {
	suite.mockAuth.On("VerifyCredentials", mock.Anything, "SL-2023-0001", "+232 78 875269").
		Return(&dto.BusinessCredentialsResponse{ChallengeToken: "tok", PhoneHint: "...5269"}, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/auth/business/credentials", "", dto.BusinessCredentialsRequest{
		RegistryCode: "SL-2023-0001", PhoneNumber: "+232 78 875269",
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "...5269")
}

func (suite *EntityHandlerTestSuite) TestBusinessCredentials_PhoneMismatchMapsToUnauthorized() {
	suite.mockAuth.On("VerifyCredentials", mock.Anything, "SL-2023-0001", "000000").
		Return(nil, apperrors.ErrPhoneMismatch).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/auth/business/credentials", "", dto.BusinessCredentialsRequest{
		RegistryCode: "SL-2023-0001", PhoneNumber: "000000",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *EntityHandlerTestSuite) TestAssistantChat() {
	suite.mockAssistant.On("Chat", mock.Anything, "How do I file a report?", mock.Anything).
		Return("Open your dashboard and choose File Annual Report.", nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/assistant/chat", "", dto.ChatRequest{Message: "How do I file a report?"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "File Annual Report")
}

func (suite *EntityHandlerTestSuite) TestDashboard_AdminOnly() {
	businessToken := suite.generateToken("c1", domain.RoleBusiness, "c1", "Salone Tech Solutions")
	w := suite.performRequest(http.MethodGet, "/api/v1/dashboard/summary", businessToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	adminToken := suite.generateToken(uuid.NewString(), domain.RoleAdmin, "", "Registrar")
	suite.mockEntities.On("DashboardSummary", mock.Anything).
		Return(dto.DashboardSummaryResponse{TotalEntities: 3, ActiveEntities: 2}, nil).Once()

	w = suite.performRequest(http.MethodGet, "/api/v1/dashboard/summary", adminToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "totalEntities")
}

func TestEntityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EntityHandlerTestSuite))
}
