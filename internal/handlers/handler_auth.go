package handlers

import (
	"net/http"

	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/dto"
	"github.com/SaloneDigital/business_registry_app/internal/middleware"
	"github.com/SaloneDigital/business_registry_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles both login surfaces: the two-step business
// verification flow and the registrar username/password login.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the rate-limited authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, as portssvc.AuthSvcFacade) {
	h := newAuthHandler(as)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	ipLimiter := limiter.New(memorystore.NewStore(), rate)
	limit := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth", limit)
	{
		auth.POST("/login", h.loginRegistrar)
		auth.POST("/business/credentials", h.businessCredentials)
		auth.POST("/business/otp", h.businessOTP)
		auth.POST("/business/cancel", h.cancelChallenge)
	}
}

// businessCredentials godoc
// @Summary Business login step 1
// @Description Verifies registry code and phone number; on success issues a one-time code bound to the returned challenge token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.BusinessCredentialsRequest true "Registry code and phone number"
// @Success 200 {object} dto.BusinessCredentialsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Unknown registry code or phone mismatch"
// @Router /auth/business/credentials [post]
func (h *authHandler) businessCredentials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BusinessCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.VerifyCredentials(c.Request.Context(), req.RegistryCode, req.PhoneNumber)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to verify credentials")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// businessOTP godoc
// @Summary Business login step 2
// @Description Verifies the one-time code and yields a Business session bound to the entity
// @Tags auth
// @Accept json
// @Produce json
// @Param otp body dto.BusinessOTPRequest true "Challenge token and code"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Wrong code; the attempt stays open for retry"
// @Router /auth/business/otp [post]
func (h *authHandler) businessOTP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BusinessOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.authService.VerifyOneTimeCode(c.Request.Context(), req.ChallengeToken, req.Code)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to verify one-time code")
		return
	}
	c.JSON(http.StatusOK, session)
}

// cancelChallenge godoc
// @Summary Abandon a pending business login attempt
// @Description Discards the issued one-time code; it is not reusable afterwards
// @Tags auth
// @Accept json
// @Produce json
// @Param cancel body dto.CancelChallengeRequest true "Challenge token"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Router /auth/business/cancel [post]
func (h *authHandler) cancelChallenge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CancelChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.CancelChallenge(c.Request.Context(), req.ChallengeToken); err != nil {
		respondServiceError(c, logger, err, "Failed to cancel login attempt")
		return
	}
	c.Status(http.StatusNoContent)
}

// loginRegistrar godoc
// @Summary Registrar login
// @Description Authenticates a staff account and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) loginRegistrar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.authService.LoginRegistrar(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, session)
}
