package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
	"github.com/pontualize/timesheet_app/internal/dto"
	"github.com/pontualize/timesheet_app/internal/middleware"
	"github.com/pontualize/timesheet_app/internal/platform/config"
)

// authHandler handles credential exchange and password recovery.
type authHandler struct {
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{tokenService: ts}
}

// registerAuthRoutes registers the public auth routes, rate-limited by
// client IP.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, tokenService portssvc.TokenSvcFacade) {
	h := newAuthHandler(tokenService)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		// Config validation guarantees a parseable value; fall back hard.
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	auth := rg.Group("/auth", middleware.RateLimit(limiterInstance))
	{
		auth.POST("/token", h.login)
		auth.POST("/refresh-token", h.refreshToken)
		auth.POST("/recover-password", h.recoverPassword)
		auth.PUT("/recover-password", h.resetPassword)
	}
}

// login godoc
// @Summary Exchange credentials for a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "E-mail and password"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/token [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tokens, err := h.tokenService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, logger, err, "Failed to authenticate")
		return
	}

	logger.Info("User authenticated", slog.String("email", req.Email))
	c.JSON(http.StatusOK, tokens)
}

// refreshToken godoc
// @Summary Exchange a refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} map[string]string "Invalid refresh token"
// @Router /auth/refresh-token [post]
func (h *authHandler) refreshToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tokens, err := h.tokenService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondWithError(c, logger, err, "Failed to refresh token")
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// recoverPassword godoc
// @Summary Start password recovery for an e-mail address
// @Description Always answers 204 so the endpoint cannot be used to probe
// @Description which e-mail addresses are registered.
// @Tags auth
// @Accept json
// @Param request body dto.RecoverPasswordRequest true "Account e-mail"
// @Success 204 "Recovery started if the account exists"
// @Router /auth/recover-password [post]
func (h *authHandler) recoverPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecoverPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.tokenService.StartPasswordRecovery(c.Request.Context(), req.Email); err != nil {
		// Unknown accounts answer the same as known ones.
		logger.Warn("Password recovery failed", slog.String("error", err.Error()))
	}

	c.Status(http.StatusNoContent)
}

// resetPassword godoc
// @Summary Complete password recovery
// @Tags auth
// @Accept json
// @Param request body dto.ResetPasswordRequest true "Recovery hash, code and new password"
// @Success 204 "Password replaced"
// @Failure 401 {object} map[string]string "Hash or code mismatch"
// @Router /auth/recover-password [put]
func (h *authHandler) resetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.tokenService.ResetPassword(c.Request.Context(), req.Hash, req.Code, req.Password); err != nil {
		respondWithError(c, logger, err, "Failed to reset password")
		return
	}

	c.Status(http.StatusNoContent)
}
