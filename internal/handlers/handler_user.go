package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
	"github.com/pontualize/timesheet_app/internal/dto"
	"github.com/pontualize/timesheet_app/internal/middleware"
)

// userHandler handles HTTP requests related to users, their bank-hours
// ledger and their monthly closures.
type userHandler struct {
	userService      portssvc.UserSvcFacade
	bankHourService  portssvc.BankHourSvcFacade
	paymentService   portssvc.PaymentSvcFacade
	timesheetService portssvc.TimesheetSvcFacade
}

func newUserHandler(
	us portssvc.UserSvcFacade,
	bs portssvc.BankHourSvcFacade,
	ps portssvc.PaymentSvcFacade,
	ts portssvc.TimesheetSvcFacade,
) *userHandler {
	return &userHandler{
		userService:      us,
		bankHourService:  bs,
		paymentService:   ps,
		timesheetService: ts,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(
	rg *gin.RouterGroup,
	userService portssvc.UserSvcFacade,
	bankHourService portssvc.BankHourSvcFacade,
	paymentService portssvc.PaymentSvcFacade,
	timesheetService portssvc.TimesheetSvcFacade,
) {
	h := newUserHandler(userService, bankHourService, paymentService, timesheetService)

	users := rg.Group("/user")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.PUT("/:id/password", h.changeUserPassword)
		users.PATCH("/:id/bank", h.adjustBankHours)
		users.PATCH("/:id/report/:year/:month/closed", h.closeMonth)
		users.GET("/:id/report/:year/:month", h.getUserReport)
	}
}

// createUser godoc
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "E-mail already registered"
// @Security BearerAuth
// @Router /user [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create user")
		return
	}

	logger.Info("User created", slog.String("new_user_id", created.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(created, "", decimal.Zero))
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} dto.ListUsersResponse
// @Security BearerAuth
// @Router /user [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.ListUsersResponse{Users: users})
}

// getUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} map[string]string "Missing GET_USER permission"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /user/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	perms := middleware.GetPermissionsFromContext(c)

	user, err := h.userService.GetUserByID(c.Request.Context(), perms, c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// updateUser godoc
// @Summary Update a user's profile
// @Description Applies a partial update; omitted fields keep their value.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /user/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update user")
		return
	}

	logger.Info("User updated", slog.String("user_id", updated.UserID))
	c.JSON(http.StatusOK, dto.ToUserResponse(updated, "", decimal.Zero))
}

// changeUserPassword godoc
// @Summary Replace a user's password
// @Tags users
// @Accept json
// @Param id path string true "User ID"
// @Param password body dto.ChangeUserPasswordRequest true "Replacement password"
// @Success 204 "Password changed"
// @Failure 403 {object} map[string]string "Missing PUT_USER_PASSWORD permission"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /user/{id}/password [put]
func (h *userHandler) changeUserPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	perms := middleware.GetPermissionsFromContext(c)

	var req dto.ChangeUserPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.userService.ChangeUserPassword(c.Request.Context(), perms, c.Param("id"), req.Password); err != nil {
		respondWithError(c, logger, err, "Failed to change password")
		return
	}

	logger.Info("User password changed", slog.String("user_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}

// adjustBankHours godoc
// @Summary Apply a signed bank-hours adjustment
// @Tags users
// @Accept json
// @Param id path string true "User ID"
// @Param adjustment body dto.BankHourAdjustmentRequest true "Signed hours delta"
// @Success 204 "Balance updated"
// @Failure 403 {object} map[string]string "Missing PATCH_USER permission"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /user/{id}/bank [patch]
func (h *userHandler) adjustBankHours(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	perms := middleware.GetPermissionsFromContext(c)

	var req dto.BankHourAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.bankHourService.Adjust(c.Request.Context(), perms, c.Param("id"), req); err != nil {
		respondWithError(c, logger, err, "Failed to adjust bank hours")
		return
	}

	logger.Info("Bank hours adjusted", slog.String("user_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}

// closeMonth godoc
// @Summary Close a user's month into a payment snapshot
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.ClosureReceiptResponse
// @Failure 403 {object} map[string]string "Missing PATCH_USER permission"
// @Failure 409 {object} map[string]string "Month already closed"
// @Security BearerAuth
// @Router /user/{id}/report/{year}/{month}/closed [patch]
func (h *userHandler) closeMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	perms := middleware.GetPermissionsFromContext(c)

	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	receipt, err := h.paymentService.CloseMonth(c.Request.Context(), perms, c.Param("id"), year, month)
	if err != nil {
		respondWithError(c, logger, err, "Failed to close month")
		return
	}

	logger.Info("Month closed",
		slog.String("user_id", c.Param("id")),
		slog.Int("year", year),
		slog.Int("month", month))
	c.JSON(http.StatusOK, receipt)
}

// getUserReport godoc
// @Summary Get any user's monthly timesheet report
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.TimesheetReportResponse
// @Failure 403 {object} map[string]string "Missing GET_USER permission"
// @Security BearerAuth
// @Router /user/{id}/report/{year}/{month} [get]
func (h *userHandler) getUserReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	perms := middleware.GetPermissionsFromContext(c)

	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	report, err := h.timesheetService.GetUserReport(c.Request.Context(), perms, c.Param("id"), year, month)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// yearMonthParams parses the :year/:month path segments, answering a 400
// itself when either is not a number.
func yearMonthParams(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year must be a number"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be a number"})
		return 0, 0, false
	}
	return year, month, true
}
