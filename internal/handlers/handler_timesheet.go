package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
	"github.com/pontualize/timesheet_app/internal/dto"
	"github.com/pontualize/timesheet_app/internal/middleware"
)

// timesheetHandler handles the caller's own timesheet submissions and
// monthly views.
type timesheetHandler struct {
	timesheetService portssvc.TimesheetSvcFacade
}

func newTimesheetHandler(ts portssvc.TimesheetSvcFacade) *timesheetHandler {
	return &timesheetHandler{timesheetService: ts}
}

func registerTimesheetRoutes(rg *gin.RouterGroup, timesheetService portssvc.TimesheetSvcFacade) {
	h := newTimesheetHandler(timesheetService)

	timesheet := rg.Group("/timesheet")
	{
		timesheet.POST("/:year/:month/:day", h.submitDay)
		timesheet.GET("/:year/:month", h.getMonthlyReport)
	}
}

// submitDay godoc
// @Summary Submit the caller's work periods for one day
// @Description Replaces or extends the stored periods of the date. The
// @Description whole submission is rejected when any period is malformed,
// @Description inverted or overlapping, or when the month is closed.
// @Tags timesheet
// @Accept json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param day path int true "Day of month"
// @Param periods body dto.SubmitTimesheetRequest true "Day's periods (HH:MM)"
// @Success 204 "Periods stored"
// @Failure 400 {object} map[string]string "Invalid periods or month closed"
// @Failure 403 {object} map[string]string "Missing POST_TIMESHEET permission"
// @Security BearerAuth
// @Router /timesheet/{year}/{month}/{day} [post]
func (h *timesheetHandler) submitDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	perms := middleware.GetPermissionsFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Day must be a number"})
		return
	}

	var req dto.SubmitTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.timesheetService.SubmitDay(c.Request.Context(), perms, userID, year, month, day, req.Period); err != nil {
		respondWithError(c, logger, err, "Failed to submit timesheet")
		return
	}

	logger.Info("Timesheet day submitted",
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("day", day),
		slog.Int("periods", len(req.Period)))
	c.Status(http.StatusNoContent)
}

// getMonthlyReport godoc
// @Summary Get the caller's monthly timesheet report
// @Tags timesheet
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.TimesheetReportResponse
// @Failure 403 {object} map[string]string "Missing GET_TIMESHEET permission"
// @Security BearerAuth
// @Router /timesheet/{year}/{month} [get]
func (h *timesheetHandler) getMonthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	perms := middleware.GetPermissionsFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	report, err := h.timesheetService.GetMonthlyReport(c.Request.Context(), perms, userID, year, month)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build report")
		return
	}

	c.JSON(http.StatusOK, report)
}
