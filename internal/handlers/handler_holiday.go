package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
	"github.com/pontualize/timesheet_app/internal/dto"
	"github.com/pontualize/timesheet_app/internal/middleware"
)

// holidayHandler handles HTTP requests for the holiday calendar.
type holidayHandler struct {
	holidayService portssvc.HolidaySvcFacade
}

func newHolidayHandler(hs portssvc.HolidaySvcFacade) *holidayHandler {
	return &holidayHandler{holidayService: hs}
}

func registerHolidayRoutes(rg *gin.RouterGroup, holidayService portssvc.HolidaySvcFacade) {
	h := newHolidayHandler(holidayService)

	holidays := rg.Group("/holiday")
	{
		holidays.POST("", h.createHolidays)
		holidays.PUT("/:year", h.replaceYear)
		holidays.GET("", h.listHolidays)
	}
}

// createHolidays godoc
// @Summary Declare holiday dates for a year
// @Tags holidays
// @Accept json
// @Param holidays body dto.CreateHolidayRequest true "Year and dates (yyyy-mm-dd)"
// @Success 201 "Holidays created"
// @Failure 403 {object} map[string]string "Missing POST_HOLIDAY permission"
// @Failure 409 {object} map[string]string "Date already declared"
// @Security BearerAuth
// @Router /holiday [post]
func (h *holidayHandler) createHolidays(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	perms := middleware.GetPermissionsFromContext(c)

	var req dto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.holidayService.CreateHolidays(c.Request.Context(), perms, req); err != nil {
		respondWithError(c, logger, err, "Failed to create holidays")
		return
	}

	c.Status(http.StatusCreated)
}

// replaceYear godoc
// @Summary Replace one year's holiday calendar
// @Tags holidays
// @Accept json
// @Param year path int true "Year"
// @Param holidays body dto.ReplaceHolidaysRequest true "Dates (yyyy-mm-dd)"
// @Success 204 "Calendar replaced"
// @Failure 403 {object} map[string]string "Missing PUT_HOLIDAY permission"
// @Security BearerAuth
// @Router /holiday/{year} [put]
func (h *holidayHandler) replaceYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	perms := middleware.GetPermissionsFromContext(c)

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year must be a number"})
		return
	}

	var req dto.ReplaceHolidaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.holidayService.ReplaceYear(c.Request.Context(), perms, year, req.Days); err != nil {
		respondWithError(c, logger, err, "Failed to replace holidays")
		return
	}

	c.Status(http.StatusNoContent)
}

// listHolidays godoc
// @Summary List holidays grouped by year
// @Tags holidays
// @Produce json
// @Success 200 {array} dto.HolidayYearResponse
// @Failure 403 {object} map[string]string "Missing GET_HOLIDAY permission"
// @Security BearerAuth
// @Router /holiday [get]
func (h *holidayHandler) listHolidays(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	perms := middleware.GetPermissionsFromContext(c)

	holidays, err := h.holidayService.ListHolidays(c.Request.Context(), perms)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list holidays")
		return
	}

	c.JSON(http.StatusOK, holidays)
}
