package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
	"github.com/pontualize/timesheet_app/internal/middleware"
)

// groupHandler handles HTTP requests related to permission groups.
type groupHandler struct {
	groupService portssvc.GroupSvcFacade
}

func newGroupHandler(gs portssvc.GroupSvcFacade) *groupHandler {
	return &groupHandler{groupService: gs}
}

func registerGroupRoutes(rg *gin.RouterGroup, groupService portssvc.GroupSvcFacade) {
	h := newGroupHandler(groupService)

	groups := rg.Group("/group")
	{
		groups.GET("", h.listGroups)
	}
}

// listGroups godoc
// @Summary List permission groups
// @Tags groups
// @Produce json
// @Success 200 {array} domain.Group
// @Failure 403 {object} map[string]string "Missing GET_GROUP permission"
// @Security BearerAuth
// @Router /group [get]
func (h *groupHandler) listGroups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	perms := middleware.GetPermissionsFromContext(c)

	groups, err := h.groupService.ListGroups(c.Request.Context(), perms)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list groups")
		return
	}

	c.JSON(http.StatusOK, groups)
}
