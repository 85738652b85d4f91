package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
	"github.com/pontualize/timesheet_app/internal/middleware"
	"github.com/pontualize/timesheet_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Health check route
	r.GET("/is-alive", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes under /v1/auth, rate-limited but not
	// token-guarded.
	public := r.Group("/v1")
	registerAuthRoutes(public, cfg, services.Token)

	// Token-guarded API routes.
	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /v1 group and delegates to the entity
// route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/v1", middleware.AuthMiddleware(cfg.JWTSecret, services.Group))

	registerUserRoutes(v1, services.User, services.BankHour, services.Payment, services.Timesheet)
	registerHolidayRoutes(v1, services.Holiday)
	registerTimesheetRoutes(v1, services.Timesheet)
	registerGroupRoutes(v1, services.Group)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
