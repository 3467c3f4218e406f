package routes

import (
	"shiftmatch/internal/api/handlers"
	"shiftmatch/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	apiV1 := router.Group("/api/v1")

	jobAppHandler := handlers.NewJobApplicationHandler(app.ApplicationService, app.Validator, app.Logger)
	chatHandler := handlers.NewChatHandler(app.ChatService, app.Validator, app.Logger)
	collaboratorHandler := handlers.NewCollaboratorHandler(app.Validator)

	RegisterJobApplicationRoutes(apiV1, jobAppHandler, chatHandler)
	apiV1.GET("/pricing/quote", collaboratorHandler.PriceQuote)
	apiV1.GET("/distance", collaboratorHandler.Distance)

	router.GET("/health", handlers.NewHealthHandler(app.Store, app.Logger).HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
