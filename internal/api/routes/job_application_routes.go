package routes

import (
	"shiftmatch/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobApplicationRoutes registers all routes related to job applications and their threads.
func RegisterJobApplicationRoutes(
	rg *gin.RouterGroup,
	jobAppHandler handlers.JobApplicationHandlerInterface,
	chatHandler handlers.ChatHandlerInterface,
) {
	appsGroup := rg.Group("/applications")
	{
		appsGroup.POST("", jobAppHandler.CreateApplication)
		appsGroup.GET("", jobAppHandler.ListApplications)
		appsGroup.GET("/:id", jobAppHandler.GetApplicationByID)
		appsGroup.PATCH("/:id/respond", jobAppHandler.RespondToApplication)
		appsGroup.PATCH("/:id/cancel", jobAppHandler.CancelApplication)
		appsGroup.PATCH("/:id/confirm", jobAppHandler.ConfirmLegal)
		appsGroup.GET("/:id/disclosure", jobAppHandler.GetDisclosure)

		appsGroup.POST("/:id/messages", chatHandler.AppendMessage)
		appsGroup.GET("/:id/messages", chatHandler.ListMessages)
	}
}
