package handlers

import "github.com/gin-gonic/gin"

// JobApplicationHandlerInterface defines the methods needed by the application routes.
type JobApplicationHandlerInterface interface {
	CreateApplication(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	ListApplications(c *gin.Context)
	RespondToApplication(c *gin.Context)
	CancelApplication(c *gin.Context)
	ConfirmLegal(c *gin.Context)
	GetDisclosure(c *gin.Context)
}

// ChatHandlerInterface defines the methods needed by the chat routes.
type ChatHandlerInterface interface {
	AppendMessage(c *gin.Context)
	ListMessages(c *gin.Context)
}

// Ensure handlers implements the interface (compile-time check)
var _ JobApplicationHandlerInterface = (*JobApplicationHandler)(nil)
var _ ChatHandlerInterface = (*ChatHandler)(nil)
