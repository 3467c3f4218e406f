package app

import (
	"shiftmatch/config"
	"shiftmatch/internal/kvstore"
	"shiftmatch/internal/logger"
	"shiftmatch/internal/services"
	"shiftmatch/internal/storage/kv"

	"github.com/go-playground/validator/v10"
)

// Application holds core application dependencies.
type Application struct {
	Config    *config.Config
	Store     kvstore.Store
	Logger    logger.Logger
	Validator *validator.Validate

	ApplicationService services.JobApplicationService
	ChatService        services.ChatService
}

// New wires the registry and chat store onto store.
func New(cfg *config.Config, store kvstore.Store, log logger.Logger, opts ...services.Option) *Application {
	return &Application{
		Config:             cfg,
		Store:              store,
		Logger:             log,
		Validator:          validator.New(),
		ApplicationService: services.NewJobApplicationService(kv.NewJobApplicationRepo(store), log, opts...),
		ChatService:        services.NewChatService(kv.NewChatMessageRepo(store), log, opts...),
	}
}
