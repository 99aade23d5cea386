package location

import (
	"greencross/internal/location/controller"
	"greencross/internal/location/repository"
	"greencross/internal/location/service"

	"go.uber.org/zap"
)

func NewModule(repo *repository.StaticRepository, logger *zap.Logger) *controller.Controller {
	return controller.NewController(service.NewService(repo), logger)
}
