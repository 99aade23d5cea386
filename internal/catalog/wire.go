package catalog

import (
	"greencross/internal/catalog/controller"
	"greencross/internal/catalog/repository"
	"greencross/internal/catalog/service"
	"greencross/internal/catalog/usecase"

	"go.uber.org/zap"
)

func NewModule(repo *repository.StaticRepository, logger *zap.Logger) *controller.Controller {
	svc := service.NewService(repo)
	uc := usecase.NewSearchUseCase(svc)
	return controller.NewController(uc, logger)
}
