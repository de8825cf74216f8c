package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zakatku_backend/internals/configs"
	operatorController "zakatku_backend/internals/features/operators/controller"
	"zakatku_backend/internals/features/operators/identity"
	operatorRepo "zakatku_backend/internals/features/operators/repository"
	operatorService "zakatku_backend/internals/features/operators/service"
	"zakatku_backend/internals/middlewares"
)

// OperatorAdminRoutes: manajemen operator, khusus superadmin.
func OperatorAdminRoutes(api fiber.Router, db *gorm.DB) {
	repo := operatorRepo.NewOperatorRepository(db)
	prov := identity.NewAdminClient(configs.IdentityAdminURL, configs.IdentityServiceKey)
	svc := operatorService.NewProvisionService(repo, prov)
	ctrl := operatorController.NewOperatorController(svc)

	ops := api.Group("/operators")
	ops.Get("/", ctrl.GetAllOperators)
	ops.Post("/", middlewares.ProvisionRateLimiter(), ctrl.ProvisionOperator)
	ops.Put("/:id/active", ctrl.SetOperatorActive)
}
