package route

import (
	"github.com/gofiber/fiber/v2"

	transactionController "zakatku_backend/internals/features/donations/transactions/controller"
	"zakatku_backend/internals/features/donations/transactions/repository"
	"zakatku_backend/internals/middlewares"
)

// TransactionOperatorRoutes: form pencatatan donasi (operator aktif).
func TransactionOperatorRoutes(api fiber.Router, repo *repository.TransactionRepository) {
	ctrl := transactionController.NewDonationController(repo)

	tx := api.Group("/transactions")
	tx.Post("/", middlewares.SubmitRateLimiter(), ctrl.CreateTransaction)
}
