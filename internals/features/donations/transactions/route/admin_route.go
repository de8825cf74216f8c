package route

import (
	"github.com/gofiber/fiber/v2"

	transactionController "zakatku_backend/internals/features/donations/transactions/controller"
	"zakatku_backend/internals/features/donations/transactions/repository"
	"zakatku_backend/internals/features/donations/transactions/service"
)

// TransactionAdminRoutes: browse, ringkasan, edit, dan hapus ledger
// (khusus superadmin).
func TransactionAdminRoutes(api fiber.Router, repo *repository.TransactionRepository, sum *service.SummaryService) {
	ctrl := transactionController.NewTransactionAdminController(repo, sum)

	tx := api.Group("/transactions")
	tx.Get("/", ctrl.GetAllTransactions)
	tx.Get("/summary", ctrl.GetSummary)
	tx.Put("/:id", ctrl.UpdateTransaction)
	tx.Patch("/:id/notes", ctrl.UpdateTransactionNotes)
	tx.Delete("/:id", ctrl.DeleteTransaction)
}
