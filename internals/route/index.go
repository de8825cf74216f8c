// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	transactionRoute "zakatku_backend/internals/features/donations/transactions/route"
	transactionService "zakatku_backend/internals/features/donations/transactions/service"
	operatorRoute "zakatku_backend/internals/features/operators/route"
	authMiddleware "zakatku_backend/internals/middlewares/auth"
	"zakatku_backend/internals/realtime"

	transactionRepo "zakatku_backend/internals/features/donations/transactions/repository"
)

// SetupRoutes merakit seluruh graph: repository → service → controller →
// route group. Mengembalikan cleanup untuk dipanggil saat shutdown.
func SetupRoutes(app *fiber.App, db *gorm.DB, bus *realtime.Bus) (cleanup func()) {
	txRepo := transactionRepo.NewTransactionRepository(db, bus)

	// Aggregation engine (kebijakan push) — listener hidup selama proses
	summarySvc := transactionService.NewSummaryService(txRepo, bus)
	summarySvc.Start()

	// ===================== GROUPS =====================

	// OPERATOR (/api/u): session valid + operator aktif (superadmin juga lolos)
	log.Println("[INFO] Setting up OPERATOR group (Auth + ActiveOperator)...")
	operator := app.Group("/api/u",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireActiveOperator(db),
	)

	// ADMIN (/api/a): session valid + superadmin
	log.Println("[INFO] Setting up ADMIN group (Auth + Superadmin)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireSuperadmin(db),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Transaction routes...")
	transactionRoute.TransactionOperatorRoutes(operator, txRepo)
	transactionRoute.TransactionAdminRoutes(admin, txRepo, summarySvc)

	log.Println("[INFO] Mounting Operator routes...")
	operatorRoute.OperatorAdminRoutes(admin, db)

	return func() {
		summarySvc.Stop()
	}
}
