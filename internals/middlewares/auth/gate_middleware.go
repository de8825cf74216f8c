package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"zakatku_backend/internals/apperr"
	"zakatku_backend/internals/constants"
	operatorRepo "zakatku_backend/internals/features/operators/repository"
	helper "zakatku_backend/internals/helpers"
)

// requireAction membangun middleware gate untuk satu Action.
// Urutannya selalu: ambil user_id hasil AuthMiddleware → lookup directory →
// Resolve state → cek matriks. Deny tidak pernah merender data parsial.
func requireAction(db *gorm.DB, action Action, denyMessage string) fiber.Handler {
	repo := operatorRepo.NewOperatorRepository(db)

	return func(c *fiber.Ctx) error {
		userIDRaw, _ := c.Locals("user_id").(string)
		userID, err := uuid.Parse(userIDRaw)
		if userIDRaw == "" || err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - Missing session")
		}

		op, lookupErr := repo.FindByID(c.UserContext(), userID)
		lookupFailed := false
		if lookupErr != nil && !apperr.Is(lookupErr, apperr.KindNotFound) {
			// Storage error ⇒ fail-closed
			log.Printf("[ERROR] gate lookup gagal untuk %s: %v", userID, lookupErr)
			lookupFailed = true
		}

		state := Resolve(true, op, lookupFailed)
		if !Allowed(state, action) {
			log.Printf("[DEBUG] gate deny: user=%s state=%s", userID, state)
			return helper.Error(c, fiber.StatusForbidden, denyMessage)
		}

		// simpan hasil lookup untuk controller di bawahnya
		c.Locals("operator_id", op.ID)
		c.Locals("userRole", op.Role)
		return c.Next()
	}
}

// RequireActiveOperator: boleh mencatat donasi (operator aktif / superadmin).
func RequireActiveOperator(db *gorm.DB) fiber.Handler {
	return requireAction(db, ActionSubmitDonation,
		constants.RoleErrorOperator("pencatatan donasi"))
}

// RequireSuperadmin: browse/edit/hapus ledger dan manajemen operator.
func RequireSuperadmin(db *gorm.DB) fiber.Handler {
	return requireAction(db, ActionManageOperators,
		constants.RoleErrorSuperadmin("manajemen ledger"))
}
