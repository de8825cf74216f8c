// 📁 controller/donation_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"zakatku_backend/internals/features/donations/transactions/dto"
	"zakatku_backend/internals/features/donations/transactions/repository"
	helper "zakatku_backend/internals/helpers"
)

var validate = validator.New()

// DonationController melayani form pencatatan donasi di pos
// (operator aktif & superadmin).
type DonationController struct {
	Repo *repository.TransactionRepository
}

func NewDonationController(repo *repository.TransactionRepository) *DonationController {
	return &DonationController{Repo: repo}
}

// 🟢 POST /api/u/transactions — catat donasi baru
func (ctrl *DonationController) CreateTransaction(c *fiber.Ctx) error {
	var body dto.CreateTransactionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	// 🔐 operator_id dari session (diisi gate), bukan dari payload
	operatorID, ok := c.Locals("operator_id").(uuid.UUID)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - Missing session")
	}

	t := body.ToModel()
	t.OperatorID = operatorID

	if err := ctrl.Repo.Create(c.UserContext(), t); err != nil {
		return helper.FromAppError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Transaksi berhasil disimpan", t)
}
