// 📁 controller/operator_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"zakatku_backend/internals/features/operators/dto"
	"zakatku_backend/internals/features/operators/service"
	helper "zakatku_backend/internals/helpers"
)

var validate = validator.New()

type OperatorController struct {
	Service *service.ProvisionService
}

func NewOperatorController(svc *service.ProvisionService) *OperatorController {
	return &OperatorController{Service: svc}
}

// 🟢 GET /api/a/operators — daftar operator, terbaru dulu
func (ctrl *OperatorController) GetAllOperators(c *fiber.Ctx) error {
	ops, err := ctrl.Service.List(c.UserContext())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Daftar operator berhasil diambil", ops)
}

// 🟢 POST /api/a/operators — provisioning akun operator baru
func (ctrl *OperatorController) ProvisionOperator(c *fiber.Ctx) error {
	var body dto.ProvisionOperatorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	op, err := ctrl.Service.Provision(c.UserContext(), body.Email, body.Username, body.Password)
	if err != nil {
		log.Printf("[ERROR] provisioning %s gagal: %v", body.Email, err)
		return helper.FromAppError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Operator berhasil dibuat", op)
}

// 🟢 PUT /api/a/operators/:id/active — aktif/nonaktifkan operator
func (ctrl *OperatorController) SetOperatorActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID operator tidak valid")
	}

	var body dto.SetActiveRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	op, err := ctrl.Service.SetActive(c.UserContext(), id, *body.Active)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Status operator berhasil diubah", op)
}
