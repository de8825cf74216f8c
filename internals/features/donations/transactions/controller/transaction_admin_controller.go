// 📁 controller/transaction_admin_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"zakatku_backend/internals/features/donations/transactions/dto"
	"zakatku_backend/internals/features/donations/transactions/model"
	"zakatku_backend/internals/features/donations/transactions/repository"
	"zakatku_backend/internals/features/donations/transactions/service"
	helper "zakatku_backend/internals/helpers"
)

// TransactionAdminController: browse/edit/hapus ledger + ringkasan,
// khusus superadmin.
type TransactionAdminController struct {
	Repo    *repository.TransactionRepository
	Summary *service.SummaryService
}

func NewTransactionAdminController(repo *repository.TransactionRepository, sum *service.SummaryService) *TransactionAdminController {
	return &TransactionAdminController{Repo: repo, Summary: sum}
}

// parseListFilter membaca operator_id / date_from / date_to dari query.
func parseListFilter(c *fiber.Ctx) (repository.ListFilter, error) {
	var f repository.ListFilter

	if raw := c.Query("operator_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "operator_id tidak valid")
		}
		f.OperatorID = &id
	}

	from, err := helper.ParseDateFrom(c.Query("date_from"))
	if err != nil {
		return f, fiber.NewError(fiber.StatusBadRequest, "date_from tidak valid (format YYYY-MM-DD)")
	}
	f.DateFrom = from

	to, err := helper.ParseDateTo(c.Query("date_to"))
	if err != nil {
		return f, fiber.NewError(fiber.StatusBadRequest, "date_to tidak valid (format YYYY-MM-DD)")
	}
	f.DateTo = to

	return f, nil
}

// 🟢 GET /api/a/transactions — browse berhalaman dengan filter
func (ctrl *TransactionAdminController) GetAllTransactions(c *fiber.Ctx) error {
	filter, err := parseListFilter(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	params := helper.ParseFiber(c, helper.AdminOpts)

	records, total, err := ctrl.Repo.List(c.UserContext(), filter, params)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	return helper.Success(c, "Daftar transaksi berhasil diambil", fiber.Map{
		"transactions": records,
		"meta":         helper.BuildMeta(total, params),
	})
}

// 🟢 GET /api/a/transactions/summary — ringkasan agregat
// Tanpa filter: hasil push terakhir (tanpa query store); dengan filter atau
// ?refresh=1: hitung langsung (pull).
func (ctrl *TransactionAdminController) GetSummary(c *fiber.Ctx) error {
	filter, err := parseListFilter(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	unfiltered := filter.OperatorID == nil && filter.DateFrom == nil && filter.DateTo == nil
	if unfiltered && c.Query("refresh") == "" {
		if sum, ok := ctrl.Summary.Current(); ok {
			return helper.Success(c, "Ringkasan berhasil diambil", sum)
		}
	}

	sum, err := ctrl.Repo.Aggregate(c.UserContext(), filter)
	if err != nil {
		// pertahankan last-known-good + tandai stale, jangan kosongkan
		if last, ok := ctrl.Summary.Current(); ok && unfiltered {
			last.Stale = true
			return helper.SuccessWithCode(c, fiber.StatusOK,
				"Store bermasalah — menampilkan ringkasan terakhir", last)
		}
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Ringkasan berhasil diambil", sum)
}

// 🟢 PUT /api/a/transactions/:id — full edit (totals dihitung ulang)
func (ctrl *TransactionAdminController) UpdateTransaction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID transaksi tidak valid")
	}

	var body dto.UpdateTransactionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	updated, err := ctrl.Repo.Update(c.UserContext(), id, body.Apply)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Transaksi berhasil diperbarui", updated)
}

// 🟢 PATCH /api/a/transactions/:id/notes — quick edit catatan saja
func (ctrl *TransactionAdminController) UpdateTransactionNotes(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID transaksi tidak valid")
	}

	var body dto.UpdateNotesRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}

	updated, err := ctrl.Repo.Update(c.UserContext(), id, func(t *model.TransactionModel) {
		t.Notes = body.Notes
	})
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Catatan berhasil diperbarui", updated)
}

// 🟢 DELETE /api/a/transactions/:id — hapus permanen
func (ctrl *TransactionAdminController) DeleteTransaction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID transaksi tidak valid")
	}

	if err := ctrl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Transaksi berhasil dihapus", nil)
}
