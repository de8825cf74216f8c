package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"zakatku_backend/internals/apperr"
)

// FromAppError memetakan taksonomi apperr ke response JSON konsisten.
// Error lain (termasuk *fiber.Error) di-fallback apa adanya.
func FromAppError(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindValidation:
			if len(ae.Fields) > 0 {
				return ErrorWithDetails(c, fiber.StatusBadRequest, ae.Msg, ae.Fields)
			}
			return Error(c, fiber.StatusBadRequest, ae.Msg)
		case apperr.KindNotFound:
			return Error(c, fiber.StatusNotFound, ae.Msg)
		case apperr.KindAuthorization:
			return Error(c, fiber.StatusForbidden, ae.Msg)
		case apperr.KindPartialProvision:
			// Dibedakan dari storage biasa supaya operator setengah-jadi
			// bisa direkonsiliasi, bukan dianggap gagal total.
			return ErrorWithDetails(c, fiber.StatusBadGateway, ae.Msg,
				fiber.Map{"kind": ae.Kind.String()})
		case apperr.KindStorage:
			return Error(c, fiber.StatusInternalServerError, ae.Msg)
		}
	}

	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
