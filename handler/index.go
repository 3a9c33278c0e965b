package handler

import (
	"errors"

	"gig_manager/helper"
	"gig_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// storeErrorResponse map loại lỗi của store sang HTTP status
func storeErrorResponse(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, helper.ErrValidation):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	case errors.Is(err, helper.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, helper.ErrDuplicate):
		return utils.ErrorResponse(c, fiber.StatusConflict, message, err)
	case errors.Is(err, helper.ErrConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, message, err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
	}
}
