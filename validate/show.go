package validate

import (
	"errors"

	"gig_manager/constants"
	"gig_manager/model"
	"gig_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateShow() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateShowInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		// Parse sớm để trả lỗi trước khi mở transaction
		if _, err := utils.ParseStartTime(input.StartTime); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_START_TIME, errors.New("invalid start time"), "start_time")
		}

		// Save input to context locals
		c.Locals("inputCreateShow", input)

		// Continue to next handler
		return c.Next()
	}
}

func FilterShows() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FilterShowsInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputFilterShows", input)
		return c.Next()
	}
}
