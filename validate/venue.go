package validate

import (
	"errors"

	"gig_manager/constants"
	"gig_manager/model"
	"gig_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateVenue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateVenueInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		// Vocab check ngay tại boundary
		if !utils.IsValidValueOfConstant(input.State, constants.STATES) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_STATE, errors.New("invalid state"), "state")
		}
		for _, genre := range input.Genres {
			if !utils.IsValidValueOfConstant(genre, constants.GENRES) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_GENRE, errors.New("invalid genre"), "genres")
			}
		}

		// Save input to context locals
		c.Locals("inputCreateVenue", input)

		// Continue to next handler
		return c.Next()
	}
}

func EditVenue(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		venueId, err := parseId(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.EditVenueInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.State != nil && !utils.IsValidValueOfConstant(*input.State, constants.STATES) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_STATE, errors.New("invalid state"), "state")
		}
		if input.Genres != nil {
			for _, genre := range *input.Genres {
				if !utils.IsValidValueOfConstant(genre, constants.GENRES) {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_GENRE, errors.New("invalid genre"), "genres")
				}
			}
		}

		c.Locals("venueId", venueId)
		c.Locals("inputEditVenue", input)
		return c.Next()
	}
}
