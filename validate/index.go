package validate

import (
	"errors"
	"strconv"

	"gig_manager/constants"
	"gig_manager/model"
	"gig_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func parseId(param string) (uint, error) {
	value, err := strconv.Atoi(param)
	if err != nil || value <= 0 {
		return 0, errors.New("params invalid")
	}
	return uint(value), nil
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		// Save input to context locals
		c.Locals("inputId", valueKey)

		// Continue to next handler
		return c.Next()
	}
}

// Search cho cả venue lẫn artist; term rỗng là hợp lệ (khớp tất cả)
func Search() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := model.SearchInput{}
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("searchTerm", input.SearchTerm)
		return c.Next()
	}
}
