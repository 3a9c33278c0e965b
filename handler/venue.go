package handler

import (
	"errors"
	"fmt"

	"gig_manager/config"
	"gig_manager/constants"
	"gig_manager/database"
	"gig_manager/helper"
	"gig_manager/model"
	"gig_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetVenues danh sách venue nhóm theo (city, state)
func GetVenues(c *fiber.Ctx) error {
	db := database.DB

	areas, err := helper.GroupVenuesByArea(db)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, areas)
}

func SearchVenues(c *fiber.Ctx) error {
	term, ok := c.Locals("searchTerm").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	response, err := helper.SearchVenuesByName(database.DB, term)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetVenueById(c *fiber.Ctx) error {
	venueId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	detail, err := helper.GetVenueDetail(database.DB, uint(venueId))
	if err != nil {
		return storeErrorResponse(c, constants.VENUE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, detail)
}

func GetVenueBySlug(c *fiber.Ctx) error {
	detail, err := helper.GetVenueDetailBySlug(database.DB, c.Params("slug"))
	if err != nil {
		return storeErrorResponse(c, constants.VENUE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, detail)
}

func CreateVenue(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateVenue").(model.CreateVenueInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	tx := db.Begin()
	venue, err := helper.CreateVenue(tx, input)
	if err != nil {
		tx.Rollback()
		return storeErrorResponse(c, constants.ERROR_CREATE, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, venue)
}

func EditVenue(c *fiber.Ctx) error {
	venueId, ok := c.Locals("venueId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	input, ok := c.Locals("inputEditVenue").(model.EditVenueInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	tx := db.Begin()
	venue, err := helper.UpdateVenue(tx, venueId, input)
	if err != nil {
		tx.Rollback()
		return storeErrorResponse(c, constants.ERROR_UPDATE, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, venue)
}

func DeleteVenue(c *fiber.Ctx) error {
	venueId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	tx := db.Begin()
	if err := helper.DeleteVenue(tx, uint(venueId)); err != nil {
		tx.Rollback()
		return storeErrorResponse(c, constants.ERROR_DELETE, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, venueId)
}

// GetVenueQR trả PNG QR dẫn tới trang công khai của venue
func GetVenueQR(c *fiber.Ctx) error {
	venueId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var venue model.Venue
	if err := database.DB.First(&venue, venueId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.VENUE_NOT_FOUND, err)
	}

	baseUrl := config.Config("PUBLIC_BASE_URL")
	if baseUrl == "" {
		baseUrl = "http://localhost:8002"
	}
	content := fmt.Sprintf("%s/api/v1/public/venue/%s", baseUrl, venue.Slug)

	qrBytes, err := utils.GenerateQRCode(content, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(qrBytes)
}
