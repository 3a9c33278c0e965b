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

func GetArtists(c *fiber.Ctx) error {
	summaries, err := helper.ListArtists(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, summaries)
}

func SearchArtists(c *fiber.Ctx) error {
	term, ok := c.Locals("searchTerm").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	response, err := helper.SearchArtistsByName(database.DB, term)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetArtistById(c *fiber.Ctx) error {
	artistId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	detail, err := helper.GetArtistDetail(database.DB, uint(artistId))
	if err != nil {
		return storeErrorResponse(c, constants.ARTIST_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, detail)
}

func GetArtistBySlug(c *fiber.Ctx) error {
	detail, err := helper.GetArtistDetailBySlug(database.DB, c.Params("slug"))
	if err != nil {
		return storeErrorResponse(c, constants.ARTIST_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, detail)
}

func CreateArtist(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateArtist").(model.CreateArtistInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	tx := db.Begin()
	artist, err := helper.CreateArtist(tx, input)
	if err != nil {
		tx.Rollback()
		return storeErrorResponse(c, constants.ERROR_CREATE, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, artist)
}

func EditArtist(c *fiber.Ctx) error {
	artistId, ok := c.Locals("artistId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	input, ok := c.Locals("inputEditArtist").(model.EditArtistInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	tx := db.Begin()
	artist, err := helper.UpdateArtist(tx, artistId, input)
	if err != nil {
		tx.Rollback()
		return storeErrorResponse(c, constants.ERROR_UPDATE, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, artist)
}

func DeleteArtist(c *fiber.Ctx) error {
	artistId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	tx := db.Begin()
	if err := helper.DeleteArtist(tx, uint(artistId)); err != nil {
		tx.Rollback()
		return storeErrorResponse(c, constants.ERROR_DELETE, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, artistId)
}

func GetArtistQR(c *fiber.Ctx) error {
	artistId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var artist model.Artist
	if err := database.DB.First(&artist, artistId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ARTIST_NOT_FOUND, err)
	}

	baseUrl := config.Config("PUBLIC_BASE_URL")
	if baseUrl == "" {
		baseUrl = "http://localhost:8002"
	}
	content := fmt.Sprintf("%s/api/v1/public/artist/%s", baseUrl, artist.Slug)

	qrBytes, err := utils.GenerateQRCode(content, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(qrBytes)
}
