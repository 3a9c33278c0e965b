package handler

import (
	"errors"

	"gig_manager/constants"
	"gig_manager/database"
	"gig_manager/helper"
	"gig_manager/model"
	"gig_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetShows(c *fiber.Ctx) error {
	infos, err := helper.ListShows(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, infos)
}

// FilterShows lọc show theo venue/artist, có phân trang
func FilterShows(c *fiber.Ctx) error {
	db := database.DB
	filterInput, ok := c.Locals("inputFilterShows").(model.FilterShowsInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	condition := db.Model(&model.Show{})
	if filterInput.VenueId != nil {
		condition = condition.Where("venue_id = ?", *filterInput.VenueId)
	}
	if filterInput.ArtistId != nil {
		condition = condition.Where("artist_id = ?", *filterInput.ArtistId)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var shows []model.Show
	condition.Preload("Venue").Preload("Artist").Order("start_time").Find(&shows)

	infos := make([]model.ShowInfo, 0, len(shows))
	for _, show := range shows {
		infos = append(infos, helper.ShowToInfo(show))
	}
	response := &model.ResponseCustom{
		Rows:       infos,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateShow(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateShow").(model.CreateShowInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB
	tx := db.Begin()
	show, err := helper.CreateShow(tx, input)
	if err != nil {
		tx.Rollback()
		return storeErrorResponse(c, constants.ERROR_CREATE, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Đẩy show mới lên feed, lỗi publish không làm fail request
	PublishShowListed(helper.ShowToInfo(*show))

	return utils.SuccessResponse(c, fiber.StatusCreated, helper.ShowToInfo(*show))
}
