package handler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gig_manager/constants"
	"gig_manager/database"
	"gig_manager/model"
	"gig_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

func newCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
}

func uploadImage(c *fiber.Ctx, folder, publicId string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", err
	}

	// Chỉ nhận PNG, JPG, JPEG
	ext := filepath.Ext(file.Filename)
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return "", errors.New("invalid file format")
	}

	fileReader, err := file.Open()
	if err != nil {
		return "", err
	}
	defer fileReader.Close()

	cld, err := newCloudinary()
	if err != nil {
		return "", err
	}

	uploadResult, err := cld.Upload.Upload(context.Background(), fileReader, uploader.UploadParams{
		Folder:       folder,
		PublicID:     fmt.Sprintf("%s_%d", publicId, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}

// UploadVenueImage tải ảnh lên Cloudinary rồi gán vào image_link
func UploadVenueImage(c *fiber.Ctx) error {
	venueId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var venue model.Venue
	if err := database.DB.First(&venue, venueId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.VENUE_NOT_FOUND, err)
	}

	imageUrl, err := uploadImage(c, "venue_images", fmt.Sprintf("venue_%d", venue.ID))
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "image")
	}

	venue.ImageLink = imageUrl
	if err := database.DB.Omit("Genres").Save(&venue).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"image_link": imageUrl})
}

func UploadArtistImage(c *fiber.Ctx) error {
	artistId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var artist model.Artist
	if err := database.DB.First(&artist, artistId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ARTIST_NOT_FOUND, err)
	}

	imageUrl, err := uploadImage(c, "artist_images", fmt.Sprintf("artist_%d", artist.ID))
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "image")
	}

	artist.ImageLink = imageUrl
	if err := database.DB.Omit("Genres").Save(&artist).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"image_link": imageUrl})
}
