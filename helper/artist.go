package helper

import (
	"fmt"
	"strings"
	"time"

	"gig_manager/constants"
	"gig_manager/model"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func CreateArtist(tx *gorm.DB, input model.CreateArtistInput) (*model.Artist, error) {
	if input.Name == "" || input.City == "" || input.State == "" {
		return nil, validationError(constants.ERROR_INPUT)
	}
	if err := ValidateState(input.State); err != nil {
		return nil, err
	}
	if err := ValidateGenres(input.Genres); err != nil {
		return nil, err
	}

	// Kiểm tra tên trùng trước khi ghi
	var count int64
	if err := tx.Model(&model.Artist{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicate, constants.ARTIST_NAME_EXISTS)
	}

	artist := model.Artist{}
	copier.Copy(&artist, &input)
	artist.Slug = GenerateUniqueArtistSlug(tx, input.Name)
	artist.Genres = nil
	for _, genre := range input.Genres {
		artist.Genres = append(artist.Genres, model.ArtistGenre{Genre: genre})
	}

	if err := tx.Create(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func UpdateArtist(tx *gorm.DB, artistId uint, input model.EditArtistInput) (*model.Artist, error) {
	var artist model.Artist
	if err := tx.First(&artist, artistId).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, constants.ARTIST_NOT_FOUND)
		}
		return nil, err
	}

	if input.Name != nil && *input.Name != artist.Name {
		var count int64
		if err := tx.Model(&model.Artist{}).
			Where("name = ? AND id <> ?", *input.Name, artistId).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, constants.ARTIST_NAME_EXISTS)
		}
		artist.Name = *input.Name
	}
	if input.State != nil {
		if err := ValidateState(*input.State); err != nil {
			return nil, err
		}
		artist.State = *input.State
	}
	if input.City != nil {
		artist.City = *input.City
	}
	if input.Phone != nil {
		artist.Phone = *input.Phone
	}
	if input.ImageLink != nil {
		artist.ImageLink = *input.ImageLink
	}
	if input.FacebookLink != nil {
		artist.FacebookLink = *input.FacebookLink
	}
	if input.Website != nil {
		artist.Website = *input.Website
	}
	if input.SeekingVenue != nil {
		artist.SeekingVenue = *input.SeekingVenue
	}
	if input.SeekingDescription != nil {
		artist.SeekingDescription = *input.SeekingDescription
	}

	if input.Genres != nil {
		if err := ValidateGenres(*input.Genres); err != nil {
			return nil, err
		}
		// Xóa trọn bộ tag cũ rồi ghi tag mới
		if err := tx.Where("artist_id = ?", artistId).Delete(&model.ArtistGenre{}).Error; err != nil {
			return nil, err
		}
		for _, genre := range *input.Genres {
			if err := tx.Create(&model.ArtistGenre{ArtistId: artistId, Genre: genre}).Error; err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Omit("Genres").Save(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func DeleteArtist(tx *gorm.DB, artistId uint) error {
	var artist model.Artist
	if err := tx.First(&artist, artistId).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, constants.ARTIST_NOT_FOUND)
		}
		return err
	}

	var upcoming int64
	if err := tx.Model(&model.Show{}).
		Where("artist_id = ? AND start_time > ?", artistId, time.Now()).
		Count(&upcoming).Error; err != nil {
		return err
	}
	if upcoming > 0 {
		return fmt.Errorf("%w: %s", ErrConflict, constants.HAS_UPCOMING_SHOWS)
	}

	if err := tx.Where("artist_id = ?", artistId).Delete(&model.Show{}).Error; err != nil {
		return err
	}
	if err := tx.Where("artist_id = ?", artistId).Delete(&model.ArtistGenre{}).Error; err != nil {
		return err
	}
	return tx.Delete(&artist).Error
}

// ListArtists summary của toàn bộ artist, thứ tự ổn định theo id
func ListArtists(db *gorm.DB) ([]model.EntitySummary, error) {
	var artists []model.Artist
	if err := db.Order("id").Find(&artists).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := make([]model.EntitySummary, 0, len(artists))
	for _, artist := range artists {
		summary, err := artistSummary(db, artist, now)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func SearchArtistsByName(db *gorm.DB, term string) (*model.SearchResponse, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var artists []model.Artist
	if err := db.Where("LOWER(name) LIKE ?", pattern).
		Order("id").
		Find(&artists).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	response := &model.SearchResponse{Count: len(artists), Data: []model.EntitySummary{}}
	for _, artist := range artists {
		summary, err := artistSummary(db, artist, now)
		if err != nil {
			return nil, err
		}
		response.Data = append(response.Data, summary)
	}
	return response, nil
}

func artistSummary(db *gorm.DB, artist model.Artist, now time.Time) (model.EntitySummary, error) {
	var upcoming int64
	err := db.Model(&model.Show{}).
		Where("artist_id = ? AND start_time > ?", artist.ID, now).
		Count(&upcoming).Error
	return model.EntitySummary{
		ID:               artist.ID,
		Name:             artist.Name,
		NumUpcomingShows: int(upcoming),
	}, err
}

func GetArtistDetail(db *gorm.DB, artistId uint) (*model.ArtistDetail, error) {
	var artist model.Artist
	if err := db.Preload("Genres").First(&artist, artistId).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, constants.ARTIST_NOT_FOUND)
		}
		return nil, err
	}
	return buildArtistDetail(db, artist)
}

func GetArtistDetailBySlug(db *gorm.DB, slugValue string) (*model.ArtistDetail, error) {
	var artist model.Artist
	if err := db.Preload("Genres").Where("slug = ?", slugValue).First(&artist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, constants.ARTIST_NOT_FOUND)
		}
		return nil, err
	}
	return buildArtistDetail(db, artist)
}

func buildArtistDetail(db *gorm.DB, artist model.Artist) (*model.ArtistDetail, error) {
	past, upcoming, err := ClassifyShows(db, "artist_id", artist.ID)
	if err != nil {
		return nil, err
	}

	detail := &model.ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		Website:            artist.Website,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		Genres:             []string{},
		PastShows:          showVenueRefs(past),
		UpcomingShows:      showVenueRefs(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	for _, g := range artist.Genres {
		detail.Genres = append(detail.Genres, g.Genre)
	}
	return detail, nil
}
