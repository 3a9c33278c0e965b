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

// CreateVenue ghi venue mới cùng các dòng genre trong cùng một đơn vị giao dịch
func CreateVenue(tx *gorm.DB, input model.CreateVenueInput) (*model.Venue, error) {
	if input.Name == "" || input.City == "" || input.State == "" || input.Address == "" {
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
	if err := tx.Model(&model.Venue{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicate, constants.VENUE_NAME_EXISTS)
	}

	venue := model.Venue{}
	copier.Copy(&venue, &input)
	venue.Slug = GenerateUniqueVenueSlug(tx, input.Name)
	venue.Genres = nil
	for _, genre := range input.Genres {
		venue.Genres = append(venue.Genres, model.VenueGenre{Genre: genre})
	}

	if err := tx.Create(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// UpdateVenue chỉ thay các field có mặt; danh sách genre thay trọn bộ
func UpdateVenue(tx *gorm.DB, venueId uint, input model.EditVenueInput) (*model.Venue, error) {
	var venue model.Venue
	if err := tx.First(&venue, venueId).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, constants.VENUE_NOT_FOUND)
		}
		return nil, err
	}

	if input.Name != nil && *input.Name != venue.Name {
		var count int64
		if err := tx.Model(&model.Venue{}).
			Where("name = ? AND id <> ?", *input.Name, venueId).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, constants.VENUE_NAME_EXISTS)
		}
		venue.Name = *input.Name
	}
	if input.State != nil {
		if err := ValidateState(*input.State); err != nil {
			return nil, err
		}
		venue.State = *input.State
	}
	if input.City != nil {
		venue.City = *input.City
	}
	if input.Address != nil {
		venue.Address = *input.Address
	}
	if input.Phone != nil {
		venue.Phone = *input.Phone
	}
	if input.ImageLink != nil {
		venue.ImageLink = *input.ImageLink
	}
	if input.FacebookLink != nil {
		venue.FacebookLink = *input.FacebookLink
	}
	if input.Website != nil {
		venue.Website = *input.Website
	}
	if input.SeekingTalent != nil {
		venue.SeekingTalent = *input.SeekingTalent
	}
	if input.SeekingDescription != nil {
		venue.SeekingDescription = *input.SeekingDescription
	}

	if input.Genres != nil {
		if err := ValidateGenres(*input.Genres); err != nil {
			return nil, err
		}
		// Xóa trọn bộ tag cũ rồi ghi tag mới
		if err := tx.Where("venue_id = ?", venueId).Delete(&model.VenueGenre{}).Error; err != nil {
			return nil, err
		}
		for _, genre := range *input.Genres {
			if err := tx.Create(&model.VenueGenre{VenueId: venueId, Genre: genre}).Error; err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Omit("Genres").Save(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// DeleteVenue chặn khi còn show sắp diễn ra; được phép thì dọn show cũ, tag rồi venue
func DeleteVenue(tx *gorm.DB, venueId uint) error {
	var venue model.Venue
	if err := tx.First(&venue, venueId).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, constants.VENUE_NOT_FOUND)
		}
		return err
	}

	var upcoming int64
	if err := tx.Model(&model.Show{}).
		Where("venue_id = ? AND start_time > ?", venueId, time.Now()).
		Count(&upcoming).Error; err != nil {
		return err
	}
	if upcoming > 0 {
		return fmt.Errorf("%w: %s", ErrConflict, constants.HAS_UPCOMING_SHOWS)
	}

	if err := tx.Where("venue_id = ?", venueId).Delete(&model.Show{}).Error; err != nil {
		return err
	}
	if err := tx.Where("venue_id = ?", venueId).Delete(&model.VenueGenre{}).Error; err != nil {
		return err
	}
	return tx.Delete(&venue).Error
}

// GroupVenuesByArea các cặp (city, state) khác nhau kèm summary venue của từng khu vực
func GroupVenuesByArea(db *gorm.DB) ([]model.Area, error) {
	var pairs []struct {
		City  string
		State string
	}
	if err := db.Model(&model.Venue{}).
		Distinct("city", "state").
		Order("state, city").
		Find(&pairs).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	areas := make([]model.Area, 0, len(pairs))
	for _, pair := range pairs {
		var venues []model.Venue
		if err := db.Where("city = ? AND state = ?", pair.City, pair.State).
			Order("id").
			Find(&venues).Error; err != nil {
			return nil, err
		}

		area := model.Area{City: pair.City, State: pair.State}
		for _, venue := range venues {
			summary, err := venueSummary(db, venue, now)
			if err != nil {
				return nil, err
			}
			area.Venues = append(area.Venues, summary)
		}
		areas = append(areas, area)
	}
	return areas, nil
}

// SearchVenuesByName so khớp chuỗi con không phân biệt hoa thường; term rỗng khớp tất cả
func SearchVenuesByName(db *gorm.DB, term string) (*model.SearchResponse, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var venues []model.Venue
	if err := db.Where("LOWER(name) LIKE ?", pattern).
		Order("id").
		Find(&venues).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	response := &model.SearchResponse{Count: len(venues), Data: []model.EntitySummary{}}
	for _, venue := range venues {
		summary, err := venueSummary(db, venue, now)
		if err != nil {
			return nil, err
		}
		response.Data = append(response.Data, summary)
	}
	return response, nil
}

func venueSummary(db *gorm.DB, venue model.Venue, now time.Time) (model.EntitySummary, error) {
	var upcoming int64
	err := db.Model(&model.Show{}).
		Where("venue_id = ? AND start_time > ?", venue.ID, now).
		Count(&upcoming).Error
	return model.EntitySummary{
		ID:               venue.ID,
		Name:             venue.Name,
		NumUpcomingShows: int(upcoming),
	}, err
}

// GetVenueDetail trang chi tiết kèm show đã qua / sắp diễn ra
func GetVenueDetail(db *gorm.DB, venueId uint) (*model.VenueDetail, error) {
	var venue model.Venue
	if err := db.Preload("Genres").First(&venue, venueId).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, constants.VENUE_NOT_FOUND)
		}
		return nil, err
	}
	return buildVenueDetail(db, venue)
}

// GetVenueDetailBySlug tra cứu công khai theo slug
func GetVenueDetailBySlug(db *gorm.DB, slugValue string) (*model.VenueDetail, error) {
	var venue model.Venue
	if err := db.Preload("Genres").Where("slug = ?", slugValue).First(&venue).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, constants.VENUE_NOT_FOUND)
		}
		return nil, err
	}
	return buildVenueDetail(db, venue)
}

func buildVenueDetail(db *gorm.DB, venue model.Venue) (*model.VenueDetail, error) {
	past, upcoming, err := ClassifyShows(db, "venue_id", venue.ID)
	if err != nil {
		return nil, err
	}

	detail := &model.VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		ImageLink:          venue.ImageLink,
		FacebookLink:       venue.FacebookLink,
		Website:            venue.Website,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		Genres:             []string{},
		PastShows:          showArtistRefs(past),
		UpcomingShows:      showArtistRefs(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	for _, g := range venue.Genres {
		detail.Genres = append(detail.Genres, g.Genre)
	}
	return detail, nil
}
