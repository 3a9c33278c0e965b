package helper

import (
	"fmt"
	"strings"
	"time"

	"gig_manager/constants"
	"gig_manager/model"
	"gig_manager/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateShowCode mã công khai ngắn cho link chia sẻ
func GenerateShowCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// CreateShow yêu cầu venue và artist tồn tại, start time phải parse được;
// trùng bộ ba (venue, artist, start_time) bị từ chối
func CreateShow(tx *gorm.DB, input model.CreateShowInput) (*model.Show, error) {
	startTime, err := utils.ParseStartTime(input.StartTime)
	if err != nil {
		return nil, validationError(constants.INVALID_START_TIME)
	}

	var venue model.Venue
	if err := tx.First(&venue, input.VenueId).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, constants.VENUE_NOT_FOUND)
		}
		return nil, err
	}
	var artist model.Artist
	if err := tx.First(&artist, input.ArtistId).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, constants.ARTIST_NOT_FOUND)
		}
		return nil, err
	}

	var count int64
	if err := tx.Model(&model.Show{}).
		Where("venue_id = ? AND artist_id = ? AND start_time = ?", input.VenueId, input.ArtistId, startTime).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicate, constants.SHOW_EXISTS)
	}

	show := model.Show{
		VenueId:    input.VenueId,
		ArtistId:   input.ArtistId,
		StartTime:  startTime,
		PublicCode: GenerateShowCode(),
	}
	if err := tx.Create(&show).Error; err != nil {
		return nil, err
	}
	show.Venue = venue
	show.Artist = artist
	return &show, nil
}

// ClassifyShows chia show của một entity thành past/upcoming tại thời điểm gọi.
// Dùng khoảng mở hai phía: show bắt đầu đúng "now" không thuộc nhóm nào.
func ClassifyShows(db *gorm.DB, column string, id uint) (past []model.Show, upcoming []model.Show, err error) {
	if column != "venue_id" && column != "artist_id" {
		return nil, nil, validationError(constants.ERROR_INPUT)
	}
	now := time.Now()

	err = db.Preload("Venue").Preload("Artist").
		Where(column+" = ? AND start_time < ?", id, now).
		Order("start_time").
		Find(&past).Error
	if err != nil {
		return nil, nil, err
	}

	err = db.Preload("Venue").Preload("Artist").
		Where(column+" = ? AND start_time > ?", id, now).
		Order("start_time").
		Find(&upcoming).Error
	if err != nil {
		return nil, nil, err
	}
	return past, upcoming, nil
}

// ListShows toàn bộ show kèm thông tin hai phía, thứ tự theo start_time
func ListShows(db *gorm.DB) ([]model.ShowInfo, error) {
	var shows []model.Show
	if err := db.Preload("Venue").Preload("Artist").
		Order("start_time").
		Find(&shows).Error; err != nil {
		return nil, err
	}

	infos := make([]model.ShowInfo, 0, len(shows))
	for _, show := range shows {
		infos = append(infos, ShowToInfo(show))
	}
	return infos, nil
}

func ShowToInfo(show model.Show) model.ShowInfo {
	return model.ShowInfo{
		VenueId:         show.VenueId,
		VenueName:       show.Venue.Name,
		ArtistId:        show.ArtistId,
		ArtistName:      show.Artist.Name,
		ArtistImageLink: show.Artist.ImageLink,
		StartTime:       utils.FormatStartTime(show.StartTime),
	}
}

func showArtistRefs(shows []model.Show) []model.ShowArtist {
	refs := make([]model.ShowArtist, 0, len(shows))
	for _, show := range shows {
		refs = append(refs, model.ShowArtist{
			ArtistId:        show.ArtistId,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       utils.FormatStartTime(show.StartTime),
		})
	}
	return refs
}

func showVenueRefs(shows []model.Show) []model.ShowVenue {
	refs := make([]model.ShowVenue, 0, len(shows))
	for _, show := range shows {
		refs = append(refs, model.ShowVenue{
			VenueId:        show.VenueId,
			VenueName:      show.Venue.Name,
			VenueImageLink: show.Venue.ImageLink,
			StartTime:      utils.FormatStartTime(show.StartTime),
		})
	}
	return refs
}
