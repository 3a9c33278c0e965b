package model

import "time"

// Show định danh bằng bộ ba (venue, artist, start_time); không có cột id riêng
type Show struct {
	VenueId    uint      `gorm:"primaryKey" json:"venueId"`
	ArtistId   uint      `gorm:"primaryKey" json:"artistId"`
	StartTime  time.Time `gorm:"primaryKey" json:"startTime"`
	PublicCode string    `gorm:"size:16;uniqueIndex" json:"publicCode"`
	CreatedAt  time.Time `json:"createdAt"`
	Venue      Venue     `gorm:"foreignKey:VenueId;references:ID" json:"-"`
	Artist     Artist    `gorm:"foreignKey:ArtistId;references:ID" json:"-"`
}

type CreateShowInput struct {
	VenueId   uint   `json:"venue_id" validate:"required,gt=0"`
	ArtistId  uint   `json:"artist_id" validate:"required,gt=0"`
	StartTime string `json:"start_time" validate:"required"`
}

type FilterShowsInput struct {
	Pagination
	VenueId  *uint `json:"venue_id"`
	ArtistId *uint `json:"artist_id"`
}

// ShowInfo dòng cho trang danh sách show
type ShowInfo struct {
	VenueId         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistId        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ShowArtist phía artist của một show trong trang chi tiết venue
type ShowArtist struct {
	ArtistId        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ShowVenue phía venue của một show trong trang chi tiết artist
type ShowVenue struct {
	VenueId        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}
