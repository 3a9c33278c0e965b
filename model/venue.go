package model

type Venue struct {
	DTO
	Slug               string       `gorm:"uniqueIndex" json:"slug"`
	Name               string       `gorm:"not null;unique" validate:"required" json:"name"`
	City               string       `gorm:"size:120;not null" validate:"required" json:"city"`
	State              string       `gorm:"size:2;not null" validate:"required" json:"state"`
	Address            string       `gorm:"size:120;not null" validate:"required" json:"address"`
	Phone              string       `gorm:"size:120" json:"phone"`
	ImageLink          string       `gorm:"size:500" json:"image_link"`
	FacebookLink       string       `gorm:"size:120" json:"facebook_link"`
	Website            string       `gorm:"size:120" json:"website"`
	SeekingTalent      bool         `gorm:"default:false" json:"seeking_talent"`
	SeekingDescription string       `json:"seeking_description"`
	Genres             []VenueGenre `gorm:"foreignKey:VenueId;constraint:OnDelete:CASCADE" json:"genres"`
	Shows              []Show       `gorm:"foreignKey:VenueId" json:"-"`
}

// VenueGenre một dòng cho mỗi tag, (venue_id, genre) là khóa chính
type VenueGenre struct {
	VenueId uint   `gorm:"primaryKey" json:"venueId"`
	Genre   string `gorm:"primaryKey;size:30" json:"genre"`
}

type CreateVenueInput struct {
	Name               string   `json:"name" validate:"required"`
	City               string   `json:"city" validate:"required"`
	State              string   `json:"state" validate:"required"`
	Address            string   `json:"address" validate:"required"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url"`
	Website            string   `json:"website" validate:"omitempty,url"`
	SeekingTalent      *bool    `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	Genres             []string `json:"genres"`
}

type EditVenueInput struct {
	Name               *string   `json:"name"`
	City               *string   `json:"city"`
	State              *string   `json:"state"`
	Address            *string   `json:"address"`
	Phone              *string   `json:"phone"`
	ImageLink          *string   `json:"image_link" validate:"omitempty,url"`
	FacebookLink       *string   `json:"facebook_link" validate:"omitempty,url"`
	Website            *string   `json:"website" validate:"omitempty,url"`
	SeekingTalent      *bool     `json:"seeking_talent"`
	SeekingDescription *string   `json:"seeking_description"`
	Genres             *[]string `json:"genres"`
}

type SearchInput struct {
	SearchTerm string `json:"search_term" form:"search_term"`
}

// VenueDetail giữ nguyên các khóa snake_case của trang chi tiết
type VenueDetail struct {
	ID                 uint         `json:"id"`
	Name               string       `json:"name"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Address            string       `json:"address"`
	Phone              string       `json:"phone"`
	ImageLink          string       `json:"image_link"`
	FacebookLink       string       `json:"facebook_link"`
	Website            string       `json:"website"`
	SeekingTalent      bool         `json:"seeking_talent"`
	SeekingDescription string       `json:"seeking_description"`
	Genres             []string     `json:"genres"`
	PastShows          []ShowArtist `json:"past_shows"`
	UpcomingShows      []ShowArtist `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}
