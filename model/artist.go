package model

type Artist struct {
	DTO
	Slug               string        `gorm:"uniqueIndex" json:"slug"`
	Name               string        `gorm:"not null;unique" validate:"required" json:"name"`
	City               string        `gorm:"size:120;not null" validate:"required" json:"city"`
	State              string        `gorm:"size:2;not null" validate:"required" json:"state"`
	Phone              string        `gorm:"size:120" json:"phone"`
	ImageLink          string        `gorm:"size:500" json:"image_link"`
	FacebookLink       string        `gorm:"size:120" json:"facebook_link"`
	Website            string        `gorm:"size:120" json:"website"`
	SeekingVenue       bool          `gorm:"default:false" json:"seeking_venue"`
	SeekingDescription string        `json:"seeking_description"`
	Genres             []ArtistGenre `gorm:"foreignKey:ArtistId;constraint:OnDelete:CASCADE" json:"genres"`
	Shows              []Show        `gorm:"foreignKey:ArtistId" json:"-"`
}

type ArtistGenre struct {
	ArtistId uint   `gorm:"primaryKey" json:"artistId"`
	Genre    string `gorm:"primaryKey;size:30" json:"genre"`
}

type CreateArtistInput struct {
	Name               string   `json:"name" validate:"required"`
	City               string   `json:"city" validate:"required"`
	State              string   `json:"state" validate:"required"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url"`
	Website            string   `json:"website" validate:"omitempty,url"`
	SeekingVenue       *bool    `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	Genres             []string `json:"genres"`
}

type EditArtistInput struct {
	Name               *string   `json:"name"`
	City               *string   `json:"city"`
	State              *string   `json:"state"`
	Phone              *string   `json:"phone"`
	ImageLink          *string   `json:"image_link" validate:"omitempty,url"`
	FacebookLink       *string   `json:"facebook_link" validate:"omitempty,url"`
	Website            *string   `json:"website" validate:"omitempty,url"`
	SeekingVenue       *bool     `json:"seeking_venue"`
	SeekingDescription *string   `json:"seeking_description"`
	Genres             *[]string `json:"genres"`
}

type ArtistDetail struct {
	ID                 uint        `json:"id"`
	Name               string      `json:"name"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	ImageLink          string      `json:"image_link"`
	FacebookLink       string      `json:"facebook_link"`
	Website            string      `json:"website"`
	SeekingVenue       bool        `json:"seeking_venue"`
	SeekingDescription string      `json:"seeking_description"`
	Genres             []string    `json:"genres"`
	PastShows          []ShowVenue `json:"past_shows"`
	UpcomingShows      []ShowVenue `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}
