package model

import "time"

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type Pagination struct {
	Limit *int `json:"limit"`
	Page  *int `json:"page"`
}

// SearchResponse kết quả tìm kiếm theo tên (count + summaries)
type SearchResponse struct {
	Count int             `json:"count"`
	Data  []EntitySummary `json:"data"`
}

// EntitySummary bản rút gọn cho list view
type EntitySummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area nhóm venue theo (city, state)
type Area struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []EntitySummary `json:"venues"`
}
