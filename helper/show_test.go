package helper

import (
	"errors"
	"testing"
	"time"

	"gig_manager/model"

	"gorm.io/gorm"
)

func seedVenueAndArtist(t *testing.T, db *gorm.DB) (*model.Venue, *model.Artist) {
	t.Helper()
	venue := mustCreateVenue(t, db, fillmoreInput())
	artist := mustCreateArtist(t, db, model.CreateArtistInput{
		Name:   "Guns N Petals",
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Rock n Roll"},
	})
	return venue, artist
}

func TestCreateShow(t *testing.T) {
	db := setupTestDB(t)
	venue, artist := seedVenueAndArtist(t, db)

	show := mustCreateShow(t, db, venue.ID, artist.ID, "2099-01-01T20:00:00")

	if show.PublicCode == "" {
		t.Error("expected generated public code")
	}
	if show.StartTime.Year() != 2099 {
		t.Errorf("start time year = %d, want 2099", show.StartTime.Year())
	}

	var count int64
	db.Model(&model.Show{}).Count(&count)
	if count != 1 {
		t.Errorf("show count = %d, want 1", count)
	}
}

func TestCreateShowFailures(t *testing.T) {
	db := setupTestDB(t)
	venue, artist := seedVenueAndArtist(t, db)
	mustCreateShow(t, db, venue.ID, artist.ID, "2099-01-01T20:00:00")

	tests := []struct {
		name    string
		input   model.CreateShowInput
		wantErr error
	}{
		{
			"Unknown venue",
			model.CreateShowInput{VenueId: 999, ArtistId: artist.ID, StartTime: "2099-02-01T20:00:00"},
			ErrNotFound,
		},
		{
			"Unknown artist",
			model.CreateShowInput{VenueId: venue.ID, ArtistId: 999, StartTime: "2099-02-01T20:00:00"},
			ErrNotFound,
		},
		{
			"Bad start time",
			model.CreateShowInput{VenueId: venue.ID, ArtistId: artist.ID, StartTime: "not-a-time"},
			ErrValidation,
		},
		{
			"Duplicate identity triple",
			model.CreateShowInput{VenueId: venue.ID, ArtistId: artist.ID, StartTime: "2099-01-01T20:00:00"},
			ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateShow(db, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateShow() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// Không có dòng show nào được ghi thêm sau các lần fail
	var count int64
	db.Model(&model.Show{}).Count(&count)
	if count != 1 {
		t.Errorf("show count = %d, want 1", count)
	}
}

func TestClassifyShows(t *testing.T) {
	db := setupTestDB(t)
	venue, artist := seedVenueAndArtist(t, db)

	past := time.Now().AddDate(0, 0, -7).Format("2006-01-02T15:04:05")
	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02T15:04:05")
	mustCreateShow(t, db, venue.ID, artist.ID, past)
	mustCreateShow(t, db, venue.ID, artist.ID, future)

	for _, column := range []string{"venue_id", "artist_id"} {
		id := venue.ID
		if column == "artist_id" {
			id = artist.ID
		}

		pastShows, upcomingShows, err := ClassifyShows(db, column, id)
		if err != nil {
			t.Fatalf("ClassifyShows(%s) failed: %v", column, err)
		}
		if len(pastShows) != 1 || len(upcomingShows) != 1 {
			t.Errorf("%s: past=%d upcoming=%d, want 1/1", column, len(pastShows), len(upcomingShows))
		}
		if len(pastShows)+len(upcomingShows) > 2 {
			t.Errorf("%s: partition exceeds total shows", column)
		}
	}
}

func TestClassifyShowsPreloadsCounterparts(t *testing.T) {
	db := setupTestDB(t)
	venue, artist := seedVenueAndArtist(t, db)
	mustCreateShow(t, db, venue.ID, artist.ID, "2099-01-01T20:00:00")

	_, upcoming, err := ClassifyShows(db, "venue_id", venue.ID)
	if err != nil {
		t.Fatalf("ClassifyShows failed: %v", err)
	}
	if len(upcoming) != 1 {
		t.Fatalf("upcoming = %d, want 1", len(upcoming))
	}
	if upcoming[0].Artist.Name != "Guns N Petals" || upcoming[0].Venue.Name != "The Fillmore" {
		t.Errorf("counterparts not loaded: artist=%q venue=%q", upcoming[0].Artist.Name, upcoming[0].Venue.Name)
	}
}

func TestDeleteVenueWithOnlyPastShows(t *testing.T) {
	db := setupTestDB(t)
	venue, artist := seedVenueAndArtist(t, db)
	mustCreateShow(t, db, venue.ID, artist.ID, "2019-05-21T21:30:00")

	if err := DeleteVenue(db, venue.ID); err != nil {
		t.Fatalf("DeleteVenue failed: %v", err)
	}

	var showCount, genreCount, venueCount int64
	db.Model(&model.Show{}).Where("venue_id = ?", venue.ID).Count(&showCount)
	db.Model(&model.VenueGenre{}).Where("venue_id = ?", venue.ID).Count(&genreCount)
	db.Model(&model.Venue{}).Where("id = ?", venue.ID).Count(&venueCount)
	if showCount != 0 || genreCount != 0 || venueCount != 0 {
		t.Errorf("cascade incomplete: shows=%d genres=%d venues=%d", showCount, genreCount, venueCount)
	}
}

func TestDeleteVenueBlockedByUpcomingShow(t *testing.T) {
	db := setupTestDB(t)
	venue, artist := seedVenueAndArtist(t, db)
	mustCreateShow(t, db, venue.ID, artist.ID, "2019-05-21T21:30:00")
	mustCreateShow(t, db, venue.ID, artist.ID, "2099-01-01T20:00:00")

	err := DeleteVenue(db, venue.ID)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Mọi dữ liệu giữ nguyên khi bị chặn
	var showCount, genreCount, venueCount int64
	db.Model(&model.Show{}).Where("venue_id = ?", venue.ID).Count(&showCount)
	db.Model(&model.VenueGenre{}).Where("venue_id = ?", venue.ID).Count(&genreCount)
	db.Model(&model.Venue{}).Where("id = ?", venue.ID).Count(&venueCount)
	if showCount != 2 || genreCount != 2 || venueCount != 1 {
		t.Errorf("data changed on blocked delete: shows=%d genres=%d venues=%d", showCount, genreCount, venueCount)
	}
}

func TestDeleteVenueWithNoShows(t *testing.T) {
	db := setupTestDB(t)
	venue := mustCreateVenue(t, db, fillmoreInput())

	if err := DeleteVenue(db, venue.ID); err != nil {
		t.Fatalf("DeleteVenue failed: %v", err)
	}
}

func TestDeleteArtistBlockedByUpcomingShow(t *testing.T) {
	db := setupTestDB(t)
	venue, artist := seedVenueAndArtist(t, db)
	mustCreateShow(t, db, venue.ID, artist.ID, "2099-01-01T20:00:00")

	err := DeleteArtist(db, artist.ID)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestListShows(t *testing.T) {
	db := setupTestDB(t)
	venue, artist := seedVenueAndArtist(t, db)
	mustCreateShow(t, db, venue.ID, artist.ID, "2035-04-08T20:00:00")
	mustCreateShow(t, db, venue.ID, artist.ID, "2035-04-01T20:00:00")

	infos, err := ListShows(db)
	if err != nil {
		t.Fatalf("ListShows failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("shows = %d, want 2", len(infos))
	}
	if infos[0].StartTime != "2035-04-01T20:00:00Z" {
		t.Errorf("start_time = %q, want 2035-04-01T20:00:00Z", infos[0].StartTime)
	}
	if infos[0].VenueName != "The Fillmore" || infos[0].ArtistName != "Guns N Petals" {
		t.Errorf("show info missing counterpart names: %+v", infos[0])
	}
}
