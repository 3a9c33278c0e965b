package helper

import (
	"path/filepath"
	"testing"

	"gig_manager/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), config)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Venue{},
		&model.Artist{},
		&model.VenueGenre{},
		&model.ArtistGenre{},
		&model.Show{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func mustCreateVenue(t *testing.T, db *gorm.DB, input model.CreateVenueInput) *model.Venue {
	t.Helper()
	venue, err := CreateVenue(db, input)
	if err != nil {
		t.Fatalf("CreateVenue(%q) failed: %v", input.Name, err)
	}
	return venue
}

func mustCreateArtist(t *testing.T, db *gorm.DB, input model.CreateArtistInput) *model.Artist {
	t.Helper()
	artist, err := CreateArtist(db, input)
	if err != nil {
		t.Fatalf("CreateArtist(%q) failed: %v", input.Name, err)
	}
	return artist
}

func mustCreateShow(t *testing.T, db *gorm.DB, venueId, artistId uint, startTime string) *model.Show {
	t.Helper()
	show, err := CreateShow(db, model.CreateShowInput{
		VenueId:   venueId,
		ArtistId:  artistId,
		StartTime: startTime,
	})
	if err != nil {
		t.Fatalf("CreateShow failed: %v", err)
	}
	return show
}
