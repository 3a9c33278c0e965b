package database

import (
	"log"
	"time"

	"gig_manager/model"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func parseTime(value string) time.Time {
	t, _ := time.Parse("2006-01-02T15:04:05", value)
	return t
}

func SeedData(db *gorm.DB) {
	venues := []model.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			Website:            "https://www.themusicalhop.com",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5",
			Genres: []model.VenueGenre{
				{Genre: "Jazz"}, {Genre: "Reggae"}, {Genre: "Classical"}, {Genre: "Folk"},
			},
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			Website:      "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae",
			Genres: []model.VenueGenre{
				{Genre: "Classical"}, {Genre: "R&B"}, {Genre: "Hip-Hop"},
			},
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7",
			Genres: []model.VenueGenre{
				{Genre: "Rock n Roll"}, {Genre: "Jazz"}, {Genre: "Classical"}, {Genre: "Folk"},
			},
		},
	}

	for _, venue := range venues {
		venue.Slug = slug.Make(venue.Name)
		if err := db.Where(model.Venue{Name: venue.Name}).FirstOrCreate(&venue).Error; err != nil {
			log.Println("failed to seed venue:", venue.Name, "error:", err)
		}
	}

	artists := []model.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Website:            "https://www.gunsnpetalsband.com",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f",
			Genres:             []model.ArtistGenre{{Genre: "Rock n Roll"}},
		},
		{
			Name:      "Matt Quevedo",
			City:      "New York",
			State:     "NY",
			Phone:     "300-400-5000",
			ImageLink: "https://images.unsplash.com/photo-1495223153807-b916f75de8c5",
			Genres:    []model.ArtistGenre{{Genre: "Jazz"}},
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61",
			Genres:    []model.ArtistGenre{{Genre: "Jazz"}, {Genre: "Classical"}},
		},
	}

	for _, artist := range artists {
		artist.Slug = slug.Make(artist.Name)
		if err := db.Where(model.Artist{Name: artist.Name}).FirstOrCreate(&artist).Error; err != nil {
			log.Println("failed to seed artist:", artist.Name, "error:", err)
		}
	}

	shows := []struct {
		VenueName  string
		ArtistName string
		StartTime  string
	}{
		{"The Musical Hop", "Guns N Petals", "2019-05-21T21:30:00"},
		{"Park Square Live Music & Coffee", "Matt Quevedo", "2019-06-15T23:00:00"},
		{"Park Square Live Music & Coffee", "The Wild Sax Band", "2035-04-01T20:00:00"},
		{"Park Square Live Music & Coffee", "The Wild Sax Band", "2035-04-08T20:00:00"},
		{"Park Square Live Music & Coffee", "The Wild Sax Band", "2035-04-15T20:00:00"},
	}

	for _, s := range shows {
		var venue model.Venue
		var artist model.Artist
		if err := db.Where("name = ?", s.VenueName).First(&venue).Error; err != nil {
			continue
		}
		if err := db.Where("name = ?", s.ArtistName).First(&artist).Error; err != nil {
			continue
		}
		show := model.Show{
			VenueId:   venue.ID,
			ArtistId:  artist.ID,
			StartTime: parseTime(s.StartTime),
		}
		if err := db.Where(model.Show{VenueId: show.VenueId, ArtistId: show.ArtistId, StartTime: show.StartTime}).
			Attrs(model.Show{PublicCode: uuid.NewString()[:8]}).
			FirstOrCreate(&show).Error; err != nil {
			log.Println("failed to seed show:", s.VenueName, "/", s.ArtistName, "error:", err)
		}
	}
}
