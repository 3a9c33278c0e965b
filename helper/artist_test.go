package helper

import (
	"errors"
	"testing"

	"gig_manager/model"
	"gig_manager/utils"
)

func TestCreateArtistDuplicateName(t *testing.T) {
	db := setupTestDB(t)

	input := model.CreateArtistInput{
		Name:   "Matt Quevedo",
		City:   "New York",
		State:  "NY",
		Genres: []string{"Jazz"},
	}
	mustCreateArtist(t, db, input)

	_, err := CreateArtist(db, input)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	var count int64
	db.Model(&model.Artist{}).Where("name = ?", "Matt Quevedo").Count(&count)
	if count != 1 {
		t.Errorf("artist count = %d, want 1", count)
	}
}

func TestCreateArtistInvalidState(t *testing.T) {
	db := setupTestDB(t)

	_, err := CreateArtist(db, model.CreateArtistInput{
		Name:  "The Wild Sax Band",
		City:  "San Francisco",
		State: "ZZ",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateArtistReplacesGenres(t *testing.T) {
	db := setupTestDB(t)

	artist := mustCreateArtist(t, db, model.CreateArtistInput{
		Name:   "The Wild Sax Band",
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Jazz"},
	})

	genres := []string{"Blues", "Soul"}
	if _, err := UpdateArtist(db, artist.ID, model.EditArtistInput{Genres: &genres}); err != nil {
		t.Fatalf("UpdateArtist failed: %v", err)
	}

	var rows []model.ArtistGenre
	db.Where("artist_id = ?", artist.ID).Order("genre").Find(&rows)
	if len(rows) != 2 {
		t.Fatalf("genre rows = %d, want 2", len(rows))
	}
	if rows[0].Genre != "Blues" || rows[1].Genre != "Soul" {
		t.Errorf("genres = [%s %s], want [Blues Soul]", rows[0].Genre, rows[1].Genre)
	}
}

func TestUpdateArtistNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := UpdateArtist(db, 123, model.EditArtistInput{Phone: utils.StringPtr("000")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListArtists(t *testing.T) {
	db := setupTestDB(t)

	mustCreateArtist(t, db, model.CreateArtistInput{Name: "Matt Quevedo", City: "New York", State: "NY"})
	mustCreateArtist(t, db, model.CreateArtistInput{Name: "The Wild Sax Band", City: "San Francisco", State: "CA"})

	summaries, err := ListArtists(db)
	if err != nil {
		t.Fatalf("ListArtists failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2", len(summaries))
	}
	// Thứ tự ổn định theo id
	if summaries[0].Name != "Matt Quevedo" {
		t.Errorf("first summary = %q, want Matt Quevedo", summaries[0].Name)
	}
}

func TestSearchArtistsByName(t *testing.T) {
	db := setupTestDB(t)

	mustCreateArtist(t, db, model.CreateArtistInput{Name: "Guns N Petals", City: "San Francisco", State: "CA"})
	mustCreateArtist(t, db, model.CreateArtistInput{Name: "The Wild Sax Band", City: "San Francisco", State: "CA"})

	response, err := SearchArtistsByName(db, "band")
	if err != nil {
		t.Fatalf("SearchArtistsByName failed: %v", err)
	}
	if response.Count != 1 || response.Data[0].Name != "The Wild Sax Band" {
		t.Errorf("search result = %+v, want The Wild Sax Band only", response)
	}
}

func TestGetArtistDetail(t *testing.T) {
	db := setupTestDB(t)

	venue := mustCreateVenue(t, db, fillmoreInput())
	artist := mustCreateArtist(t, db, model.CreateArtistInput{
		Name:   "Guns N Petals",
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Rock n Roll"},
	})
	mustCreateShow(t, db, venue.ID, artist.ID, "2099-01-01T20:00:00")

	detail, err := GetArtistDetail(db, artist.ID)
	if err != nil {
		t.Fatalf("GetArtistDetail failed: %v", err)
	}

	if detail.UpcomingShowsCount != 1 || detail.PastShowsCount != 0 {
		t.Errorf("counts past=%d upcoming=%d, want 0/1", detail.PastShowsCount, detail.UpcomingShowsCount)
	}
	if len(detail.UpcomingShows) != 1 || detail.UpcomingShows[0].VenueName != "The Fillmore" {
		t.Errorf("upcoming shows = %+v, want one ref to The Fillmore", detail.UpcomingShows)
	}
	if len(detail.Genres) != 1 || detail.Genres[0] != "Rock n Roll" {
		t.Errorf("genres = %v, want [Rock n Roll]", detail.Genres)
	}
}
