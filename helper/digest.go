package helper

import (
	"log"
	"time"

	"gig_manager/config"
	"gig_manager/database"
	"gig_manager/model"
	"gig_manager/utils"

	"github.com/go-co-op/gocron/v2"
)

var digestScheduler gocron.Scheduler

// SendUpcomingShowsDigest gom show của 7 ngày tới và gửi mail tổng hợp.
// Job chỉ đọc, không đụng vào write path của store.
func SendUpcomingShowsDigest() {
	log.Println("[CRON] SendUpcomingShowsDigest triggered")

	to := config.Config("DIGEST_TO")
	if to == "" {
		log.Println("DIGEST_TO not set, skipping digest")
		return
	}

	db := database.DB
	now := time.Now()
	until := now.AddDate(0, 0, 7)

	var shows []model.Show
	if err := db.Preload("Venue").Preload("Artist").
		Where("start_time > ? AND start_time <= ?", now, until).
		Order("start_time").
		Find(&shows).Error; err != nil {
		log.Printf("failed to collect shows for digest: %v", err)
		return
	}
	if len(shows) == 0 {
		log.Println("no upcoming shows this week, skipping digest")
		return
	}

	data := utils.DigestData{WeekOf: now.Format("2006-01-02")}
	for _, show := range shows {
		data.Shows = append(data.Shows, utils.DigestShow{
			VenueName:  show.Venue.Name,
			ArtistName: show.Artist.Name,
			StartTime:  utils.FormatStartTime(show.StartTime),
		})
	}

	utils.SendDigestEmail(to, data)
}

func StartDigestScheduler() {
	if config.Config("DIGEST_ENABLED") != "true" {
		return
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	digestScheduler = s

	_, err = s.NewJob(
		gocron.WeeklyJob(
			1,
			gocron.NewWeekdays(time.Monday),
			gocron.NewAtTimes(
				gocron.NewAtTime(8, 0, 0),
			),
		),
		gocron.NewTask(SendUpcomingShowsDigest),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Digest scheduler started (Mondays 08:00)")
}

func StopDigestScheduler() {
	if digestScheduler != nil {
		if err := digestScheduler.Shutdown(); err != nil {
			log.Printf("failed to stop digest scheduler: %v", err)
		}
	}
}
