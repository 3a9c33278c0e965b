package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// DigestShow một dòng show trong email tổng hợp
type DigestShow struct {
	VenueName  string
	ArtistName string
	StartTime  string
}

type DigestData struct {
	WeekOf string
	Shows  []DigestShow
}

var digestTemplate = template.Must(template.New("digest").Parse(`
<h2>Upcoming shows for week of {{.WeekOf}}</h2>
<table>
{{range .Shows}}<tr><td>{{.ArtistName}}</td><td>@ {{.VenueName}}</td><td>{{.StartTime}}</td></tr>
{{end}}</table>
`))

// SendDigestEmail gửi email tổng hợp show sắp diễn ra (async)
func SendDigestEmail(to string, data DigestData) {
	go func() { // Async để không chặn scheduler
		var body bytes.Buffer
		if err := digestTemplate.Execute(&body, data); err != nil {
			log.Printf("failed to render digest email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")
		if host == "" || from == "" {
			log.Println("SMTP not configured, skipping digest email")
			return
		}

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Upcoming shows for week of "+data.WeekOf)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send digest email: %v", err)
		}
	}()
}
