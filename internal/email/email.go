package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/fringe-watch/edfringe-parser/internal/log"
)

// Settings holds everything needed to deliver a report over SMTP.
type Settings struct {
	To       string
	From     string
	SmtpHost string
	SmtpPort int
	SmtpUser string
	Password string
}

// Send delivers a multipart text+HTML message. It reports success as a
// bool so a failed delivery never aborts the scrape that produced the
// report.
func Send(settings Settings, subject, textBody, htmlBody string) bool {
	logger := log.GetLogger()

	if settings.SmtpUser == "" || settings.Password == "" {
		logger.Error("smtp credentials not configured")
		return false
	}

	from := settings.From
	if from == "" {
		from = settings.SmtpUser
	}

	mail := email.NewEmail()
	mail.From = from
	mail.To = []string{settings.To}
	mail.Subject = subject
	mail.Text = []byte(textBody)
	if htmlBody != "" {
		mail.HTML = []byte(htmlBody)
	}

	addr := fmt.Sprintf("%s:%d", settings.SmtpHost, settings.SmtpPort)
	auth := smtp.PlainAuth("", settings.SmtpUser, settings.Password, settings.SmtpHost)

	var err error
	if settings.SmtpPort == 465 {
		err = mail.SendWithTLS(addr, auth, &tls.Config{ServerName: settings.SmtpHost})
	} else {
		// port 587 and friends negotiate STARTTLS during Send
		err = mail.Send(addr, auth)
	}
	if err != nil {
		logger.WithError(err).Errorf("failed to send email to %s", settings.To)
		return false
	}

	logger.Infof("email sent successfully to %s", settings.To)
	return true
}
