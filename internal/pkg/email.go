package pkg

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends moderation alerts to the configured moderator address.
type Mailer struct {
	cfg SMTPConfig
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) SendReportAlert(to, postTitle, reason, reportType string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("New report: %s", postTitle))
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>A post was reported.</p><p>Post: <b>%s</b></p><p>Reason: %s</p><p>Type: %s</p>`,
		postTitle, reason, reportType))

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return d.DialAndSend(msg)
}
