// Package mailer sends plain-text mail over SMTP. Notification mail
// (inquiries, sale receipts) goes through SendAsync: delivery failure
// is logged and never rolls back the entity that triggered it.
package mailer

import (
	"fmt"
	"net/smtp"
	"os"

	"gallery-app/internal/infra/logger"

	"go.uber.org/zap"
)

func Send(to, subject, body string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")

	if host == "" || from == "" {
		return fmt.Errorf("smtp not configured")
	}

	auth := smtp.PlainAuth("", from, password, host)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	return smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
}

// SendAsync delivers in the background, fire and forget.
func SendAsync(to, subject, body string) {
	go func() {
		if err := Send(to, subject, body); err != nil {
			logger.L().Warn("mail delivery failed",
				zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		}
	}()
}
