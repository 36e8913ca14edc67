package mailer

import (
	"fmt"
	"net/smtp"
	"os"
	"strconv"

	"tour-contact/logger"
)

// Sender dispatches a rendered email. Implemented by Client for real
// SMTP delivery and by test doubles elsewhere.
type Sender interface {
	Send(to, subject, htmlBody, textBody string) error
}

// Client is the SMTP transport collaborator. When disabled (the
// default outside production) sends are logged instead of delivered,
// so development never needs SMTP credentials.
type Client struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// NewClientFromEnv builds the SMTP client from environment variables.
func NewClientFromEnv() *Client {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	enabled, _ := strconv.ParseBool(os.Getenv("EMAIL_ENABLED"))

	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "noreply@tourtravels.example.com"
	}
	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Tour & Travels"
	}

	return &Client{
		Enabled:  enabled,
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     from,
		FromName: fromName,
	}
}

// Send delivers a multipart email with an HTML part and a plain text
// fallback.
func (c *Client) Send(to, subject, htmlBody, textBody string) error {
	if !c.Enabled {
		logger.Info(fmt.Sprintf("Email disabled, would send to %s: %s", to, subject))
		return nil
	}

	if c.Host == "" || c.Username == "" || c.Password == "" {
		return fmt.Errorf("mail transport not properly configured")
	}

	auth := smtp.PlainAuth("", c.Username, c.Password, c.Host)

	from := c.From
	if c.FromName != "" {
		from = fmt.Sprintf("%s <%s>", c.FromName, c.From)
	}

	boundary := "----=_NextPart_tour_contact"

	message := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary) +
		"\r\n" +
		fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		textBody + "\r\n"

	if htmlBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary) +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			htmlBody + "\r\n"
	}

	message += fmt.Sprintf("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	if err := smtp.SendMail(addr, auth, c.From, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
