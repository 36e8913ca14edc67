package notifier

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"sync"
	"time"

	"tour-contact/httpServices/mailer"
	"tour-contact/logger"
	"tour-contact/metrics"
	inquiryModel "tour-contact/models/inquiry"
)

// Notifier renders and dispatches the two inquiry emails: a
// confirmation to the customer and an alert to the admin inbox.
// Dispatch is fire-and-forget: each send runs in its own goroutine,
// failures are logged and never surfaced to the caller, and nothing
// is retried.
type Notifier struct {
	mailer     mailer.Sender
	adminEmail string
	wg         sync.WaitGroup
}

func New(m mailer.Sender, adminEmail string) *Notifier {
	return &Notifier{
		mailer:     m,
		adminEmail: adminEmail,
	}
}

// SendConfirmation queues the customer confirmation email for the
// given inquiry snapshot and returns immediately.
func (n *Notifier) SendConfirmation(inq inquiryModel.Inquiry) {
	subject := fmt.Sprintf("Thank You for Contacting Tour & Travels - %s", inq.Subject)

	htmlBody, err := render(confirmationTemplate, templateData(inq))
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to render confirmation email for inquiry #%d", inq.ID), err)
		metrics.RecordEmail("confirmation", err)
		return
	}

	textBody := fmt.Sprintf(
		"Dear %s,\n\nThank you for reaching out to Tour & Travels.\n\n"+
			"We have received your %s inquiry (#%d): %s\n\n"+
			"Our team will get back to you shortly.\n\nTour & Travels Team\n",
		inq.FullName, inq.InquiryType.Display(), inq.ID, inq.Subject)

	n.dispatch("confirmation", inq.Email, subject, htmlBody, textBody)
}

// SendAdminAlert queues the internal notification email for a newly
// created inquiry and returns immediately.
func (n *Notifier) SendAdminAlert(inq inquiryModel.Inquiry) {
	subject := fmt.Sprintf("New Inquiry: %s - %s", strings.ToUpper(inq.InquiryType.String()), inq.Subject)

	htmlBody, err := render(adminAlertTemplate, templateData(inq))
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to render admin alert for inquiry #%d", inq.ID), err)
		metrics.RecordEmail("admin_alert", err)
		return
	}

	phone := "Not provided"
	if inq.Phone != nil && *inq.Phone != "" {
		phone = *inq.Phone
	}
	textBody := fmt.Sprintf(
		"New contact inquiry #%d\n\nName: %s\nEmail: %s\nPhone: %s\nType: %s\n"+
			"Subject: %s\nReceived: %s\n\n%s\n",
		inq.ID, inq.FullName, inq.Email, phone, inq.InquiryType.Display(),
		inq.Subject, inq.CreatedAt.Format(time.RFC1123), inq.Message)

	n.dispatch("admin_alert", n.adminEmail, subject, htmlBody, textBody)
}

// dispatch runs the actual send in a background goroutine. The
// inquiry data was already flattened into the message bodies, so the
// goroutine shares no mutable state with the request handler.
func (n *Notifier) dispatch(kind, to, subject, htmlBody, textBody string) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Error(fmt.Sprintf("Panic while sending %s email to %s: %v", kind, to, r), nil)
			}
		}()

		err := n.mailer.Send(to, subject, htmlBody, textBody)
		metrics.RecordEmail(kind, err)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to send %s email to %s", kind, to), err)
			return
		}
		logger.Success(fmt.Sprintf("Sent %s email to %s", kind, to))
	}()
}

// Wait blocks until all queued sends have finished. Used on shutdown
// and in tests; request handlers never call it.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

type emailData struct {
	ID          uint
	Name        string
	Email       string
	Phone       string
	InquiryType string
	Subject     string
	Message     string
	CreatedAt   string
	Year        int
}

func templateData(inq inquiryModel.Inquiry) emailData {
	phone := "Not provided"
	if inq.Phone != nil && *inq.Phone != "" {
		phone = *inq.Phone
	}
	return emailData{
		ID:          inq.ID,
		Name:        inq.FullName,
		Email:       inq.Email,
		Phone:       phone,
		InquiryType: inq.InquiryType.Display(),
		Subject:     inq.Subject,
		Message:     inq.Message,
		CreatedAt:   inq.CreatedAt.Format(time.RFC1123),
		Year:        time.Now().Year(),
	}
}

func render(t *template.Template, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <div style="background: #1C5D99; color: #fff; padding: 24px; text-align: center;">
    <h1 style="margin: 0;">Tour &amp; Travels</h1>
  </div>
  <div style="padding: 24px;">
    <p>Dear {{.Name}},</p>
    <p>Thank you for reaching out to us. We have received your inquiry and our team
    will get back to you shortly.</p>
    <table style="border-collapse: collapse; width: 100%;">
      <tr><td style="padding: 6px 12px; font-weight: bold;">Reference</td><td style="padding: 6px 12px;">#{{.ID}}</td></tr>
      <tr><td style="padding: 6px 12px; font-weight: bold;">Type</td><td style="padding: 6px 12px;">{{.InquiryType}}</td></tr>
      <tr><td style="padding: 6px 12px; font-weight: bold;">Subject</td><td style="padding: 6px 12px;">{{.Subject}}</td></tr>
    </table>
    <p style="background: #F8FAFC; border-left: 4px solid #1C5D99; padding: 12px;">{{.Message}}</p>
    <p>Best regards,<br>Tour &amp; Travels Team</p>
  </div>
  <div style="background: #F8FAFC; padding: 12px; text-align: center; font-size: 12px; color: #888;">
    &copy; {{.Year}} Tour &amp; Travels. This is an automated message, please do not reply.
  </div>
</body>
</html>`))

var adminAlertTemplate = template.Must(template.New("admin_alert").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <div style="background: #B3001B; color: #fff; padding: 16px;">
    <h2 style="margin: 0;">New Contact Inquiry #{{.ID}}</h2>
  </div>
  <div style="padding: 24px;">
    <table style="border-collapse: collapse; width: 100%;">
      <tr><td style="padding: 6px 12px; font-weight: bold;">Name</td><td style="padding: 6px 12px;">{{.Name}}</td></tr>
      <tr><td style="padding: 6px 12px; font-weight: bold;">Email</td><td style="padding: 6px 12px;">{{.Email}}</td></tr>
      <tr><td style="padding: 6px 12px; font-weight: bold;">Phone</td><td style="padding: 6px 12px;">{{.Phone}}</td></tr>
      <tr><td style="padding: 6px 12px; font-weight: bold;">Type</td><td style="padding: 6px 12px;">{{.InquiryType}}</td></tr>
      <tr><td style="padding: 6px 12px; font-weight: bold;">Subject</td><td style="padding: 6px 12px;">{{.Subject}}</td></tr>
      <tr><td style="padding: 6px 12px; font-weight: bold;">Received</td><td style="padding: 6px 12px;">{{.CreatedAt}}</td></tr>
    </table>
    <h3>Message</h3>
    <p style="background: #F8FAFC; border-left: 4px solid #B3001B; padding: 12px;">{{.Message}}</p>
  </div>
</body>
</html>`))
