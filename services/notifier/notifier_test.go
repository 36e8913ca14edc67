package notifier

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	inquiryModel "tour-contact/models/inquiry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

type stubMailer struct {
	mu      sync.Mutex
	sent    []sentEmail
	sendErr error
}

func (m *stubMailer) Send(to, subject, htmlBody, textBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentEmail{To: to, Subject: subject, HTMLBody: htmlBody, TextBody: textBody})
	return m.sendErr
}

func (m *stubMailer) all() []sentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentEmail(nil), m.sent...)
}

func sampleInquiry() inquiryModel.Inquiry {
	phone := "+919876543210"
	return inquiryModel.Inquiry{
		ID:          42,
		FullName:    "Rahul Sharma",
		Email:       "rahul@example.com",
		Phone:       &phone,
		InquiryType: inquiryModel.TypePackage,
		Subject:     "Kashmir Tour",
		Message:     "7-day Kashmir package for 2 adults",
		Status:      inquiryModel.StatusPending,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
}

func TestSendConfirmation(t *testing.T) {
	mailer := &stubMailer{}
	n := New(mailer, "admin@example.com")

	n.SendConfirmation(sampleInquiry())
	n.Wait()

	sent := mailer.all()
	require.Len(t, sent, 1)
	assert.Equal(t, "rahul@example.com", sent[0].To)
	assert.Equal(t, "Thank You for Contacting Tour & Travels - Kashmir Tour", sent[0].Subject)
	assert.Contains(t, sent[0].HTMLBody, "Rahul Sharma")
	assert.Contains(t, sent[0].HTMLBody, "#42")
	assert.Contains(t, sent[0].HTMLBody, "Package Information")
	assert.Contains(t, sent[0].TextBody, "Kashmir Tour")
}

func TestSendAdminAlert(t *testing.T) {
	mailer := &stubMailer{}
	n := New(mailer, "admin@example.com")

	n.SendAdminAlert(sampleInquiry())
	n.Wait()

	sent := mailer.all()
	require.Len(t, sent, 1)
	assert.Equal(t, "admin@example.com", sent[0].To)
	assert.Equal(t, "New Inquiry: PACKAGE - Kashmir Tour", sent[0].Subject)
	assert.Contains(t, sent[0].HTMLBody, "rahul@example.com")
	// html/template escapes "+" to &#43; in text context.
	assert.Contains(t, sent[0].HTMLBody, "&#43;919876543210")
	assert.Contains(t, sent[0].TextBody, "+919876543210")
	assert.Contains(t, sent[0].TextBody, "7-day Kashmir package for 2 adults")
}

func TestAdminAlertWithoutPhone(t *testing.T) {
	mailer := &stubMailer{}
	n := New(mailer, "admin@example.com")

	inq := sampleInquiry()
	inq.Phone = nil
	n.SendAdminAlert(inq)
	n.Wait()

	sent := mailer.all()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].HTMLBody, "Not provided")
}

func TestTransportFailureIsSwallowed(t *testing.T) {
	mailer := &stubMailer{sendErr: errors.New("smtp connection refused")}
	n := New(mailer, "admin@example.com")

	// Must not panic or surface anything; the failure is logged only.
	n.SendConfirmation(sampleInquiry())
	n.SendAdminAlert(sampleInquiry())
	n.Wait()

	assert.Len(t, mailer.all(), 2)
}

func TestMessageEscapesHTML(t *testing.T) {
	mailer := &stubMailer{}
	n := New(mailer, "admin@example.com")

	inq := sampleInquiry()
	inq.Message = `<script>alert("x")</script> need a quote for 2 adults`
	n.SendAdminAlert(inq)
	n.Wait()

	sent := mailer.all()
	require.Len(t, sent, 1)
	assert.False(t, strings.Contains(sent[0].HTMLBody, "<script>"), "customer input must be escaped")
}
