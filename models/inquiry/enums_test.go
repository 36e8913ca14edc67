package inquiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInquiryTypeValidity(t *testing.T) {
	for _, inquiryType := range GetAllInquiryTypes() {
		assert.True(t, inquiryType.IsValid())
		assert.NotEqual(t, inquiryType.String(), inquiryType.Display())
	}
	assert.False(t, InquiryType("marketing").IsValid())
	assert.False(t, InquiryType("").IsValid())
}

func TestInquiryTypeDisplay(t *testing.T) {
	assert.Equal(t, "General Inquiry", TypeGeneral.Display())
	assert.Equal(t, "Booking Related", TypeBooking.Display())
	assert.Equal(t, "Package Information", TypePackage.Display())
	assert.Equal(t, "Complaint", TypeComplaint.Display())
	assert.Equal(t, "Feedback", TypeFeedback.Display())
}

func TestInquiryStatusValidity(t *testing.T) {
	for _, status := range GetAllInquiryStatuses() {
		assert.True(t, status.IsValid())
	}
	assert.False(t, InquiryStatus("archived").IsValid())
}

func TestInquiryStatusDisplay(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.Display())
	assert.Equal(t, "In Progress", StatusInProgress.Display())
	assert.Equal(t, "Resolved", StatusResolved.Display())
	assert.Equal(t, "Closed", StatusClosed.Display())
}

func TestIsOpen(t *testing.T) {
	assert.True(t, StatusPending.IsOpen())
	assert.True(t, StatusInProgress.IsOpen())
	assert.False(t, StatusResolved.IsOpen())
	assert.False(t, StatusClosed.IsOpen())
}

func TestAgeDays(t *testing.T) {
	fresh := Inquiry{CreatedAt: time.Now()}
	assert.Equal(t, 0, fresh.AgeDays())

	old := Inquiry{CreatedAt: time.Now().Add(-73 * time.Hour)}
	assert.Equal(t, 3, old.AgeDays())
}
