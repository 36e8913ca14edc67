package inquiry

import (
	"fmt"
	"time"
)

// Inquiry represents a customer contact inquiry record
type Inquiry struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	FullName string  `gorm:"type:varchar(200);not null" json:"full_name"`
	Email    string  `gorm:"type:varchar(254);not null" json:"email"`
	Phone    *string `gorm:"type:varchar(15)" json:"phone,omitempty"`

	InquiryType InquiryType `gorm:"type:varchar(20);not null;default:general" json:"inquiry_type"`
	Subject     string      `gorm:"type:varchar(300);not null" json:"subject"`
	Message     string      `gorm:"type:text;not null" json:"message"`

	Status     InquiryStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	AdminNotes *string       `gorm:"type:text" json:"admin_notes,omitempty"`

	// Soft-delete flag: inactive rows stay in the table for record keeping
	// but are invisible to every API operation.
	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (i Inquiry) String() string {
	return fmt.Sprintf("%s - %s (%s)", i.FullName, i.Subject, i.Status.Display())
}

// AgeDays returns the number of whole days since the inquiry was created.
func (i Inquiry) AgeDays() int {
	return int(time.Since(i.CreatedAt).Hours() / 24)
}
