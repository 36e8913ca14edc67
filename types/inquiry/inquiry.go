package inquiry

import (
	"reflect"
	"strings"
	"time"

	inquiryModel "tour-contact/models/inquiry"
	"tour-contact/utils"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the json field name so they map straight
	// onto the request payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return utils.ValidatePhoneNumber(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// InquiryCreateRequest is the payload for POST and PUT.
type InquiryCreateRequest struct {
	FullName    string `json:"full_name" validate:"required,min=2,max=200"`
	Email       string `json:"email" validate:"required,email,max=254"`
	Phone       string `json:"phone" validate:"omitempty,phone"`
	InquiryType string `json:"inquiry_type" validate:"omitempty,oneof=general booking package complaint feedback"`
	Subject     string `json:"subject" validate:"required,min=5,max=300"`
	Message     string `json:"message" validate:"required,min=10"`
}

// Normalize trims and canonicalizes the payload before validation:
// lower-cased email, separator-free phone, default inquiry type.
func (r *InquiryCreateRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = utils.NormalizePhoneNumber(r.Phone)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
	if r.InquiryType == "" {
		r.InquiryType = inquiryModel.TypeGeneral.String()
	}
}

func (r *InquiryCreateRequest) Validate() error {
	r.Normalize()
	return validate.Struct(r)
}

// InquiryUpdateRequest is the payload for PATCH. Absent fields are
// left untouched on the record.
type InquiryUpdateRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=2,max=200"`
	Email       *string `json:"email" validate:"omitempty,email,max=254"`
	Phone       *string `json:"phone" validate:"omitempty,phone"`
	InquiryType *string `json:"inquiry_type" validate:"omitempty,oneof=general booking package complaint feedback"`
	Subject     *string `json:"subject" validate:"omitempty,min=5,max=300"`
	Message     *string `json:"message" validate:"omitempty,min=10"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in_progress resolved closed"`
	AdminNotes  *string `json:"admin_notes" validate:"omitempty"`
}

func (r *InquiryUpdateRequest) Normalize() {
	if r.FullName != nil {
		trimmed := strings.TrimSpace(*r.FullName)
		r.FullName = &trimmed
	}
	if r.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &normalized
	}
	if r.Phone != nil {
		cleaned := utils.NormalizePhoneNumber(*r.Phone)
		r.Phone = &cleaned
	}
	if r.Subject != nil {
		trimmed := strings.TrimSpace(*r.Subject)
		r.Subject = &trimmed
	}
	if r.Message != nil {
		trimmed := strings.TrimSpace(*r.Message)
		r.Message = &trimmed
	}
}

func (r *InquiryUpdateRequest) Validate() error {
	r.Normalize()
	return validate.Struct(r)
}

// StatusUpdateRequest is the payload for the update-status action.
type StatusUpdateRequest struct {
	Status     string  `json:"status" validate:"required,oneof=pending in_progress resolved closed"`
	AdminNotes *string `json:"admin_notes" validate:"omitempty"`
}

func (r *StatusUpdateRequest) Validate() error {
	return validate.Struct(r)
}

// ValidationMessages flattens a validator error into per-field
// human-readable messages keyed by json field name.
func ValidationMessages(err error) map[string]string {
	messages := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		messages["non_field_errors"] = err.Error()
		return messages
	}
	for _, fe := range validationErrors {
		messages[fe.Field()] = messageFor(fe)
	}
	return messages
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "phone":
		return "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed"
	case "min":
		return "Must be at least " + fe.Param() + " characters long"
	case "max":
		return "Must be at most " + fe.Param() + " characters long"
	case "oneof":
		return "Must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "Invalid value"
	}
}

// InquiryResponse is the API representation of an inquiry, including
// the derived display fields and the age in days.
type InquiryResponse struct {
	ID                 uint      `json:"id"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	Phone              *string   `json:"phone"`
	InquiryType        string    `json:"inquiry_type"`
	InquiryTypeDisplay string    `json:"inquiry_type_display"`
	Subject            string    `json:"subject"`
	Message            string    `json:"message"`
	Status             string    `json:"status"`
	StatusDisplay      string    `json:"status_display"`
	AdminNotes         *string   `json:"admin_notes"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	InquiryAgeDays     int       `json:"inquiry_age_days"`
}

// NewInquiryResponse builds the API shape from a model record.
func NewInquiryResponse(m inquiryModel.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:                 m.ID,
		FullName:           m.FullName,
		Email:              m.Email,
		Phone:              m.Phone,
		InquiryType:        m.InquiryType.String(),
		InquiryTypeDisplay: m.InquiryType.Display(),
		Subject:            m.Subject,
		Message:            m.Message,
		Status:             m.Status.String(),
		StatusDisplay:      m.Status.Display(),
		AdminNotes:         m.AdminNotes,
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		InquiryAgeDays:     m.AgeDays(),
	}
}

// NewInquiryResponseList maps a slice of records, never returning nil
// so empty lists serialize as [].
func NewInquiryResponseList(records []inquiryModel.Inquiry) []InquiryResponse {
	responses := make([]InquiryResponse, 0, len(records))
	for _, m := range records {
		responses = append(responses, NewInquiryResponse(m))
	}
	return responses
}

// TypeCount is one by_type bucket in the statistics payload.
type TypeCount struct {
	Count       int64  `json:"count"`
	DisplayName string `json:"display_name"`
}

// StatsResponse is the aggregate statistics payload. Open counts the
// pending and in-progress inquiries still waiting on an admin.
type StatsResponse struct {
	Total           int64                `json:"total"`
	Pending         int64                `json:"pending"`
	InProgress      int64                `json:"in_progress"`
	Resolved        int64                `json:"resolved"`
	Closed          int64                `json:"closed"`
	Open            int64                `json:"open"`
	ByType          map[string]TypeCount `json:"by_type"`
	RecentInquiries int64                `json:"recent_inquiries"`
}
