package inquiry

// InquiryType classifies what the customer is writing about.
type InquiryType string

const (
	TypeGeneral   InquiryType = "general"
	TypeBooking   InquiryType = "booking"
	TypePackage   InquiryType = "package"
	TypeComplaint InquiryType = "complaint"
	TypeFeedback  InquiryType = "feedback"
)

// InquiryStatus tracks where an inquiry sits in its handling lifecycle.
type InquiryStatus string

const (
	StatusPending    InquiryStatus = "pending"
	StatusInProgress InquiryStatus = "in_progress"
	StatusResolved   InquiryStatus = "resolved"
	StatusClosed     InquiryStatus = "closed"
)

// Helper methods for InquiryType
func (it InquiryType) String() string {
	return string(it)
}

func (it InquiryType) IsValid() bool {
	switch it {
	case TypeGeneral, TypeBooking, TypePackage, TypeComplaint, TypeFeedback:
		return true
	default:
		return false
	}
}

// Display returns the human-readable label for the inquiry type.
func (it InquiryType) Display() string {
	switch it {
	case TypeGeneral:
		return "General Inquiry"
	case TypeBooking:
		return "Booking Related"
	case TypePackage:
		return "Package Information"
	case TypeComplaint:
		return "Complaint"
	case TypeFeedback:
		return "Feedback"
	default:
		return string(it)
	}
}

// GetAllInquiryTypes returns all valid inquiry types
func GetAllInquiryTypes() []InquiryType {
	return []InquiryType{
		TypeGeneral,
		TypeBooking,
		TypePackage,
		TypeComplaint,
		TypeFeedback,
	}
}

// Helper methods for InquiryStatus
func (is InquiryStatus) String() string {
	return string(is)
}

func (is InquiryStatus) IsValid() bool {
	switch is {
	case StatusPending, StatusInProgress, StatusResolved, StatusClosed:
		return true
	default:
		return false
	}
}

// Display returns the human-readable label for the status.
func (is InquiryStatus) Display() string {
	switch is {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusResolved:
		return "Resolved"
	case StatusClosed:
		return "Closed"
	default:
		return string(is)
	}
}

// IsOpen returns true while the inquiry still needs admin attention
func (is InquiryStatus) IsOpen() bool {
	return is == StatusPending || is == StatusInProgress
}

// GetAllInquiryStatuses returns all valid inquiry statuses
func GetAllInquiryStatuses() []InquiryStatus {
	return []InquiryStatus{
		StatusPending,
		StatusInProgress,
		StatusResolved,
		StatusClosed,
	}
}
