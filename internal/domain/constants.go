package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinNumberOfPeople           = 1
	MaxSpecialRequestsLength    = 500
	MaxCancellationReasonLength = 500

	// Минимальный срок до начала, после которого отмена невозможна
	CancellationNoticeHours = 24
)
