package domain

// Default scheduling values
const (
	DefaultSlotStepMinutes      = 15
	DefaultOpenTime             = "10:00"
	DefaultCloseTime            = "20:00"
	DefaultSearchHorizonDays    = 14
	DefaultMaxSearchHorizonDays = 60
	DefaultMaxResults           = 20
)

// Business validation constants
const (
	MaxServiceDurationMinutes   = 720 // 12 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	DaysPerWeek                 = 7
)

// DateFormat формат календарной даты (YYYY-MM-DD)
const DateFormat = "2006-01-02"
