package domain

// Default configuration values
const (
	DefaultAdvanceBookingDays = 0   // 0 = bookable from today
	DefaultMaxBookingDays     = 365 // 1 year lookahead
)

// Business validation constants
const (
	MinAdvanceBookingDays = 0
	MaxAdvanceBookingDays = 90
	MinMaxBookingDays     = 1
	MaxMaxBookingDays     = 730 // 2 years

	MinDurationHours = 1
	MaxDurationHours = 12
	MinGuestCount    = 1
	MaxGuestCount    = 500

	MaxMessageLength            = 1000
	MaxCancellationReasonLength = 500
	MaxBlockLabelLength         = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default slot boundaries used when normalizing legacy single-range
// working hours into the two-slot shape.
const (
	DefaultMorningStart = "09:00"
	DefaultSlotBoundary = "13:00" // morning ends / afternoon starts
	DefaultAfternoonEnd = "17:00"
)

// InactiveStatuses список статусов неактивных заявок
// Используется для фильтрации при выборках по поставщику
var InactiveStatuses = []EnquiryStatus{
	StatusDeclined,
	StatusCancelledByCustomer,
	StatusCancelledBySupplier,
	StatusExpired,
}

// ActiveStatuses список статусов активных заявок
var ActiveStatuses = []EnquiryStatus{
	StatusPending,
	StatusAccepted,
}
