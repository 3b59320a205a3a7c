package domain

import "time"

// SupplierCategory вид услуг поставщика
type SupplierCategory string

const (
	CategoryVenue       SupplierCategory = "venue"
	CategoryEntertainer SupplierCategory = "entertainer"
	CategoryCaterer     SupplierCategory = "caterer"
)

// Supplier represents a party supplier together with its availability
// record. The availability fields are read-only inputs to the matcher;
// they are mutated by the schedule service and the calendar sync only.
type Supplier struct {
	ID       int64
	Name     string
	Category SupplierCategory
	Email    string

	WorkingHours WorkingHours

	// UnavailableDates are blocks entered by the supplier; BusyDates are
	// blocks derived from a connected external calendar. The matcher
	// merges both at query time.
	UnavailableDates []DateBlock
	BusyDates        []DateBlock

	// Booking window relative to "today": requests earlier than
	// today+AdvanceBookingDays or later than today+MaxBookingDays are
	// rejected before anything else is checked.
	AdvanceBookingDays int
	MaxBookingDays     int

	// ScheduleVersion is bumped on every schedule mutation and calendar
	// sync; cached availability grids embed it in their keys.
	ScheduleVersion int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduleUpdate carries a partial schedule mutation. Nil fields are
// left untouched; any applied update bumps ScheduleVersion.
type ScheduleUpdate struct {
	WorkingHours       *WorkingHours
	UnavailableDates   *[]DateBlock
	AdvanceBookingDays *int
	MaxBookingDays     *int
}

// IsEmpty reports whether the update would change nothing.
func (u ScheduleUpdate) IsEmpty() bool {
	return u.WorkingHours == nil && u.UnavailableDates == nil &&
		u.AdvanceBookingDays == nil && u.MaxBookingDays == nil
}

// HasMaxBookingLimit returns true if there is a limit on how far ahead
// the supplier accepts bookings.
func (s *Supplier) HasMaxBookingLimit() bool {
	return s.MaxBookingDays > 0
}

// AllBlocks returns manual and calendar blocks merged. A date present in
// both lists simply blocks; duplication never double-counts.
func (s *Supplier) AllBlocks() []DateBlock {
	blocks := make([]DateBlock, 0, len(s.UnavailableDates)+len(s.BusyDates))
	blocks = append(blocks, s.UnavailableDates...)
	blocks = append(blocks, s.BusyDates...)
	return blocks
}
