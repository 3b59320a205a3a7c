package domain

import "github.com/m04kA/PSM-BookingService/pkg/types"

// BlockSource distinguishes where a date block originated. The source is
// display metadata only; both kinds block bookings identically.
type BlockSource string

const (
	BlockSourceManual   BlockSource = "manual"
	BlockSourceCalendar BlockSource = "external-calendar"
)

// DateBlock marks a calendar date on which a supplier is not bookable.
// An empty Slots list blocks the whole day.
type DateBlock struct {
	Date   types.DateString `json:"date"`
	Slots  []SlotID         `json:"timeSlots,omitempty"`
	Source BlockSource      `json:"source,omitempty"`
	Label  string           `json:"label,omitempty"`
}

// BlocksSlot reports whether this block covers the given slot.
func (b DateBlock) BlocksSlot(slot SlotID) bool {
	if len(b.Slots) == 0 {
		return true
	}
	for _, s := range b.Slots {
		if s == slot {
			return true
		}
	}
	return false
}
