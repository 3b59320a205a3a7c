package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/PSM-BookingService/pkg/types"
)

// SlotID identifies one of the fixed named time windows in a day against
// which supplier availability is tracked.
type SlotID string

const (
	SlotMorning   SlotID = "morning"
	SlotAfternoon SlotID = "afternoon"
)

// AllSlots lists the recognized slots in day order.
var AllSlots = []SlotID{SlotMorning, SlotAfternoon}

// ParseSlotID validates a slot identifier supplied by a caller.
func ParseSlotID(s string) (SlotID, error) {
	switch SlotID(s) {
	case SlotMorning:
		return SlotMorning, nil
	case SlotAfternoon:
		return SlotAfternoon, nil
	default:
		return "", fmt.Errorf("unknown slot %q", s)
	}
}

// IsValid returns true for a recognized slot identifier.
func (s SlotID) IsValid() bool {
	return s == SlotMorning || s == SlotAfternoon
}

// SlotWindow describes a single bookable window within a day.
type SlotWindow struct {
	Available bool             `json:"available"`
	Start     types.TimeString `json:"start"`
	End       types.TimeString `json:"end"`
}

// DaySchedule describes a supplier's recurring availability for one
// weekday. Each day is independent; there are no cross-day constraints.
type DaySchedule struct {
	Active    bool       `json:"active"`
	Morning   SlotWindow `json:"morning"`
	Afternoon SlotWindow `json:"afternoon"`
}

// Window returns the slot window for the given slot. Unknown slots
// return an unavailable zero window, never an error.
func (d DaySchedule) Window(slot SlotID) SlotWindow {
	switch slot {
	case SlotMorning:
		return d.Morning
	case SlotAfternoon:
		return d.Afternoon
	default:
		return SlotWindow{}
	}
}

// WorkingHours holds the recurring weekly schedule.
type WorkingHours struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForWeekday returns the schedule for the given day of week.
func (w WorkingHours) ForWeekday(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{Active: false}
	}
}
