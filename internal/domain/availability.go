package domain

import (
	"time"

	"github.com/m04kA/PSM-BookingService/pkg/types"
)

// Reason explains why a date or slot is not bookable.
type Reason string

const (
	ReasonPast          Reason = "past"
	ReasonOutsideWindow Reason = "outside-window"
	ReasonClosed        Reason = "closed"
	ReasonUnavailable   Reason = "unavailable"
)

// DayStatus summarizes a whole date for calendar rendering.
type DayStatus string

const (
	DayAvailable          DayStatus = "available"
	DayPartiallyAvailable DayStatus = "partially-available"
	DayUnavailable        DayStatus = "unavailable"
	DayClosed             DayStatus = "closed"
	DayPast               DayStatus = "past"
	DayOutsideWindow      DayStatus = "outside-window"
)

// SlotResult is the outcome of a single slot check.
type SlotResult struct {
	Available bool
	Reason    Reason // empty when Available
}

// SlotAvailability pairs a slot with its check result.
type SlotAvailability struct {
	Slot SlotID
	SlotResult
}

// DayAvailability is the full evaluation of one date.
type DayAvailability struct {
	Date   types.DateString
	Status DayStatus
	Slots  []SlotAvailability
}

func unavailable(reason Reason) SlotResult {
	return SlotResult{Available: false, Reason: reason}
}

// CheckSlot decides whether the supplier can be booked on the given date
// and slot. It is pure and total: any missing or malformed data resolves
// to "not available" (fail closed), never to an error or a panic.
//
// The requested duration is deliberately not an input: a slot is treated
// as a fixed block regardless of how many hours the customer asked for.
//
// Checks run cheapest-and-most-definitive first:
//  1. date before today            -> past
//  2. date outside booking window  -> outside-window
//  3. weekday inactive             -> closed
//  4. slot off in working hours    -> unavailable
//  5. manual or synced block hit   -> unavailable
func CheckSlot(s *Supplier, date time.Time, slot SlotID, now time.Time) SlotResult {
	if s == nil || !slot.IsValid() {
		return unavailable(ReasonUnavailable)
	}

	// Dates are compared by calendar-day identity only. Comparing raw
	// timestamps here breaks as soon as the two sides carry different
	// clock times or zone offsets.
	day := types.NewDateString(date)
	today := types.NewDateString(now)

	if day.IsBefore(today) {
		return unavailable(ReasonPast)
	}

	if !withinBookingWindow(day, now, s.AdvanceBookingDays, s.MaxBookingDays) {
		return unavailable(ReasonOutsideWindow)
	}

	schedule := s.WorkingHours.ForWeekday(date.Weekday())
	if !schedule.Active {
		return unavailable(ReasonClosed)
	}

	if !schedule.Window(slot).Available {
		return unavailable(ReasonUnavailable)
	}

	// Manual and calendar-synced blocks act identically; a date present
	// in both lists blocks once, never double-counts.
	for _, block := range s.UnavailableDates {
		if block.Date == day && block.BlocksSlot(slot) {
			return unavailable(ReasonUnavailable)
		}
	}
	for _, block := range s.BusyDates {
		if block.Date == day && block.BlocksSlot(slot) {
			return unavailable(ReasonUnavailable)
		}
	}

	return SlotResult{Available: true}
}

// EvaluateDay runs CheckSlot for every slot of the date and folds the
// results into a day status for calendar rendering:
// all slots pass -> available, some -> partially-available, none (while
// within window and open) -> unavailable.
func EvaluateDay(s *Supplier, date time.Time, now time.Time) DayAvailability {
	day := types.NewDateString(date)

	result := DayAvailability{
		Date:  day,
		Slots: make([]SlotAvailability, 0, len(AllSlots)),
	}

	availableCount := 0
	for _, slot := range AllSlots {
		slotResult := CheckSlot(s, date, slot, now)
		result.Slots = append(result.Slots, SlotAvailability{Slot: slot, SlotResult: slotResult})
		if slotResult.Available {
			availableCount++
		}
	}

	switch {
	case availableCount == len(AllSlots):
		result.Status = DayAvailable
	case availableCount > 0:
		result.Status = DayPartiallyAvailable
	default:
		result.Status = dayStatusFromReason(result.Slots)
	}

	return result
}

// dayStatusFromReason maps a fully unavailable day onto the more
// specific statuses when every slot was rejected for the same
// date-level reason.
func dayStatusFromReason(slots []SlotAvailability) DayStatus {
	if len(slots) == 0 {
		return DayUnavailable
	}

	first := slots[0].Reason
	for _, s := range slots[1:] {
		if s.Reason != first {
			return DayUnavailable
		}
	}

	switch first {
	case ReasonPast:
		return DayPast
	case ReasonOutsideWindow:
		return DayOutsideWindow
	case ReasonClosed:
		return DayClosed
	default:
		return DayUnavailable
	}
}

// withinBookingWindow checks [today+advance, today+max]. A max of 0
// means no upper bound. The bounds are computed on calendar days, so a
// request for today+advance is allowed whatever the current clock time.
func withinBookingWindow(day types.DateString, now time.Time, advanceDays, maxDays int) bool {
	minDay := types.NewDateString(now.AddDate(0, 0, advanceDays))
	if day.IsBefore(minDay) {
		return false
	}

	if maxDays > 0 {
		maxDay := types.NewDateString(now.AddDate(0, 0, maxDays))
		if maxDay.IsBefore(day) {
			return false
		}
	}

	return true
}
