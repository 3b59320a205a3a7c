package domain

import (
	"encoding/json"
	"time"

	"github.com/m04kA/PSM-BookingService/pkg/types"
)

// Stored supplier rows come in two generations: newer rows carry per-slot
// working hours and slot-qualified blocks, legacy rows carry a single
// open/close range per day and bare date strings. Everything is funneled
// through the normalizers below exactly once, at the storage boundary, so
// the matcher only ever sees the canonical shape.

// RawDaySchedule is the stored shape of one weekday's working hours.
type RawDaySchedule struct {
	Active    bool          `json:"active"`
	TimeSlots *RawTimeSlots `json:"timeSlots,omitempty"`

	// Legacy single-range shape.
	Open  *types.TimeString `json:"open,omitempty"`
	Close *types.TimeString `json:"close,omitempty"`
}

// RawTimeSlots is the per-slot stored shape.
type RawTimeSlots struct {
	Morning   *RawSlotWindow `json:"morning,omitempty"`
	Afternoon *RawSlotWindow `json:"afternoon,omitempty"`
}

// RawSlotWindow is one stored slot window; start/end may be absent.
type RawSlotWindow struct {
	Available bool              `json:"available"`
	Start     *types.TimeString `json:"start,omitempty"`
	End       *types.TimeString `json:"end,omitempty"`
}

// RawWorkingHours is the stored weekly schedule, keyed by weekday name.
type RawWorkingHours struct {
	Monday    RawDaySchedule `json:"monday"`
	Tuesday   RawDaySchedule `json:"tuesday"`
	Wednesday RawDaySchedule `json:"wednesday"`
	Thursday  RawDaySchedule `json:"thursday"`
	Friday    RawDaySchedule `json:"friday"`
	Saturday  RawDaySchedule `json:"saturday"`
	Sunday    RawDaySchedule `json:"sunday"`
}

// NormalizeWorkingHours converts a stored weekly schedule into the
// canonical two-slot shape the matcher evaluates.
func NormalizeWorkingHours(raw RawWorkingHours) WorkingHours {
	return WorkingHours{
		Monday:    normalizeDaySchedule(raw.Monday),
		Tuesday:   normalizeDaySchedule(raw.Tuesday),
		Wednesday: normalizeDaySchedule(raw.Wednesday),
		Thursday:  normalizeDaySchedule(raw.Thursday),
		Friday:    normalizeDaySchedule(raw.Friday),
		Saturday:  normalizeDaySchedule(raw.Saturday),
		Sunday:    normalizeDaySchedule(raw.Sunday),
	}
}

func normalizeDaySchedule(raw RawDaySchedule) DaySchedule {
	if !raw.Active {
		return DaySchedule{Active: false}
	}

	if raw.TimeSlots != nil {
		return DaySchedule{
			Active: true,
			Morning: normalizeSlotWindow(raw.TimeSlots.Morning,
				types.TimeString(DefaultMorningStart), types.TimeString(DefaultSlotBoundary)),
			Afternoon: normalizeSlotWindow(raw.TimeSlots.Afternoon,
				types.TimeString(DefaultSlotBoundary), types.TimeString(DefaultAfternoonEnd)),
		}
	}

	// Legacy single open/close range: split at the default boundary.
	// Morning covers open until the boundary, afternoon the boundary
	// until close; a side collapses when the range does not reach it.
	open := types.TimeString(DefaultMorningStart)
	if raw.Open != nil && raw.Open.Validate() == nil {
		open = *raw.Open
	}
	closeAt := types.TimeString(DefaultAfternoonEnd)
	if raw.Close != nil && raw.Close.Validate() == nil {
		closeAt = *raw.Close
	}

	boundary := types.TimeString(DefaultSlotBoundary)

	return DaySchedule{
		Active: true,
		Morning: SlotWindow{
			Available: open.IsBefore(boundary),
			Start:     open,
			End:       boundary,
		},
		Afternoon: SlotWindow{
			Available: boundary.IsBefore(closeAt),
			Start:     boundary,
			End:       closeAt,
		},
	}
}

func normalizeSlotWindow(raw *RawSlotWindow, defaultStart, defaultEnd types.TimeString) SlotWindow {
	// An absent slot entry means the slot was never enabled.
	if raw == nil {
		return SlotWindow{Available: false, Start: defaultStart, End: defaultEnd}
	}

	window := SlotWindow{Available: raw.Available, Start: defaultStart, End: defaultEnd}
	if raw.Start != nil && raw.Start.Validate() == nil {
		window.Start = *raw.Start
	}
	if raw.End != nil && raw.End.Validate() == nil {
		window.End = *raw.End
	}
	return window
}

// RawDateBlock is one stored block entry. Newer entries are objects with
// an optional slot list; legacy entries are bare date strings.
type RawDateBlock struct {
	Date   string   `json:"date"`
	Slots  []string `json:"timeSlots,omitempty"`
	Source string   `json:"source,omitempty"`
	Label  string   `json:"label,omitempty"`
}

// UnmarshalJSON accepts both the object shape and a bare "YYYY-MM-DD"
// string.
func (b *RawDateBlock) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		*b = RawDateBlock{Date: bare}
		return nil
	}

	type alias RawDateBlock
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*b = RawDateBlock(obj)
	return nil
}

// NormalizeBlocks converts stored block entries into canonical blocks.
// Entries whose date cannot be resolved to a calendar day are dropped.
func NormalizeBlocks(raw []RawDateBlock, defaultSource BlockSource) []DateBlock {
	blocks := make([]DateBlock, 0, len(raw))

	for _, entry := range raw {
		date, ok := NormalizeDate(entry.Date)
		if !ok {
			continue
		}

		block := DateBlock{
			Date:   date,
			Source: defaultSource,
			Label:  entry.Label,
		}
		if entry.Source != "" {
			block.Source = BlockSource(entry.Source)
		}

		// Unknown slot names are skipped; an entry with no recognized
		// slots blocks the whole day.
		for _, s := range entry.Slots {
			if slot, err := ParseSlotID(s); err == nil {
				block.Slots = append(block.Slots, slot)
			}
		}

		blocks = append(blocks, block)
	}

	return blocks
}

// RawFromWorkingHours converts a canonical weekly schedule back to the
// per-slot stored shape. Writes always produce the newer shape; the
// legacy single-range shape is read-only.
func RawFromWorkingHours(hours WorkingHours) RawWorkingHours {
	return RawWorkingHours{
		Monday:    rawFromDaySchedule(hours.Monday),
		Tuesday:   rawFromDaySchedule(hours.Tuesday),
		Wednesday: rawFromDaySchedule(hours.Wednesday),
		Thursday:  rawFromDaySchedule(hours.Thursday),
		Friday:    rawFromDaySchedule(hours.Friday),
		Saturday:  rawFromDaySchedule(hours.Saturday),
		Sunday:    rawFromDaySchedule(hours.Sunday),
	}
}

func rawFromDaySchedule(day DaySchedule) RawDaySchedule {
	if !day.Active {
		return RawDaySchedule{Active: false}
	}
	return RawDaySchedule{
		Active: true,
		TimeSlots: &RawTimeSlots{
			Morning:   rawFromSlotWindow(day.Morning),
			Afternoon: rawFromSlotWindow(day.Afternoon),
		},
	}
}

func rawFromSlotWindow(window SlotWindow) *RawSlotWindow {
	raw := &RawSlotWindow{Available: window.Available}
	if !window.Start.IsZero() {
		start := window.Start
		raw.Start = &start
	}
	if !window.End.IsZero() {
		end := window.End
		raw.End = &end
	}
	return raw
}

// RawFromBlocks converts canonical blocks back to the stored object shape.
func RawFromBlocks(blocks []DateBlock) []RawDateBlock {
	raw := make([]RawDateBlock, 0, len(blocks))
	for _, block := range blocks {
		entry := RawDateBlock{
			Date:   block.Date.String(),
			Source: string(block.Source),
			Label:  block.Label,
		}
		for _, slot := range block.Slots {
			entry.Slots = append(entry.Slots, string(slot))
		}
		raw = append(raw, entry)
	}
	return raw
}

// NormalizeDate resolves the stored date representations seen in the
// wild ("YYYY-MM-DD", full RFC3339 timestamps from calendar exports) to
// a canonical calendar day.
func NormalizeDate(s string) (types.DateString, bool) {
	if d, err := types.NewDateStringFromString(s); err == nil {
		return d, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return types.NewDateString(t), true
	}
	// Timestamp-ish strings with a valid date prefix.
	if len(s) > 10 {
		if d, err := types.NewDateStringFromString(s[:10]); err == nil {
			return d, true
		}
	}
	return "", false
}
