package models

import (
	"errors"
	"fmt"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	"github.com/m04kA/PSM-BookingService/pkg/types"
)

var (
	// ErrInvalidTimeRange возвращается при некорректном окне слота
	ErrInvalidTimeRange = errors.New("slot window start must be before end")

	// ErrInvalidDate возвращается при нераспознанной дате блокировки
	ErrInvalidDate = errors.New("invalid block date")

	// ErrInvalidSlot возвращается при неизвестном идентификаторе слота
	ErrInvalidSlot = errors.New("invalid slot identifier")

	// ErrOutOfBounds возвращается при выходе окна бронирования за допустимые пределы
	ErrOutOfBounds = errors.New("booking window out of bounds")
)

// API модели расписания. Наружу всегда отдаётся канонический формат по
// слотам; устаревший формат open/close принимается только хранилищем.

// SlotWindowModel окно одного слота
type SlotWindowModel struct {
	Available bool   `json:"available"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
}

// DayScheduleModel расписание одного дня недели
type DayScheduleModel struct {
	Active    bool            `json:"active"`
	Morning   SlotWindowModel `json:"morning"`
	Afternoon SlotWindowModel `json:"afternoon"`
}

// WorkingHoursModel недельное расписание
type WorkingHoursModel struct {
	Monday    DayScheduleModel `json:"monday"`
	Tuesday   DayScheduleModel `json:"tuesday"`
	Wednesday DayScheduleModel `json:"wednesday"`
	Thursday  DayScheduleModel `json:"thursday"`
	Friday    DayScheduleModel `json:"friday"`
	Saturday  DayScheduleModel `json:"saturday"`
	Sunday    DayScheduleModel `json:"sunday"`
}

// DateBlockModel блокировка даты
type DateBlockModel struct {
	Date      string   `json:"date"`
	TimeSlots []string `json:"timeSlots,omitempty"`
	Source    string   `json:"source,omitempty"`
	Label     string   `json:"label,omitempty"`
}

// ScheduleResponse ответ с расписанием поставщика
type ScheduleResponse struct {
	SupplierID         int64             `json:"supplierId"`
	WorkingHours       WorkingHoursModel `json:"workingHours"`
	UnavailableDates   []DateBlockModel  `json:"unavailableDates"`
	BusyDates          []DateBlockModel  `json:"busyDates"`
	AdvanceBookingDays int               `json:"advanceBookingDays"`
	MaxBookingDays     int               `json:"maxBookingDays"`
	ScheduleVersion    int64             `json:"scheduleVersion"`
}

// UpdateScheduleRequest частичное обновление расписания. Отсутствующие
// поля не меняются.
type UpdateScheduleRequest struct {
	WorkingHours       *WorkingHoursModel `json:"workingHours,omitempty"`
	UnavailableDates   *[]DateBlockModel  `json:"unavailableDates,omitempty"`
	AdvanceBookingDays *int               `json:"advanceBookingDays,omitempty"`
	MaxBookingDays     *int               `json:"maxBookingDays,omitempty"`
}

// FromDomainSupplier собирает ответ с расписанием из доменной модели
func FromDomainSupplier(s *domain.Supplier) *ScheduleResponse {
	return &ScheduleResponse{
		SupplierID:         s.ID,
		WorkingHours:       fromDomainWorkingHours(s.WorkingHours),
		UnavailableDates:   fromDomainBlocks(s.UnavailableDates),
		BusyDates:          fromDomainBlocks(s.BusyDates),
		AdvanceBookingDays: s.AdvanceBookingDays,
		MaxBookingDays:     s.MaxBookingDays,
		ScheduleVersion:    s.ScheduleVersion,
	}
}

func fromDomainWorkingHours(hours domain.WorkingHours) WorkingHoursModel {
	return WorkingHoursModel{
		Monday:    fromDomainDaySchedule(hours.Monday),
		Tuesday:   fromDomainDaySchedule(hours.Tuesday),
		Wednesday: fromDomainDaySchedule(hours.Wednesday),
		Thursday:  fromDomainDaySchedule(hours.Thursday),
		Friday:    fromDomainDaySchedule(hours.Friday),
		Saturday:  fromDomainDaySchedule(hours.Saturday),
		Sunday:    fromDomainDaySchedule(hours.Sunday),
	}
}

func fromDomainDaySchedule(day domain.DaySchedule) DayScheduleModel {
	return DayScheduleModel{
		Active:    day.Active,
		Morning:   fromDomainSlotWindow(day.Morning),
		Afternoon: fromDomainSlotWindow(day.Afternoon),
	}
}

func fromDomainSlotWindow(window domain.SlotWindow) SlotWindowModel {
	return SlotWindowModel{
		Available: window.Available,
		Start:     window.Start.String(),
		End:       window.End.String(),
	}
}

func fromDomainBlocks(blocks []domain.DateBlock) []DateBlockModel {
	result := make([]DateBlockModel, 0, len(blocks))
	for _, block := range blocks {
		model := DateBlockModel{
			Date:   block.Date.String(),
			Source: string(block.Source),
			Label:  block.Label,
		}
		for _, slot := range block.Slots {
			model.TimeSlots = append(model.TimeSlots, string(slot))
		}
		result = append(result, model)
	}
	return result
}

// ToDomainUpdate валидирует запрос и конвертирует его в доменное обновление
func (r *UpdateScheduleRequest) ToDomainUpdate() (domain.ScheduleUpdate, error) {
	var update domain.ScheduleUpdate

	if r.WorkingHours != nil {
		hours, err := r.WorkingHours.toDomain()
		if err != nil {
			return update, err
		}
		update.WorkingHours = &hours
	}

	if r.UnavailableDates != nil {
		blocks, err := toDomainBlocks(*r.UnavailableDates)
		if err != nil {
			return update, err
		}
		update.UnavailableDates = &blocks
	}

	if r.AdvanceBookingDays != nil {
		if *r.AdvanceBookingDays < 0 || *r.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
			return update, fmt.Errorf("%w: advanceBookingDays must be within [0, %d]",
				ErrOutOfBounds, domain.MaxAdvanceBookingDays)
		}
		update.AdvanceBookingDays = r.AdvanceBookingDays
	}

	if r.MaxBookingDays != nil {
		if *r.MaxBookingDays < 0 || *r.MaxBookingDays > domain.MaxMaxBookingDays {
			return update, fmt.Errorf("%w: maxBookingDays must be within [0, %d]",
				ErrOutOfBounds, domain.MaxMaxBookingDays)
		}
		update.MaxBookingDays = r.MaxBookingDays
	}

	return update, nil
}

func (m *WorkingHoursModel) toDomain() (domain.WorkingHours, error) {
	var hours domain.WorkingHours

	days := map[string]struct {
		model DayScheduleModel
		out   *domain.DaySchedule
	}{
		"monday":    {m.Monday, &hours.Monday},
		"tuesday":   {m.Tuesday, &hours.Tuesday},
		"wednesday": {m.Wednesday, &hours.Wednesday},
		"thursday":  {m.Thursday, &hours.Thursday},
		"friday":    {m.Friday, &hours.Friday},
		"saturday":  {m.Saturday, &hours.Saturday},
		"sunday":    {m.Sunday, &hours.Sunday},
	}

	for name, day := range days {
		schedule, err := day.model.toDomain()
		if err != nil {
			return hours, fmt.Errorf("%s: %w", name, err)
		}
		*day.out = schedule
	}

	return hours, nil
}

func (m DayScheduleModel) toDomain() (domain.DaySchedule, error) {
	if !m.Active {
		return domain.DaySchedule{Active: false}, nil
	}

	morning, err := m.Morning.toDomain(domain.DefaultMorningStart, domain.DefaultSlotBoundary)
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("morning: %w", err)
	}
	afternoon, err := m.Afternoon.toDomain(domain.DefaultSlotBoundary, domain.DefaultAfternoonEnd)
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("afternoon: %w", err)
	}

	return domain.DaySchedule{Active: true, Morning: morning, Afternoon: afternoon}, nil
}

func (m SlotWindowModel) toDomain(defaultStart, defaultEnd string) (domain.SlotWindow, error) {
	window := domain.SlotWindow{
		Available: m.Available,
		Start:     types.TimeString(defaultStart),
		End:       types.TimeString(defaultEnd),
	}

	if m.Start != "" {
		start, err := types.NewTimeStringFromString(m.Start)
		if err != nil {
			return window, fmt.Errorf("%w: start %q", ErrInvalidTimeRange, m.Start)
		}
		window.Start = start
	}
	if m.End != "" {
		end, err := types.NewTimeStringFromString(m.End)
		if err != nil {
			return window, fmt.Errorf("%w: end %q", ErrInvalidTimeRange, m.End)
		}
		window.End = end
	}

	if m.Available && !window.Start.IsBefore(window.End) {
		return window, fmt.Errorf("%w: %s >= %s", ErrInvalidTimeRange, window.Start, window.End)
	}

	return window, nil
}

func toDomainBlocks(blocks []DateBlockModel) ([]domain.DateBlock, error) {
	result := make([]domain.DateBlock, 0, len(blocks))

	for _, model := range blocks {
		date, ok := domain.NormalizeDate(model.Date)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, model.Date)
		}

		block := domain.DateBlock{
			Date:   date,
			Source: domain.BlockSourceManual,
			Label:  model.Label,
		}

		for _, raw := range model.TimeSlots {
			slot, err := domain.ParseSlotID(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, raw)
			}
			block.Slots = append(block.Slots, slot)
		}

		result = append(result, block)
	}

	return result, nil
}
