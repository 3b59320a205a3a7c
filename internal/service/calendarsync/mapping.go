package calendarsync

import (
	"sort"
	"time"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	"github.com/m04kA/PSM-BookingService/pkg/types"
)

// MapBusyBlocks переводит занятые интервалы календаря в блокировки по
// датам и слотам. Интервал, задевающий хотя бы часть слота, блокирует
// слот целиком: матчер работает с дискретными слотами, и частично
// занятый слот считается занятым.
func MapBusyBlocks(busy []domain.BusyBlock) []domain.DateBlock {
	type daySlots struct {
		morning   bool
		afternoon bool
		label     string
	}
	byDate := make(map[types.DateString]*daySlots)

	for _, interval := range busy {
		if !interval.Start.Before(interval.End) {
			continue
		}

		// Идём по календарным дням, покрытым интервалом
		day := time.Date(interval.Start.Year(), interval.Start.Month(), interval.Start.Day(),
			0, 0, 0, 0, interval.Start.Location())

		for day.Before(interval.End) {
			nextDay := day.AddDate(0, 0, 1)

			overlapStart := maxTime(interval.Start, day)
			overlapEnd := minTime(interval.End, nextDay)

			boundary := time.Date(day.Year(), day.Month(), day.Day(),
				13, 0, 0, 0, day.Location())

			date := types.NewDateString(day)
			slots := byDate[date]
			if slots == nil {
				slots = &daySlots{label: interval.Summary}
				byDate[date] = slots
			}

			if overlapStart.Before(boundary) {
				slots.morning = true
			}
			if overlapEnd.After(boundary) {
				slots.afternoon = true
			}

			day = nextDay
		}
	}

	blocks := make([]domain.DateBlock, 0, len(byDate))
	for date, slots := range byDate {
		block := domain.DateBlock{
			Date:   date,
			Source: domain.BlockSourceCalendar,
			Label:  slots.label,
		}
		// Целый день остаётся без списка слотов: пустой список значит
		// "все слоты"
		if !(slots.morning && slots.afternoon) {
			if slots.morning {
				block.Slots = append(block.Slots, domain.SlotMorning)
			}
			if slots.afternoon {
				block.Slots = append(block.Slots, domain.SlotAfternoon)
			}
		}
		blocks = append(blocks, block)
	}

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].Date.IsBefore(blocks[j].Date)
	})

	return blocks
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
