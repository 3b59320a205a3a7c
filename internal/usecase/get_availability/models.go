package get_availability

import (
	"time"

	"github.com/m04kA/PSM-BookingService/internal/domain"
)

// Request модель запроса сетки доступности
type Request struct {
	SupplierID int64     // ID поставщика
	From       time.Time // Первый день сетки (включительно)
	To         time.Time // Последний день сетки (включительно)
}

// Response сетка доступности за период. Модель сериализуется в кеш
// как есть, поэтому все поля несут JSON теги.
type Response struct {
	SupplierID int64  `json:"supplierId"`
	From       string `json:"from"`
	To         string `json:"to"`
	Days       []Day  `json:"days"`
}

// Day статус одного дня сетки
type Day struct {
	Date   string       `json:"date"`
	Status string       `json:"status"`
	Slots  []SlotStatus `json:"slots"`
}

// SlotStatus статус одного слота дня
type SlotStatus struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

func fromDomainDay(day domain.DayAvailability) Day {
	result := Day{
		Date:   day.Date.String(),
		Status: string(day.Status),
		Slots:  make([]SlotStatus, 0, len(day.Slots)),
	}
	for _, slot := range day.Slots {
		result.Slots = append(result.Slots, SlotStatus{
			Slot:      string(slot.Slot),
			Available: slot.Available,
			Reason:    string(slot.Reason),
		})
	}
	return result
}
