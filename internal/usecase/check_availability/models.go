package check_availability

import "time"

// Request модель запроса проверки одного слота
type Request struct {
	SupplierID    int64     // ID поставщика
	Date          time.Time // Дата праздника
	Slot          string    // Идентификатор слота (morning / afternoon)
	DurationHours *int      // Желаемая длительность (справочно, на результат не влияет)
}

// Response результат проверки слота
type Response struct {
	SupplierID    int64  `json:"supplierId"`
	Date          string `json:"date"`
	Slot          string `json:"slot"`
	Available     bool   `json:"available"`
	Reason        string `json:"reason,omitempty"`
	DurationHours *int   `json:"durationHours,omitempty"`
}
