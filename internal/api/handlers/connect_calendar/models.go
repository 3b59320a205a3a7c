package connect_calendar

import "fmt"

// ConnectCalendarRequest тело запроса на подключение календаря
type ConnectCalendarRequest struct {
	Code     string `json:"code"`
	Provider string `json:"provider"`
}

// Validate проверяет обязательные поля
func (r *ConnectCalendarRequest) Validate() error {
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	if r.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	return nil
}
