package calendarapi

import "time"

// TokenResponse ответ провайдера на обмен кода или рефреш токена
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"` // seconds
}

// ExpiresAt момент истечения токена, отсчитанный от now
func (t *TokenResponse) ExpiresAt(now time.Time) time.Time {
	return now.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// busyInterval один занятый интервал из календаря провайдера
type busyInterval struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Summary string    `json:"summary"`
}

// busyResponse ответ провайдера на запрос занятых интервалов
type busyResponse struct {
	Busy []busyInterval `json:"busy"`
}

// ErrorResponse модель ошибки от провайдера
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}
