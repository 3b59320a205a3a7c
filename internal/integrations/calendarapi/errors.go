package calendarapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("calendarapi client: invalid response")

	// ErrUnauthorized возвращается, когда токен отклонён провайдером
	ErrUnauthorized = errors.New("calendarapi client: token rejected")

	// ErrCodeRejected возвращается, когда провайдер отклонил authorization code
	ErrCodeRejected = errors.New("calendarapi client: authorization code rejected")
)
