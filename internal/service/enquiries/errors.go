package enquiries

import "errors"

var (
	// ErrEnquiryNotFound возвращается, когда заявка не найдена
	ErrEnquiryNotFound = errors.New("enquiry not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда заявку нельзя отменить
	ErrCannotCancel = errors.New("enquiry cannot be cancelled")

	// ErrCannotRespond возвращается, когда по заявке нельзя дать ответ
	ErrCannotRespond = errors.New("enquiry cannot be responded to")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
