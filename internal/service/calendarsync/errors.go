package calendarsync

import "errors"

var (
	// ErrSupplierNotFound возвращается, когда поставщик не найден
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrNotConnected возвращается, когда у поставщика нет подключения
	ErrNotConnected = errors.New("supplier has no calendar connection")

	// ErrCodeRejected возвращается, когда провайдер отклонил authorization code
	ErrCodeRejected = errors.New("authorization code rejected by provider")

	// ErrProviderUnavailable возвращается при ошибках календарного провайдера
	ErrProviderUnavailable = errors.New("calendar provider unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
