package check_availability

import "errors"

var (
	// ErrSupplierNotFound возвращается, когда поставщик не найден
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrInvalidSlot возвращается при неизвестном идентификаторе слота
	ErrInvalidSlot = errors.New("invalid slot identifier")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
