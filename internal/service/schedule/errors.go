package schedule

import "errors"

var (
	// ErrSupplierNotFound возвращается, когда поставщик не найден
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrEmptyUpdate возвращается, когда обновление не содержит изменений
	ErrEmptyUpdate = errors.New("schedule update contains no changes")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
