package supplier

import "errors"

var (
	// ErrSupplierNotFound возвращается, когда поставщик не найден
	ErrSupplierNotFound = errors.New("supplier.repository: supplier not found")

	// ErrCredentialsNotFound возвращается, когда учётная запись не найдена
	ErrCredentialsNotFound = errors.New("supplier.repository: credentials not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("supplier.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("supplier.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("supplier.repository: failed to scan row")

	// ErrMarshalSchedule возвращается при ошибке сериализации расписания
	ErrMarshalSchedule = errors.New("supplier.repository: failed to marshal schedule")

	// ErrEmptyUpdate возвращается при попытке применить пустое обновление
	ErrEmptyUpdate = errors.New("supplier.repository: empty schedule update")
)
