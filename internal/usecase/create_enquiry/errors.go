package create_enquiry

import "errors"

var (
	// ErrSupplierNotFound возвращается, когда поставщик не найден
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrSlotNotAvailable возвращается, когда слот недоступен на выбранную дату
	ErrSlotNotAvailable = errors.New("slot is not available on this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
