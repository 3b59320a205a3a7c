package get_availability

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	uc "github.com/m04kA/PSM-BookingService/internal/usecase/get_availability"
)

// parseRequest разбирает query-параметры сетки доступности.
// Оба параметра обязательны: from и to в формате YYYY-MM-DD.
func parseRequest(supplierID int64, query url.Values) (*uc.Request, error) {
	from, err := parseDate(query.Get("from"), "from")
	if err != nil {
		return nil, err
	}

	to, err := parseDate(query.Get("to"), "to")
	if err != nil {
		return nil, err
	}

	return &uc.Request{
		SupplierID: supplierID,
		From:       from,
		To:         to,
	}, nil
}

func parseDate(raw, name string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	parsed, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be in YYYY-MM-DD format", name)
	}
	return parsed, nil
}
