package check_availability

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	uc "github.com/m04kA/PSM-BookingService/internal/usecase/check_availability"
)

// parseRequest разбирает query-параметры проверки слота.
// date и slot обязательны, duration опционален.
func parseRequest(supplierID int64, query url.Values) (*uc.Request, error) {
	rawDate := query.Get("date")
	if rawDate == "" {
		return nil, fmt.Errorf("date is required")
	}
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		return nil, fmt.Errorf("date must be in YYYY-MM-DD format")
	}

	slot := query.Get("slot")
	if slot == "" {
		return nil, fmt.Errorf("slot is required")
	}

	req := &uc.Request{
		SupplierID: supplierID,
		Date:       date,
		Slot:       slot,
	}

	if rawDuration := query.Get("duration"); rawDuration != "" {
		duration, err := strconv.Atoi(rawDuration)
		if err != nil {
			return nil, fmt.Errorf("duration must be an integer")
		}
		req.DurationHours = &duration
	}

	return req, nil
}
