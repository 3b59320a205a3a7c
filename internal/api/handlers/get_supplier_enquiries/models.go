package get_supplier_enquiries

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	enquiryModels "github.com/m04kA/PSM-BookingService/internal/service/enquiries/models"
)

// parseRequest разбирает query-параметры фильтра заявок поставщика.
// Все параметры опциональны.
func parseRequest(supplierID int64, query url.Values) (*enquiryModels.GetSupplierEnquiriesRequest, error) {
	req := &enquiryModels.GetSupplierEnquiriesRequest{SupplierID: supplierID}

	if raw := query.Get("startDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("startDate must be in YYYY-MM-DD format")
		}
		req.StartDate = &parsed
	}

	if raw := query.Get("endDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("endDate must be in YYYY-MM-DD format")
		}
		req.EndDate = &parsed
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
