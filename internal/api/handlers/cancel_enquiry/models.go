package cancel_enquiry

import (
	enquiryModels "github.com/m04kA/PSM-BookingService/internal/service/enquiries/models"
)

// CancelEnquiryRequest тело запроса на отмену заявки
type CancelEnquiryRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует тело запроса в модель сервиса.
// CustomerID берётся из заголовка аутентификации, а не из тела.
func (r *CancelEnquiryRequest) ToServiceRequest(customerID int64) *enquiryModels.CancelEnquiryRequest {
	return &enquiryModels.CancelEnquiryRequest{
		CustomerID:         customerID,
		CancellationReason: r.CancellationReason,
	}
}
