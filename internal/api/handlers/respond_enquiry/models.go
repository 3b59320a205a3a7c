package respond_enquiry

import (
	enquiryModels "github.com/m04kA/PSM-BookingService/internal/service/enquiries/models"
)

// RespondEnquiryRequest тело ответа поставщика на заявку
type RespondEnquiryRequest struct {
	Action        string  `json:"action"` // accept | decline
	DeclineReason *string `json:"declineReason,omitempty"`
}

// ToServiceRequest конвертирует тело запроса в модель сервиса.
// SupplierID берётся из JWT, а не из тела.
func (r *RespondEnquiryRequest) ToServiceRequest(supplierID int64) *enquiryModels.RespondEnquiryRequest {
	return &enquiryModels.RespondEnquiryRequest{
		SupplierID:    supplierID,
		Action:        r.Action,
		DeclineReason: r.DeclineReason,
	}
}
