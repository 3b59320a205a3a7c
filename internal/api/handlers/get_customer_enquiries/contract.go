package get_customer_enquiries

import (
	"context"

	enquiryModels "github.com/m04kA/PSM-BookingService/internal/service/enquiries/models"
)

type EnquiriesService interface {
	GetCustomerEnquiries(ctx context.Context, req *enquiryModels.GetCustomerEnquiriesRequest) (*enquiryModels.EnquiryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
