package get_enquiry

import (
	"context"

	enquiryModels "github.com/m04kA/PSM-BookingService/internal/service/enquiries/models"
)

type EnquiriesService interface {
	GetByReference(ctx context.Context, reference string, customerID, supplierID *int64) (*enquiryModels.EnquiryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
