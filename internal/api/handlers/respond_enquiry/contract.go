package respond_enquiry

import (
	"context"

	enquiryModels "github.com/m04kA/PSM-BookingService/internal/service/enquiries/models"
)

type EnquiriesService interface {
	Respond(ctx context.Context, reference string, req *enquiryModels.RespondEnquiryRequest) (*enquiryModels.EnquiryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
