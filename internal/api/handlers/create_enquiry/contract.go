package create_enquiry

import (
	"context"

	uc "github.com/m04kA/PSM-BookingService/internal/usecase/create_enquiry"
)

type CreateEnquiryUseCase interface {
	Execute(ctx context.Context, req *uc.Request) (*uc.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
