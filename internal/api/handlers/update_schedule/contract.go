package update_schedule

import (
	"context"

	scheduleModels "github.com/m04kA/PSM-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateSchedule(ctx context.Context, supplierID int64, req *scheduleModels.UpdateScheduleRequest) (*scheduleModels.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
