package disconnect_calendar

import "context"

type CalendarSyncService interface {
	Disconnect(ctx context.Context, supplierID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
