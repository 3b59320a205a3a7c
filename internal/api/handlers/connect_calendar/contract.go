package connect_calendar

import "context"

type CalendarSyncService interface {
	Connect(ctx context.Context, supplierID int64, code, provider string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
