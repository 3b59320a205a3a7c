package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	supplierRepo "github.com/m04kA/PSM-BookingService/internal/infra/storage/supplier"
	"github.com/m04kA/PSM-BookingService/pkg/ptr"
)

var testNow = time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC) // Thursday

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockSupplierRepo struct {
	supplier *domain.Supplier
	err      error
}

func (m *mockSupplierRepo) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.supplier, nil
}

func testSupplier() *domain.Supplier {
	day := domain.DaySchedule{
		Active:    true,
		Morning:   domain.SlotWindow{Available: true, Start: "09:00", End: "13:00"},
		Afternoon: domain.SlotWindow{Available: true, Start: "13:00", End: "17:00"},
	}
	return &domain.Supplier{
		ID: 7,
		WorkingHours: domain.WorkingHours{
			Monday: day, Tuesday: day, Wednesday: day, Thursday: day, Friday: day,
		},
		MaxBookingDays: 365,
	}
}

func newTestUseCase(repo *mockSupplierRepo) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestExecute_AvailableSlot(t *testing.T) {
	uc := newTestUseCase(&mockSupplierRepo{supplier: testSupplier()})

	resp, err := uc.Execute(context.Background(), &Request{
		SupplierID:    7,
		Date:          time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), // Monday
		Slot:          "morning",
		DurationHours: ptr.Ptr(4),
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Empty(t, resp.Reason)
	assert.Equal(t, "2026-09-14", resp.Date)
	assert.Equal(t, ptr.Ptr(4), resp.DurationHours)
}

func TestExecute_UnavailableWithReason(t *testing.T) {
	tests := []struct {
		name       string
		date       time.Time
		wantReason string
	}{
		{"past date", testNow.AddDate(0, 0, -2), "past"},
		{"weekend closed", time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC), "closed"}, // Sunday
	}

	uc := newTestUseCase(&mockSupplierRepo{supplier: testSupplier()})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{SupplierID: 7, Date: tt.date, Slot: "morning"})
			require.NoError(t, err)
			assert.False(t, resp.Available)
			assert.Equal(t, tt.wantReason, resp.Reason)
		})
	}
}

func TestExecute_InvalidSlot(t *testing.T) {
	uc := newTestUseCase(&mockSupplierRepo{supplier: testSupplier()})

	_, err := uc.Execute(context.Background(), &Request{
		SupplierID: 7,
		Date:       time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Slot:       "evening",
	})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_DurationOutOfBounds(t *testing.T) {
	uc := newTestUseCase(&mockSupplierRepo{supplier: testSupplier()})

	_, err := uc.Execute(context.Background(), &Request{
		SupplierID:    7,
		Date:          time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Slot:          "morning",
		DurationHours: ptr.Ptr(24),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SupplierNotFound(t *testing.T) {
	uc := newTestUseCase(&mockSupplierRepo{err: supplierRepo.ErrSupplierNotFound})

	_, err := uc.Execute(context.Background(), &Request{
		SupplierID: 7,
		Date:       time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Slot:       "morning",
	})
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}
