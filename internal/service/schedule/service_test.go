package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	supplierRepo "github.com/m04kA/PSM-BookingService/internal/infra/storage/supplier"
	"github.com/m04kA/PSM-BookingService/internal/service/schedule/models"
	"github.com/m04kA/PSM-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockSupplierRepo struct {
	supplier *domain.Supplier
	getErr   error

	updatedID int64
	update    domain.ScheduleUpdate
}

func (m *mockSupplierRepo) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.supplier, nil
}

func (m *mockSupplierRepo) UpdateSchedule(ctx context.Context, id int64, update domain.ScheduleUpdate) error {
	m.updatedID = id
	m.update = update
	m.supplier.ScheduleVersion++
	if update.AdvanceBookingDays != nil {
		m.supplier.AdvanceBookingDays = *update.AdvanceBookingDays
	}
	if update.MaxBookingDays != nil {
		m.supplier.MaxBookingDays = *update.MaxBookingDays
	}
	return nil
}

func testSupplier() *domain.Supplier {
	day := domain.DaySchedule{
		Active:    true,
		Morning:   domain.SlotWindow{Available: true, Start: "09:00", End: "13:00"},
		Afternoon: domain.SlotWindow{Available: true, Start: "13:00", End: "17:00"},
	}
	return &domain.Supplier{
		ID:   7,
		Name: "Party Palace",
		WorkingHours: domain.WorkingHours{
			Monday: day, Tuesday: day, Wednesday: day, Thursday: day, Friday: day,
		},
		MaxBookingDays:  365,
		ScheduleVersion: 3,
	}
}

func TestGetSchedule(t *testing.T) {
	repo := &mockSupplierRepo{supplier: testSupplier()}
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetSchedule(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.SupplierID)
	assert.Equal(t, int64(3), result.ScheduleVersion)
	assert.True(t, result.WorkingHours.Monday.Active)
	assert.False(t, result.WorkingHours.Sunday.Active)
	assert.Equal(t, "09:00", result.WorkingHours.Monday.Morning.Start)
}

func TestGetSchedule_NotFound(t *testing.T) {
	repo := &mockSupplierRepo{getErr: supplierRepo.ErrSupplierNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetSchedule(context.Background(), 7)
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestUpdateSchedule_BumpsVersion(t *testing.T) {
	repo := &mockSupplierRepo{supplier: testSupplier()}
	svc := NewService(repo, nopLogger{})

	result, err := svc.UpdateSchedule(context.Background(), 7, &models.UpdateScheduleRequest{
		MaxBookingDays: ptr.Ptr(180),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), repo.updatedID)
	assert.Equal(t, 180, result.MaxBookingDays)
	assert.Equal(t, int64(4), result.ScheduleVersion)
}

func TestUpdateSchedule_EmptyUpdate(t *testing.T) {
	repo := &mockSupplierRepo{supplier: testSupplier()}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateSchedule(context.Background(), 7, &models.UpdateScheduleRequest{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestUpdateSchedule_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateScheduleRequest
	}{
		{
			"booking window out of bounds",
			&models.UpdateScheduleRequest{AdvanceBookingDays: ptr.Ptr(domain.MaxAdvanceBookingDays + 1)},
		},
		{
			"inverted slot window",
			&models.UpdateScheduleRequest{WorkingHours: &models.WorkingHoursModel{
				Monday: models.DayScheduleModel{
					Active:  true,
					Morning: models.SlotWindowModel{Available: true, Start: "13:00", End: "09:00"},
				},
			}},
		},
		{
			"unknown block slot",
			&models.UpdateScheduleRequest{UnavailableDates: &[]models.DateBlockModel{
				{Date: "2026-10-03", TimeSlots: []string{"evening"}},
			}},
		},
		{
			"garbage block date",
			&models.UpdateScheduleRequest{UnavailableDates: &[]models.DateBlockModel{
				{Date: "not-a-date"},
			}},
		},
	}

	repo := &mockSupplierRepo{supplier: testSupplier()}
	svc := NewService(repo, nopLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateSchedule(context.Background(), 7, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateSchedule_ManualBlocksKeepSource(t *testing.T) {
	repo := &mockSupplierRepo{supplier: testSupplier()}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateSchedule(context.Background(), 7, &models.UpdateScheduleRequest{
		UnavailableDates: &[]models.DateBlockModel{
			{Date: "2026-10-03", TimeSlots: []string{"morning"}, Label: "family event"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, repo.update.UnavailableDates)
	blocks := *repo.update.UnavailableDates
	require.Len(t, blocks, 1)
	assert.Equal(t, domain.BlockSourceManual, blocks[0].Source)
	assert.Equal(t, []domain.SlotID{domain.SlotMorning}, blocks[0].Slots)
}
