package enquiries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	enquiryRepo "github.com/m04kA/PSM-BookingService/internal/infra/storage/enquiry"
	"github.com/m04kA/PSM-BookingService/internal/service/enquiries/models"
	"github.com/m04kA/PSM-BookingService/pkg/ptr"
	"github.com/m04kA/PSM-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockEnquiryRepo struct {
	enquiry *domain.Enquiry
	list    []*domain.Enquiry
	getErr  error

	cancelledID     int64
	cancelledStatus domain.EnquiryStatus
	cancelReason    string

	updatedID     int64
	updatedStatus domain.EnquiryStatus
	declineReason *string
}

func (m *mockEnquiryRepo) GetByReference(ctx context.Context, reference string) (*domain.Enquiry, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.enquiry, nil
}

func (m *mockEnquiryRepo) GetByCustomerID(ctx context.Context, customerID int64, status *domain.EnquiryStatus) ([]*domain.Enquiry, error) {
	return m.list, nil
}

func (m *mockEnquiryRepo) GetBySupplierWithFilter(ctx context.Context, filter domain.SupplierEnquiriesFilter) ([]*domain.Enquiry, error) {
	return m.list, nil
}

func (m *mockEnquiryRepo) UpdateStatus(ctx context.Context, id int64, status domain.EnquiryStatus, declineReason *string) error {
	m.updatedID = id
	m.updatedStatus = status
	m.declineReason = declineReason
	if m.enquiry != nil {
		m.enquiry.Status = status
		m.enquiry.DeclineReason = declineReason
	}
	return nil
}

func (m *mockEnquiryRepo) Cancel(ctx context.Context, id int64, status domain.EnquiryStatus, reason string) error {
	m.cancelledID = id
	m.cancelledStatus = status
	m.cancelReason = reason
	return nil
}

func pendingEnquiry() *domain.Enquiry {
	return &domain.Enquiry{
		ID:               42,
		Reference:        "5f0c4c2e-5b69-4d8a-9a61-0a2b3c4d5e6f",
		CustomerID:       33,
		SupplierID:       7,
		PartyDate:        types.DateString("2026-10-03"),
		Slot:             domain.SlotAfternoon,
		DurationHours:    3,
		GuestCount:       15,
		Budget:           300,
		Status:           domain.StatusPending,
		SupplierName:     "Magic Moments",
		SupplierCategory: domain.CategoryEntertainer,
		CustomerName:     "Sam Carter",
		CustomerEmail:    "sam@example.com",
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

func TestGetByReference_CustomerAccess(t *testing.T) {
	repo := &mockEnquiryRepo{enquiry: pendingEnquiry()}
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetByReference(context.Background(), "5f0c4c2e-5b69-4d8a-9a61-0a2b3c4d5e6f", ptr.Ptr(int64(33)), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(33), result.CustomerID)

	_, err = svc.GetByReference(context.Background(), "5f0c4c2e-5b69-4d8a-9a61-0a2b3c4d5e6f", ptr.Ptr(int64(99)), nil)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByReference_SupplierAccess(t *testing.T) {
	repo := &mockEnquiryRepo{enquiry: pendingEnquiry()}
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetByReference(context.Background(), "5f0c4c2e-5b69-4d8a-9a61-0a2b3c4d5e6f", nil, ptr.Ptr(int64(7)))
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.SupplierID)
}

func TestGetByReference_NotFound(t *testing.T) {
	repo := &mockEnquiryRepo{getErr: enquiryRepo.ErrEnquiryNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByReference(context.Background(), "missing", ptr.Ptr(int64(33)), nil)
	assert.ErrorIs(t, err, ErrEnquiryNotFound)
}

func TestCancel_ByOwner(t *testing.T) {
	repo := &mockEnquiryRepo{enquiry: pendingEnquiry()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "5f0c4c2e-5b69-4d8a-9a61-0a2b3c4d5e6f", &models.CancelEnquiryRequest{
		CustomerID:         33,
		CancellationReason: "plans changed",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), repo.cancelledID)
	assert.Equal(t, domain.StatusCancelledByCustomer, repo.cancelledStatus)
	assert.Equal(t, "plans changed", repo.cancelReason)
}

func TestCancel_NotOwner(t *testing.T) {
	repo := &mockEnquiryRepo{enquiry: pendingEnquiry()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "5f0c4c2e-5b69-4d8a-9a61-0a2b3c4d5e6f", &models.CancelEnquiryRequest{CustomerID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestCancel_TerminalStatus(t *testing.T) {
	enquiry := pendingEnquiry()
	enquiry.Status = domain.StatusDeclined

	repo := &mockEnquiryRepo{enquiry: enquiry}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "5f0c4c2e-5b69-4d8a-9a61-0a2b3c4d5e6f", &models.CancelEnquiryRequest{CustomerID: 33})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestRespond_Accept(t *testing.T) {
	repo := &mockEnquiryRepo{enquiry: pendingEnquiry()}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Respond(context.Background(), "5f0c4c2e-5b69-4d8a-9a61-0a2b3c4d5e6f", &models.RespondEnquiryRequest{
		SupplierID: 7,
		Action:     "accept",
	})
	require.NoError(t, err)

	assert.Equal(t, "accepted", result.Status)
	assert.Equal(t, domain.StatusAccepted, repo.updatedStatus)
}

func TestRespond_DeclineRequiresReason(t *testing.T) {
	repo := &mockEnquiryRepo{enquiry: pendingEnquiry()}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Respond(context.Background(), "5f0c4c2e-5b69-4d8a-9a61-0a2b3c4d5e6f", &models.RespondEnquiryRequest{
		SupplierID: 7,
		Action:     "decline",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	result, err := svc.Respond(context.Background(), "5f0c4c2e-5b69-4d8a-9a61-0a2b3c4d5e6f", &models.RespondEnquiryRequest{
		SupplierID:    7,
		Action:        "decline",
		DeclineReason: ptr.Ptr("fully booked that week"),
	})
	require.NoError(t, err)
	assert.Equal(t, "declined", result.Status)
}

func TestRespond_AlreadyResponded(t *testing.T) {
	enquiry := pendingEnquiry()
	enquiry.Status = domain.StatusAccepted

	repo := &mockEnquiryRepo{enquiry: enquiry}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Respond(context.Background(), "5f0c4c2e-5b69-4d8a-9a61-0a2b3c4d5e6f", &models.RespondEnquiryRequest{
		SupplierID: 7,
		Action:     "accept",
	})
	assert.ErrorIs(t, err, ErrCannotRespond)
}

func TestGetCustomerEnquiries_InvalidStatus(t *testing.T) {
	repo := &mockEnquiryRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetCustomerEnquiries(context.Background(), &models.GetCustomerEnquiriesRequest{
		CustomerID: 33,
		Status:     ptr.Ptr("unknown"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetSupplierEnquiries(t *testing.T) {
	repo := &mockEnquiryRepo{list: []*domain.Enquiry{pendingEnquiry(), pendingEnquiry()}}
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetSupplierEnquiries(context.Background(), &models.GetSupplierEnquiriesRequest{SupplierID: 7})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}
