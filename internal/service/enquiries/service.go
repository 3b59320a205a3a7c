package enquiries

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	enquiryRepo "github.com/m04kA/PSM-BookingService/internal/infra/storage/enquiry"
	"github.com/m04kA/PSM-BookingService/internal/service/enquiries/models"
)

// Service сервис для работы с заявками на бронирование
type Service struct {
	enquiryRepo EnquiryRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(enquiryRepo EnquiryRepository, logger Logger) *Service {
	return &Service{
		enquiryRepo: enquiryRepo,
		logger:      logger,
	}
}

// GetByReference получает заявку по публичному UUID
// Заявку видят только её покупатель и её поставщик
func (s *Service) GetByReference(ctx context.Context, reference string, customerID, supplierID *int64) (*models.EnquiryResponse, error) {
	s.logger.Info("GetByReference: fetching enquiry reference=%s", reference)

	enquiry, err := s.getEnquiry(ctx, reference)
	if err != nil {
		return nil, err
	}

	if !canView(enquiry, customerID, supplierID) {
		s.logger.Warn("GetByReference: access denied to enquiry reference=%s", reference)
		return nil, ErrAccessDenied
	}

	return models.FromDomainEnquiry(enquiry), nil
}

// GetCustomerEnquiries получает заявки покупателя, опционально по статусу
func (s *Service) GetCustomerEnquiries(ctx context.Context, req *models.GetCustomerEnquiriesRequest) (*models.EnquiryListResponse, error) {
	s.logger.Info("GetCustomerEnquiries: fetching enquiries for customer=%d", req.CustomerID)

	var domainStatus *domain.EnquiryStatus
	if req.Status != nil {
		status, err := models.ToDomainEnquiryStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerEnquiries: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	enquiries, err := s.enquiryRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerEnquiries: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerEnquiries - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerEnquiries: fetched %d enquiries for customer=%d", len(enquiries), req.CustomerID)
	return models.FromDomainEnquiryList(enquiries), nil
}

// GetSupplierEnquiries получает заявки поставщика с фильтрацией по
// периоду и статусу
func (s *Service) GetSupplierEnquiries(ctx context.Context, req *models.GetSupplierEnquiriesRequest) (*models.EnquiryListResponse, error) {
	s.logger.Info("GetSupplierEnquiries: fetching enquiries for supplier=%d", req.SupplierID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetSupplierEnquiries: invalid filter for supplier=%d: %v", req.SupplierID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	enquiries, err := s.enquiryRepo.GetBySupplierWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetSupplierEnquiries: repository error for supplier=%d: %v", req.SupplierID, err)
		return nil, fmt.Errorf("%w: GetSupplierEnquiries - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSupplierEnquiries: fetched %d enquiries for supplier=%d", len(enquiries), req.SupplierID)
	return models.FromDomainEnquiryList(enquiries), nil
}

// Cancel отменяет заявку по инициативе покупателя
// Отменить можно только pending или accepted заявку
func (s *Service) Cancel(ctx context.Context, reference string, req *models.CancelEnquiryRequest) error {
	s.logger.Info("Cancel: cancelling enquiry reference=%s by customer=%d", reference, req.CustomerID)

	enquiry, err := s.getEnquiry(ctx, reference)
	if err != nil {
		return err
	}

	if enquiry.CustomerID != req.CustomerID {
		s.logger.Warn("Cancel: customer=%d is not the owner of enquiry reference=%s", req.CustomerID, reference)
		return ErrAccessDenied
	}

	if !enquiry.CanBeCancelled() {
		s.logger.Warn("Cancel: enquiry reference=%s in status=%s cannot be cancelled", reference, enquiry.Status)
		return ErrCannotCancel
	}

	if err := s.enquiryRepo.Cancel(ctx, enquiry.ID, domain.StatusCancelledByCustomer, req.CancellationReason); err != nil {
		s.logger.Error("Cancel: repository error for enquiry reference=%s: %v", reference, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: enquiry reference=%s cancelled by customer", reference)
	return nil
}

// Respond фиксирует ответ поставщика: accept или decline
// Ответить можно только на pending заявку
func (s *Service) Respond(ctx context.Context, reference string, req *models.RespondEnquiryRequest) (*models.EnquiryResponse, error) {
	s.logger.Info("Respond: supplier=%d responding %s to enquiry reference=%s", req.SupplierID, req.Action, reference)

	enquiry, err := s.getEnquiry(ctx, reference)
	if err != nil {
		return nil, err
	}

	if enquiry.SupplierID != req.SupplierID {
		s.logger.Warn("Respond: supplier=%d is not the owner of enquiry reference=%s", req.SupplierID, reference)
		return nil, ErrAccessDenied
	}

	if !enquiry.CanBeResponded() {
		s.logger.Warn("Respond: enquiry reference=%s in status=%s cannot be responded to", reference, enquiry.Status)
		return nil, ErrCannotRespond
	}

	var status domain.EnquiryStatus
	switch req.Action {
	case "accept":
		status = domain.StatusAccepted
	case "decline":
		status = domain.StatusDeclined
		if req.DeclineReason == nil || *req.DeclineReason == "" {
			return nil, fmt.Errorf("%w: declineReason is required when declining", ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("%w: action must be accept or decline", ErrInvalidInput)
	}

	if err := s.enquiryRepo.UpdateStatus(ctx, enquiry.ID, status, req.DeclineReason); err != nil {
		s.logger.Error("Respond: repository error for enquiry reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: Respond - repository error: %v", ErrInternal, err)
	}

	enquiry, err = s.getEnquiry(ctx, reference)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Respond: enquiry reference=%s is now %s", reference, enquiry.Status)
	return models.FromDomainEnquiry(enquiry), nil
}

func (s *Service) getEnquiry(ctx context.Context, reference string) (*domain.Enquiry, error) {
	enquiry, err := s.enquiryRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, enquiryRepo.ErrEnquiryNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("%w: getEnquiry - repository error: %v", ErrInternal, err)
	}
	return enquiry, nil
}

// canView проверяет, имеет ли вызывающая сторона доступ к заявке
func canView(e *domain.Enquiry, customerID, supplierID *int64) bool {
	if customerID != nil && e.CustomerID == *customerID {
		return true
	}
	if supplierID != nil && e.SupplierID == *supplierID {
		return true
	}
	return false
}
