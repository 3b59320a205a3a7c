package notify

import (
	"errors"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/m04kA/PSM-BookingService/internal/domain"
)

// ErrSendFailed возвращается, когда письмо не удалось отправить
var ErrSendFailed = errors.New("notify: failed to send email")

// Service отправка email уведомлений через SendGrid.
// Уведомления best-effort: ошибка отправки логируется и никогда не
// откатывает создание заявки.
type Service struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	enabled   bool
	logger    Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(apiKey, fromEmail, fromName string, enabled bool, logger Logger) *Service {
	return &Service{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   enabled,
		logger:    logger,
	}
}

// NotifyNewEnquiry отправляет поставщику письмо о новой заявке
func (s *Service) NotifyNewEnquiry(enquiry *domain.Enquiry, supplierEmail string) {
	if !s.enabled {
		s.logger.Info("NotifyNewEnquiry: email disabled, skipping enquiry reference=%s", enquiry.Reference)
		return
	}

	subject := fmt.Sprintf("New party enquiry for %s", enquiry.PartyDate)

	plain := fmt.Sprintf(
		"You have a new enquiry from %s.\n\nDate: %s\nSlot: %s\nGuests: %d\nBudget: %.2f\n\nReference: %s",
		enquiry.CustomerName,
		enquiry.PartyDate,
		enquiry.Slot,
		enquiry.GuestCount,
		enquiry.Budget,
		enquiry.Reference,
	)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(enquiry.SupplierName, supplierEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, "")

	resp, err := s.client.Send(message)
	if err != nil {
		s.logger.Error("NotifyNewEnquiry: send failed for enquiry reference=%s: %v", enquiry.Reference, err)
		return
	}
	if resp.StatusCode >= 400 {
		s.logger.Error("NotifyNewEnquiry: sendgrid returned %d for enquiry reference=%s: %s",
			resp.StatusCode, enquiry.Reference, resp.Body)
		return
	}

	s.logger.Info("NotifyNewEnquiry: notified supplier=%d about enquiry reference=%s",
		enquiry.SupplierID, enquiry.Reference)
}
