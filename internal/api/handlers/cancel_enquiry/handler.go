package cancel_enquiry

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PSM-BookingService/internal/api/handlers"
	"github.com/m04kA/PSM-BookingService/internal/api/middleware"
	enquiriesService "github.com/m04kA/PSM-BookingService/internal/service/enquiries"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEnquiryNotFound    = "заявка не найдена"
	msgAccessDenied       = "нет доступа к заявке"
	msgCannotCancel       = "заявку нельзя отменить в текущем статусе"
)

type Handler struct {
	service EnquiriesService
	logger  Logger
}

func NewHandler(service EnquiriesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/enquiries/{reference}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /enquiries/{reference}/cancel - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reference := mux.Vars(r)["reference"]

	// Тело опционально: отмена без причины допустима
	var body CancelEnquiryRequest
	if err := handlers.DecodeJSON(r, &body); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /enquiries/%s/cancel - Invalid request body: %v", reference, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.Cancel(r.Context(), reference, body.ToServiceRequest(customerID))
	if err != nil {
		switch {
		case errors.Is(err, enquiriesService.ErrEnquiryNotFound):
			h.logger.Warn("PATCH /enquiries/%s/cancel - Enquiry not found", reference)
			handlers.RespondNotFound(w, msgEnquiryNotFound)

		case errors.Is(err, enquiriesService.ErrAccessDenied):
			h.logger.Warn("PATCH /enquiries/%s/cancel - Access denied for customer=%d", reference, customerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, enquiriesService.ErrCannotCancel):
			h.logger.Warn("PATCH /enquiries/%s/cancel - Enquiry cannot be cancelled", reference)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("PATCH /enquiries/%s/cancel - Failed to cancel enquiry: %v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /enquiries/%s/cancel - Enquiry cancelled by customer=%d", reference, customerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
