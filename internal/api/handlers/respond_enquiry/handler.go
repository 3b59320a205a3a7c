package respond_enquiry

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PSM-BookingService/internal/api/handlers"
	"github.com/m04kA/PSM-BookingService/internal/api/middleware"
	enquiriesService "github.com/m04kA/PSM-BookingService/internal/service/enquiries"
)

const (
	msgUnauthorized       = "требуется аутентификация поставщика"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEnquiryNotFound    = "заявка не найдена"
	msgAccessDenied       = "нет доступа к заявке"
	msgCannotRespond      = "по заявке нельзя дать ответ в текущем статусе"
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

// Handle PATCH /api/v1/suppliers/{supplierId}/enquiries/{reference}/respond
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	supplierID, ok := middleware.SupplierIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /suppliers/{supplierId}/enquiries/{reference}/respond - Missing supplier ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reference := mux.Vars(r)["reference"]

	var body RespondEnquiryRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PATCH /enquiries/%s/respond - Invalid request body: %v", reference, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Respond(r.Context(), reference, body.ToServiceRequest(supplierID))
	if err != nil {
		switch {
		case errors.Is(err, enquiriesService.ErrEnquiryNotFound):
			h.logger.Warn("PATCH /enquiries/%s/respond - Enquiry not found", reference)
			handlers.RespondNotFound(w, msgEnquiryNotFound)

		case errors.Is(err, enquiriesService.ErrAccessDenied):
			h.logger.Warn("PATCH /enquiries/%s/respond - Access denied for supplier=%d", reference, supplierID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, enquiriesService.ErrCannotRespond):
			h.logger.Warn("PATCH /enquiries/%s/respond - Enquiry cannot be responded to", reference)
			handlers.RespondError(w, http.StatusConflict, msgCannotRespond)

		case errors.Is(err, enquiriesService.ErrInvalidInput):
			h.logger.Warn("PATCH /enquiries/%s/respond - Invalid input: %v", reference, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /enquiries/%s/respond - Failed to respond: %v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /enquiries/%s/respond - Supplier=%d responded, status=%s", reference, supplierID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
