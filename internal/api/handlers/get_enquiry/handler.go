package get_enquiry

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PSM-BookingService/internal/api/handlers"
	"github.com/m04kA/PSM-BookingService/internal/api/middleware"
	enquiriesService "github.com/m04kA/PSM-BookingService/internal/service/enquiries"
)

const (
	msgUnauthorized    = "требуется аутентификация"
	msgEnquiryNotFound = "заявка не найдена"
	msgAccessDenied    = "нет доступа к заявке"
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

// Handle GET /api/v1/enquiries/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /enquiries/{reference} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reference := mux.Vars(r)["reference"]

	result, err := h.service.GetByReference(r.Context(), reference, &customerID, nil)
	if err != nil {
		switch {
		case errors.Is(err, enquiriesService.ErrEnquiryNotFound):
			h.logger.Warn("GET /enquiries/%s - Enquiry not found", reference)
			handlers.RespondNotFound(w, msgEnquiryNotFound)

		case errors.Is(err, enquiriesService.ErrAccessDenied):
			h.logger.Warn("GET /enquiries/%s - Access denied for customer=%d", reference, customerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /enquiries/%s - Failed to fetch enquiry: %v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /enquiries/%s - Enquiry fetched by customer=%d", reference, customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
