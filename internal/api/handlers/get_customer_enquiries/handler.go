package get_customer_enquiries

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PSM-BookingService/internal/api/handlers"
	"github.com/m04kA/PSM-BookingService/internal/api/middleware"
	enquiriesService "github.com/m04kA/PSM-BookingService/internal/service/enquiries"
	enquiryModels "github.com/m04kA/PSM-BookingService/internal/service/enquiries/models"
)

const (
	msgUnauthorized      = "требуется аутентификация"
	msgInvalidCustomerID = "некорректный ID покупателя"
	msgAccessDenied      = "нет доступа к заявкам другого покупателя"
	msgInvalidStatus     = "некорректный статус заявки"
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

// Handle GET /api/v1/customers/{customerId}/enquiries?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authedID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/{customerId}/enquiries - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	customerID, err := strconv.ParseInt(mux.Vars(r)["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /customers/{customerId}/enquiries - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	if customerID != authedID {
		h.logger.Warn("GET /customers/%d/enquiries - Requested by another user=%d", customerID, authedID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &enquiryModels.GetCustomerEnquiriesRequest{CustomerID: customerID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetCustomerEnquiries(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, enquiriesService.ErrInvalidInput):
			h.logger.Warn("GET /customers/%d/enquiries - Invalid status filter: %v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /customers/%d/enquiries - Failed to fetch enquiries: %v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/%d/enquiries - Fetched %d enquiries", customerID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
