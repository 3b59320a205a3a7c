package get_supplier_enquiries

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PSM-BookingService/internal/api/handlers"
	enquiriesService "github.com/m04kA/PSM-BookingService/internal/service/enquiries"
)

const (
	msgInvalidSupplierID = "некорректный ID поставщика"
	msgInvalidFilter     = "некорректный фильтр заявок"
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

// Handle GET /api/v1/suppliers/{supplierId}/enquiries?startDate=&endDate=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	supplierID, err := strconv.ParseInt(mux.Vars(r)["supplierId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /suppliers/{supplierId}/enquiries - Invalid supplier ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSupplierID)
		return
	}

	req, err := parseRequest(supplierID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /suppliers/%d/enquiries - Invalid query: %v", supplierID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.GetSupplierEnquiries(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, enquiriesService.ErrInvalidInput):
			h.logger.Warn("GET /suppliers/%d/enquiries - Invalid filter: %v", supplierID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /suppliers/%d/enquiries - Failed to fetch enquiries: %v", supplierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /suppliers/%d/enquiries - Fetched %d enquiries", supplierID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
