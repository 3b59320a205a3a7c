package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PSM-BookingService/internal/api/handlers"
	uc "github.com/m04kA/PSM-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidSupplierID = "некорректный ID поставщика"
	msgInvalidDateRange  = "некорректный диапазон дат"
	msgSupplierNotFound  = "поставщик не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/suppliers/{supplierId}/availability?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	supplierID, err := strconv.ParseInt(vars["supplierId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /suppliers/{supplierId}/availability - Invalid supplier ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSupplierID)
		return
	}

	req, err := parseRequest(supplierID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /suppliers/%d/availability - Invalid query: %v", supplierID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrSupplierNotFound):
			h.logger.Warn("GET /suppliers/%d/availability - Supplier not found", supplierID)
			handlers.RespondNotFound(w, msgSupplierNotFound)

		case errors.Is(err, uc.ErrInvalidRange), errors.Is(err, uc.ErrInvalidInput):
			h.logger.Warn("GET /suppliers/%d/availability - Invalid range: %v", supplierID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /suppliers/%d/availability - Failed to compute grid: %v", supplierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /suppliers/%d/availability - Grid computed for %s..%s", supplierID, result.From, result.To)
	handlers.RespondJSON(w, http.StatusOK, result)
}
