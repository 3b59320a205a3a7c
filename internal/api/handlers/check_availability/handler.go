package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PSM-BookingService/internal/api/handlers"
	uc "github.com/m04kA/PSM-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidSupplierID = "некорректный ID поставщика"
	msgInvalidSlot       = "некорректный идентификатор слота"
	msgSupplierNotFound  = "поставщик не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/suppliers/{supplierId}/availability/check?date=YYYY-MM-DD&slot=morning&duration=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	supplierID, err := strconv.ParseInt(vars["supplierId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /suppliers/{supplierId}/availability/check - Invalid supplier ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSupplierID)
		return
	}

	req, err := parseRequest(supplierID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /suppliers/%d/availability/check - Invalid query: %v", supplierID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrSupplierNotFound):
			h.logger.Warn("GET /suppliers/%d/availability/check - Supplier not found", supplierID)
			handlers.RespondNotFound(w, msgSupplierNotFound)

		case errors.Is(err, uc.ErrInvalidSlot):
			h.logger.Warn("GET /suppliers/%d/availability/check - Invalid slot: %v", supplierID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, uc.ErrInvalidInput):
			h.logger.Warn("GET /suppliers/%d/availability/check - Invalid input: %v", supplierID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /suppliers/%d/availability/check - Check failed: %v", supplierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /suppliers/%d/availability/check - Slot=%s date=%s available=%t", supplierID, result.Slot, result.Date, result.Available)
	handlers.RespondJSON(w, http.StatusOK, result)
}
