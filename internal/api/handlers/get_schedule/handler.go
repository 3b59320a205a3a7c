package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PSM-BookingService/internal/api/handlers"
	scheduleService "github.com/m04kA/PSM-BookingService/internal/service/schedule"
)

const (
	msgInvalidSupplierID = "некорректный ID поставщика"
	msgSupplierNotFound  = "поставщик не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/suppliers/{supplierId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	supplierID, err := strconv.ParseInt(vars["supplierId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /suppliers/{supplierId}/schedule - Invalid supplier ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSupplierID)
		return
	}

	result, err := h.service.GetSchedule(r.Context(), supplierID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrSupplierNotFound):
			h.logger.Warn("GET /suppliers/%d/schedule - Supplier not found", supplierID)
			handlers.RespondNotFound(w, msgSupplierNotFound)

		default:
			h.logger.Error("GET /suppliers/%d/schedule - Failed to fetch schedule: %v", supplierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /suppliers/%d/schedule - Schedule fetched, version=%d", supplierID, result.ScheduleVersion)
	handlers.RespondJSON(w, http.StatusOK, result)
}
