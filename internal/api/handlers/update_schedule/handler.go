package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PSM-BookingService/internal/api/handlers"
	scheduleService "github.com/m04kA/PSM-BookingService/internal/service/schedule"
	scheduleModels "github.com/m04kA/PSM-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidSupplierID  = "некорректный ID поставщика"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSupplierNotFound   = "поставщик не найден"
	msgEmptyUpdate        = "обновление не содержит изменений"
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

// Handle PUT /api/v1/suppliers/{supplierId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	supplierID, err := strconv.ParseInt(vars["supplierId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /suppliers/{supplierId}/schedule - Invalid supplier ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSupplierID)
		return
	}

	var req scheduleModels.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /suppliers/%d/schedule - Invalid request body: %v", supplierID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSchedule(r.Context(), supplierID, &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrSupplierNotFound):
			h.logger.Warn("PUT /suppliers/%d/schedule - Supplier not found", supplierID)
			handlers.RespondNotFound(w, msgSupplierNotFound)

		case errors.Is(err, scheduleService.ErrEmptyUpdate):
			h.logger.Warn("PUT /suppliers/%d/schedule - Empty update", supplierID)
			handlers.RespondBadRequest(w, msgEmptyUpdate)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /suppliers/%d/schedule - Invalid input: %v", supplierID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /suppliers/%d/schedule - Failed to update schedule: %v", supplierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /suppliers/%d/schedule - Schedule updated, version=%d", supplierID, result.ScheduleVersion)
	handlers.RespondJSON(w, http.StatusOK, result)
}
