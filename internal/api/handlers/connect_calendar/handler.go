package connect_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PSM-BookingService/internal/api/handlers"
	calendarsyncService "github.com/m04kA/PSM-BookingService/internal/service/calendarsync"
)

const (
	msgInvalidSupplierID  = "некорректный ID поставщика"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSupplierNotFound   = "поставщик не найден"
	msgCodeRejected       = "провайдер отклонил код авторизации"
	msgProviderDown       = "календарный провайдер недоступен"
)

type Handler struct {
	service CalendarSyncService
	logger  Logger
}

func NewHandler(service CalendarSyncService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/suppliers/{supplierId}/calendar/connect
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	supplierID, err := strconv.ParseInt(mux.Vars(r)["supplierId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /suppliers/{supplierId}/calendar/connect - Invalid supplier ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSupplierID)
		return
	}

	var body ConnectCalendarRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /suppliers/%d/calendar/connect - Invalid request body: %v", supplierID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := body.Validate(); err != nil {
		h.logger.Warn("POST /suppliers/%d/calendar/connect - Invalid request: %v", supplierID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	err = h.service.Connect(r.Context(), supplierID, body.Code, body.Provider)
	if err != nil {
		switch {
		case errors.Is(err, calendarsyncService.ErrSupplierNotFound):
			h.logger.Warn("POST /suppliers/%d/calendar/connect - Supplier not found", supplierID)
			handlers.RespondNotFound(w, msgSupplierNotFound)

		case errors.Is(err, calendarsyncService.ErrCodeRejected):
			h.logger.Warn("POST /suppliers/%d/calendar/connect - Code rejected", supplierID)
			handlers.RespondBadRequest(w, msgCodeRejected)

		case errors.Is(err, calendarsyncService.ErrProviderUnavailable):
			h.logger.Error("POST /suppliers/%d/calendar/connect - Provider unavailable: %v", supplierID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgProviderDown)

		default:
			h.logger.Error("POST /suppliers/%d/calendar/connect - Failed to connect calendar: %v", supplierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /suppliers/%d/calendar/connect - Calendar connected, provider=%s", supplierID, body.Provider)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
