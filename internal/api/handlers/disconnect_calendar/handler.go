package disconnect_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PSM-BookingService/internal/api/handlers"
	calendarsyncService "github.com/m04kA/PSM-BookingService/internal/service/calendarsync"
)

const (
	msgInvalidSupplierID = "некорректный ID поставщика"
	msgNotConnected      = "календарь не подключен"
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

// Handle DELETE /api/v1/suppliers/{supplierId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	supplierID, err := strconv.ParseInt(mux.Vars(r)["supplierId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /suppliers/{supplierId}/calendar - Invalid supplier ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSupplierID)
		return
	}

	err = h.service.Disconnect(r.Context(), supplierID)
	if err != nil {
		switch {
		case errors.Is(err, calendarsyncService.ErrNotConnected):
			h.logger.Warn("DELETE /suppliers/%d/calendar - No calendar connection", supplierID)
			handlers.RespondNotFound(w, msgNotConnected)

		default:
			h.logger.Error("DELETE /suppliers/%d/calendar - Failed to disconnect calendar: %v", supplierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /suppliers/%d/calendar - Calendar disconnected", supplierID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
