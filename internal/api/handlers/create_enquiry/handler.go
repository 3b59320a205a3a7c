package create_enquiry

import (
	"errors"
	"net/http"

	"github.com/m04kA/PSM-BookingService/internal/api/handlers"
	"github.com/m04kA/PSM-BookingService/internal/api/middleware"
	uc "github.com/m04kA/PSM-BookingService/internal/usecase/create_enquiry"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSupplierNotFound   = "поставщик не найден"
	msgSlotNotAvailable   = "слот недоступен на выбранную дату"
)

type Handler struct {
	useCase CreateEnquiryUseCase
	logger  Logger
}

func NewHandler(useCase CreateEnquiryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/enquiries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /enquiries - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var body CreateEnquiryRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /enquiries - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req, err := body.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /enquiries - Invalid request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrSupplierNotFound):
			h.logger.Warn("POST /enquiries - Supplier=%d not found", req.SupplierID)
			handlers.RespondNotFound(w, msgSupplierNotFound)

		case errors.Is(err, uc.ErrSlotNotAvailable):
			h.logger.Warn("POST /enquiries - Slot not available: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, uc.ErrInvalidInput):
			h.logger.Warn("POST /enquiries - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /enquiries - Failed to create enquiry: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /enquiries - Enquiry created reference=%s customer=%d supplier=%d", result.Reference, customerID, result.SupplierID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
