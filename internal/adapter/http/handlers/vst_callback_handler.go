package handlers

import (
	"errors"
	"net/http"

	"municipal_backoffice/internal/adapter/http/dto/request"
	"municipal_backoffice/internal/adapter/http/dto/response"
	"municipal_backoffice/internal/usecase"
	"municipal_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VSTCallbackHandler receives the VST payment processor webhook.
type VSTCallbackHandler struct {
	usecase usecase.IVSTCallbackUseCase
	logger  *zap.Logger
}

func NewVSTCallbackHandler(uc usecase.IVSTCallbackUseCase, logger *zap.Logger) *VSTCallbackHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VSTCallbackHandler{usecase: uc, logger: logger}
}

// HandleSuccess godoc
// @Summary      VST payment callback
// @Description  Settles the debtor tax balance or service account payment matching payment_id exactly once.
// @Tags         vst
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "VST callback: payment_id, status, amount (minor units), transaction_id, extra fields"
// @Success      200   {object}  response.VSTCallbackProcessedResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /vst-success [post]
func (h *VSTCallbackHandler) HandleSuccess(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.logger.Warn("vst callback body unreadable", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	req, err := request.ParseVSTCallbackRequest(raw)
	if err != nil {
		h.logger.Warn("vst callback body rejected", zap.Error(err))
		appErr := mapVSTError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	notification, err := req.ToNotification()
	if err != nil {
		h.logger.Warn("vst callback validation failed", zap.Error(err), zap.ByteString("body", raw))
		appErr := mapVSTError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.HandleCallback(c.Request.Context(), notification)
	if err != nil {
		appErr := pkg.NewDomainError("CALLBACK_PROCESSING_FAILED", "Failed to process VST payment callback", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	switch result.Outcome {
	case usecase.CallbackOutcomeIgnored:
		c.JSON(http.StatusOK, response.NewVSTCallbackIgnored(result.Status))
	case usecase.CallbackOutcomeConcurrentProcessing:
		c.JSON(http.StatusOK, response.NewVSTCallbackSkipped())
	case usecase.CallbackOutcomeAlreadyProcessed:
		c.JSON(http.StatusOK, response.NewVSTCallbackReplay(result.Transaction))
	default:
		c.JSON(http.StatusOK, response.NewVSTCallbackProcessed(result.Transaction, result.Settlement))
	}
}

func mapVSTError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidBody):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Request body must be a JSON object", http.StatusBadRequest)
	case errors.Is(err, request.ErrMissingRequiredFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "payment_id, status and amount are required", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_ID", "payment_id must be a string of 1 to 100 characters", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "amount must be a non-negative whole number of minor units", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingIdentifier):
		return pkg.NewDomainErrorSimple("MISSING_IDENTIFIER", "payment_id or transaction_id is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidHours):
		return pkg.NewDomainErrorSimple("INVALID_HOURS_PARAMETER", "hours must be an integer >= 1", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJournalDisabled):
		return pkg.NewDomainErrorSimple("JOURNAL_DISABLED", "Callback journal is not configured", http.StatusNotImplemented)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
