package handlers

import (
	"net/http"

	"municipal_backoffice/internal/adapter/http/dto/response"
	"municipal_backoffice/internal/usecase"
	"municipal_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type cleanupQuery struct {
	Hours *int `form:"hours" binding:"omitempty,min=1"`
}

// VSTTransactionHandler serves the operator endpoints over vst.transactions.
type VSTTransactionHandler struct {
	usecase      usecase.IVSTTransactionUseCase
	defaultHours int
	logger       *zap.Logger
}

func NewVSTTransactionHandler(uc usecase.IVSTTransactionUseCase, defaultHours int, logger *zap.Logger) *VSTTransactionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VSTTransactionHandler{usecase: uc, defaultHours: defaultHours, logger: logger}
}

// GetStatus godoc
// @Summary      VST transaction status
// @Description  Newest transaction for transaction_id (preferred) or payment_id, whatever its status.
// @Tags         vst
// @Produce      json
// @Param        payment_id      query     string  false  "payment identifier (account number)"
// @Param        transaction_id  query     string  false  "VST transaction id"
// @Success      200  {object}  response.VSTStatusResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /vst-payment/status [get]
func (h *VSTTransactionHandler) GetStatus(c *gin.Context) {
	t, err := h.usecase.GetStatus(c.Request.Context(), c.Query("payment_id"), c.Query("transaction_id"))
	if err != nil {
		appErr := mapVSTError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NewVSTStatusResponse(t))
}

// CleanupExpired godoc
// @Summary      Expire stale VST transactions
// @Description  Moves initiated transactions older than hours to expired. Safe to repeat.
// @Tags         vst
// @Produce      json
// @Param        hours  query     int  false  "age threshold in hours (>= 1)"
// @Success      200  {object}  response.VSTExpiryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /vst-payment/cleanup-expired [get]
func (h *VSTTransactionHandler) CleanupExpired(c *gin.Context) {
	var q cleanupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("invalid hours parameter", zap.String("hours", c.Query("hours")), zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_HOURS_PARAMETER", "hours must be an integer >= 1", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	hours := h.defaultHours
	if q.Hours != nil {
		hours = *q.Hours
	}

	report, err := h.usecase.ExpireStale(c.Request.Context(), hours)
	if err != nil {
		appErr := mapVSTError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NewVSTExpiryResponse(report.Hours, report.ExpiredTransactions))
}

// ListCallbacks godoc
// @Summary      Raw VST callbacks received for a payment id
// @Tags         vst
// @Produce      json
// @Param        payment_id  query     string  true  "payment identifier"
// @Success      200  {object}  response.CallbackJournalResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      501  {object}  pkg.HTTPError
// @Router       /vst-payment/callbacks [get]
func (h *VSTTransactionHandler) ListCallbacks(c *gin.Context) {
	paymentID := c.Query("payment_id")
	items, err := h.usecase.ListCallbacks(c.Request.Context(), paymentID)
	if err != nil {
		appErr := mapVSTError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NewCallbackJournalResponse(paymentID, items))
}
