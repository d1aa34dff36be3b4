package http

import (
	"errors"
	"net/http"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/logging"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/application"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
	"github.com/gin-gonic/gin"
)

type createTopupRequestBody struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

type callbackRequestBody struct {
	OrderId string `json:"order_id" binding:"required"`
	// Status is what the gateway claims; it is logged but never trusted.
	Status string `json:"status"`
}

type PaymentHandler struct {
	topupCase *application.TopupCase
	logger    logging.Logger
}

func NewPaymentHandler(topupCase *application.TopupCase, logger logging.Logger) *PaymentHandler {
	return &PaymentHandler{
		topupCase: topupCase,
		logger:    logger,
	}
}

func (h *PaymentHandler) CreateTopup(c *gin.Context) {
	var body createTopupRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	intent, err := h.topupCase.CreateTopup(c.Request.Context(), requestUserId(c), body.Amount)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderId":    intent.OrderId,
		"paymentUrl": intent.PaymentUrl,
	})
}

// HandleCallback acks every handled notification with 200 so the gateway
// stops retrying; only an unknown order is rejected. Verification failures
// on our side return 500 and let the gateway redeliver.
func (h *PaymentHandler) HandleCallback(c *gin.Context) {
	var body callbackRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	h.logger.Info("payment callback received", "orderId", body.OrderId, "claimedStatus", body.Status)

	err := h.topupCase.HandleCallback(c.Request.Context(), body.OrderId)
	if err != nil {
		if errors.Is(err, &domain.OrderNotFoundError{}) {
			c.JSON(http.StatusNotFound, gin.H{"errors": "unknown order"})
			return
		}

		h.logger.Error("failed to handle payment callback", "orderId", body.OrderId, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
		return
	}

	c.String(http.StatusOK, "OK")
}
