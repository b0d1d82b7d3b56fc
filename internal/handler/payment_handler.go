package handler

import (
	"errors"
	"io"
	"net/http"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/service"
	"hospital-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Stripe caps event payloads well below this
const maxWebhookBody = 65536

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

type CheckoutRequest struct {
	Amount      int64  `json:"amount" binding:"required"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

// Checkout creates a payment intent for the session principal
func (h *PaymentHandler) Checkout(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "amount is required")
		return
	}

	intent, err := h.paymentService.Checkout(c.Request.Context(), a, service.CheckoutInput{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, intent)
}

// StripeWebhook verifies and applies a Stripe event
func (h *PaymentHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Webhook Error: payload too large"})
		return
	}

	err = h.paymentService.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		var fieldErr *apperr.FieldError
		if errors.As(err, &fieldErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Webhook Error: " + fieldErr.Reason})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Received"})
}
