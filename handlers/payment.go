package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"hotelier/middleware"
	"hotelier/services/payment"
	"hotelier/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// Upper bound on webhook payloads, per Stripe's recommendation.
const maxWebhookBody = int64(65536)

// PaymentHandler serves the checkout endpoints and the Stripe webhook.
type PaymentHandler struct {
	Service       payment.PaymentService
	WebhookSecret string
	Logger        *zap.Logger
}

func NewPaymentHandler(service payment.PaymentService, webhookSecret string, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: service, WebhookSecret: webhookSecret, Logger: logger}
}

// CreateCheckoutSessionHandler handles POST /api/payments/create-checkout-session.
func (h *PaymentHandler) CreateCheckoutSessionHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	userEmail := c.GetString(middleware.ContextEmailKey)

	var input struct {
		BookingID string `json:"bookingId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Booking ID is required."))
		return
	}

	result, err := h.Service.CreateCheckoutSession(c.Request.Context(), userID, userEmail, input.BookingID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SessionStatusHandler handles GET /api/payments/session-status?session_id=.
// Safe to poll repeatedly; each call re-runs the idempotent reconciler.
func (h *PaymentHandler) SessionStatusHandler(c *gin.Context) {
	view, err := h.Service.SessionStatus(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// StripeWebhookHandler handles POST /api/stripe/webhook. It must see the
// unmodified request bytes: the signature is computed over the exact raw
// body, so no body-parsing middleware may run ahead of it.
func (h *PaymentHandler) StripeWebhookHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.Logger.Error("failed to read webhook body", zap.Error(err))
		c.String(http.StatusBadRequest, "Webhook Error: %v", err)
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		h.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		h.Logger.Error("webhook signature verification failed", zap.Error(err))
		c.String(http.StatusBadRequest, "Webhook Error: %v", err)
		return
	}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			h.Logger.Error("failed to parse checkout session from event",
				zap.String("eventType", string(event.Type)), zap.Error(err))
		} else {
			h.Service.FulfillCheckout(c.Request.Context(), sess.ID)
		}
	default:
		// Unknown event types are acknowledged untouched.
	}

	// Anything past signature verification acks with 200 so Stripe does
	// not retry over internal no-ops.
	c.JSON(http.StatusOK, gin.H{"received": true})
}
