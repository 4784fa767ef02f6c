package handlers

import (
	"errors"
	"net/http"

	response "kensetsu_match/internal/adapter/http/dto/response"
	"kensetsu_match/internal/usecase"
	"kensetsu_match/pkg"
	"kensetsu_match/pkg/logger"
	"kensetsu_match/pkg/webhooks"

	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the provider's base64 HMAC-SHA256 of the raw body.
const SignatureHeader = "X-ESign-Signature"

// WebhookHandler verifies and reconciles e-signature provider deliveries.
//
// Response contract for the provider's redelivery loop:
//   - 200: processed, duplicate, or intentionally ignored (stop redelivery)
//   - 400: malformed payload (redelivery cannot help)
//   - 401: signature verification failed
//   - 404: unknown signature request id
//   - 500: transient local failure (provider should redeliver)

type WebhookHandler struct {
	usecase      usecase.IWebhookUseCase
	primaryKey   string
	secondaryKey string
}

func NewWebhookHandler(uc usecase.IWebhookUseCase, primaryKey, secondaryKey string) *WebhookHandler {
	if primaryKey == "" {
		logger.L().Warnw("webhook signing key not configured, signature verification disabled")
	}
	return &WebhookHandler{usecase: uc, primaryKey: primaryKey, secondaryKey: secondaryKey}
}

func (h *WebhookHandler) HandleESignEvent(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unable to read request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// Verification runs over the raw bytes before any parsing; a rejected
	// delivery must not reach the reconciler at all.
	if !webhooks.VerifyWithRotation(h.primaryKey, h.secondaryKey, body, c.GetHeader(SignatureHeader)) {
		logger.L().Warnw("webhook signature rejected", "body_len", len(body))
		appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	event, err := usecase.ParseWebhookEvent(body)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, err := h.usecase.ProcessEvent(c.Request.Context(), event)
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WebhookAckResponse{
		Received:           true,
		Applied:            outcome.Applied,
		Ignored:            outcome.Ignored,
		SignatureRequestID: outcome.SignatureRequestID,
	})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookPayload):
		return pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSignatureRequestNotFound):
		return pkg.NewDomainErrorSimple("SIGNATURE_REQUEST_NOT_FOUND", "Signature request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
