package handlers

import (
	"errors"
	"net/http"

	request "kensetsu_match/internal/adapter/http/dto/request"
	response "kensetsu_match/internal/adapter/http/dto/response"
	"kensetsu_match/internal/usecase"
	"kensetsu_match/pkg"
	"kensetsu_match/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSignaturePayload = pkg.NewDomainErrorSimple("INVALID_SIGNATURE_INPUT", "Invalid signature request payload", http.StatusBadRequest)
)

// SignatureHandler handles HTTP requests for e-signature transactions.

type SignatureHandler struct {
	usecase usecase.ISignatureUseCase
}

func NewSignatureHandler(uc usecase.ISignatureUseCase) *SignatureHandler {
	return &SignatureHandler{usecase: uc}
}

// CreateSignatureRequest opens a provider-side signature transaction for a
// contract document. At most one non-terminal request may exist per
// (contract, document type).
func (h *SignatureHandler) CreateSignatureRequest(c *gin.Context) {
	var payload request.SignatureCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSignaturePayload.HTTPStatus, errInvalidSignaturePayload.ToHTTPError())
		return
	}

	documentType, ok := payload.ResolveDocumentType()
	if !ok {
		c.JSON(errInvalidSignaturePayload.HTTPStatus, errInvalidSignaturePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateRequest(c.Request.Context(), payload.ResolveContractID(), documentType, payload.ResolveSignerEmails(), payload.DocumentRef)
	if err != nil {
		logger.L().Warnw("signature request creation failed", "contract_id", payload.ResolveContractID(), "error", err)
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSignatureRequest(created))
}

func (h *SignatureHandler) GetSignatureRequest(c *gin.Context) {
	req, err := h.usecase.GetByID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSignatureRequest(req))
}

// PollSignatureRequest fetches the provider-side state and applies any
// terminal transition, converging to the same state a webhook delivery for
// the same transaction would produce.
func (h *SignatureHandler) PollSignatureRequest(c *gin.Context) {
	req, err := h.usecase.Poll(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSignatureRequest(req))
}

func mapSignatureError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidSignatureRequestID), errors.Is(err, usecase.ErrInvalidDocumentType), errors.Is(err, usecase.ErrNoSigners):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSignatureRequestNotFound):
		return pkg.NewDomainErrorSimple("SIGNATURE_REQUEST_NOT_FOUND", "Signature request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActiveRequestExists):
		return pkg.NewDomainErrorSimple("SIGNATURE_REQUEST_ALREADY_ACTIVE", "An active signature request already exists for this document", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
