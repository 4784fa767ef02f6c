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
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for contractor invoices.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// GenerateInvoice assembles the contractor invoice for a completed contract.
// The (contract, direction) pair is unique, so a retry of the same request
// answers 409 instead of inserting a second invoice.
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	var payload request.InvoiceGenerateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	businessType, ok := payload.ResolveBusinessType()
	if !ok {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.GenerateFromCompletion(c.Request.Context(), payload.ResolveContractID(), businessType)
	if err != nil {
		logger.L().Warnw("invoice generation failed", "contract_id", payload.ResolveContractID(), "error", err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) ListInvoicesByContract(c *gin.Context) {
	invoices, err := h.usecase.ListByContractID(c.Request.Context(), c.Param("contract_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) MarkInvoicePaid(c *gin.Context) {
	invoice, err := h.usecase.MarkPaid(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) CancelInvoice(c *gin.Context) {
	invoice, err := h.usecase.Cancel(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidBusinessType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotCompleted):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_COMPLETED", "Contract is not completed yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateInvoice):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_EXISTS", "Invoice already exists for this contract", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidInvoiceTransition):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_TRANSITION", "Invoice status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrAmountMismatch):
		return pkg.NewDomainError("INVOICE_AMOUNT_MISMATCH", "Invoice amounts failed validation", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
