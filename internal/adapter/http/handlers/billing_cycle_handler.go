package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "kensetsu_match/internal/adapter/http/dto/request"
	response "kensetsu_match/internal/adapter/http/dto/response"
	"kensetsu_match/internal/domain/settlement"
	"kensetsu_match/internal/usecase"
	"kensetsu_match/pkg"
	"kensetsu_match/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPeriodPayload = pkg.NewDomainErrorSimple("INVALID_PERIOD_INPUT", "Invalid billing period payload", http.StatusBadRequest)
)

// BillingCycleHandler handles the periodic settlement jobs and the payout
// lookups they produce.

type BillingCycleHandler struct {
	usecase usecase.IBillingCycleUseCase
}

func NewBillingCycleHandler(uc usecase.IBillingCycleUseCase) *BillingCycleHandler {
	return &BillingCycleHandler{usecase: uc}
}

// ClosePeriod runs the contractor close for one cutoff period. Re-running a
// period is accepted and only fills in contractors missed by earlier runs.
func (h *BillingCycleHandler) ClosePeriod(c *gin.Context) {
	var payload request.BillingPeriodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPeriodPayload.HTTPStatus, errInvalidPeriodPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CloseContractors(c.Request.Context(), payload.Year, payload.Month)
	if err != nil {
		logger.L().Warnw("period close failed", "year", payload.Year, "month", payload.Month, "error", err)
		appErr := mapBillingCycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClosePeriodResult(result))
}

// CreateStatement issues the organization-facing monthly statement for one
// cutoff period.
func (h *BillingCycleHandler) CreateStatement(c *gin.Context) {
	var payload request.BillingPeriodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPeriodPayload.HTTPStatus, errInvalidPeriodPayload.ToHTTPError())
		return
	}

	statement, _, err := h.usecase.InvoiceOrganization(c.Request.Context(), c.Param("org_id"), payload.Year, payload.Month)
	if err != nil {
		appErr := mapBillingCycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromStatement(statement))
}

// GetPayout returns a contractor's payout for the period selected by the
// year/month query parameters.
func (h *BillingCycleHandler) GetPayout(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil {
		c.JSON(errInvalidPeriodPayload.HTTPStatus, errInvalidPeriodPayload.ToHTTPError())
		return
	}

	payout, _, err := h.usecase.GetPayout(c.Request.Context(), c.Param("contractor_id"), year, month)
	if err != nil {
		appErr := mapBillingCycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayout(payout))
}

func mapBillingCycleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, settlement.ErrInvalidPeriod), errors.Is(err, usecase.ErrInvalidOrganizationID), errors.Is(err, usecase.ErrInvalidContractorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStatementAlreadyExists):
		return pkg.NewDomainErrorSimple("STATEMENT_ALREADY_EXISTS", "Statement already exists for this organization and period", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoInvoicesInPeriod):
		return pkg.NewDomainErrorSimple("NO_INVOICES_IN_PERIOD", "No issued invoices in this period", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPayoutNotFound):
		return pkg.NewDomainErrorSimple("PAYOUT_NOT_FOUND", "Payout not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
