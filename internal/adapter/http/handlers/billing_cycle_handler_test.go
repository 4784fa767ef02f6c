package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kensetsu_match/internal/adapter/http/handlers/mocks"
	"kensetsu_match/internal/domain/entities"
	"kensetsu_match/internal/domain/settlement"
	"kensetsu_match/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBillingCycleRouter(h *BillingCycleHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/billing/close", h.ClosePeriod)
	r.POST("/v1/billing/organizations/:org_id/statements", h.CreateStatement)
	r.GET("/v1/billing/contractors/:contractor_id/payout", h.GetPayout)
	return r
}

func septemberResolution() usecase.PeriodResolution {
	return usecase.PeriodResolution{
		PeriodStart:      time.Date(2025, 8, 21, 0, 0, 0, 0, settlement.JST),
		PeriodEnd:        time.Date(2025, 9, 20, 0, 0, 0, 0, settlement.JST),
		ScheduledPayDate: time.Date(2025, 9, 30, 0, 0, 0, 0, settlement.JST),
		DueDate:          time.Date(2025, 10, 5, 0, 0, 0, 0, settlement.JST),
	}
}

func TestBillingCycleHandler_ClosePeriod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingCycleUseCase(ctrl)
		r := newBillingCycleRouter(NewBillingCycleHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/billing/close", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid month returns 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingCycleUseCase(ctrl)
		uc.EXPECT().CloseContractors(gomock.Any(), 2025, 13).
			Return(usecase.ClosePeriodResult{}, settlement.ErrInvalidPeriod)
		r := newBillingCycleRouter(NewBillingCycleHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/billing/close", bytes.NewBufferString(`{"year": 2025, "month": 13}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("close reports created and skipped with period echo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingCycleUseCase(ctrl)
		uc.EXPECT().CloseContractors(gomock.Any(), 2025, 9).Return(usecase.ClosePeriodResult{
			Period: septemberResolution(),
			Created: []entities.Payout{{
				ID:           "po-1",
				ContractorID: "ct-a",
				GrossAmount:  92_000,
				NetAmount:    82_057,
				Status:       entities.PayoutStatusScheduled,
			}},
			Skipped: 1,
		}, nil)
		r := newBillingCycleRouter(NewBillingCycleHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/billing/close", bytes.NewBufferString(`{"year": 2025, "month": 9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		period := resp["period"].(map[string]any)
		if period["period_start"] != "2025-08-21" || period["period_end"] != "2025-09-20" {
			t.Fatalf("unexpected period %v", period)
		}
		if period["scheduled_pay_date"] != "2025-09-30" {
			t.Fatalf("unexpected pay date %v", period["scheduled_pay_date"])
		}
		if resp["skipped"].(float64) != 1 {
			t.Fatalf("unexpected skipped %v", resp["skipped"])
		}
	})
}

func TestBillingCycleHandler_CreateStatement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingCycleUseCase(ctrl)
		uc.EXPECT().InvoiceOrganization(gomock.Any(), "org-1", 2025, 9).Return(entities.MonthlyStatement{
			ID:               "st-1",
			OrganizationID:   "org-1",
			ContractorsTotal: 300_000,
			OperatorFee:      30_000,
			TotalAmount:      330_000,
			Status:           entities.StatementStatusIssued,
			DueDate:          time.Date(2025, 10, 5, 0, 0, 0, 0, settlement.JST),
		}, septemberResolution(), nil)
		r := newBillingCycleRouter(NewBillingCycleHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/billing/organizations/org-1/statements", bytes.NewBufferString(`{"year": 2025, "month": 9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["total_amount"].(float64) != 330_000 {
			t.Fatalf("unexpected total %v", resp["total_amount"])
		}
	})

	t.Run("second run returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingCycleUseCase(ctrl)
		uc.EXPECT().InvoiceOrganization(gomock.Any(), "org-1", 2025, 9).
			Return(entities.MonthlyStatement{}, septemberResolution(), usecase.ErrStatementAlreadyExists)
		r := newBillingCycleRouter(NewBillingCycleHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/billing/organizations/org-1/statements", bytes.NewBufferString(`{"year": 2025, "month": 9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("empty period returns 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingCycleUseCase(ctrl)
		uc.EXPECT().InvoiceOrganization(gomock.Any(), "org-1", 2025, 9).
			Return(entities.MonthlyStatement{}, septemberResolution(), usecase.ErrNoInvoicesInPeriod)
		r := newBillingCycleRouter(NewBillingCycleHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/billing/organizations/org-1/statements", bytes.NewBufferString(`{"year": 2025, "month": 9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBillingCycleHandler_GetPayout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing query params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingCycleUseCase(ctrl)
		r := newBillingCycleRouter(NewBillingCycleHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/billing/contractors/ct-a/payout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingCycleUseCase(ctrl)
		uc.EXPECT().GetPayout(gomock.Any(), "ct-a", 2025, 9).Return(entities.Payout{
			ID:             "po-1",
			ContractorID:   "ct-a",
			GrossAmount:    92_000,
			TaxWithholding: 9_393,
			TransferFee:    550,
			NetAmount:      82_057,
			Status:         entities.PayoutStatusScheduled,
		}, septemberResolution(), nil)
		r := newBillingCycleRouter(NewBillingCycleHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/billing/contractors/ct-a/payout?year=2025&month=9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["net_amount"].(float64) != 82_057 {
			t.Fatalf("unexpected net %v", resp["net_amount"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingCycleUseCase(ctrl)
		uc.EXPECT().GetPayout(gomock.Any(), "ct-a", 2025, 9).
			Return(entities.Payout{}, septemberResolution(), usecase.ErrPayoutNotFound)
		r := newBillingCycleRouter(NewBillingCycleHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/billing/contractors/ct-a/payout?year=2025&month=9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
