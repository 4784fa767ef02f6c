package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kensetsu_match/internal/adapter/http/handlers/mocks"
	"kensetsu_match/internal/domain/entities"
	"kensetsu_match/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInvoiceRouter(h *InvoiceHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/invoices", h.GenerateInvoice)
	r.GET("/v1/invoices/:invoice_id", h.GetInvoice)
	r.PATCH("/v1/invoices/:invoice_id/pay", h.MarkInvoicePaid)
	r.PATCH("/v1/invoices/:invoice_id/cancel", h.CancelInvoice)
	r.GET("/v1/contracts/:contract_id/invoices", h.ListInvoicesByContract)
	return r
}

func sampleInvoice() entities.Invoice {
	return entities.Invoice{
		ID:           "inv-1",
		ContractID:   "c-1",
		ContractorID: "ct-1",
		BusinessType: entities.BusinessTypeIndividual,
		Direction:    entities.InvoiceDirectionToOperator,
		BaseAmount:   100_000,
		FeeAmount:    8_000,
		TotalAmount:  92_000,
		SystemFee:    9_393,
		FinalAmount:  82_607,
		Status:       entities.InvoiceStatusIssued,
		IssueDate:    time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		DueDate:      time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestInvoiceHandler_GenerateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid business type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		body := `{"contract_id": "c-1", "business_type": "partnership"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		uc.EXPECT().GenerateFromCompletion(gomock.Any(), "c-1", entities.BusinessTypeIndividual).
			Return(sampleInvoice(), nil)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		body := `{"contract_id": "c-1", "business_type": "individual"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
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
		if resp["final_amount"].(float64) != 82_607 {
			t.Fatalf("unexpected final_amount %v", resp["final_amount"])
		}
		if resp["due_date"] != "2025-10-05" {
			t.Fatalf("unexpected due_date %v", resp["due_date"])
		}
	})

	t.Run("duplicate returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		uc.EXPECT().GenerateFromCompletion(gomock.Any(), "c-1", entities.BusinessTypeIndividual).
			Return(entities.Invoice{}, usecase.ErrDuplicateInvoice)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		body := `{"contract_id": "c-1", "business_type": "individual"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("contract not completed returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		uc.EXPECT().GenerateFromCompletion(gomock.Any(), "c-1", entities.BusinessTypeCorporation).
			Return(entities.Invoice{}, usecase.ErrContractNotCompleted)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		body := `{"contract_id": "c-1", "business_type": "corporation"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "inv-x").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list by contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		uc.EXPECT().ListByContractID(gomock.Any(), "c-1").Return([]entities.Invoice{sampleInvoice()}, nil)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/contracts/c-1/invoices", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 1 {
			t.Fatalf("expected 1 invoice, got %d", len(resp))
		}
	})
}

func TestInvoiceHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		paid := sampleInvoice()
		paid.Status = entities.InvoiceStatusPaid
		uc.EXPECT().MarkPaid(gomock.Any(), "inv-1").Return(paid, nil)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid transition returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		uc.EXPECT().Cancel(gomock.Any(), "inv-1").Return(entities.Invoice{}, usecase.ErrInvalidInvoiceTransition)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("internal error returns 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		uc.EXPECT().MarkPaid(gomock.Any(), "inv-1").Return(entities.Invoice{}, errors.New("db down"))
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
