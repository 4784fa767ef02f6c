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
	"kensetsu_match/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSignatureRouter(h *SignatureHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/signature-requests", h.CreateSignatureRequest)
	r.GET("/v1/signature-requests/:request_id", h.GetSignatureRequest)
	r.POST("/v1/signature-requests/:request_id/poll", h.PollSignatureRequest)
	return r
}

func sampleSignatureRequest() entities.SignatureRequest {
	sent := time.Date(2025, 9, 10, 1, 0, 0, 0, time.UTC)
	return entities.SignatureRequest{
		ID:                "sr-1",
		ExternalRequestID: "ext-1",
		ContractID:        "c-1",
		DocumentType:      entities.DocumentTypeOrderAcceptance,
		Status:            entities.SignatureStatusSent,
		Signers:           []entities.Signer{{Email: "a@example.com"}},
		CreatedAt:         sent,
		SentAt:            &sent,
	}
}

func TestSignatureHandler_CreateSignatureRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		r := newSignatureRouter(NewSignatureHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/signature-requests", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown document type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		r := newSignatureRouter(NewSignatureHandler(uc))

		body := `{"contract_id": "c-1", "document_type": "memo", "signer_emails": ["a@example.com"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/signature-requests", bytes.NewBufferString(body))
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
		uc := mocks.NewMockISignatureUseCase(ctrl)
		uc.EXPECT().
			CreateRequest(gomock.Any(), "c-1", entities.DocumentTypeOrderAcceptance, []string{"a@example.com"}, "s3://docs/c-1.pdf").
			Return(sampleSignatureRequest(), nil)
		r := newSignatureRouter(NewSignatureHandler(uc))

		body := `{"contract_id": "c-1", "document_type": "order_acceptance", "signer_emails": ["a@example.com"], "document_ref": "s3://docs/c-1.pdf"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/signature-requests", bytes.NewBufferString(body))
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
		if resp["status"] != "sent" {
			t.Fatalf("unexpected status %v", resp["status"])
		}
		if resp["external_request_id"] != "ext-1" {
			t.Fatalf("unexpected external id %v", resp["external_request_id"])
		}
	})

	t.Run("active request already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		uc.EXPECT().
			CreateRequest(gomock.Any(), "c-1", entities.DocumentTypeOrderAcceptance, []string{"a@example.com"}, "").
			Return(entities.SignatureRequest{}, usecase.ErrActiveRequestExists)
		r := newSignatureRouter(NewSignatureHandler(uc))

		body := `{"contract_id": "c-1", "document_type": "order_acceptance", "signer_emails": ["a@example.com"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/signature-requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestSignatureHandler_GetSignatureRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "sr-missing").
			Return(entities.SignatureRequest{}, usecase.ErrSignatureRequestNotFound)
		r := newSignatureRouter(NewSignatureHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/signature-requests/sr-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "sr-1").Return(sampleSignatureRequest(), nil)
		r := newSignatureRouter(NewSignatureHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/signature-requests/sr-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSignatureHandler_PollSignatureRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns refreshed state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		signed := sampleSignatureRequest()
		signed.Status = entities.SignatureStatusSigned
		completed := time.Date(2025, 9, 12, 3, 0, 0, 0, time.UTC)
		signed.CompletedAt = &completed
		uc.EXPECT().Poll(gomock.Any(), "sr-1").Return(signed, nil)
		r := newSignatureRouter(NewSignatureHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/signature-requests/sr-1/poll", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "signed" {
			t.Fatalf("unexpected status %v", resp["status"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		uc.EXPECT().Poll(gomock.Any(), "sr-missing").
			Return(entities.SignatureRequest{}, usecase.ErrSignatureRequestNotFound)
		r := newSignatureRouter(NewSignatureHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/signature-requests/sr-missing/poll", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
