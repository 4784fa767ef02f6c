package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"kensetsu_match/internal/domain/entities"
	"kensetsu_match/internal/usecase/interfaces"
	mock_interfaces "kensetsu_match/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sentSignatureRequest() entities.SignatureRequest {
	return entities.SignatureRequest{
		ID:                "sr-1",
		ExternalRequestID: "ext-1",
		ContractID:        "c-1",
		DocumentType:      entities.DocumentTypeOrderAcceptance,
		Status:            entities.SignatureStatusSent,
		Signers:           []entities.Signer{{Email: "a@example.com"}},
	}
}

func TestSignatureUseCase_CreateRequest(t *testing.T) {
	t.Run("invalid contract id", func(t *testing.T) {
		uc := NewSignatureUseCase(nil, nil, nil, nil)
		_, err := uc.CreateRequest(context.Background(), " ", entities.DocumentTypeOrderAcceptance, []string{"a@example.com"}, "")
		if !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("invalid document type", func(t *testing.T) {
		uc := NewSignatureUseCase(nil, nil, nil, nil)
		_, err := uc.CreateRequest(context.Background(), "c-1", "memo", []string{"a@example.com"}, "")
		if !errors.Is(err, ErrInvalidDocumentType) {
			t.Fatalf("expected ErrInvalidDocumentType, got %v", err)
		}
	})

	t.Run("no signers", func(t *testing.T) {
		uc := NewSignatureUseCase(nil, nil, nil, nil)
		_, err := uc.CreateRequest(context.Background(), "c-1", entities.DocumentTypeOrderAcceptance, nil, "")
		if !errors.Is(err, ErrNoSigners) {
			t.Fatalf("expected ErrNoSigners, got %v", err)
		}
	})

	t.Run("active request blocks a second one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISignatureRequestRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewSignatureUseCase(repo, contractRepo, nil, nil)

		contractRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contract{ID: "c-1"}, nil)
		repo.EXPECT().FindActiveByContractAndType(gomock.Any(), "c-1", entities.DocumentTypeOrderAcceptance).
			Return(sentSignatureRequest(), nil)

		_, err := uc.CreateRequest(context.Background(), "c-1", entities.DocumentTypeOrderAcceptance, []string{"a@example.com"}, "")
		if !errors.Is(err, ErrActiveRequestExists) {
			t.Fatalf("expected ErrActiveRequestExists, got %v", err)
		}
	})

	t.Run("success dispatches to provider and persists as sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISignatureRequestRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		provider := mock_interfaces.NewMockIESignProvider(ctrl)
		uc := NewSignatureUseCase(repo, contractRepo, provider, nil)

		expires := time.Now().UTC().Add(72 * time.Hour)
		contractRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contract{ID: "c-1"}, nil)
		repo.EXPECT().FindActiveByContractAndType(gomock.Any(), "c-1", entities.DocumentTypeOrderAcceptance).
			Return(entities.SignatureRequest{}, nil)
		provider.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return("ext-9", &expires, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.SignatureRequest) (entities.SignatureRequest, error) {
				if r.ExternalRequestID != "ext-9" {
					t.Fatalf("unexpected external id %q", r.ExternalRequestID)
				}
				if r.Status != entities.SignatureStatusSent || r.SentAt == nil {
					t.Fatalf("expected sent status with SentAt, got %s/%v", r.Status, r.SentAt)
				}
				if len(r.Signers) != 1 || r.Signers[0].Email != "a@example.com" {
					t.Fatalf("unexpected signers %+v", r.Signers)
				}
				return r, nil
			})

		created, err := uc.CreateRequest(context.Background(), "c-1", entities.DocumentTypeOrderAcceptance, []string{"a@example.com"}, "doc-ref")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ExpiresAt == nil {
			t.Fatal("expected expiry from provider")
		}
	})
}

func TestSignatureUseCase_Poll(t *testing.T) {
	t.Run("terminal request short-circuits without provider call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISignatureRequestRepository(ctrl)
		uc := NewSignatureUseCase(repo, nil, nil, nil)

		signed := sentSignatureRequest()
		signed.Status = entities.SignatureStatusSigned
		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(signed, nil)

		got, err := uc.Poll(context.Background(), "sr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.SignatureStatusSigned {
			t.Fatalf("unexpected status %s", got.Status)
		}
	})

	t.Run("provider still pending leaves request untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISignatureRequestRepository(ctrl)
		provider := mock_interfaces.NewMockIESignProvider(ctrl)
		uc := NewSignatureUseCase(repo, nil, provider, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(sentSignatureRequest(), nil)
		provider.EXPECT().GetStatus(gomock.Any(), "ext-1").
			Return(interfaces.ESignRequestState{Status: entities.SignatureStatusSent}, nil)

		got, err := uc.Poll(context.Background(), "sr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.SignatureStatusSent {
			t.Fatalf("unexpected status %s", got.Status)
		}
	})

	t.Run("provider signed applies terminal transition and writes back to contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISignatureRequestRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		provider := mock_interfaces.NewMockIESignProvider(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewSignatureUseCase(repo, contractRepo, provider, notifier)

		completed := time.Date(2025, 9, 1, 3, 0, 0, 0, time.UTC)
		signers := []entities.Signer{{Email: "a@example.com", HasSigned: true, SignedAt: &completed}}

		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(sentSignatureRequest(), nil)
		provider.EXPECT().GetStatus(gomock.Any(), "ext-1").
			Return(interfaces.ESignRequestState{Status: entities.SignatureStatusSigned, Signers: signers, CompletedAt: &completed}, nil)
		repo.EXPECT().ApplyTerminal(gomock.Any(), "sr-1", entities.SignatureStatusSigned, completed, signers).Return(true, nil)
		contractRepo.EXPECT().SetOrderAcceptanceSignedAt(gomock.Any(), "c-1", completed).Return(true, nil)
		contractRepo.EXPECT().UpdateStatus(gomock.Any(), "c-1", entities.ContractStatusSigned).Return(entities.Contract{ID: "c-1"}, nil)
		notifier.EXPECT().SignatureFinished(gomock.Any(), "c-1", "sr-1", entities.SignatureStatusSigned).Return(nil)

		after := sentSignatureRequest()
		after.Status = entities.SignatureStatusSigned
		after.CompletedAt = &completed
		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(after, nil)

		got, err := uc.Poll(context.Background(), "sr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.SignatureStatusSigned || got.CompletedAt == nil {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("declined completion report does not touch the contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISignatureRequestRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		provider := mock_interfaces.NewMockIESignProvider(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewSignatureUseCase(repo, contractRepo, provider, notifier)

		req := sentSignatureRequest()
		req.DocumentType = entities.DocumentTypeCompletionReport

		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(req, nil)
		provider.EXPECT().GetStatus(gomock.Any(), "ext-1").
			Return(interfaces.ESignRequestState{Status: entities.SignatureStatusDeclined}, nil)
		repo.EXPECT().ApplyTerminal(gomock.Any(), "sr-1", entities.SignatureStatusDeclined, gomock.Any(), gomock.Any()).Return(true, nil)
		notifier.EXPECT().SignatureFinished(gomock.Any(), "c-1", "sr-1", entities.SignatureStatusDeclined).Return(nil)

		after := req
		after.Status = entities.SignatureStatusDeclined
		repo.EXPECT().GetByID(gomock.Any(), "sr-1").Return(after, nil)

		if _, err := uc.Poll(context.Background(), "sr-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
