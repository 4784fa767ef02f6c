package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"kensetsu_match/internal/domain/entities"
	mock_interfaces "kensetsu_match/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestParseWebhookEvent(t *testing.T) {
	t.Run("completed trigger", func(t *testing.T) {
		body := []byte(`{
			"trigger": "SIGN_REQUEST.COMPLETED",
			"source": {
				"id": "ext-1",
				"completed_at": "2025-09-01T03:00:00Z",
				"signers": [{"email": "a@example.com", "has_signed": true, "signed_at": "2025-09-01T02:59:00Z"}]
			}
		}`)
		ev, err := ParseWebhookEvent(body)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Kind != WebhookEventCompleted || ev.ExternalRequestID != "ext-1" {
			t.Fatalf("unexpected event %+v", ev)
		}
		if ev.CompletedAt == nil || !ev.CompletedAt.Equal(time.Date(2025, 9, 1, 3, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected completed_at %v", ev.CompletedAt)
		}
		if len(ev.Signers) != 1 || !ev.Signers[0].HasSigned {
			t.Fatalf("unexpected signers %+v", ev.Signers)
		}
	})

	t.Run("declined and expired triggers", func(t *testing.T) {
		for trigger, kind := range map[string]WebhookEventKind{
			TriggerSignDeclined: WebhookEventDeclined,
			TriggerSignExpired:  WebhookEventExpired,
		} {
			ev, err := ParseWebhookEvent([]byte(`{"trigger": "` + trigger + `", "source": {"id": "ext-1"}}`))
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", trigger, err)
			}
			if ev.Kind != kind {
				t.Fatalf("%s: unexpected kind %s", trigger, ev.Kind)
			}
		}
	})

	t.Run("unknown trigger parses as ignored", func(t *testing.T) {
		ev, err := ParseWebhookEvent([]byte(`{"trigger": "SIGN_REQUEST.OPENED", "source": {"id": "ext-1"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Kind != WebhookEventIgnored {
			t.Fatalf("expected ignored, got %s", ev.Kind)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		if _, err := ParseWebhookEvent([]byte(`{`)); !errors.Is(err, ErrInvalidWebhookPayload) {
			t.Fatalf("expected ErrInvalidWebhookPayload, got %v", err)
		}
	})

	t.Run("missing trigger", func(t *testing.T) {
		if _, err := ParseWebhookEvent([]byte(`{"source": {"id": "ext-1"}}`)); !errors.Is(err, ErrInvalidWebhookPayload) {
			t.Fatalf("expected ErrInvalidWebhookPayload, got %v", err)
		}
	})

	t.Run("actionable trigger without source id", func(t *testing.T) {
		if _, err := ParseWebhookEvent([]byte(`{"trigger": "SIGN_REQUEST.COMPLETED", "source": {}}`)); !errors.Is(err, ErrInvalidWebhookPayload) {
			t.Fatalf("expected ErrInvalidWebhookPayload, got %v", err)
		}
	})
}

func TestWebhookUseCase_ProcessEvent(t *testing.T) {
	t.Run("ignored trigger is acknowledged without lookups", func(t *testing.T) {
		uc := NewWebhookUseCase(nil, nil, nil)
		outcome, err := uc.ProcessEvent(context.Background(), WebhookEvent{Kind: WebhookEventIgnored, Trigger: "SIGN_REQUEST.OPENED"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Ignored || outcome.Applied {
			t.Fatalf("unexpected outcome %+v", outcome)
		}
	})

	t.Run("unknown external id reports not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISignatureRequestRepository(ctrl)
		uc := NewWebhookUseCase(repo, nil, nil)

		repo.EXPECT().GetByExternalRequestID(gomock.Any(), "ext-x").Return(entities.SignatureRequest{}, nil)

		_, err := uc.ProcessEvent(context.Background(), WebhookEvent{Kind: WebhookEventCompleted, ExternalRequestID: "ext-x"})
		if !errors.Is(err, ErrSignatureRequestNotFound) {
			t.Fatalf("expected ErrSignatureRequestNotFound, got %v", err)
		}
	})

	t.Run("first completion applies and notifies once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISignatureRequestRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewWebhookUseCase(repo, contractRepo, notifier)

		completed := time.Date(2025, 9, 1, 3, 0, 0, 0, time.UTC)
		req := sentSignatureRequest()
		repo.EXPECT().GetByExternalRequestID(gomock.Any(), "ext-1").Return(req, nil)
		repo.EXPECT().ApplyTerminal(gomock.Any(), "sr-1", entities.SignatureStatusSigned, completed, gomock.Any()).Return(true, nil)
		contractRepo.EXPECT().SetOrderAcceptanceSignedAt(gomock.Any(), "c-1", completed).Return(true, nil)
		contractRepo.EXPECT().UpdateStatus(gomock.Any(), "c-1", entities.ContractStatusSigned).Return(entities.Contract{ID: "c-1"}, nil)
		notifier.EXPECT().SignatureFinished(gomock.Any(), "c-1", "sr-1", entities.SignatureStatusSigned).Return(nil)

		outcome, err := uc.ProcessEvent(context.Background(), WebhookEvent{
			Kind:              WebhookEventCompleted,
			ExternalRequestID: "ext-1",
			CompletedAt:       &completed,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Applied || outcome.SignatureRequestID != "sr-1" {
			t.Fatalf("unexpected outcome %+v", outcome)
		}
	})

	t.Run("duplicate delivery is acknowledged with no writes and no notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISignatureRequestRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewWebhookUseCase(repo, contractRepo, notifier)

		completed := time.Date(2025, 9, 1, 3, 0, 0, 0, time.UTC)
		req := sentSignatureRequest()
		req.Status = entities.SignatureStatusSigned
		req.CompletedAt = &completed
		repo.EXPECT().GetByExternalRequestID(gomock.Any(), "ext-1").Return(req, nil)
		// No ApplyTerminal, no contract write, no notification.

		outcome, err := uc.ProcessEvent(context.Background(), WebhookEvent{
			Kind:              WebhookEventCompleted,
			ExternalRequestID: "ext-1",
			CompletedAt:       &completed,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Applied {
			t.Fatal("duplicate must not report applied")
		}
		if outcome.SignatureRequestID != "sr-1" {
			t.Fatalf("unexpected outcome %+v", outcome)
		}
	})

	t.Run("race lost at the conditional write is still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISignatureRequestRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewWebhookUseCase(repo, contractRepo, notifier)

		req := sentSignatureRequest()
		repo.EXPECT().GetByExternalRequestID(gomock.Any(), "ext-1").Return(req, nil)
		repo.EXPECT().ApplyTerminal(gomock.Any(), "sr-1", entities.SignatureStatusExpired, gomock.Any(), gomock.Any()).Return(false, nil)

		outcome, err := uc.ProcessEvent(context.Background(), WebhookEvent{Kind: WebhookEventExpired, ExternalRequestID: "ext-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Applied {
			t.Fatal("lost race must not report applied")
		}
	})
}
