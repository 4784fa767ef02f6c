package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"kensetsu_match/internal/domain/entities"
	"kensetsu_match/internal/usecase/interfaces"
	"kensetsu_match/pkg/logger"
)

var ErrInvalidWebhookPayload = errors.New("invalid webhook payload")

// Provider trigger identifiers. Only the three terminal triggers are
// actionable; everything else is acknowledged without side effects so the
// provider never sees an error for events we do not process yet (non-2xx
// would put them on an unbounded redelivery loop).
const (
	TriggerSignCompleted = "SIGN_REQUEST.COMPLETED"
	TriggerSignDeclined  = "SIGN_REQUEST.DECLINED"
	TriggerSignExpired   = "SIGN_REQUEST.EXPIRED"
)

// WebhookEventKind is the tag of the parsed event union.

type WebhookEventKind string

const (
	WebhookEventCompleted WebhookEventKind = "completed"
	WebhookEventDeclined  WebhookEventKind = "declined"
	WebhookEventExpired   WebhookEventKind = "expired"
	WebhookEventIgnored   WebhookEventKind = "ignored"
)

// WebhookEvent is the parsed form of one provider delivery: a tagged union
// keyed by trigger, with a catch-all ignored variant instead of ad hoc
// property probing.
type WebhookEvent struct {
	Kind              WebhookEventKind
	Trigger           string
	ExternalRequestID string
	CompletedAt       *time.Time
	Signers           []entities.Signer
}

type webhookPayload struct {
	Trigger string `json:"trigger"`
	Source  struct {
		ID          string `json:"id"`
		CompletedAt string `json:"completed_at"`
		Signers     []struct {
			Email     string `json:"email"`
			HasSigned bool   `json:"has_signed"`
			SignedAt  string `json:"signed_at"`
		} `json:"signers"`
	} `json:"source"`
}

func (e WebhookEvent) terminalStatus() entities.SignatureRequestStatus {
	switch e.Kind {
	case WebhookEventCompleted:
		return entities.SignatureStatusSigned
	case WebhookEventDeclined:
		return entities.SignatureStatusDeclined
	case WebhookEventExpired:
		return entities.SignatureStatusExpired
	}
	return ""
}

// ParseWebhookEvent maps a raw delivery body into the event union.
// Unknown triggers parse successfully into the ignored variant; a missing
// source id on an actionable trigger is a payload error.
func ParseWebhookEvent(body []byte) (WebhookEvent, error) {
	var p webhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return WebhookEvent{}, ErrInvalidWebhookPayload
	}
	trigger := strings.TrimSpace(p.Trigger)
	if trigger == "" {
		return WebhookEvent{}, ErrInvalidWebhookPayload
	}

	ev := WebhookEvent{Trigger: trigger, ExternalRequestID: strings.TrimSpace(p.Source.ID)}
	switch trigger {
	case TriggerSignCompleted:
		ev.Kind = WebhookEventCompleted
	case TriggerSignDeclined:
		ev.Kind = WebhookEventDeclined
	case TriggerSignExpired:
		ev.Kind = WebhookEventExpired
	default:
		ev.Kind = WebhookEventIgnored
		return ev, nil
	}

	if ev.ExternalRequestID == "" {
		return WebhookEvent{}, ErrInvalidWebhookPayload
	}
	if ts := strings.TrimSpace(p.Source.CompletedAt); ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			t = t.UTC()
			ev.CompletedAt = &t
		}
	}
	for _, s := range p.Source.Signers {
		signer := entities.Signer{Email: strings.TrimSpace(s.Email), HasSigned: s.HasSigned}
		if ts := strings.TrimSpace(s.SignedAt); ts != "" {
			if t, err := time.Parse(time.RFC3339, ts); err == nil {
				t = t.UTC()
				signer.SignedAt = &t
			}
		}
		ev.Signers = append(ev.Signers, signer)
	}
	return ev, nil
}

// WebhookOutcome tells the HTTP layer what happened without leaking internal
// state: Applied=false with no error means a harmless duplicate or an
// intentionally ignored trigger.
type WebhookOutcome struct {
	Applied            bool
	Ignored            bool
	SignatureRequestID string
}

// IWebhookUseCase reconciles verified provider events into local state.
// Contract: safe under at-least-once delivery; any duplicate or
// logically-equivalent redelivery produces the same end state as processing
// the event once, with no duplicate side effects.

type IWebhookUseCase interface {
	ProcessEvent(ctx context.Context, event WebhookEvent) (WebhookOutcome, error)
}

type WebhookUseCase struct {
	signatureRepo interfaces.ISignatureRequestRepository
	contractRepo  interfaces.IContractRepository
	notifier      interfaces.INotifier
	now           func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(signatureRepo interfaces.ISignatureRequestRepository, contractRepo interfaces.IContractRepository, notifier interfaces.INotifier) *WebhookUseCase {
	return &WebhookUseCase{signatureRepo: signatureRepo, contractRepo: contractRepo, notifier: notifier, now: time.Now}
}

func (u *WebhookUseCase) ProcessEvent(ctx context.Context, event WebhookEvent) (WebhookOutcome, error) {
	if event.Kind == WebhookEventIgnored {
		logger.L().Debugw("webhook trigger ignored", "trigger", event.Trigger)
		return WebhookOutcome{Ignored: true}, nil
	}

	req, err := u.signatureRepo.GetByExternalRequestID(ctx, event.ExternalRequestID)
	if err != nil {
		return WebhookOutcome{}, err
	}
	if req.ID == "" {
		// A lookup miss is reported, not retried: redelivery cannot turn an
		// unknown id into a known one.
		logger.L().Warnw("webhook for unknown signature request", "external_request_id", event.ExternalRequestID, "trigger", event.Trigger)
		return WebhookOutcome{}, ErrSignatureRequestNotFound
	}

	// Fast-path duplicate check; the authoritative guard is the conditional
	// write inside applyTerminal.
	if req.Status.IsTerminal() || req.CompletedAt != nil {
		logger.L().Infow("webhook duplicate acknowledged", "signature_request_id", req.ID, "trigger", event.Trigger)
		return WebhookOutcome{SignatureRequestID: req.ID}, nil
	}

	completedAt := u.now().UTC()
	if event.CompletedAt != nil {
		completedAt = *event.CompletedAt
	}

	applied, err := applyTerminal(ctx, u.signatureRepo, u.contractRepo, u.notifier, req, event.terminalStatus(), completedAt, event.Signers)
	if err != nil {
		return WebhookOutcome{}, err
	}
	return WebhookOutcome{Applied: applied, SignatureRequestID: req.ID}, nil
}
