package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"kensetsu_match/internal/domain/entities"
	"kensetsu_match/internal/usecase/interfaces"
	"kensetsu_match/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidSignatureRequestID = errors.New("invalid signature request id")
	ErrInvalidDocumentType       = errors.New("invalid document type")
	ErrNoSigners                 = errors.New("at least one signer is required")
	ErrSignatureRequestNotFound  = errors.New("signature request not found")
	// ErrActiveRequestExists rejects creating a second request while a
	// non-terminal one exists for the same (contract, document_type).
	// Callers must poll or reconcile the existing one first.
	ErrActiveRequestExists = errors.New("an active signature request already exists for this contract and document type")
)

// ISignatureUseCase owns the lifecycle of external e-signature requests:
// created -> sent -> signed | declined | expired.
//
// Poll is the pull-side twin of the webhook reconciler: both converge through
// applyTerminal, so a polled completion and a pushed completion end in the
// same state no matter which arrives first.

type ISignatureUseCase interface {
	CreateRequest(ctx context.Context, contractID string, documentType entities.DocumentType, signerEmails []string, documentRef string) (entities.SignatureRequest, error)
	GetByID(ctx context.Context, id string) (entities.SignatureRequest, error)
	Poll(ctx context.Context, id string) (entities.SignatureRequest, error)
}

type SignatureUseCase struct {
	repo         interfaces.ISignatureRequestRepository
	contractRepo interfaces.IContractRepository
	provider     interfaces.IESignProvider
	notifier     interfaces.INotifier
	now          func() time.Time
}

var _ ISignatureUseCase = (*SignatureUseCase)(nil)

func NewSignatureUseCase(repo interfaces.ISignatureRequestRepository, contractRepo interfaces.IContractRepository, provider interfaces.IESignProvider, notifier interfaces.INotifier) *SignatureUseCase {
	return &SignatureUseCase{repo: repo, contractRepo: contractRepo, provider: provider, notifier: notifier, now: time.Now}
}

func validDocumentType(t entities.DocumentType) bool {
	return t == entities.DocumentTypeOrderAcceptance || t == entities.DocumentTypeCompletionReport
}

func (u *SignatureUseCase) CreateRequest(ctx context.Context, contractID string, documentType entities.DocumentType, signerEmails []string, documentRef string) (entities.SignatureRequest, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.SignatureRequest{}, ErrInvalidContractID
	}
	if !validDocumentType(documentType) {
		return entities.SignatureRequest{}, ErrInvalidDocumentType
	}
	if len(signerEmails) == 0 {
		return entities.SignatureRequest{}, ErrNoSigners
	}

	contract, err := u.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return entities.SignatureRequest{}, err
	}
	if contract.ID == "" {
		return entities.SignatureRequest{}, ErrContractNotFound
	}

	active, err := u.repo.FindActiveByContractAndType(ctx, contractID, documentType)
	if err != nil {
		return entities.SignatureRequest{}, err
	}
	if active.ID != "" {
		logger.L().Infow("signature request rejected, active one exists",
			"contract_id", contractID, "document_type", documentType, "active_id", active.ID)
		return entities.SignatureRequest{}, ErrActiveRequestExists
	}

	externalID, expiresAt, err := u.provider.CreateRequest(ctx, interfaces.ESignCreateRequest{
		DocumentRef:  documentRef,
		DocumentType: documentType,
		Title:        string(documentType) + " " + contractID,
		SignerEmails: signerEmails,
	})
	if err != nil {
		return entities.SignatureRequest{}, err
	}

	signers := make([]entities.Signer, 0, len(signerEmails))
	for _, email := range signerEmails {
		signers = append(signers, entities.Signer{Email: strings.TrimSpace(email)})
	}

	now := u.now().UTC()
	req := entities.SignatureRequest{
		ID:                uuid.NewString(),
		ExternalRequestID: externalID,
		ContractID:        contractID,
		DocumentType:      documentType,
		Status:            entities.SignatureStatusSent,
		Signers:           signers,
		SourceDocumentRef: documentRef,
		CreatedAt:         now,
		SentAt:            &now,
		ExpiresAt:         expiresAt,
	}

	created, err := u.repo.Create(ctx, req)
	if err != nil {
		return entities.SignatureRequest{}, err
	}
	logger.L().Infow("signature request dispatched",
		"signature_request_id", created.ID, "external_request_id", externalID, "contract_id", contractID)
	return created, nil
}

func (u *SignatureUseCase) GetByID(ctx context.Context, id string) (entities.SignatureRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SignatureRequest{}, ErrInvalidSignatureRequestID
	}
	req, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SignatureRequest{}, err
	}
	if req.ID == "" {
		return entities.SignatureRequest{}, ErrSignatureRequestNotFound
	}
	return req, nil
}

// Poll asks the provider for the current state and, if the provider reports a
// terminal status, applies the same conditional transition the webhook path
// uses. A poll that races a webhook delivery is harmless: whichever applies
// first wins and the other no-ops.
func (u *SignatureUseCase) Poll(ctx context.Context, id string) (entities.SignatureRequest, error) {
	req, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.SignatureRequest{}, err
	}
	if req.Status.IsTerminal() {
		return req, nil
	}

	state, err := u.provider.GetStatus(ctx, req.ExternalRequestID)
	if err != nil {
		return entities.SignatureRequest{}, err
	}
	if !state.Status.IsTerminal() {
		return req, nil
	}

	completedAt := u.now().UTC()
	if state.CompletedAt != nil {
		completedAt = state.CompletedAt.UTC()
	}
	if _, err := applyTerminal(ctx, u.repo, u.contractRepo, u.notifier, req, state.Status, completedAt, state.Signers); err != nil {
		return entities.SignatureRequest{}, err
	}
	return u.GetByID(ctx, id)
}

// applyTerminal persists a terminal signature transition exactly once and,
// on first application of `signed`, propagates the timestamp into the owning
// contract and notifies. Shared by Poll and the webhook reconciler.
//
// The repository update is a single conditional write, so two concurrent
// callers can interleave arbitrarily: exactly one observes applied=true.
// The notification fires after the local writes so a failed persist can
// never leave an un-rollback-able side effect behind.
func applyTerminal(
	ctx context.Context,
	repo interfaces.ISignatureRequestRepository,
	contractRepo interfaces.IContractRepository,
	notifier interfaces.INotifier,
	req entities.SignatureRequest,
	status entities.SignatureRequestStatus,
	completedAt time.Time,
	signers []entities.Signer,
) (applied bool, err error) {
	if len(signers) == 0 {
		signers = req.Signers
	}

	applied, err = repo.ApplyTerminal(ctx, req.ID, status, completedAt, signers)
	if err != nil {
		return false, err
	}
	if !applied {
		logger.L().Infow("terminal transition replayed, no-op",
			"signature_request_id", req.ID, "status", status)
		return false, nil
	}

	if status == entities.SignatureStatusSigned && req.DocumentType == entities.DocumentTypeOrderAcceptance {
		// `signed` is the only transition allowed to write back to the
		// contract; the conditional update keeps the single-writer rule even
		// if a stale duplicate slips past the request-level guard.
		if _, err := contractRepo.SetOrderAcceptanceSignedAt(ctx, req.ContractID, completedAt); err != nil {
			return true, err
		}
		if _, err := contractRepo.UpdateStatus(ctx, req.ContractID, entities.ContractStatusSigned); err != nil {
			return true, err
		}
	}

	if notifier != nil {
		if nerr := notifier.SignatureFinished(ctx, req.ContractID, req.ID, status); nerr != nil {
			logger.L().Warnw("signature notification failed",
				"signature_request_id", req.ID, "err", nerr)
		}
	}
	logger.L().Infow("signature request finished",
		"signature_request_id", req.ID, "contract_id", req.ContractID, "status", status)
	return true, nil
}
