package interfaces

import (
	"context"
	"time"

	"kensetsu_match/internal/domain/entities"
)

// IContractRepository abstracts DynamoDB persistence for Contract.
//
// SetOrderAcceptanceSignedAt is the single write-back path from the signature
// flow: it is conditional on the timestamp being absent, so a replayed
// terminal event reports applied=false instead of overwriting.

type IContractRepository interface {
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	SetOrderAcceptanceSignedAt(ctx context.Context, id string, signedAt time.Time) (applied bool, err error)
	UpdateStatus(ctx context.Context, id string, status entities.ContractStatus) (entities.Contract, error)
}
