package interfaces

import (
	"context"

	"kensetsu_match/internal/domain/entities"
)

// IPayoutRepository abstracts DynamoDB persistence for Payout.
//
// Create is conditional on (contractor_id, period) being free and returns
// ErrAlreadyExists otherwise, which is what makes a period re-run safe.

type IPayoutRepository interface {
	Create(ctx context.Context, p entities.Payout) (entities.Payout, error)
	GetByContractorAndPeriod(ctx context.Context, contractorID, periodKey string) (entities.Payout, error)
	ListByContractor(ctx context.Context, contractorID string) ([]entities.Payout, error)
}
