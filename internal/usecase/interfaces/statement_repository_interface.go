package interfaces

import (
	"context"

	"kensetsu_match/internal/domain/entities"
)

// IStatementRepository abstracts DynamoDB persistence for MonthlyStatement.
// Create follows the same conditional one-per-(org, period) rule as payouts.

type IStatementRepository interface {
	Create(ctx context.Context, s entities.MonthlyStatement) (entities.MonthlyStatement, error)
	GetByOrganizationAndPeriod(ctx context.Context, organizationID, periodKey string) (entities.MonthlyStatement, error)
}
