package interfaces

import (
	"context"

	"kensetsu_match/internal/domain/entities"
)

// INotifier abstracts follow-on notifications emitted after a terminal
// signature transition has been persisted. Fired only on the first
// application of an event; replays must never notify twice.
type INotifier interface {
	SignatureFinished(ctx context.Context, contractID, signatureRequestID string, status entities.SignatureRequestStatus) error
}
