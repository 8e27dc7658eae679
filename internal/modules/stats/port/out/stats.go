package out

import (
	"context"

	"pokerlog/internal/modules/stats/domain"
)

// FactSource yields the aggregation facts for one user's sessions.
type FactSource interface {
	Facts(ctx context.Context, username string) ([]domain.SessionFact, error)
}
