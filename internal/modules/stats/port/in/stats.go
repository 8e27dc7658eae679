package in

import (
	"context"

	"pokerlog/internal/modules/stats/dto"
)

type Usecase interface {
	// Report aggregates the user's sessions: lifetime, recent window and
	// per-game-type buckets.
	Report(ctx context.Context, username string, windowDays int) (dto.Report, error)
	// Series returns the cumulative profit lines, date ascending.
	Series(ctx context.Context, username string) ([]dto.SeriesPoint, error)
}
