package in

import (
	"context"

	"pokerlog/internal/modules/stats/dto"
	statsin "pokerlog/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Report(ctx context.Context, username string, windowDays int) (dto.Report, error) {
	return h.usecase.Report(ctx, username, windowDays)
}

func (h CLIHandler) Series(ctx context.Context, username string) ([]dto.SeriesPoint, error) {
	return h.usecase.Series(ctx, username)
}
