package in

import (
	"context"

	"pokerlog/internal/modules/journal/dto"
	journalin "pokerlog/internal/modules/journal/port/in"
)

type CLIHandler struct {
	usecase journalin.Usecase
}

func NewCLIHandler(usecase journalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) NewForm(ctx context.Context) (dto.Form, error) {
	return h.usecase.NewForm(ctx)
}

func (h CLIHandler) Save(ctx context.Context, input dto.SaveInput) (dto.SaveOutput, error) {
	return h.usecase.Save(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, username, id string) (dto.SaveOutput, error) {
	return h.usecase.Delete(ctx, username, id)
}

func (h CLIHandler) List(ctx context.Context, username string) ([]dto.SessionView, error) {
	return h.usecase.List(ctx, username)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}

func (h CLIHandler) ExportNotes(ctx context.Context, username string) ([]string, error) {
	return h.usecase.ExportNotes(ctx, username)
}
