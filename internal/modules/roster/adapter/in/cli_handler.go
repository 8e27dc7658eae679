package in

import (
	"context"

	"pokerlog/internal/modules/roster/dto"
	rosterin "pokerlog/internal/modules/roster/port/in"
)

type CLIHandler struct {
	usecase rosterin.Usecase
}

func NewCLIHandler(usecase rosterin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) CreateUser(ctx context.Context, name string) (dto.UserOutput, error) {
	return h.usecase.CreateUser(ctx, name)
}

func (h CLIHandler) ListUsers(ctx context.Context) ([]dto.UserOutput, error) {
	return h.usecase.ListUsers(ctx)
}

func (h CLIHandler) SwitchUser(ctx context.Context, name string) error {
	return h.usecase.SwitchUser(ctx, name)
}

func (h CLIHandler) CurrentUser(ctx context.Context) (dto.UserOutput, error) {
	return h.usecase.CurrentUser(ctx)
}

func (h CLIHandler) AddTag(ctx context.Context, username, tag string) (dto.SaveOutput, error) {
	return h.usecase.AddTag(ctx, username, tag)
}

func (h CLIHandler) Export(ctx context.Context, username string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, username)
}
