package in

import (
	"context"

	"pokerlog/internal/modules/roster/dto"
)

type Usecase interface {
	// CreateUser is lookup-or-create: an existing name is selected, never
	// reset. The created or found user becomes current.
	CreateUser(ctx context.Context, name string) (dto.UserOutput, error)
	ListUsers(ctx context.Context) ([]dto.UserOutput, error)
	SwitchUser(ctx context.Context, name string) error
	CurrentUser(ctx context.Context) (dto.UserOutput, error)
	AddTag(ctx context.Context, username, tag string) (dto.SaveOutput, error)

	UpsertSession(ctx context.Context, username string, record dto.SessionRecord) (dto.SaveOutput, error)
	DeleteSession(ctx context.Context, username, id string) (dto.SaveOutput, error)
	ListSessions(ctx context.Context, username string) ([]dto.SessionRecord, error)
	GetSession(ctx context.Context, username, id string) (dto.SessionRecord, error)

	Export(ctx context.Context, username string) (dto.ExportOutput, error)
}
