package in

import (
	"context"

	"pokerlog/internal/modules/journal/dto"
)

type Usecase interface {
	// NewForm returns the blank entry form for today.
	NewForm(ctx context.Context) (dto.Form, error)
	// EditForm loads an existing session into a form that will replace it.
	EditForm(ctx context.Context, username, id string) (dto.Form, error)
	Save(ctx context.Context, input dto.SaveInput) (dto.SaveOutput, error)
	Delete(ctx context.Context, username, id string) (dto.SaveOutput, error)
	List(ctx context.Context, username string) ([]dto.SessionView, error)
	AttachPhoto(ctx context.Context, input dto.AttachInput) (string, error)
	Reindex(ctx context.Context) error
	ExportNotes(ctx context.Context, username string) ([]string, error)
}
