package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"pokerlog/internal/modules/journal/domain"
	"pokerlog/internal/modules/journal/dto"
	journalin "pokerlog/internal/modules/journal/port/in"
	journalout "pokerlog/internal/modules/journal/port/out"
	"pokerlog/internal/modules/journal/service"
	rosterin "pokerlog/internal/modules/roster/port/in"
	apperrors "pokerlog/internal/platform/errors"
)

type Interactor struct {
	svc       *service.SessionService
	roster    rosterin.Usecase
	projector journalout.IndexProjector
	photos    journalout.PhotoStore
	exporter  journalout.NoteExporter
	logger    *logrus.Logger
	maxPhotos int
}

func NewInteractor(
	svc *service.SessionService,
	roster rosterin.Usecase,
	projector journalout.IndexProjector,
	photos journalout.PhotoStore,
	exporter journalout.NoteExporter,
	logger *logrus.Logger,
	maxPhotos int,
) journalin.Usecase {
	return &Interactor{
		svc:       svc,
		roster:    roster,
		projector: projector,
		photos:    photos,
		exporter:  exporter,
		logger:    logger,
		maxPhotos: maxPhotos,
	}
}

func (i *Interactor) NewForm(_ context.Context) (dto.Form, error) {
	return fromDomainForm(i.svc.NewForm()), nil
}

func (i *Interactor) EditForm(ctx context.Context, username, id string) (dto.Form, error) {
	record, err := i.roster.GetSession(ctx, username, id)
	if err != nil {
		return dto.Form{}, err
	}
	session, err := sessionFromRecord(record)
	if err != nil {
		return dto.Form{}, err
	}
	return fromDomainForm(domain.FormFromSession(session)), nil
}

func (i *Interactor) Save(ctx context.Context, input dto.SaveInput) (dto.SaveOutput, error) {
	if input.Username == "" {
		return dto.SaveOutput{}, apperrors.ErrNoCurrentUser
	}
	session, err := i.svc.Build(toDomainForm(input.Form))
	if err != nil {
		return dto.SaveOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	saved, err := i.roster.UpsertSession(ctx, input.Username, recordFromSession(session))
	if err != nil {
		return dto.SaveOutput{}, err
	}
	// The projection is a read model; a failed index write only degrades
	// listings until the next reindex.
	if err := i.projector.Upsert(ctx, input.Username, session); err != nil && i.logger != nil {
		i.logger.WithError(err).Warn("session index upsert failed")
	}
	return dto.SaveOutput{SessionID: session.ID, NetProfit: session.NetProfit, Warning: saved.Warning}, nil
}

func (i *Interactor) Delete(ctx context.Context, username, id string) (dto.SaveOutput, error) {
	deleted, err := i.roster.DeleteSession(ctx, username, id)
	if err != nil {
		return dto.SaveOutput{}, err
	}
	if err := i.projector.Delete(ctx, username, id); err != nil && i.logger != nil {
		i.logger.WithError(err).Warn("session index delete failed")
	}
	return dto.SaveOutput{SessionID: id, Warning: deleted.Warning}, nil
}

func (i *Interactor) List(ctx context.Context, username string) ([]dto.SessionView, error) {
	entries, err := i.projector.List(ctx, username)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionView, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.SessionView{
			ID:              entry.ID,
			Date:            entry.Date,
			GameType:        entry.GameType,
			Location:        entry.Location,
			Stakes:          entry.Stakes,
			NetProfit:       entry.NetProfit,
			DurationMinutes: entry.DurationMinutes,
		})
	}
	return out, nil
}

// AttachPhoto ingests one capture unless the per-session cap is already
// reached. The caller appends the returned path to its form.
func (i *Interactor) AttachPhoto(ctx context.Context, input dto.AttachInput) (string, error) {
	if input.ExistingCount >= i.maxPhotos {
		return "", fmt.Errorf("%w: %d photos per session", apperrors.ErrPhotoLimit, i.maxPhotos)
	}
	return i.photos.Attach(ctx, input.SourcePath)
}

// Reindex rebuilds the sqlite projection from the stored user records.
func (i *Interactor) Reindex(ctx context.Context) error {
	if err := i.projector.Reset(ctx); err != nil {
		return err
	}
	users, err := i.roster.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, user := range users {
		records, err := i.roster.ListSessions(ctx, user.Username)
		if err != nil {
			return err
		}
		for _, record := range records {
			session, err := sessionFromRecord(record)
			if err != nil {
				return fmt.Errorf("reindex %s/%s: %w", user.Username, record.ID, err)
			}
			if err := i.projector.Upsert(ctx, user.Username, session); err != nil {
				return err
			}
		}
	}
	return nil
}

func (i *Interactor) ExportNotes(ctx context.Context, username string) ([]string, error) {
	records, err := i.roster.ListSessions(ctx, username)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(records))
	for _, record := range records {
		session, err := sessionFromRecord(record)
		if err != nil {
			return nil, err
		}
		path, err := i.exporter.Write(ctx, username, session)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
