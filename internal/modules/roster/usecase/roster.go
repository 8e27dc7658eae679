package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"pokerlog/internal/modules/roster/domain"
	"pokerlog/internal/modules/roster/dto"
	rosterin "pokerlog/internal/modules/roster/port/in"
	rosterout "pokerlog/internal/modules/roster/port/out"
	"pokerlog/internal/modules/roster/service"
	apperrors "pokerlog/internal/platform/errors"
)

// quotaWarning matches the message the tracker has always shown when the
// local store fills up.
const quotaWarning = "Local storage is full. Delete some old sessions or remove photos."

type Interactor struct {
	svc      *service.UserService
	notifier rosterout.Notifier
	logger   *logrus.Logger
}

func NewInteractor(svc *service.UserService, notifier rosterout.Notifier, logger *logrus.Logger) rosterin.Usecase {
	return &Interactor{svc: svc, notifier: notifier, logger: logger}
}

func (i *Interactor) CreateUser(ctx context.Context, name string) (dto.UserOutput, error) {
	user, err := i.svc.CreateUser(ctx, name)
	if err != nil && !errors.Is(err, apperrors.ErrStorageQuota) {
		return dto.UserOutput{}, err
	}
	i.warnOnQuota(err, "create user")
	return toUserOutput(user, true), nil
}

func (i *Interactor) ListUsers(ctx context.Context) ([]dto.UserOutput, error) {
	users, current, err := i.svc.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserOutput, 0, len(users))
	for _, user := range users {
		out = append(out, toUserOutput(user, user.Username == current))
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Username < out[b].Username })
	return out, nil
}

func (i *Interactor) SwitchUser(ctx context.Context, name string) error {
	return i.svc.SwitchUser(ctx, name)
}

func (i *Interactor) CurrentUser(ctx context.Context) (dto.UserOutput, error) {
	user, err := i.svc.Current(ctx)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toUserOutput(user, true), nil
}

func (i *Interactor) AddTag(ctx context.Context, username, tag string) (dto.SaveOutput, error) {
	_, err := i.svc.Mutate(ctx, username, func(user *domain.User) {
		user.AddTag(tag)
	})
	return i.saveOutput(username, err, "add tag")
}

func (i *Interactor) UpsertSession(ctx context.Context, username string, record dto.SessionRecord) (dto.SaveOutput, error) {
	session := toDomainSession(record)
	if err := session.Validate(); err != nil {
		return dto.SaveOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	_, err := i.svc.Mutate(ctx, username, func(user *domain.User) {
		user.UpsertSession(session)
	})
	return i.saveOutput(username, err, "save session")
}

func (i *Interactor) DeleteSession(ctx context.Context, username, id string) (dto.SaveOutput, error) {
	_, err := i.svc.Mutate(ctx, username, func(user *domain.User) {
		user.DeleteSession(id)
	})
	return i.saveOutput(username, err, "delete session")
}

func (i *Interactor) ListSessions(ctx context.Context, username string) ([]dto.SessionRecord, error) {
	user, err := i.svc.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionRecord, 0, len(user.Sessions))
	for _, session := range user.Sessions {
		out = append(out, fromDomainSession(session))
	}
	return out, nil
}

func (i *Interactor) GetSession(ctx context.Context, username, id string) (dto.SessionRecord, error) {
	user, err := i.svc.Get(ctx, username)
	if err != nil {
		return dto.SessionRecord{}, err
	}
	session, ok := user.FindSession(id)
	if !ok {
		return dto.SessionRecord{}, fmt.Errorf("session %s: %w", id, apperrors.ErrNotFound)
	}
	return fromDomainSession(session), nil
}

// Export serializes one user's full record, the same structure the store
// keeps, for the player to save elsewhere.
func (i *Interactor) Export(ctx context.Context, username string) (dto.ExportOutput, error) {
	user, err := i.svc.Get(ctx, username)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	payload, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return dto.ExportOutput{}, fmt.Errorf("marshal user record: %w", err)
	}
	return dto.ExportOutput{Username: user.Username, Payload: string(payload)}, nil
}

// saveOutput converts a quota failure into a warning: the mutation already
// happened in memory and the next successful save will persist it.
func (i *Interactor) saveOutput(username string, err error, op string) (dto.SaveOutput, error) {
	if err == nil {
		return dto.SaveOutput{Username: username}, nil
	}
	if errors.Is(err, apperrors.ErrStorageQuota) {
		i.warnOnQuota(err, op)
		return dto.SaveOutput{Username: username, Warning: quotaWarning}, nil
	}
	return dto.SaveOutput{}, err
}

func (i *Interactor) warnOnQuota(err error, op string) {
	if err == nil || !errors.Is(err, apperrors.ErrStorageQuota) {
		return
	}
	if i.logger != nil {
		i.logger.WithError(err).Warnf("%s: write dropped", op)
	}
	if i.notifier != nil {
		i.notifier.Alert("pokerlog", quotaWarning)
	}
}

func toUserOutput(user domain.User, current bool) dto.UserOutput {
	return dto.UserOutput{
		Username:     user.Username,
		CreatedAt:    user.CreatedAt,
		SessionCount: len(user.Sessions),
		Locations:    append([]string(nil), user.Locations...),
		Tags:         append([]string(nil), user.TagVocabulary...),
		Current:      current,
	}
}

func toDomainSession(record dto.SessionRecord) domain.Session {
	return domain.Session{
		ID:              record.ID,
		GameType:        domain.GameType(record.GameType),
		Date:            record.Date,
		StartTime:       record.StartTime,
		EndTime:         record.EndTime,
		Location:        record.Location,
		Stakes:          record.Stakes,
		BuyIn:           record.BuyIn,
		CashOut:         record.CashOut,
		BuyinAmount:     record.BuyinAmount,
		BuyinFee:        record.BuyinFee,
		Reentries:       record.Reentries,
		FinishPosition:  record.FinishPosition,
		FieldSize:       record.FieldSize,
		Prize:           record.Prize,
		DurationMinutes: record.DurationMinutes,
		NetProfit:       record.NetProfit,
		HourlyRate:      record.HourlyRate,
		ROIPercent:      record.ROIPercent,
		TableQuality:    record.TableQuality,
		MentalGame:      record.MentalGame,
		Tags:            record.Tags,
		Notes:           record.Notes,
		Photos:          record.Photos,
	}
}

func fromDomainSession(session domain.Session) dto.SessionRecord {
	return dto.SessionRecord{
		ID:              session.ID,
		GameType:        string(session.GameType),
		Date:            session.Date,
		StartTime:       session.StartTime,
		EndTime:         session.EndTime,
		Location:        session.Location,
		Stakes:          session.Stakes,
		BuyIn:           session.BuyIn,
		CashOut:         session.CashOut,
		BuyinAmount:     session.BuyinAmount,
		BuyinFee:        session.BuyinFee,
		Reentries:       session.Reentries,
		FinishPosition:  session.FinishPosition,
		FieldSize:       session.FieldSize,
		Prize:           session.Prize,
		DurationMinutes: session.DurationMinutes,
		NetProfit:       session.NetProfit,
		HourlyRate:      session.HourlyRate,
		ROIPercent:      session.ROIPercent,
		TableQuality:    session.TableQuality,
		MentalGame:      session.MentalGame,
		Tags:            session.Tags,
		Notes:           session.Notes,
		Photos:          session.Photos,
	}
}
