package service

import (
	"context"
	"fmt"
	"strings"

	"pokerlog/internal/modules/roster/domain"
	rosterout "pokerlog/internal/modules/roster/port/out"
	"pokerlog/internal/platform/clock"
	apperrors "pokerlog/internal/platform/errors"
)

type UserService struct {
	clock clock.Clock
	store rosterout.UserStore
}

func NewUserService(clock clock.Clock, store rosterout.UserStore) *UserService {
	return &UserService{clock: clock, store: store}
}

// CreateUser looks the name up first and only creates when absent, so
// re-entering an existing name never resets a record.
func (s *UserService) CreateUser(ctx context.Context, name string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, fmt.Errorf("%w: username is required", apperrors.ErrInvalidInput)
	}
	users, err := s.store.LoadAll(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if existing, ok := users[name]; ok {
		if err := s.store.SetCurrentUser(ctx, name); err != nil {
			return domain.User{}, err
		}
		return existing, nil
	}
	user, err := domain.NewUser(name, s.clock.Now())
	if err != nil {
		return domain.User{}, err
	}
	users[name] = user
	saveErr := s.store.SaveAll(ctx, users)
	if err := s.store.SetCurrentUser(ctx, name); err != nil {
		return domain.User{}, err
	}
	return user, saveErr
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, string, error) {
	users, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, "", err
	}
	current, err := s.store.CurrentUser(ctx)
	if err != nil && err != apperrors.ErrNotFound {
		return nil, "", err
	}
	out := make([]domain.User, 0, len(users))
	for _, user := range users {
		out = append(out, user)
	}
	return out, current, nil
}

func (s *UserService) SwitchUser(ctx context.Context, name string) error {
	user, err := s.Get(ctx, name)
	if err != nil {
		return err
	}
	return s.store.SetCurrentUser(ctx, user.Username)
}

func (s *UserService) Current(ctx context.Context) (domain.User, error) {
	name, err := s.store.CurrentUser(ctx)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return domain.User{}, apperrors.ErrNoCurrentUser
		}
		return domain.User{}, err
	}
	return s.Get(ctx, name)
}

func (s *UserService) Get(ctx context.Context, name string) (domain.User, error) {
	users, err := s.store.LoadAll(ctx)
	if err != nil {
		return domain.User{}, err
	}
	user, ok := users[strings.TrimSpace(name)]
	if !ok {
		return domain.User{}, fmt.Errorf("user %s: %w", name, apperrors.ErrNotFound)
	}
	return user, nil
}

// Mutate applies fn to the named user and writes the whole map back. The
// returned user reflects the mutation even when the write itself failed;
// the caller decides what a dropped write means.
func (s *UserService) Mutate(ctx context.Context, name string, fn func(*domain.User)) (domain.User, error) {
	users, err := s.store.LoadAll(ctx)
	if err != nil {
		return domain.User{}, err
	}
	user, ok := users[strings.TrimSpace(name)]
	if !ok {
		return domain.User{}, fmt.Errorf("user %s: %w", name, apperrors.ErrNotFound)
	}
	fn(&user)
	users[user.Username] = user
	return user, s.store.SaveAll(ctx, users)
}
