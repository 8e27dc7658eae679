package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pokerlog/internal/modules/roster/domain"
	rosterout "pokerlog/internal/modules/roster/port/out"
	apperrors "pokerlog/internal/platform/errors"
	"pokerlog/internal/platform/kv"
)

const (
	usersKey       = "users"
	currentUserKey = "currentUser"
)

// KVUserStore keeps the whole user map under one key and the active
// username under another, the two-key layout the tracker has always used.
type KVUserStore struct {
	store kv.Store
}

func NewKVUserStore(store kv.Store) rosterout.UserStore {
	return &KVUserStore{store: store}
}

func (s *KVUserStore) LoadAll(ctx context.Context) (map[string]domain.User, error) {
	payload, err := s.store.Get(ctx, usersKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return map[string]domain.User{}, nil
		}
		return nil, err
	}
	users := map[string]domain.User{}
	if err := json.Unmarshal([]byte(payload), &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (s *KVUserStore) SaveAll(ctx context.Context, users map[string]domain.User) error {
	payload, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	return s.store.Set(ctx, usersKey, string(payload))
}

func (s *KVUserStore) CurrentUser(ctx context.Context) (string, error) {
	return s.store.Get(ctx, currentUserKey)
}

func (s *KVUserStore) SetCurrentUser(ctx context.Context, username string) error {
	return s.store.Set(ctx, currentUserKey, username)
}
