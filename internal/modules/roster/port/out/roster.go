package out

import (
	"context"

	"pokerlog/internal/modules/roster/domain"
)

type UserStore interface {
	LoadAll(ctx context.Context) (map[string]domain.User, error)
	SaveAll(ctx context.Context, users map[string]domain.User) error
	CurrentUser(ctx context.Context) (string, error)
	SetCurrentUser(ctx context.Context, username string) error
}

// Notifier surfaces dropped writes to the player outside the TUI frame.
type Notifier interface {
	Alert(title, message string)
}
