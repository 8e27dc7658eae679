package out

import (
	"context"

	"pokerlog/internal/modules/journal/domain"
)

// IndexProjector is the rebuildable read model behind history listings.
// It is never the source of truth; reindex recreates it from the store.
type IndexProjector interface {
	Upsert(ctx context.Context, username string, session domain.Session) error
	Delete(ctx context.Context, username, id string) error
	Reset(ctx context.Context) error
	List(ctx context.Context, username string) ([]domain.IndexEntry, error)
}

// PhotoStore ingests a photo file and returns the stored (downscaled) path.
type PhotoStore interface {
	Attach(ctx context.Context, sourcePath string) (string, error)
}

// NoteExporter renders one session as a standalone note.
type NoteExporter interface {
	Write(ctx context.Context, username string, session domain.Session) (string, error)
}
