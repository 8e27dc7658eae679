package out

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"pokerlog/internal/modules/journal/domain"
)

// SQLiteProjector maintains the session index read model. The schema is
// created on open and dropped wholesale on Reset; the json store remains the
// source of truth.
type SQLiteProjector struct {
	db *sql.DB
}

func NewSQLiteProjector(path string) (*SQLiteProjector, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session index: %w", err)
	}
	projector := &SQLiteProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return projector, nil
}

func (p *SQLiteProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
	id               TEXT NOT NULL,
	username         TEXT NOT NULL,
	date             TEXT NOT NULL,
	game_type        TEXT NOT NULL,
	location         TEXT NOT NULL DEFAULT '',
	stakes           TEXT NOT NULL DEFAULT '',
	net_profit       REAL NOT NULL DEFAULT 0,
	duration_minutes INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (id, username)
);
CREATE INDEX IF NOT EXISTS idx_sessions_user_date ON sessions (username, date DESC);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure session index schema: %w", err)
	}
	return nil
}

func (p *SQLiteProjector) Upsert(ctx context.Context, username string, session domain.Session) error {
	const query = `
INSERT INTO sessions (id, username, date, game_type, location, stakes, net_profit, duration_minutes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id, username) DO UPDATE SET
	date = excluded.date,
	game_type = excluded.game_type,
	location = excluded.location,
	stakes = excluded.stakes,
	net_profit = excluded.net_profit,
	duration_minutes = excluded.duration_minutes
`
	_, err := p.db.ExecContext(ctx, query,
		session.ID,
		username,
		session.Date.Format(domain.DateLayout),
		string(session.GameType),
		session.Location,
		session.Stakes,
		session.NetProfit,
		session.DurationMinutes,
	)
	if err != nil {
		return fmt.Errorf("index session %s: %w", session.ID, err)
	}
	return nil
}

func (p *SQLiteProjector) Delete(ctx context.Context, username, id string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ? AND username = ?`, id, username); err != nil {
		return fmt.Errorf("unindex session %s: %w", id, err)
	}
	return nil
}

func (p *SQLiteProjector) Reset(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("reset session index: %w", err)
	}
	return nil
}

// List returns the user's index rows newest date first. Ties on date keep a
// stable id order so repeated renders do not shuffle.
func (p *SQLiteProjector) List(ctx context.Context, username string) ([]domain.IndexEntry, error) {
	const query = `
SELECT id, date, game_type, location, stakes, net_profit, duration_minutes
FROM sessions
WHERE username = ?
ORDER BY date DESC, id ASC
`
	rows, err := p.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("list session index: %w", err)
	}
	defer rows.Close()

	var entries []domain.IndexEntry
	for rows.Next() {
		var entry domain.IndexEntry
		if err := rows.Scan(&entry.ID, &entry.Date, &entry.GameType, &entry.Location, &entry.Stakes, &entry.NetProfit, &entry.DurationMinutes); err != nil {
			return nil, fmt.Errorf("scan session index row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session index: %w", err)
	}
	return entries, nil
}

func (p *SQLiteProjector) Close() error {
	return p.db.Close()
}
