package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pokerlog/internal/modules/journal/domain"
	"pokerlog/internal/platform/markdown"
)

// MarkdownNoteExporter writes one note per session, yaml frontmatter for the
// structured fields and the free-form notes as body. Files are named
// <date>_<id>.md so a directory listing reads chronologically.
type MarkdownNoteExporter struct {
	dir string
}

func NewMarkdownNoteExporter(dir string) *MarkdownNoteExporter {
	return &MarkdownNoteExporter{dir: dir}
}

func (e *MarkdownNoteExporter) Write(_ context.Context, username string, session domain.Session) (string, error) {
	meta := map[string]any{
		"id":               session.ID,
		"user":             username,
		"game_type":        string(session.GameType),
		"date":             session.Date.Format(domain.DateLayout),
		"start":            session.Start.String(),
		"end":              session.End.String(),
		"duration_minutes": session.DurationMinutes,
		"net_profit":       session.NetProfit,
	}
	if session.Location != "" {
		meta["location"] = session.Location
	}
	if session.Stakes != "" {
		meta["stakes"] = session.Stakes
	}
	if cash := session.Cash; cash != nil {
		meta["buy_in"] = cash.BuyIn
		meta["cash_out"] = cash.CashOut
		meta["hourly_rate"] = cash.HourlyRate
	}
	if tournament := session.Tournament; tournament != nil {
		meta["buyin_amount"] = tournament.BuyinAmount
		meta["buyin_fee"] = tournament.BuyinFee
		meta["reentries"] = tournament.Reentries
		meta["prize"] = tournament.Prize
		meta["roi_percent"] = tournament.ROIPercent
		if tournament.FinishPosition > 0 {
			meta["finish_position"] = tournament.FinishPosition
		}
		if tournament.FieldSize > 0 {
			meta["field_size"] = tournament.FieldSize
		}
	}
	if session.TableQuality > 0 {
		meta["table_quality"] = session.TableQuality
	}
	if session.MentalGame != "" {
		meta["mental_game"] = session.MentalGame
	}
	if len(session.Tags) > 0 {
		meta["tags"] = session.Tags
	}

	body := session.Notes
	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	content, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}

	userDir := filepath.Join(e.dir, username)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("create notes dir: %w", err)
	}
	path := filepath.Join(userDir, fmt.Sprintf("%s_%s.md", session.Date.Format(domain.DateLayout), session.ID))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write note: %w", err)
	}
	return path, nil
}
