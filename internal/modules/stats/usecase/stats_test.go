package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokerlog/internal/modules/stats/domain"
	"pokerlog/internal/modules/stats/service"
	"pokerlog/internal/modules/stats/usecase"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type staticFacts struct{ facts []domain.SessionFact }

func (s staticFacts) Facts(_ context.Context, _ string) ([]domain.SessionFact, error) {
	return s.facts, nil
}

func TestReportFallsBackToDefaultWindow(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	facts := staticFacts{facts: []domain.SessionFact{
		{Day: now.AddDate(0, 0, -5), GameType: "cash", NetProfit: 100, DurationMinutes: 60},
		{Day: now.AddDate(0, 0, -45), GameType: "cash", NetProfit: 100, DurationMinutes: 60},
	}}
	stats := usecase.NewInteractor(service.NewStatsService(fakeClock{now: now}), facts, 30)

	report, err := stats.Report(context.Background(), "alice", 0)
	require.NoError(t, err)
	assert.Equal(t, 30, report.WindowDays)
	assert.Equal(t, 1, report.Recent.Sessions)
	assert.Equal(t, 2, report.AllTime.Sessions)

	wide, err := stats.Report(context.Background(), "alice", 60)
	require.NoError(t, err)
	assert.Equal(t, 2, wide.Recent.Sessions)
}

func TestSeriesPassesThroughOrdered(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	facts := staticFacts{facts: []domain.SessionFact{
		{Day: now.AddDate(0, 0, -1), GameType: "tournament", NetProfit: -50},
		{Day: now.AddDate(0, 0, -3), GameType: "cash", NetProfit: 200},
	}}
	stats := usecase.NewInteractor(service.NewStatsService(fakeClock{now: now}), facts, 30)

	points, err := stats.Series(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.InDelta(t, 200, points[0].Combined, 1e-9)
	assert.InDelta(t, 150, points[1].Combined, 1e-9)
	assert.InDelta(t, -50, points[1].Tournament, 1e-9)
}
