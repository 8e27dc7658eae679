package service

import (
	"pokerlog/internal/modules/stats/domain"
	"pokerlog/internal/platform/clock"
)

// StatsService anchors the aggregation window on the wall clock.
type StatsService struct {
	clock clock.Clock
}

func NewStatsService(clock clock.Clock) *StatsService {
	return &StatsService{clock: clock}
}

func (s *StatsService) Summarize(facts []domain.SessionFact, windowDays int) domain.Report {
	return domain.Summarize(facts, windowDays, s.clock.Now())
}

func (s *StatsService) Series(facts []domain.SessionFact) []domain.SeriesPoint {
	return domain.CumulativeSeries(facts)
}
