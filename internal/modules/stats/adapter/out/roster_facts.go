package out

import (
	"context"
	"time"

	rosterin "pokerlog/internal/modules/roster/port/in"
	"pokerlog/internal/modules/stats/domain"
)

// RosterFactSource projects stored session records into aggregation facts.
type RosterFactSource struct {
	roster rosterin.Usecase
}

func NewRosterFactSource(roster rosterin.Usecase) *RosterFactSource {
	return &RosterFactSource{roster: roster}
}

func (s *RosterFactSource) Facts(ctx context.Context, username string) ([]domain.SessionFact, error) {
	records, err := s.roster.ListSessions(ctx, username)
	if err != nil {
		return nil, err
	}
	facts := make([]domain.SessionFact, 0, len(records))
	for _, record := range records {
		// Unparsable dates become the zero time, which aggregation keeps
		// out of the recency window.
		day, err := time.Parse(domain.DateLayout, record.Date)
		if err != nil {
			day = time.Time{}
		}
		facts = append(facts, domain.SessionFact{
			Day:             day,
			GameType:        record.GameType,
			NetProfit:       record.NetProfit,
			DurationMinutes: record.DurationMinutes,
		})
	}
	return facts, nil
}
