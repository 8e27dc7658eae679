package usecase

import (
	"context"

	"pokerlog/internal/modules/stats/domain"
	"pokerlog/internal/modules/stats/dto"
	statsin "pokerlog/internal/modules/stats/port/in"
	statsout "pokerlog/internal/modules/stats/port/out"
	"pokerlog/internal/modules/stats/service"
)

type Interactor struct {
	svc               *service.StatsService
	facts             statsout.FactSource
	defaultWindowDays int
}

func NewInteractor(svc *service.StatsService, facts statsout.FactSource, defaultWindowDays int) statsin.Usecase {
	return &Interactor{svc: svc, facts: facts, defaultWindowDays: defaultWindowDays}
}

func (i *Interactor) Report(ctx context.Context, username string, windowDays int) (dto.Report, error) {
	if windowDays <= 0 {
		windowDays = i.defaultWindowDays
	}
	facts, err := i.facts.Facts(ctx, username)
	if err != nil {
		return dto.Report{}, err
	}
	report := i.svc.Summarize(facts, windowDays)
	return dto.Report{
		Username:   username,
		WindowDays: report.WindowDays,
		AllTime:    toSummary(report.AllTime),
		Recent:     toSummary(report.Recent),
		Cash:       toSummary(report.Cash),
		Tournament: toSummary(report.Tournament),
	}, nil
}

func (i *Interactor) Series(ctx context.Context, username string) ([]dto.SeriesPoint, error) {
	facts, err := i.facts.Facts(ctx, username)
	if err != nil {
		return nil, err
	}
	points := i.svc.Series(facts)
	out := make([]dto.SeriesPoint, 0, len(points))
	for _, point := range points {
		out = append(out, dto.SeriesPoint{
			Date:       point.Date,
			Combined:   point.Combined,
			Cash:       point.Cash,
			Tournament: point.Tournament,
		})
	}
	return out, nil
}

func toSummary(summary domain.Summary) dto.Summary {
	return dto.Summary{
		Sessions:       summary.Sessions,
		NetProfit:      summary.NetProfit,
		Hours:          summary.Hours(),
		HourlyOverall:  summary.HourlyOverall,
		WinRatePercent: summary.WinRate(),
	}
}
