package domain

import (
	"sort"
	"time"
)

const DateLayout = "2006-01-02"

// SessionFact is the minimal slice of a session that aggregation needs.
// A zero Day means the stored date failed to parse; such facts count toward
// totals but fall outside every recency window.
type SessionFact struct {
	Day             time.Time
	GameType        string
	NetProfit       float64
	DurationMinutes int
}

// Summary holds the headline numbers for one bucket of sessions.
type Summary struct {
	Sessions      int
	NetProfit     float64
	TotalMinutes  int
	WinningCount  int
	HourlyOverall float64
}

// Hours reports the bucket's table time in hours.
func (s Summary) Hours() float64 {
	return float64(s.TotalMinutes) / 60
}

// WinRate reports the share of winning sessions, 0 for an empty bucket.
func (s Summary) WinRate() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.WinningCount) / float64(s.Sessions) * 100
}

func (s *Summary) add(fact SessionFact) {
	s.Sessions++
	s.NetProfit += fact.NetProfit
	s.TotalMinutes += fact.DurationMinutes
	if fact.NetProfit > 0 {
		s.WinningCount++
	}
	if s.TotalMinutes > 0 {
		s.HourlyOverall = s.NetProfit / (float64(s.TotalMinutes) / 60)
	} else {
		s.HourlyOverall = 0
	}
}

// Report is the dashboard aggregate: lifetime totals plus a recent window,
// each split by game type.
type Report struct {
	AllTime    Summary
	Recent     Summary
	Cash       Summary
	Tournament Summary
	WindowDays int
}

// Summarize folds the facts into a report. The recent bucket covers the
// inclusive range [today-windowDays, today]; future-dated sessions are
// outside it.
func Summarize(facts []SessionFact, windowDays int, today time.Time) Report {
	report := Report{WindowDays: windowDays}
	today = truncateDay(today)
	cutoff := today.AddDate(0, 0, -windowDays)
	for _, fact := range facts {
		report.AllTime.add(fact)
		switch fact.GameType {
		case "cash":
			report.Cash.add(fact)
		case "tournament":
			report.Tournament.add(fact)
		}
		if inWindow(fact.Day, cutoff, today) {
			report.Recent.add(fact)
		}
	}
	return report
}

func inWindow(day, cutoff, today time.Time) bool {
	if day.IsZero() {
		return false
	}
	day = truncateDay(day)
	return !day.Before(cutoff) && !day.After(today)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SeriesPoint is one day on the cumulative profit chart. Each line carries
// the running total of its bucket up to and including that day.
type SeriesPoint struct {
	Date       string
	Combined   float64
	Cash       float64
	Tournament float64
}

// CumulativeSeries orders the facts by day, ascending, and accumulates the
// three profit lines. Same-day sessions stay separate points in their
// original relative order, matching the log's own granularity.
func CumulativeSeries(facts []SessionFact) []SeriesPoint {
	ordered := make([]SessionFact, len(facts))
	copy(ordered, facts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Day.Before(ordered[j].Day)
	})

	points := make([]SeriesPoint, 0, len(ordered))
	var combined, cash, tournament float64
	for _, fact := range ordered {
		combined += fact.NetProfit
		switch fact.GameType {
		case "cash":
			cash += fact.NetProfit
		case "tournament":
			tournament += fact.NetProfit
		}
		points = append(points, SeriesPoint{
			Date:       fact.Day.Format(DateLayout),
			Combined:   combined,
			Cash:       cash,
			Tournament: tournament,
		})
	}
	return points
}
