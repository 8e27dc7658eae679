package dto

// Summary mirrors one aggregation bucket for display.
type Summary struct {
	Sessions       int
	NetProfit      float64
	Hours          float64
	HourlyOverall  float64
	WinRatePercent float64
}

type Report struct {
	Username   string
	WindowDays int
	AllTime    Summary
	Recent     Summary
	Cash       Summary
	Tournament Summary
}

// SeriesPoint is one step of the cumulative profit chart.
type SeriesPoint struct {
	Date       string
	Combined   float64
	Cash       float64
	Tournament float64
}
