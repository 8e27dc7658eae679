package dto

import "time"

// SessionRecord mirrors the stored session shape across the module
// boundary. Pointer fields belong to exactly one game type variant.
type SessionRecord struct {
	ID        string
	GameType  string
	Date      string
	StartTime string
	EndTime   string
	Location  string
	Stakes    string

	BuyIn   *float64
	CashOut *float64

	BuyinAmount    *float64
	BuyinFee       *float64
	Reentries      *int
	FinishPosition *int
	FieldSize      *int
	Prize          *float64

	DurationMinutes int
	NetProfit       float64
	HourlyRate      *float64
	ROIPercent      *float64

	TableQuality int
	MentalGame   string
	Tags         []string
	Notes        string
	Photos       []string
}

type UserOutput struct {
	Username     string
	CreatedAt    time.Time
	SessionCount int
	Locations    []string
	Tags         []string
	Current      bool
}

// SaveOutput reports a completed mutation. Warning is set when the write to
// the local store was dropped (quota); in-memory state already moved on.
type SaveOutput struct {
	Username string
	Warning  string
}

type ExportOutput struct {
	Username string
	Payload  string
}
