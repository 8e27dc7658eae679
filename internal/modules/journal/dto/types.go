package dto

// Form carries the entry view's state across the module boundary. Numeric
// fields stay raw text; leniency is applied when the session is built.
type Form struct {
	EditingID string

	GameType  string
	Date      string
	StartTime string
	EndTime   string
	Location  string
	Stakes    string

	BuyIn   string
	CashOut string

	BuyinAmount    string
	BuyinFee       string
	Reentries      string
	FinishPosition string
	FieldSize      string
	Prize          string

	TableQuality int
	MentalGame   string
	Tags         []string
	Notes        string
	Photos       []string
}

type SaveInput struct {
	Username string
	Form     Form
}

type SaveOutput struct {
	SessionID string
	NetProfit float64
	Warning   string
}

type SessionView struct {
	ID              string
	Date            string
	GameType        string
	Location        string
	Stakes          string
	NetProfit       float64
	DurationMinutes int
}

type AttachInput struct {
	SourcePath    string
	ExistingCount int
}
