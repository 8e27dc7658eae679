package domain

import (
	"fmt"
	"time"
)

type GameType string

const (
	GameTypeCash       GameType = "cash"
	GameTypeTournament GameType = "tournament"
)

func (g GameType) Validate() error {
	switch g {
	case GameTypeCash, GameTypeTournament:
		return nil
	default:
		return fmt.Errorf("unsupported game type %q", string(g))
	}
}

const DateLayout = "2006-01-02"

// Session is the stored shape of one logged session. Variant-only fields
// are pointers and stay nil outside their game type; json names follow the
// layout the store has always used.
type Session struct {
	ID        string   `json:"id"`
	GameType  GameType `json:"game_type"`
	Date      string   `json:"date"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Location  string   `json:"location"`
	Stakes    string   `json:"stakes"`

	// cash variant
	BuyIn   *float64 `json:"buy_in,omitempty"`
	CashOut *float64 `json:"cash_out,omitempty"`

	// tournament variant
	BuyinAmount    *float64 `json:"buyin_amount,omitempty"`
	BuyinFee       *float64 `json:"buyin_fee,omitempty"`
	Reentries      *int     `json:"reentries,omitempty"`
	FinishPosition *int     `json:"finish_position,omitempty"`
	FieldSize      *int     `json:"field_size,omitempty"`
	Prize          *float64 `json:"prize,omitempty"`

	// derived
	DurationMinutes int      `json:"duration_minutes"`
	NetProfit       float64  `json:"net_profit"`
	HourlyRate      *float64 `json:"hourly_rate,omitempty"`
	ROIPercent      *float64 `json:"roi_percent,omitempty"`

	// metadata
	TableQuality int      `json:"table_quality"`
	MentalGame   string   `json:"mental_game"`
	Tags         []string `json:"tags"`
	Notes        string   `json:"notes"`
	Photos       []string `json:"photos,omitempty"`
}

// Day parses the calendar date. The zero time flags an unparsable date;
// aggregation treats such sessions as outside every recency window.
func (s Session) Day() time.Time {
	day, err := time.Parse(DateLayout, s.Date)
	if err != nil {
		return time.Time{}
	}
	return day
}

// Validate enforces the variant invariant: a session never carries the
// other game type's exclusive fields.
func (s Session) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if err := s.GameType.Validate(); err != nil {
		return err
	}
	switch s.GameType {
	case GameTypeCash:
		if s.BuyinAmount != nil || s.BuyinFee != nil || s.Reentries != nil ||
			s.FinishPosition != nil || s.FieldSize != nil || s.Prize != nil || s.ROIPercent != nil {
			return fmt.Errorf("cash session carries tournament fields")
		}
	case GameTypeTournament:
		if s.BuyIn != nil || s.CashOut != nil || s.HourlyRate != nil {
			return fmt.Errorf("tournament session carries cash fields")
		}
	}
	if s.TableQuality < 0 || s.TableQuality > 5 {
		return fmt.Errorf("table quality must be 0..5")
	}
	switch s.MentalGame {
	case "", "A", "B", "C":
	default:
		return fmt.Errorf("mental game grade must be A, B or C")
	}
	return nil
}
