package domain

import (
	"fmt"
	"strconv"
	"strings"
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

const minutesPerDay = 24 * 60

// ClockTime is a wall-clock time of day. Sessions only record hour:minute;
// the calendar day lives on the session itself.
type ClockTime struct {
	Hour   int
	Minute int
}

func ParseClock(value string) (ClockTime, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("time %q must be HH:MM", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("time %q has a bad hour", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("time %q has a bad minute", value)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

func (c ClockTime) TotalMinutes() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ComputeDuration returns elapsed minutes between two times of day,
// wrapping past midnight when the end reads earlier than the start. Equal
// times mean a zero-length session, not a full day.
func ComputeDuration(start, end ClockTime) int {
	minutes := end.TotalMinutes() - start.TotalMinutes()
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return minutes
}

// ParseAmount reads a user-entered currency amount. Empty or malformed
// input counts as zero so a half-filled form still computes.
func ParseAmount(value string) float64 {
	amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return amount
}

// ParseCount reads a user-entered non-negative integer, zero on anything
// malformed or negative.
func ParseCount(value string) int {
	count, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || count < 0 {
		return 0
	}
	return count
}

// CashOutcome derives net profit and hourly rate for a cash session. A
// zero-duration session reports a zero rate rather than dividing by zero.
func CashOutcome(buyIn, cashOut float64, durationMinutes int) (netProfit, hourlyRate float64) {
	netProfit = cashOut - buyIn
	if durationMinutes > 0 {
		hourlyRate = netProfit / (float64(durationMinutes) / 60)
	}
	return netProfit, hourlyRate
}

// TournamentOutcome derives net profit, ROI and total invested for a
// tournament session. Every re-entry costs the same buy-in plus fee as the
// first bullet.
func TournamentOutcome(buyinAmount, buyinFee float64, reentries int, prize float64) (netProfit, roiPercent, totalInvested float64) {
	perEntry := buyinAmount + buyinFee
	totalInvested = perEntry * float64(1+reentries)
	netProfit = prize - totalInvested
	if totalInvested > 0 {
		roiPercent = netProfit / totalInvested * 100
	}
	return netProfit, roiPercent, totalInvested
}

type CashDetails struct {
	BuyIn      float64
	CashOut    float64
	HourlyRate float64
}

type TournamentDetails struct {
	BuyinAmount    float64
	BuyinFee       float64
	Reentries      int
	FinishPosition int
	FieldSize      int
	Prize          float64
	TotalInvested  float64
	ROIPercent     float64
}

// Session is one computed log entry. Exactly one of Cash/Tournament is set,
// matching GameType.
type Session struct {
	ID       string
	GameType GameType
	Date     time.Time
	Start    ClockTime
	End      ClockTime
	Location string
	Stakes   string

	Cash       *CashDetails
	Tournament *TournamentDetails

	DurationMinutes int
	NetProfit       float64

	TableQuality int
	MentalGame   string
	Tags         []string
	Notes        string
	Photos       []string
}

func (s Session) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if err := s.GameType.Validate(); err != nil {
		return err
	}
	if s.Date.IsZero() {
		return fmt.Errorf("session date is required")
	}
	switch s.GameType {
	case GameTypeCash:
		if s.Cash == nil || s.Tournament != nil {
			return fmt.Errorf("cash session must carry exactly the cash payload")
		}
	case GameTypeTournament:
		if s.Tournament == nil || s.Cash != nil {
			return fmt.Errorf("tournament session must carry exactly the tournament payload")
		}
	}
	return nil
}
