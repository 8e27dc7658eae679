package domain

import (
	"fmt"
	"strconv"
	"time"
)

const (
	defaultStartTime = "19:00"
	defaultEndTime   = "23:00"
	DateLayout       = "2006-01-02"
)

// Form is the explicit state container behind the entry view: raw text
// exactly as typed, so partially filled numeric fields stay representable.
// The lifecycle is pure: NewForm -> (edits) -> Build, or FormFromSession ->
// (edits) -> Build for an existing entry.
type Form struct {
	EditingID string

	GameType  GameType
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

// NewForm is also the reset transition: a fresh cash form for today,
// pre-set to the usual evening slot.
func NewForm(today time.Time) Form {
	return Form{
		GameType:  GameTypeCash,
		Date:      today.Format(DateLayout),
		StartTime: defaultStartTime,
		EndTime:   defaultEndTime,
		Reentries: "0",
	}
}

// FormFromSession is the edit transition: a form pre-filled from a stored
// session, keeping its id so Build replaces instead of inserting.
func FormFromSession(session Session) Form {
	form := Form{
		EditingID:    session.ID,
		GameType:     session.GameType,
		Date:         session.Date.Format(DateLayout),
		StartTime:    session.Start.String(),
		EndTime:      session.End.String(),
		Location:     session.Location,
		Stakes:       session.Stakes,
		Reentries:    "0",
		TableQuality: session.TableQuality,
		MentalGame:   session.MentalGame,
		Tags:         append([]string(nil), session.Tags...),
		Notes:        session.Notes,
		Photos:       append([]string(nil), session.Photos...),
	}
	if session.Cash != nil {
		form.BuyIn = formatAmount(session.Cash.BuyIn)
		form.CashOut = formatAmount(session.Cash.CashOut)
	}
	if session.Tournament != nil {
		form.BuyinAmount = formatAmount(session.Tournament.BuyinAmount)
		form.BuyinFee = formatAmount(session.Tournament.BuyinFee)
		form.Reentries = strconv.Itoa(session.Tournament.Reentries)
		form.FinishPosition = formatCount(session.Tournament.FinishPosition)
		form.FieldSize = formatCount(session.Tournament.FieldSize)
		form.Prize = formatAmount(session.Tournament.Prize)
	}
	return form
}

// ToggleTag adds the tag if absent, removes it if present.
func (f *Form) ToggleTag(tag string) {
	for i, existing := range f.Tags {
		if existing == tag {
			f.Tags = append(f.Tags[:i], f.Tags[i+1:]...)
			return
		}
	}
	f.Tags = append(f.Tags, tag)
}

// Build computes the session the form describes. Clock and date fields must
// parse; numeric fields are lenient and coerce to zero.
func (f Form) Build(id string) (Session, error) {
	if err := f.GameType.Validate(); err != nil {
		return Session{}, err
	}
	date, err := time.Parse(DateLayout, f.Date)
	if err != nil {
		return Session{}, fmt.Errorf("bad session date %q", f.Date)
	}
	start, err := ParseClock(f.StartTime)
	if err != nil {
		return Session{}, err
	}
	end, err := ParseClock(f.EndTime)
	if err != nil {
		return Session{}, err
	}

	session := Session{
		ID:              id,
		GameType:        f.GameType,
		Date:            date,
		Start:           start,
		End:             end,
		Location:        f.Location,
		Stakes:          f.Stakes,
		DurationMinutes: ComputeDuration(start, end),
		TableQuality:    f.TableQuality,
		MentalGame:      f.MentalGame,
		Tags:            append([]string(nil), f.Tags...),
		Notes:           f.Notes,
		Photos:          append([]string(nil), f.Photos...),
	}

	switch f.GameType {
	case GameTypeCash:
		buyIn := ParseAmount(f.BuyIn)
		cashOut := ParseAmount(f.CashOut)
		net, hourly := CashOutcome(buyIn, cashOut, session.DurationMinutes)
		session.NetProfit = net
		session.Cash = &CashDetails{BuyIn: buyIn, CashOut: cashOut, HourlyRate: hourly}
	case GameTypeTournament:
		amount := ParseAmount(f.BuyinAmount)
		fee := ParseAmount(f.BuyinFee)
		reentries := ParseCount(f.Reentries)
		prize := ParseAmount(f.Prize)
		net, roi, invested := TournamentOutcome(amount, fee, reentries, prize)
		session.NetProfit = net
		session.Tournament = &TournamentDetails{
			BuyinAmount:    amount,
			BuyinFee:       fee,
			Reentries:      reentries,
			FinishPosition: ParseCount(f.FinishPosition),
			FieldSize:      ParseCount(f.FieldSize),
			Prize:          prize,
			TotalInvested:  invested,
			ROIPercent:     roi,
		}
	}
	return session, nil
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatCount(value int) string {
	if value == 0 {
		return ""
	}
	return strconv.Itoa(value)
}
