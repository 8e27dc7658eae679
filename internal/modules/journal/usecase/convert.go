package usecase

import (
	"fmt"
	"time"

	"pokerlog/internal/modules/journal/domain"
	"pokerlog/internal/modules/journal/dto"
	rosterdto "pokerlog/internal/modules/roster/dto"
)

func toDomainForm(form dto.Form) domain.Form {
	return domain.Form{
		EditingID:      form.EditingID,
		GameType:       domain.GameType(form.GameType),
		Date:           form.Date,
		StartTime:      form.StartTime,
		EndTime:        form.EndTime,
		Location:       form.Location,
		Stakes:         form.Stakes,
		BuyIn:          form.BuyIn,
		CashOut:        form.CashOut,
		BuyinAmount:    form.BuyinAmount,
		BuyinFee:       form.BuyinFee,
		Reentries:      form.Reentries,
		FinishPosition: form.FinishPosition,
		FieldSize:      form.FieldSize,
		Prize:          form.Prize,
		TableQuality:   form.TableQuality,
		MentalGame:     form.MentalGame,
		Tags:           append([]string(nil), form.Tags...),
		Notes:          form.Notes,
		Photos:         append([]string(nil), form.Photos...),
	}
}

func fromDomainForm(form domain.Form) dto.Form {
	return dto.Form{
		EditingID:      form.EditingID,
		GameType:       string(form.GameType),
		Date:           form.Date,
		StartTime:      form.StartTime,
		EndTime:        form.EndTime,
		Location:       form.Location,
		Stakes:         form.Stakes,
		BuyIn:          form.BuyIn,
		CashOut:        form.CashOut,
		BuyinAmount:    form.BuyinAmount,
		BuyinFee:       form.BuyinFee,
		Reentries:      form.Reentries,
		FinishPosition: form.FinishPosition,
		FieldSize:      form.FieldSize,
		Prize:          form.Prize,
		TableQuality:   form.TableQuality,
		MentalGame:     form.MentalGame,
		Tags:           append([]string(nil), form.Tags...),
		Notes:          form.Notes,
		Photos:         append([]string(nil), form.Photos...),
	}
}

// recordFromSession flattens the tagged union into the pointer-field record
// the store keeps.
func recordFromSession(session domain.Session) rosterdto.SessionRecord {
	record := rosterdto.SessionRecord{
		ID:              session.ID,
		GameType:        string(session.GameType),
		Date:            session.Date.Format(domain.DateLayout),
		StartTime:       session.Start.String(),
		EndTime:         session.End.String(),
		Location:        session.Location,
		Stakes:          session.Stakes,
		DurationMinutes: session.DurationMinutes,
		NetProfit:       session.NetProfit,
		TableQuality:    session.TableQuality,
		MentalGame:      session.MentalGame,
		Tags:            append([]string(nil), session.Tags...),
		Notes:           session.Notes,
		Photos:          append([]string(nil), session.Photos...),
	}
	if cash := session.Cash; cash != nil {
		record.BuyIn = ptr(cash.BuyIn)
		record.CashOut = ptr(cash.CashOut)
		record.HourlyRate = ptr(cash.HourlyRate)
	}
	if tournament := session.Tournament; tournament != nil {
		record.BuyinAmount = ptr(tournament.BuyinAmount)
		record.BuyinFee = ptr(tournament.BuyinFee)
		record.Reentries = ptr(tournament.Reentries)
		record.FinishPosition = ptr(tournament.FinishPosition)
		record.FieldSize = ptr(tournament.FieldSize)
		record.Prize = ptr(tournament.Prize)
		record.ROIPercent = ptr(tournament.ROIPercent)
	}
	return record
}

// sessionFromRecord rebuilds the tagged union from a stored record. The
// variant payload is taken from whichever pointer group is present.
func sessionFromRecord(record rosterdto.SessionRecord) (domain.Session, error) {
	date, err := time.Parse(domain.DateLayout, record.Date)
	if err != nil {
		return domain.Session{}, fmt.Errorf("session %s has bad date %q", record.ID, record.Date)
	}
	start, err := domain.ParseClock(record.StartTime)
	if err != nil {
		return domain.Session{}, fmt.Errorf("session %s: %v", record.ID, err)
	}
	end, err := domain.ParseClock(record.EndTime)
	if err != nil {
		return domain.Session{}, fmt.Errorf("session %s: %v", record.ID, err)
	}

	session := domain.Session{
		ID:              record.ID,
		GameType:        domain.GameType(record.GameType),
		Date:            date,
		Start:           start,
		End:             end,
		Location:        record.Location,
		Stakes:          record.Stakes,
		DurationMinutes: record.DurationMinutes,
		NetProfit:       record.NetProfit,
		TableQuality:    record.TableQuality,
		MentalGame:      record.MentalGame,
		Tags:            append([]string(nil), record.Tags...),
		Notes:           record.Notes,
		Photos:          append([]string(nil), record.Photos...),
	}
	switch session.GameType {
	case domain.GameTypeCash:
		session.Cash = &domain.CashDetails{
			BuyIn:      deref(record.BuyIn),
			CashOut:    deref(record.CashOut),
			HourlyRate: deref(record.HourlyRate),
		}
	case domain.GameTypeTournament:
		session.Tournament = &domain.TournamentDetails{
			BuyinAmount:    deref(record.BuyinAmount),
			BuyinFee:       deref(record.BuyinFee),
			Reentries:      deref(record.Reentries),
			FinishPosition: deref(record.FinishPosition),
			FieldSize:      deref(record.FieldSize),
			Prize:          deref(record.Prize),
			TotalInvested:  deref(record.Prize) - record.NetProfit,
			ROIPercent:     deref(record.ROIPercent),
		}
	}
	return session, nil
}

func ptr[T any](v T) *T { return &v }

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
