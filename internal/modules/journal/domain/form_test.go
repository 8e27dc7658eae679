package domain_test

import (
	"testing"
	"time"

	"pokerlog/internal/modules/journal/domain"
)

var today = time.Date(2026, 8, 29, 0, 0, 0, 0, time.Local)

func TestNewFormDefaults(t *testing.T) {
	t.Parallel()
	form := domain.NewForm(today)
	if form.GameType != domain.GameTypeCash {
		t.Fatalf("new form defaults to cash, got %s", form.GameType)
	}
	if form.Date != "2026-08-29" || form.StartTime != "19:00" || form.EndTime != "23:00" {
		t.Fatalf("unexpected defaults: %+v", form)
	}
	if form.Reentries != "0" {
		t.Fatalf("reentries default to 0, got %q", form.Reentries)
	}
}

func TestBuildCashSession(t *testing.T) {
	t.Parallel()
	form := domain.NewForm(today)
	form.Location = "Aria"
	form.Stakes = "2/5"
	form.BuyIn = "200"
	form.CashOut = "540"
	form.ToggleTag("ran_hot")

	session, err := form.Build("sess_1")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if session.DurationMinutes != 240 || session.NetProfit != 340 {
		t.Fatalf("derived = (%d min, %v net)", session.DurationMinutes, session.NetProfit)
	}
	if session.Cash == nil || session.Cash.HourlyRate != 85 {
		t.Fatalf("cash payload missing or wrong: %+v", session.Cash)
	}
	if session.Tournament != nil {
		t.Fatal("cash session must not carry a tournament payload")
	}
	if err := session.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestBuildTournamentWithPartialInput(t *testing.T) {
	t.Parallel()
	form := domain.NewForm(today)
	form.GameType = domain.GameTypeTournament
	form.BuyinAmount = "150"
	form.BuyinFee = "15"
	form.Reentries = "2"
	// prize and finish left blank mid-entry; build must not fail
	session, err := form.Build("sess_2")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if session.Tournament.TotalInvested != 495 || session.NetProfit != -495 {
		t.Fatalf("tournament outcome = %+v", session.Tournament)
	}
	if session.Tournament.ROIPercent != -100 {
		t.Fatalf("roi = %v, want -100", session.Tournament.ROIPercent)
	}
	if session.Cash != nil {
		t.Fatal("tournament session must not carry a cash payload")
	}
}

func TestBuildRejectsBadClock(t *testing.T) {
	t.Parallel()
	form := domain.NewForm(today)
	form.EndTime = "24:99"
	if _, err := form.Build("sess_3"); err == nil {
		t.Fatal("expected clock parse failure")
	}
}

func TestEditRoundTrip(t *testing.T) {
	t.Parallel()
	form := domain.NewForm(today)
	form.GameType = domain.GameTypeTournament
	form.Stakes = "Sunday Special"
	form.BuyinAmount = "100"
	form.BuyinFee = "9"
	form.Prize = "1250"
	form.FinishPosition = "3"
	form.FieldSize = "412"

	session, err := form.Build("sess_4")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	loaded := domain.FormFromSession(session)
	if loaded.EditingID != "sess_4" {
		t.Fatalf("edit form must keep the session id, got %q", loaded.EditingID)
	}
	rebuilt, err := loaded.Build(loaded.EditingID)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if rebuilt.NetProfit != session.NetProfit || rebuilt.DurationMinutes != session.DurationMinutes {
		t.Fatalf("round trip drifted: %+v vs %+v", rebuilt, session)
	}
	if rebuilt.Tournament.FinishPosition != 3 || rebuilt.Tournament.FieldSize != 412 {
		t.Fatalf("tournament placement lost: %+v", rebuilt.Tournament)
	}
}

func TestToggleTag(t *testing.T) {
	t.Parallel()
	form := domain.NewForm(today)
	form.ToggleTag("tilted")
	form.ToggleTag("tired")
	form.ToggleTag("tilted")
	if len(form.Tags) != 1 || form.Tags[0] != "tired" {
		t.Fatalf("toggle twice must remove, got %v", form.Tags)
	}
}
