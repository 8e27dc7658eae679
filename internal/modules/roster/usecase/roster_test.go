package usecase_test

import (
	"context"
	"testing"
	"time"

	rosterout "pokerlog/internal/modules/roster/adapter/out"
	"pokerlog/internal/modules/roster/dto"
	rosterin "pokerlog/internal/modules/roster/port/in"
	"pokerlog/internal/modules/roster/service"
	"pokerlog/internal/modules/roster/usecase"
	"pokerlog/internal/platform/kv"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeNotifier struct{ alerts []string }

func (f *fakeNotifier) Alert(_, message string) { f.alerts = append(f.alerts, message) }

func newRoster(t *testing.T, maxBytes int64) (rosterin.Usecase, *fakeNotifier) {
	t.Helper()
	store, err := kv.NewFileStore(t.TempDir(), maxBytes)
	if err != nil {
		t.Fatalf("new kv store: %v", err)
	}
	clk := fakeClock{now: time.Date(2026, 8, 1, 20, 0, 0, 0, time.Local)}
	notifier := &fakeNotifier{}
	svc := service.NewUserService(clk, rosterout.NewKVUserStore(store))
	return usecase.NewInteractor(svc, notifier, nil), notifier
}

func cashRecord(id, date, notes string) dto.SessionRecord {
	buyIn, cashOut, hourly := 200.0, 540.0, 85.0
	return dto.SessionRecord{
		ID:              id,
		GameType:        "cash",
		Date:            date,
		StartTime:       "19:00",
		EndTime:         "23:00",
		Location:        "Bellagio",
		Stakes:          "2/5",
		BuyIn:           &buyIn,
		CashOut:         &cashOut,
		DurationMinutes: 240,
		NetProfit:       340,
		HourlyRate:      &hourly,
		Notes:           notes,
	}
}

func TestCreateUserIsLookupOrCreate(t *testing.T) {
	t.Parallel()
	roster, _ := newRoster(t, 0)
	ctx := context.Background()

	first, err := roster.CreateUser(ctx, "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(first.Tags) != 6 {
		t.Fatalf("expected 6 seeded tags, got %d", len(first.Tags))
	}

	if _, err := roster.UpsertSession(ctx, "alice", cashRecord("sess_1", "2026-08-01", "")); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	again, err := roster.CreateUser(ctx, "alice")
	if err != nil {
		t.Fatalf("re-create: %v", err)
	}
	if again.SessionCount != 1 {
		t.Fatalf("re-creating an existing name must not reset sessions, got count %d", again.SessionCount)
	}
	current, err := roster.CurrentUser(ctx)
	if err != nil || current.Username != "alice" {
		t.Fatalf("expected alice current, got %v %v", current.Username, err)
	}
}

func TestUpsertReplacesInPlace(t *testing.T) {
	t.Parallel()
	roster, _ := newRoster(t, 0)
	ctx := context.Background()
	if _, err := roster.CreateUser(ctx, "bob"); err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, rec := range []dto.SessionRecord{
		cashRecord("sess_a", "2026-07-01", "first"),
		cashRecord("sess_b", "2026-07-02", "second"),
		cashRecord("sess_c", "2026-07-03", "third"),
	} {
		if _, err := roster.UpsertSession(ctx, "bob", rec); err != nil {
			t.Fatalf("upsert %s: %v", rec.ID, err)
		}
	}

	if _, err := roster.UpsertSession(ctx, "bob", cashRecord("sess_b", "2026-07-02", "edited")); err != nil {
		t.Fatalf("edit: %v", err)
	}

	sessions, err := roster.ListSessions(ctx, "bob")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions after edit, got %d", len(sessions))
	}
	if sessions[1].ID != "sess_b" || sessions[1].Notes != "edited" {
		t.Fatalf("edited session must keep position 1 with latest notes, got %+v", sessions[1])
	}
}

func TestDeleteSessionMissingIDIsNoop(t *testing.T) {
	t.Parallel()
	roster, _ := newRoster(t, 0)
	ctx := context.Background()
	if _, err := roster.CreateUser(ctx, "carol"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := roster.UpsertSession(ctx, "carol", cashRecord("sess_1", "2026-08-01", "")); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if _, err := roster.DeleteSession(ctx, "carol", "sess_unknown"); err != nil {
		t.Fatalf("deleting unknown id must be a no-op, got %v", err)
	}
	sessions, _ := roster.ListSessions(ctx, "carol")
	if len(sessions) != 1 {
		t.Fatalf("no-op delete changed the collection: %d sessions", len(sessions))
	}

	if _, err := roster.DeleteSession(ctx, "carol", "sess_1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	sessions, _ = roster.ListSessions(ctx, "carol")
	if len(sessions) != 0 {
		t.Fatalf("expected empty collection, got %d", len(sessions))
	}
}

func TestVariantFieldsNeverLeak(t *testing.T) {
	t.Parallel()
	roster, _ := newRoster(t, 0)
	ctx := context.Background()
	if _, err := roster.CreateUser(ctx, "dave"); err != nil {
		t.Fatalf("create: %v", err)
	}

	prize := 0.0
	bad := cashRecord("sess_x", "2026-08-01", "")
	bad.Prize = &prize
	if _, err := roster.UpsertSession(ctx, "dave", bad); err == nil {
		t.Fatal("cash session carrying a tournament field must be rejected")
	}
}

func TestQuotaErrorBecomesWarningAndAlert(t *testing.T) {
	t.Parallel()
	// Large enough for the user record, far too small for sessions.
	roster, notifier := newRoster(t, 400)
	ctx := context.Background()
	if _, err := roster.CreateUser(ctx, "erin"); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec := cashRecord("sess_big", "2026-08-01", string(make([]byte, 2048)))
	out, err := roster.UpsertSession(ctx, "erin", rec)
	if err != nil {
		t.Fatalf("quota failure must not surface as an error: %v", err)
	}
	if out.Warning == "" {
		t.Fatal("expected a dropped-write warning")
	}
	if len(notifier.alerts) == 0 {
		t.Fatal("expected a desktop alert")
	}
}

func TestLocationsAccumulate(t *testing.T) {
	t.Parallel()
	roster, _ := newRoster(t, 0)
	ctx := context.Background()
	if _, err := roster.CreateUser(ctx, "fay"); err != nil {
		t.Fatalf("create: %v", err)
	}

	a := cashRecord("s1", "2026-08-01", "")
	a.Location = "Aria"
	b := cashRecord("s2", "2026-08-02", "")
	b.Location = "Aria"
	c := cashRecord("s3", "2026-08-03", "")
	c.Location = "Wynn"
	for _, rec := range []dto.SessionRecord{a, b, c} {
		if _, err := roster.UpsertSession(ctx, "fay", rec); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	user, err := roster.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if len(user.Locations) != 2 {
		t.Fatalf("expected deduplicated locations [Aria Wynn], got %v", user.Locations)
	}
}
