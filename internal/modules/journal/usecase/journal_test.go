package usecase_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	journalout "pokerlog/internal/modules/journal/adapter/out"
	"pokerlog/internal/modules/journal/domain"
	"pokerlog/internal/modules/journal/dto"
	journalin "pokerlog/internal/modules/journal/port/in"
	"pokerlog/internal/modules/journal/service"
	"pokerlog/internal/modules/journal/usecase"
	rosterout "pokerlog/internal/modules/roster/adapter/out"
	rosterin "pokerlog/internal/modules/roster/port/in"
	rosterservice "pokerlog/internal/modules/roster/service"
	rosterusecase "pokerlog/internal/modules/roster/usecase"
	apperrors "pokerlog/internal/platform/errors"
	"pokerlog/internal/platform/kv"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeID struct{ next int }

func (f *fakeID) New() string {
	f.next++
	return string(rune('a' + f.next - 1))
}

type fakeNotifier struct{}

func (fakeNotifier) Alert(_, _ string) {}

// memoryProjector is the in-process stand-in for the sqlite read model.
type memoryProjector struct {
	rows map[string]domain.IndexEntry
}

func newMemoryProjector() *memoryProjector {
	return &memoryProjector{rows: map[string]domain.IndexEntry{}}
}

func (p *memoryProjector) Upsert(_ context.Context, username string, session domain.Session) error {
	p.rows[username+"/"+session.ID] = domain.IndexEntry{
		ID:              session.ID,
		Date:            session.Date.Format(domain.DateLayout),
		GameType:        string(session.GameType),
		Location:        session.Location,
		Stakes:          session.Stakes,
		NetProfit:       session.NetProfit,
		DurationMinutes: session.DurationMinutes,
	}
	return nil
}

func (p *memoryProjector) Delete(_ context.Context, username, id string) error {
	delete(p.rows, username+"/"+id)
	return nil
}

func (p *memoryProjector) Reset(_ context.Context) error {
	p.rows = map[string]domain.IndexEntry{}
	return nil
}

func (p *memoryProjector) List(_ context.Context, username string) ([]domain.IndexEntry, error) {
	var entries []domain.IndexEntry
	for key, entry := range p.rows {
		if strings.HasPrefix(key, username+"/") {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

type fakePhotoStore struct{ attached []string }

func (f *fakePhotoStore) Attach(_ context.Context, sourcePath string) (string, error) {
	f.attached = append(f.attached, sourcePath)
	return "/photos/" + sourcePath, nil
}

type harness struct {
	journal   journalin.Usecase
	roster    rosterin.Usecase
	projector *memoryProjector
	photos    *fakePhotoStore
}

func newHarness(t *testing.T) harness {
	t.Helper()
	store, err := kv.NewFileStore(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("new kv store: %v", err)
	}
	clk := fakeClock{now: time.Date(2026, 8, 15, 18, 30, 0, 0, time.Local)}
	roster := rosterusecase.NewInteractor(
		rosterservice.NewUserService(clk, rosterout.NewKVUserStore(store)),
		fakeNotifier{}, nil,
	)
	projector := newMemoryProjector()
	photos := &fakePhotoStore{}
	exporter := journalout.NewMarkdownNoteExporter(t.TempDir())
	journal := usecase.NewInteractor(
		service.NewSessionService(clk, &fakeID{}),
		roster, projector, photos, exporter, nil, 3,
	)
	return harness{journal: journal, roster: roster, projector: projector, photos: photos}
}

func cashForm(t *testing.T, h harness) dto.Form {
	t.Helper()
	form, err := h.journal.NewForm(context.Background())
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	form.Location = "Aria"
	form.Stakes = "2/5"
	form.BuyIn = "200"
	form.CashOut = "540"
	return form
}

func TestSaveBuildsDerivedFieldsAndIndexes(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	if _, err := h.roster.CreateUser(ctx, "alice"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	out, err := h.journal.Save(ctx, dto.SaveInput{Username: "alice", Form: cashForm(t, h)})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(out.SessionID, "sess_") {
		t.Fatalf("expected generated id, got %q", out.SessionID)
	}
	if out.NetProfit != 340 {
		t.Fatalf("expected net profit 340, got %v", out.NetProfit)
	}

	records, err := h.roster.ListSessions(ctx, "alice")
	if err != nil || len(records) != 1 {
		t.Fatalf("expected 1 stored session, got %d (%v)", len(records), err)
	}
	if records[0].HourlyRate == nil || *records[0].HourlyRate != 85 {
		t.Fatalf("expected hourly rate 85, got %v", records[0].HourlyRate)
	}
	if records[0].DurationMinutes != 240 {
		t.Fatalf("expected default slot duration 240, got %d", records[0].DurationMinutes)
	}

	views, err := h.journal.List(ctx, "alice")
	if err != nil || len(views) != 1 {
		t.Fatalf("expected 1 indexed session, got %d (%v)", len(views), err)
	}
	if views[0].NetProfit != 340 || views[0].Location != "Aria" {
		t.Fatalf("index row out of sync: %+v", views[0])
	}
}

func TestSaveWithoutUserIsRejected(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	_, err := h.journal.Save(context.Background(), dto.SaveInput{Form: cashForm(t, h)})
	if !errors.Is(err, apperrors.ErrNoCurrentUser) {
		t.Fatalf("expected ErrNoCurrentUser, got %v", err)
	}
}

func TestEditFormReplacesInsteadOfInserting(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	if _, err := h.roster.CreateUser(ctx, "bob"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	saved, err := h.journal.Save(ctx, dto.SaveInput{Username: "bob", Form: cashForm(t, h)})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	form, err := h.journal.EditForm(ctx, "bob", saved.SessionID)
	if err != nil {
		t.Fatalf("edit form: %v", err)
	}
	if form.EditingID != saved.SessionID || form.BuyIn != "200" || form.CashOut != "540" {
		t.Fatalf("edit form not pre-filled: %+v", form)
	}

	form.CashOut = "100"
	resaved, err := h.journal.Save(ctx, dto.SaveInput{Username: "bob", Form: form})
	if err != nil {
		t.Fatalf("re-save: %v", err)
	}
	if resaved.SessionID != saved.SessionID {
		t.Fatalf("editing must keep the id, got %q then %q", saved.SessionID, resaved.SessionID)
	}
	if resaved.NetProfit != -100 {
		t.Fatalf("expected net -100 after edit, got %v", resaved.NetProfit)
	}
	records, _ := h.roster.ListSessions(ctx, "bob")
	if len(records) != 1 {
		t.Fatalf("edit must replace, got %d sessions", len(records))
	}
}

func TestDeleteRemovesFromStoreAndIndex(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	if _, err := h.roster.CreateUser(ctx, "carol"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	saved, err := h.journal.Save(ctx, dto.SaveInput{Username: "carol", Form: cashForm(t, h)})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := h.journal.Delete(ctx, "carol", saved.SessionID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	views, _ := h.journal.List(ctx, "carol")
	if len(views) != 0 {
		t.Fatalf("expected empty index after delete, got %d rows", len(views))
	}
	records, _ := h.roster.ListSessions(ctx, "carol")
	if len(records) != 0 {
		t.Fatalf("expected empty store after delete, got %d", len(records))
	}
}

func TestReindexRebuildsFromStore(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	if _, err := h.roster.CreateUser(ctx, "dave"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	first, err := h.journal.Save(ctx, dto.SaveInput{Username: "dave", Form: cashForm(t, h)})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	tform := cashForm(t, h)
	tform.GameType = "tournament"
	tform.BuyIn, tform.CashOut = "", ""
	tform.BuyinAmount, tform.BuyinFee, tform.Reentries = "150", "15", "2"
	if _, err := h.journal.Save(ctx, dto.SaveInput{Username: "dave", Form: tform}); err != nil {
		t.Fatalf("save tournament: %v", err)
	}

	// Simulate a stale read model.
	if err := h.projector.Delete(ctx, "dave", first.SessionID); err != nil {
		t.Fatalf("stale delete: %v", err)
	}
	if views, _ := h.journal.List(ctx, "dave"); len(views) != 1 {
		t.Fatalf("precondition: expected stale index with 1 row, got %d", len(views))
	}

	if err := h.journal.Reindex(ctx); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	views, err := h.journal.List(ctx, "dave")
	if err != nil || len(views) != 2 {
		t.Fatalf("expected rebuilt index with 2 rows, got %d (%v)", len(views), err)
	}
}

func TestAttachPhotoEnforcesCap(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	path, err := h.journal.AttachPhoto(ctx, dto.AttachInput{SourcePath: "table.jpg", ExistingCount: 2})
	if err != nil || path == "" {
		t.Fatalf("attach under cap: %v", err)
	}
	if _, err := h.journal.AttachPhoto(ctx, dto.AttachInput{SourcePath: "table.jpg", ExistingCount: 3}); !errors.Is(err, apperrors.ErrPhotoLimit) {
		t.Fatalf("expected ErrPhotoLimit at cap, got %v", err)
	}
}

func TestExportNotesWritesOneFilePerSession(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	if _, err := h.roster.CreateUser(ctx, "erin"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	form := cashForm(t, h)
	form.Notes = "ran well against the 2 seat"
	if _, err := h.journal.Save(ctx, dto.SaveInput{Username: "erin", Form: form}); err != nil {
		t.Fatalf("save: %v", err)
	}

	paths, err := h.journal.ExportNotes(ctx, "erin")
	if err != nil {
		t.Fatalf("export notes: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected 1 note, got %d", len(paths))
	}
	content, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	if !strings.HasPrefix(string(content), "---\n") {
		t.Fatal("note must start with a frontmatter block")
	}
	if !strings.Contains(string(content), "ran well against the 2 seat") {
		t.Fatal("note body missing the free-form notes")
	}
}
