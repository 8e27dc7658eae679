// Package bootstrap wires the modules together. Construction order follows
// the dependency direction: platform, roster, journal, stats, report, UI.
package bootstrap

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	journalinadapter "pokerlog/internal/modules/journal/adapter/in"
	journaloutadapter "pokerlog/internal/modules/journal/adapter/out"
	journalin "pokerlog/internal/modules/journal/port/in"
	journalservice "pokerlog/internal/modules/journal/service"
	journalusecase "pokerlog/internal/modules/journal/usecase"
	reportinadapter "pokerlog/internal/modules/report/adapter/in"
	reportoutadapter "pokerlog/internal/modules/report/adapter/out"
	reportin "pokerlog/internal/modules/report/port/in"
	reportservice "pokerlog/internal/modules/report/service"
	reportusecase "pokerlog/internal/modules/report/usecase"
	rosterinadapter "pokerlog/internal/modules/roster/adapter/in"
	rosteroutadapter "pokerlog/internal/modules/roster/adapter/out"
	rosterin "pokerlog/internal/modules/roster/port/in"
	rosterservice "pokerlog/internal/modules/roster/service"
	rosterusecase "pokerlog/internal/modules/roster/usecase"
	statsinadapter "pokerlog/internal/modules/stats/adapter/in"
	statsoutadapter "pokerlog/internal/modules/stats/adapter/out"
	statsin "pokerlog/internal/modules/stats/port/in"
	statsservice "pokerlog/internal/modules/stats/service"
	statsusecase "pokerlog/internal/modules/stats/usecase"
	"pokerlog/internal/platform/clock"
	"pokerlog/internal/platform/config"
	"pokerlog/internal/platform/id"
	"pokerlog/internal/platform/kv"
	"pokerlog/internal/platform/logging"
	uiapp "pokerlog/internal/ui/app"
)

// App holds every assembled module. The CLI commands talk to the CLIHandlers;
// the TUI talks to the usecases directly.
type App struct {
	Config config.Config
	Logger *logrus.Logger

	Roster  rosterin.Usecase
	Journal journalin.Usecase
	Stats   statsin.Usecase
	Report  reportin.Usecase

	RosterCLI  rosterinadapter.CLIHandler
	JournalCLI journalinadapter.CLIHandler
	StatsCLI   statsinadapter.CLIHandler
	ReportCLI  reportinadapter.CLIHandler

	projector *journaloutadapter.SQLiteProjector
}

func New(cfg config.Config) (*App, error) {
	logger := logging.New(cfg.LogPath)
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	store, err := kv.NewFileStore(cfg.StoreDir, cfg.MaxStoreBytes)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	roster := rosterusecase.NewInteractor(
		rosterservice.NewUserService(clk, rosteroutadapter.NewKVUserStore(store)),
		rosteroutadapter.NewDesktopNotifier(),
		logger,
	)

	projector, err := journaloutadapter.NewSQLiteProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open session index: %w", err)
	}
	journal := journalusecase.NewInteractor(
		journalservice.NewSessionService(clk, ids),
		roster,
		projector,
		journaloutadapter.NewPhotoStore(cfg.PhotoDir),
		journaloutadapter.NewMarkdownNoteExporter(filepath.Join(cfg.DataDir, "notes")),
		logger,
		cfg.MaxPhotos,
	)

	stats := statsusecase.NewInteractor(
		statsservice.NewStatsService(clk),
		statsoutadapter.NewRosterFactSource(roster),
		cfg.WindowDays,
	)

	report := reportusecase.NewInteractor(
		reportservice.NewReportService(
			reportoutadapter.NewFileManifestStore(cfg.DataDir),
			reportoutadapter.NewGRPCHost(),
			cfg.DataDir,
		),
		roster,
	)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Roster:     roster,
		Journal:    journal,
		Stats:      stats,
		Report:     report,
		RosterCLI:  rosterinadapter.NewCLIHandler(roster),
		JournalCLI: journalinadapter.NewCLIHandler(journal),
		StatsCLI:   statsinadapter.NewCLIHandler(stats),
		ReportCLI:  reportinadapter.NewCLIHandler(report),
		projector:  projector,
	}, nil
}

// Close releases the session index. Safe to call once after the app is done.
func (a *App) Close() error {
	return a.projector.Close()
}

// RunTUI hands the terminal to Bubble Tea until the user quits.
func (a *App) RunTUI() error {
	model := uiapp.NewModel(a.Roster, a.Journal, a.Stats, a.Config.Currency)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
