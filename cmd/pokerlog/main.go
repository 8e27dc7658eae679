package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pokerlog/internal/bootstrap"
	journaldto "pokerlog/internal/modules/journal/dto"
	reportdto "pokerlog/internal/modules/report/dto"
	statsdto "pokerlog/internal/modules/stats/dto"
	"pokerlog/internal/platform/config"
	"pokerlog/internal/ui/components"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "pokerlog",
		Short:         "Personal poker session tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default $POKERLOG_HOME or ~/.pokerlog)")

	root.AddCommand(
		newTUICmd(&dataDir),
		newUserCmd(&dataDir),
		newSessionCmd(&dataDir),
		newStatsCmd(&dataDir),
		newChartCmd(&dataDir),
		newExportCmd(&dataDir),
		newReindexCmd(&dataDir),
		newTagCmd(&dataDir),
		newReportCmd(&dataDir),
	)
	return root
}

// loadApp assembles the full application for one command invocation.
func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// ─── tui ─────────────────────────────────────────────────────────────────────

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			return app.RunTUI()
		},
	}
}

// ─── user ────────────────────────────────────────────────────────────────────

func newUserCmd(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage tracker users",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Create a user (or select it if it exists) and make it current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			user, err := app.RosterCLI.CreateUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current user: %s (%d sessions)\n", user.Username, user.SessionCount)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			users, err := app.RosterCLI.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			for _, user := range users {
				marker := " "
				if user.Current {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %d sessions\n", marker, user.Username, user.SessionCount)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "switch <name>",
		Short: "Switch the current user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.RosterCLI.SwitchUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current user: %s\n", args[0])
			return nil
		},
	})

	return cmd
}

// ─── session ─────────────────────────────────────────────────────────────────

func newSessionCmd(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Log and manage sessions",
	}
	cmd.AddCommand(newSessionAddCmd(dataDir), newSessionListCmd(dataDir), newSessionDeleteCmd(dataDir))
	return cmd
}

func newSessionAddCmd(dataDir *string) *cobra.Command {
	var (
		username string
		editID   string
		form     journaldto.Form
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a session from flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			username, err = resolveUser(cmd, app, username)
			if err != nil {
				return err
			}
			form.EditingID = editID
			if form.Date == "" {
				defaults, err := app.JournalCLI.NewForm(cmd.Context())
				if err != nil {
					return err
				}
				form.Date = defaults.Date
			}

			out, err := app.JournalCLI.Save(cmd.Context(), journaldto.SaveInput{Username: username, Form: form})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s  net %+.2f\n", out.SessionID, out.NetProfit)
			if out.Warning != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Warning:", out.Warning)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "username (default: current user)")
	cmd.Flags().StringVar(&editID, "edit", "", "session id to overwrite instead of inserting")
	cmd.Flags().StringVar(&form.GameType, "game", "cash", "game type: cash or tournament")
	cmd.Flags().StringVar(&form.Date, "date", "", "session date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&form.StartTime, "start", "", "start time HH:MM")
	cmd.Flags().StringVar(&form.EndTime, "end", "", "end time HH:MM")
	cmd.Flags().StringVar(&form.Location, "location", "", "venue")
	cmd.Flags().StringVar(&form.Stakes, "stakes", "", "stakes label, e.g. 2/5")
	cmd.Flags().StringVar(&form.BuyIn, "buy-in", "", "cash: total buy-in")
	cmd.Flags().StringVar(&form.CashOut, "cash-out", "", "cash: cash-out amount")
	cmd.Flags().StringVar(&form.BuyinAmount, "buyin", "", "tournament: buy-in amount")
	cmd.Flags().StringVar(&form.BuyinFee, "fee", "", "tournament: entry fee")
	cmd.Flags().StringVar(&form.Reentries, "reentries", "", "tournament: re-entry count")
	cmd.Flags().StringVar(&form.FinishPosition, "position", "", "tournament: finish position")
	cmd.Flags().StringVar(&form.FieldSize, "field", "", "tournament: field size")
	cmd.Flags().StringVar(&form.Prize, "prize", "", "tournament: prize won")
	cmd.Flags().IntVar(&form.TableQuality, "quality", 0, "table quality 1-5")
	cmd.Flags().StringVar(&form.MentalGame, "mental", "", "mental game grade A/B/C")
	cmd.Flags().StringSliceVar(&form.Tags, "tags", nil, "comma-separated tags")
	cmd.Flags().StringVar(&form.Notes, "notes", "", "free-form notes")
	return cmd
}

func newSessionListCmd(dataDir *string) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			username, err = resolveUser(cmd, app, username)
			if err != nil {
				return err
			}
			sessions, err := app.JournalCLI.List(cmd.Context(), username)
			if err != nil {
				return err
			}
			for _, s := range sessions {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-10s %+9.2f  %4dm  %s %s\n",
					s.ID, s.Date, s.GameType, s.NetProfit, s.DurationMinutes, s.Location, s.Stakes)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "user", "", "username (default: current user)")
	return cmd
}

func newSessionDeleteCmd(dataDir *string) *cobra.Command {
	var (
		username string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("deleting is permanent, re-run with --yes to confirm")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			username, err = resolveUser(cmd, app, username)
			if err != nil {
				return err
			}
			out, err := app.JournalCLI.Delete(cmd.Context(), username, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			if out.Warning != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Warning:", out.Warning)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "user", "", "username (default: current user)")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	return cmd
}

// ─── stats ───────────────────────────────────────────────────────────────────

func newStatsCmd(dataDir *string) *cobra.Command {
	var (
		username string
		days     int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			username, err = resolveUser(cmd, app, username)
			if err != nil {
				return err
			}
			report, err := app.StatsCLI.Report(cmd.Context(), username, days)
			if err != nil {
				return err
			}
			currency := app.Config.Currency
			printSummary(cmd, currency, "All time", report.AllTime)
			printSummary(cmd, currency, fmt.Sprintf("Last %d days", report.WindowDays), report.Recent)
			printSummary(cmd, currency, "Cash", report.Cash)
			printSummary(cmd, currency, "Tournaments", report.Tournament)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "user", "", "username (default: current user)")
	cmd.Flags().IntVar(&days, "days", 0, "recent window in days (default: configured window)")
	return cmd
}

func printSummary(cmd *cobra.Command, currency, label string, s statsdto.Summary) {
	fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s%+.2f  %d sessions, %.1fh, %s%.2f/h, %.0f%% winning\n",
		label, currency, s.NetProfit, s.Sessions, s.Hours, currency, s.HourlyOverall, s.WinRatePercent)
}

// ─── chart ───────────────────────────────────────────────────────────────────

func newChartCmd(dataDir *string) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the cumulative profit chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			username, err = resolveUser(cmd, app, username)
			if err != nil {
				return err
			}
			points, err := app.StatsCLI.Series(cmd.Context(), username)
			if err != nil {
				return err
			}

			labels := make([]string, len(points))
			combined := make([]float64, len(points))
			for i, p := range points {
				labels[i] = p.Date
				combined[i] = p.Combined
			}
			chart := components.NewChart()
			fmt.Fprintln(cmd.OutOrStdout(), chart.Render(labels, []components.ChartSeries{
				{Name: "Combined", Values: combined, Rune: '●'},
			}))
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "user", "", "username (default: current user)")
	return cmd
}

// ─── export ──────────────────────────────────────────────────────────────────

func newExportCmd(dataDir *string) *cobra.Command {
	var (
		username string
		notes    bool
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a user's record as JSON, or session notes as markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			username, err = resolveUser(cmd, app, username)
			if err != nil {
				return err
			}

			if notes {
				paths, err := app.JournalCLI.ExportNotes(cmd.Context(), username)
				if err != nil {
					return err
				}
				for _, path := range paths {
					fmt.Fprintln(cmd.OutOrStdout(), path)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d notes\n", len(paths))
				return nil
			}

			export, err := app.RosterCLI.Export(cmd.Context(), username)
			if err != nil {
				return err
			}
			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(export.Payload), 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", export.Username, outPath)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), export.Payload)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "user", "", "username (default: current user)")
	cmd.Flags().BoolVar(&notes, "notes", false, "export per-session markdown notes instead of JSON")
	cmd.Flags().StringVar(&outPath, "out", "", "write the JSON export to a file instead of stdout")
	return cmd
}

// ─── reindex ─────────────────────────────────────────────────────────────────

func newReindexCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the session index from the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.JournalCLI.Reindex(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Index rebuilt")
			return nil
		},
	}
}

// ─── tag ─────────────────────────────────────────────────────────────────────

func newTagCmd(dataDir *string) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage the tag vocabulary",
	}
	cmd.PersistentFlags().StringVar(&username, "user", "", "username (default: current user)")

	cmd.AddCommand(&cobra.Command{
		Use:   "add <tag>",
		Short: "Add a tag to the vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			username, err = resolveUser(cmd, app, username)
			if err != nil {
				return err
			}
			out, err := app.RosterCLI.AddTag(cmd.Context(), username, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q\n", args[0])
			if out.Warning != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Warning:", out.Warning)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the tag vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			username, err = resolveUser(cmd, app, username)
			if err != nil {
				return err
			}
			users, err := app.RosterCLI.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			for _, user := range users {
				if user.Username != username {
					continue
				}
				for _, tag := range user.Tags {
					fmt.Fprintln(cmd.OutOrStdout(), tag)
				}
			}
			return nil
		},
	})

	return cmd
}

// ─── report ──────────────────────────────────────────────────────────────────

func newReportCmd(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run report plugins against your sessions",
	}
	cmd.AddCommand(
		newReportListCmd(dataDir),
		newReportDoctorCmd(dataDir),
		newReportCommandsCmd(dataDir),
		newReportRunCmd(dataDir, "run", "Run a report command", false),
		newReportRunCmd(dataDir, "analyze", "Run an analyze command", true),
	)
	return cmd
}

func newReportListCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			plugins, err := app.ReportCLI.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range plugins {
				state := "enabled"
				if !p.Enabled {
					state = "disabled"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s  [%s]\n",
					p.Name, p.Version, state, strings.Join(p.Capabilities, ", "))
			}
			return nil
		},
	}
}

func newReportDoctorCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check every plugin's binary, checksum and lifecycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			results, err := app.ReportCLI.Doctor(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range results {
				status := "ok"
				if r.Error != "" {
					status = r.Error
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s binary=%v checksum=%v lifecycle=%v  %s\n",
					r.Name, r.BinaryReachable, r.ChecksumValid, r.LifecycleOK, status)
			}
			return nil
		},
	}
}

func newReportCommandsCmd(dataDir *string) *cobra.Command {
	var pluginName string

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List the commands a plugin offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			commands, err := app.ReportCLI.ListCommands(cmd.Context(), pluginName)
			if err != nil {
				return err
			}
			for _, c := range commands {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-8s %s\n", c.ID, c.Kind, c.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pluginName, "plugin", "", "plugin name")
	_ = cmd.MarkFlagRequired("plugin")
	return cmd
}

func newReportRunCmd(dataDir *string, use, short string, analyze bool) *cobra.Command {
	var (
		pluginName string
		commandID  string
		inputJSON  string
		username   string
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateJSONInput(inputJSON); err != nil {
				return err
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()

			username, err = resolveUser(cmd, app, username)
			if err != nil {
				return err
			}
			input := reportdto.RunInput{
				PluginName: pluginName,
				CommandID:  commandID,
				InputJSON:  inputJSON,
				Username:   username,
			}
			var out reportdto.RunOutput
			if analyze {
				out, err = app.ReportCLI.Analyze(cmd.Context(), input)
			} else {
				out, err = app.ReportCLI.Run(cmd.Context(), input)
			}
			if err != nil {
				return err
			}
			if out.Stdout != "" {
				fmt.Fprint(cmd.OutOrStdout(), out.Stdout)
			}
			if out.Stderr != "" {
				fmt.Fprint(cmd.ErrOrStderr(), out.Stderr)
			}
			if out.OutputJSON != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out.OutputJSON)
			}
			if out.ExitCode != 0 {
				return fmt.Errorf("plugin exited with code %d", out.ExitCode)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pluginName, "plugin", "", "plugin name")
	cmd.Flags().StringVar(&commandID, "command", "", "command id")
	cmd.Flags().StringVar(&inputJSON, "input-json", "", "JSON document passed to the command")
	cmd.Flags().StringVar(&username, "user", "", "username (default: current user)")
	_ = cmd.MarkFlagRequired("plugin")
	_ = cmd.MarkFlagRequired("command")
	return cmd
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// resolveUser falls back to the current user when no --user flag was given.
func resolveUser(cmd *cobra.Command, app *bootstrap.App, username string) (string, error) {
	if username != "" {
		return username, nil
	}
	user, err := app.RosterCLI.CurrentUser(cmd.Context())
	if err != nil {
		return "", fmt.Errorf("no user selected, pass --user or run: pokerlog user create <name>")
	}
	return user.Username, nil
}

func validateJSONInput(raw string) error {
	if raw == "" {
		return nil
	}
	if !json.Valid([]byte(raw)) {
		return fmt.Errorf("--input-json must be a valid JSON document")
	}
	return nil
}
