package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dnslens/internal/cache"
	"dnslens/internal/config"
	"dnslens/internal/leases"
	"dnslens/internal/logging"
	"dnslens/internal/models"
	"dnslens/internal/normalize"
	"dnslens/internal/querylog"
	"dnslens/internal/reporting"
	"dnslens/internal/tui"
)

var (
	cfg    = config.Default()
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dnslens",
	Short: "Terminal analytics dashboard for a local DNS resolver's query log",
	Long: `dnslens renders an interactive analytics dashboard over an AdGuard Home
style query log and a DHCP lease file: query timelines, domain and client
distributions, and filtering statistics, with client IPs resolved to lease
hostnames.`,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logging.Sync(logger)
		}
	},
	RunE: runDashboard,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write an HTML analytics report without starting the dashboard",
	RunE:  runReport,
}

func init() {
	// Assigned here rather than in the composite literal to avoid an
	// initialization cycle (newLogger refers back to rootCmd).
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(cmd)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.QuerylogPath, "querylog", cfg.QuerylogPath, "path to the resolver query log (newline-delimited JSON)")
	pf.StringVar(&cfg.LeasesPath, "leases", cfg.LeasesPath, "path to the DHCP lease file (JSON)")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	pf.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file path (defaults to no logging while the dashboard runs)")
	pf.StringVar(&cfg.ReportDir, "report-dir", cfg.ReportDir, "directory HTML reports are written to")
	rootCmd.AddCommand(reportCmd)
}

// newLogger keeps the terminal clean: while the dashboard owns the screen,
// logs go to the configured file or nowhere.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if cfg.LogFile == "" && cmd.Name() == rootCmd.Name() {
		return zap.NewNop(), nil
	}
	return logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
}

// newDatasetFunc wires the two TTL-cached file loaders to the normalizer.
// Calls inside the freshness windows reuse the cached parse.
func newDatasetFunc(logger *zap.Logger) tui.DatasetFunc {
	qlog := cache.NewLoader(config.QuerylogTTL, func() ([]models.QueryRecord, error) {
		return querylog.Load(cfg.QuerylogPath, logger)
	})
	dhcp := cache.NewLoader(config.LeasesTTL, func() (map[string]string, error) {
		return leases.Load(cfg.LeasesPath)
	})
	return func() ([]models.Record, error) {
		raw, err := qlog.Get()
		if err != nil {
			return nil, err
		}
		table, err := dhcp.Get()
		if err != nil {
			return nil, err
		}
		return normalize.Records(raw, table), nil
	}
}

func runDashboard(cmd *cobra.Command, args []string) error {
	load := newDatasetFunc(logger)

	// A missing input file is fatal; surface it before taking over the
	// terminal rather than inside the dashboard.
	if _, err := load(); err != nil {
		return err
	}

	report := func(recs []models.Record) (string, error) {
		return reporting.WriteSessionReport(recs, cfg.ReportDir)
	}

	p := tea.NewProgram(tui.NewModel(load, report), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	load := newDatasetFunc(logger)
	recs, err := load()
	if err != nil {
		return err
	}
	path, err := reporting.WriteSessionReport(recs, cfg.ReportDir)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Println(path)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
