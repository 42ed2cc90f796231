package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/domain/project"
	"github.com/ricky-aufvaa/dfmea/internal/storage"
)

var (
	dbPath  string
	verbose bool

	medium *storage.SQLiteMedium
	store  *storage.Store
	items  *fmea.Service
	coord  *project.Coordinator
)

var rootCmd = &cobra.Command{
	Use:   "dfmea",
	Short: "CLI for authoring Design FMEA worksheets",
	Long: `dfmea manages FMEA projects from the command line.

A project bundles a system definition with its FMEA items. Exactly one
project is current at a time; item commands operate on it. Data persists
in a local SQLite database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		logWriter := io.Writer(io.Discard)
		if verbose {
			logWriter = os.Stderr
		}
		logger := slog.New(slog.NewTextHandler(logWriter, nil))

		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("preparing database path: %w", err)
			}
		}

		var err error
		medium, err = storage.OpenSQLite(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		store, err = storage.New(cmd.Context(), medium, logger)
		if err != nil {
			return fmt.Errorf("initializing storage: %w", err)
		}

		items = fmea.NewService(store, store.Preferences().DefaultRPNThresholds, logger)
		if err := items.LoadFromStore(cmd.Context()); err != nil {
			return fmt.Errorf("loading items: %w", err)
		}
		coord = project.NewCoordinator(store, items, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if medium != nil {
			medium.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath(), "path to the database file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log service activity to stderr")
}

func defaultDBPath() string {
	if path := os.Getenv("DFMEA_DB_PATH"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "dfmea.db"
	}
	return filepath.Join(home, ".dfmea", "dfmea.db")
}
