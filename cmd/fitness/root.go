// ABOUTME: Root Cobra command for fitness CLI.
// ABOUTME: Opens storage and logging in PersistentPreRunE and runs the menu by default.
package main

import (
	"fmt"
	"log/slog"

	"github.com/harperreed/fitness/internal/config"
	"github.com/harperreed/fitness/internal/logger"
	"github.com/harperreed/fitness/internal/shell"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/spf13/cobra"
)

var (
	dbPath string
	debug  bool

	db       *storage.DB
	appLog   *slog.Logger
	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "fitness",
	Short: "Personal workout tracker",
	Long: `Fitness is a terminal workout tracker backed by a local SQLite database.

Run with no arguments to open the interactive menu:

  1. Add exercise category         6. Log a workout
  2. View exercises by category    7. View exercise progress
  3. Delete exercise category      8. Set fitness goals
  4. Create workout routine        9. View progress towards fitness goals
  5. View workout routines         0. Quit

QUICK START:

  $ fitness                      # Open the menu
  $ fitness goals                # Print goal progress
  $ fitness progress 3           # Print history and stats for exercise 3
  $ fitness history -n 5         # Last 5 logged workouts
  $ fitness export json -o b.json

GOALS:

  Goals measure total reps (sets x reps) logged for any exercise in the
  goal's category. Every goal in a category advances on each logged set.

MCP INTEGRATION:

  Run 'fitness mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fitness": { "command": "fitness", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data is stored in SQLite at ~/.local/share/fitness/fitness.db.
  Override with --db or "database" in ~/.config/fitness/config.json.
  Diagnostics are written to ~/.local/state/fitness/fitness.log.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}
		return openStorage()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStorage()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sh := shell.New(db, cmd.InOrStdin(), cmd.OutOrStdout(), appLog)
		return sh.Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.local/share/fitness/fitness.db)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log debug output to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func openStorage() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.Database = dbPath
	}

	appLog, closeLog = logger.Setup(debug)

	db, err = cfg.OpenStorage(appLog)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	appLog.Debug("storage opened", "path", db.Path())
	return nil
}

func closeStorage() error {
	var err error
	if db != nil {
		err = db.Close()
		db = nil
	}
	if closeLog != nil {
		if cerr := closeLog(); err == nil {
			err = cerr
		}
		closeLog = nil
	}
	return err
}
