// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fitness/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants to read and log workouts through a standardized
protocol. The server communicates via stdin/stdout.

AVAILABLE TOOLS:

  list_categories     List exercise categories
  add_category        Create a category
  list_exercises      List exercises, optionally by category
  add_exercise        Add an exercise to a category
  list_routines       List workout routines
  get_routine         Get a routine with planned sets/reps
  log_workout         Log a routine (planned values unless overridden)
  exercise_progress   History and stats for an exercise
  list_history        Recent workout sessions
  set_goal            Set a total-reps goal for a category
  list_goals          Goals with progress

AVAILABLE RESOURCES:

  fitness://goals      All goals with progress
  fitness://routines   Routines with their exercises
  fitness://history    Last 10 workout sessions`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(db, appLog)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
