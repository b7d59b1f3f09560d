// ABOUTME: MCP resource implementations for the fitness tracker.
// ABOUTME: Provides fitness://goals, fitness://routines, and fitness://history resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fitness/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fitness://goals - every goal with its progress
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitness://goals",
		Name:        "Fitness Goals",
		Description: "All fitness goals with current progress",
		MIMEType:    "application/json",
	}, s.handleGoalsResource)

	// fitness://routines - routines with their planned exercises
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitness://routines",
		Name:        "Workout Routines",
		Description: "All workout routines with planned sets and reps",
		MIMEType:    "application/json",
	}, s.handleRoutinesResource)

	// fitness://history - last 10 workout sessions
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitness://history",
		Name:        "Recent Workouts",
		Description: "Last 10 logged workout sessions",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// Resource handlers

func (s *Server) handleGoalsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	items := make([]goalItem, 0, len(goals))
	for _, g := range goals {
		items = append(items, toGoalItem(g))
	}

	return jsonResource("fitness://goals", map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"goals":        items,
		"count":        len(items),
	})
}

func (s *Server) handleRoutinesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	routines, err := s.repo.ListRoutines(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}

	items := make([]routineOutput, 0, len(routines))
	for _, r := range routines {
		entries, err := s.repo.RoutineEntries(ctx, r.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list routine entries: %w", err)
		}
		if entries == nil {
			entries = []models.RoutineEntry{}
		}
		items = append(items, routineOutput{
			ID:          r.ID,
			Name:        r.Name,
			DateCreated: r.DateCreated,
			Exercises:   entries,
		})
	}

	return jsonResource("fitness://routines", map[string]interface{}{
		"routines": items,
		"count":    len(items),
	})
}

func (s *Server) handleHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sessions, err := s.repo.ListSessions(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []models.Session{}
	}

	return jsonResource("fitness://history", map[string]interface{}{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
