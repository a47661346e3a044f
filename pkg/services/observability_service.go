package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/agenttrace"
	"github.com/hackfleet/hackfleet/ent/executiongraph"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/workdetectioncache"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// Observability limits.
const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// WorkDetectionStatus is the last cached work-detection result for a stack.
type WorkDetectionStatus struct {
	Status     models.WorkStatus `json:"status"`
	ComputedAt time.Time         `json:"computed_at"`
	ValidUntil time.Time         `json:"valid_until"`
	Stale      bool              `json:"stale"`
}

// ObservabilityService serves the dashboard's read-only views: traces,
// executions, graph snapshots, work detection, and aggregate stats.
type ObservabilityService struct {
	client *ent.Client
}

// NewObservabilityService creates a new ObservabilityService.
func NewObservabilityService(client *ent.Client) *ObservabilityService {
	return &ObservabilityService{client: client}
}

// GetRecentTraces returns the newest agent traces for a stack.
func (s *ObservabilityService) GetRecentTraces(ctx context.Context, stackID string, limit int) ([]*ent.AgentTrace, error) {
	traces, err := s.client.AgentTrace.Query().
		Where(agenttrace.StackIDEQ(stackID)).
		Order(ent.Desc(agenttrace.FieldCreatedAt)).
		Limit(clampLimit(limit)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load traces: %w", err)
	}
	return traces, nil
}

// GetRecentExecutions returns the newest orchestrator executions for a stack.
func (s *ObservabilityService) GetRecentExecutions(ctx context.Context, stackID string, limit int) ([]*ent.OrchestratorExecution, error) {
	executions, err := s.client.OrchestratorExecution.Query().
		Where(orchestratorexecution.StackIDEQ(stackID)).
		Order(ent.Desc(orchestratorexecution.FieldStartedAt)).
		Limit(clampLimit(limit)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load executions: %w", err)
	}
	return executions, nil
}

// GetExecutionGraphs returns the newest graph snapshots for a stack.
func (s *ObservabilityService) GetExecutionGraphs(ctx context.Context, stackID string, limit int) ([]*ent.ExecutionGraph, error) {
	graphs, err := s.client.ExecutionGraph.Query().
		Where(executiongraph.StackIDEQ(stackID)).
		Order(ent.Desc(executiongraph.FieldCreatedAt)).
		Limit(clampLimit(limit)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load execution graphs: %w", err)
	}
	return graphs, nil
}

// GetWorkDetectionStatus returns the stack's cached work-detection result,
// flagged stale when its TTL has lapsed.
func (s *ObservabilityService) GetWorkDetectionStatus(ctx context.Context, stackID string) (*WorkDetectionStatus, error) {
	row, err := s.client.WorkDetectionCache.Query().
		Where(workdetectioncache.StackIDEQ(stackID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load work cache: %w", err)
	}
	return &WorkDetectionStatus{
		Status:     row.Statuses,
		ComputedAt: row.ComputedAt,
		ValidUntil: row.ValidUntil,
		Stale:      time.Now().After(row.ValidUntil),
	}, nil
}

// GetOrchestrationStats aggregates executions started within the time range
// ending now. Averages are computed over finished cycles only.
func (s *ObservabilityService) GetOrchestrationStats(ctx context.Context, stackID string, timeRange time.Duration) (*models.OrchestrationStats, error) {
	since := time.Now().Add(-timeRange)

	executions, err := s.client.OrchestratorExecution.Query().
		Where(
			orchestratorexecution.StackIDEQ(stackID),
			orchestratorexecution.StartedAtGTE(since),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load executions: %w", err)
	}

	stats := &models.OrchestrationStats{TotalCycles: len(executions)}
	var totalDuration time.Duration
	finished := 0
	for _, e := range executions {
		switch e.Status {
		case orchestratorexecution.StatusFailed:
			stats.FailedCycles++
		case orchestratorexecution.StatusCompleted, orchestratorexecution.StatusPaused:
			stats.CompletedCycles++
		}
		switch models.DecisionKind(e.Decision) {
		case models.DecisionContinue:
			stats.ContinueDecisions++
		case models.DecisionPause:
			stats.PauseDecisions++
		}
		if e.CompletedAt != nil {
			totalDuration += e.CompletedAt.Sub(e.StartedAt)
			finished++
		}
	}
	if finished > 0 {
		stats.AvgCycleDurationMs = float64(totalDuration.Milliseconds()) / float64(finished)
	}

	graphs, err := s.client.ExecutionGraph.Query().
		Where(
			executiongraph.StackIDEQ(stackID),
			executiongraph.CreatedAtGTE(since),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load execution graphs: %w", err)
	}
	if len(graphs) > 0 {
		totalParallel := 0
		for _, g := range graphs {
			widest := 0
			for _, wave := range g.Graph.Waves {
				if len(wave) > widest {
					widest = len(wave)
				}
			}
			totalParallel += widest
		}
		stats.AvgParallelExecutions = float64(totalParallel) / float64(len(graphs))
	}

	return stats, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
