// Package cleanup provides data retention for observability records.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/agenttrace"
	"github.com/hackfleet/hackfleet/ent/executiongraph"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/workdetectioncache"
	"github.com/hackfleet/hackfleet/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes agent traces past the trace retention window
//   - Deletes terminal orchestrator executions and graph snapshots past the
//     execution retention window
//   - Deletes long-expired work detection cache rows
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{config: cfg, client: client}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"trace_retention", s.config.TraceRetention,
		"execution_retention", s.config.ExecutionRetention,
		"interval", s.config.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	if err := s.CleanupTraces(ctx); err != nil {
		slog.Error("Trace cleanup failed", "error", err)
	}
	if err := s.CleanupExecutions(ctx); err != nil {
		slog.Error("Execution cleanup failed", "error", err)
	}
	if err := s.CleanupWorkCache(ctx); err != nil {
		slog.Error("Work cache cleanup failed", "error", err)
	}
}

// CleanupTraces deletes agent traces older than the trace retention window.
func (s *Service) CleanupTraces(ctx context.Context) error {
	cutoff := time.Now().Add(-s.config.TraceRetention)
	n, err := s.client.AgentTrace.Delete().
		Where(agenttrace.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		slog.Info("Deleted old agent traces", "count", n)
	}
	return nil
}

// CleanupExecutions deletes terminal orchestrator executions and graph
// snapshots older than the execution retention window. Running rows are
// never touched; they are the single-flight lease.
func (s *Service) CleanupExecutions(ctx context.Context) error {
	cutoff := time.Now().Add(-s.config.ExecutionRetention)

	n, err := s.client.ExecutionGraph.Delete().
		Where(executiongraph.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return err
	}

	m, err := s.client.OrchestratorExecution.Delete().
		Where(
			orchestratorexecution.StatusNEQ(orchestratorexecution.StatusRunning),
			orchestratorexecution.StartedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n+m > 0 {
		slog.Info("Deleted old executions", "graphs", n, "executions", m)
	}
	return nil
}

// CleanupWorkCache deletes cache rows whose TTL lapsed more than a full
// retention interval ago. Fresh-but-stale rows stay; the detector
// overwrites them in place.
func (s *Service) CleanupWorkCache(ctx context.Context) error {
	cutoff := time.Now().Add(-s.config.Interval)
	n, err := s.client.WorkDetectionCache.Delete().
		Where(workdetectioncache.ValidUntilLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		slog.Info("Deleted expired work cache rows", "count", n)
	}
	return nil
}
