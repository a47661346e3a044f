// Package scheduler implements the global tick loop: every few seconds it
// scans running stacks, claims a single-flight execution lease per stack,
// and dispatches orchestration cycles with bounded concurrency.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/pkg/config"
	"github.com/hackfleet/hackfleet/pkg/orchestrator"
)

// Scheduler is the process-wide singleton that keeps every running stack's
// control loop alive. Single-flight per stack is enforced by the running
// OrchestratorExecution row: the partial unique index on (stack_id) WHERE
// status='running' makes the claim a conditional insert.
type Scheduler struct {
	db   *ent.Client
	orch *orchestrator.Orchestrator
	cfg  *config.SchedulerConfig

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	sem      chan struct{}

	mu           sync.RWMutex
	started      bool
	lastTickAt   time.Time
	activeCycles int
}

// HealthStatus is the scheduler's health surface.
type HealthStatus struct {
	Started      bool      `json:"started"`
	LastTickAt   time.Time `json:"last_tick_at"`
	ActiveCycles int       `json:"active_cycles"`
}

// New creates a scheduler.
func New(db *ent.Client, orch *orchestrator.Orchestrator, cfg *config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		db:     db,
		orch:   orch,
		cfg:    cfg,
		stopCh: make(chan struct{}),
		sem:    make(chan struct{}, cfg.MaxConcurrentCycles),
	}
}

// Start launches the tick loop. Safe to call once; duplicate calls are
// no-ops.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		slog.Warn("Scheduler already started, ignoring duplicate Start call")
		return
	}
	s.started = true
	s.mu.Unlock()

	slog.Info("Starting scheduler",
		"tick_interval", s.cfg.TickInterval,
		"max_concurrent_cycles", s.cfg.MaxConcurrentCycles)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// Stop signals the tick loop to exit and waits for in-flight cycles up to
// the graceful shutdown timeout.
func (s *Scheduler) Stop() {
	slog.Info("Stopping scheduler gracefully")
	s.stopOnce.Do(func() { close(s.stopCh) })

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Scheduler stopped gracefully")
	case <-time.After(s.cfg.GracefulShutdownTimeout):
		slog.Warn("Scheduler shutdown timed out with cycles still in flight",
			"active_cycles", s.Health().ActiveCycles)
	}
}

// Health reports the scheduler's current state for the health endpoint.
func (s *Scheduler) Health() HealthStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return HealthStatus{
		Started:      s.started,
		LastTickAt:   s.lastTickAt,
		ActiveCycles: s.activeCycles,
	}
}

func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			if err := s.tick(ctx); err != nil {
				slog.Error("Scheduler tick failed", "error", err)
			}
		}
	}
}

// tick scans running stacks and dispatches a cycle for every stack whose
// lease is free. One stack's failure never blocks the others.
func (s *Scheduler) tick(ctx context.Context) error {
	s.mu.Lock()
	s.lastTickAt = time.Now()
	s.mu.Unlock()

	stacks, err := s.db.Stack.Query().
		Where(stack.ExecutionStateEQ(stack.ExecutionStateRunning)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list running stacks: %w", err)
	}

	for _, st := range stacks {
		executionID, ok, err := s.claim(ctx, st.ID)
		if err != nil {
			slog.Error("Failed to claim execution", "stack_id", st.ID, "error", err)
			continue
		}
		if !ok {
			continue
		}
		s.dispatch(ctx, st.ID, executionID)
	}
	return nil
}

// claim atomically creates the running execution row for a stack if its
// previous cycle terminated, honored its pause, or is stuck. The stack row
// is locked with SKIP LOCKED so concurrent ticks (or pods) pass each other
// without blocking.
func (s *Scheduler) claim(ctx context.Context, stackID string) (string, bool, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Stack.Query().
		Where(stack.IDEQ(stackID), stack.ExecutionStateEQ(stack.ExecutionStateRunning)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		Only(ctx)
	if ent.IsNotFound(err) {
		// Stopped meanwhile, or another claimer holds the lock.
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to lock stack: %w", err)
	}

	last, err := tx.OrchestratorExecution.Query().
		Where(orchestratorexecution.StackIDEQ(stackID)).
		Order(ent.Desc(orchestratorexecution.FieldStartedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return "", false, fmt.Errorf("failed to load last execution: %w", err)
	}

	now := time.Now()
	if last != nil {
		switch last.Status {
		case orchestratorexecution.StatusRunning:
			if now.Sub(last.StartedAt) <= s.cfg.StuckCycleThreshold {
				// A live cycle owns the lease.
				return "", false, nil
			}
			// Stuck cycle: free the lease. The stale cycle's own finalize
			// only touches rows still in running state, so it cannot undo
			// this.
			slog.Warn("Reaping stuck orchestration cycle",
				"stack_id", stackID,
				"execution_id", last.ID,
				"age", now.Sub(last.StartedAt).Round(time.Second))
			if err := tx.OrchestratorExecution.UpdateOneID(last.ID).
				SetStatus(orchestratorexecution.StatusFailed).
				SetCompletedAt(now).
				SetErrorMessage(fmt.Sprintf("reaped after %s without completing", s.cfg.StuckCycleThreshold)).
				Exec(ctx); err != nil {
				return "", false, fmt.Errorf("failed to reap stuck execution: %w", err)
			}
		case orchestratorexecution.StatusPaused:
			if last.CompletedAt != nil && last.PauseDurationMs != nil {
				resumeAt := last.CompletedAt.Add(time.Duration(*last.PauseDurationMs) * time.Millisecond)
				if now.Before(resumeAt) {
					return "", false, nil
				}
			}
		}
	}

	executionID := uuid.NewString()
	_, err = tx.OrchestratorExecution.Create().
		SetID(executionID).
		SetStackID(stackID).
		SetStatus(orchestratorexecution.StatusRunning).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the conditional insert to a concurrent claimer.
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to create execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("failed to commit claim: %w", err)
	}
	return executionID, true, nil
}

// dispatch runs one cycle in the background, bounded by the concurrency
// semaphore. When the pool is saturated the stack keeps its lease and the
// cycle starts as soon as a slot frees.
func (s *Scheduler) dispatch(ctx context.Context, stackID, executionID string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		select {
		case s.sem <- struct{}{}:
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		}
		defer func() { <-s.sem }()

		s.mu.Lock()
		s.activeCycles++
		s.mu.Unlock()
		defer func() {
			s.mu.Lock()
			s.activeCycles--
			s.mu.Unlock()
		}()

		s.orch.RunCycle(ctx, stackID, executionID)
	}()
}

// RecoverOrphans marks every running execution as failed. Called once at
// startup: a running row from a previous process is a lease nobody holds,
// and it would block its stack for a full stuck-cycle threshold otherwise.
func RecoverOrphans(ctx context.Context, db *ent.Client) error {
	n, err := db.OrchestratorExecution.Update().
		Where(orchestratorexecution.StatusEQ(orchestratorexecution.StatusRunning)).
		SetStatus(orchestratorexecution.StatusFailed).
		SetCompletedAt(time.Now()).
		SetErrorMessage("orphaned at startup").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to recover orphaned executions: %w", err)
	}
	if n > 0 {
		slog.Info("Recovered orphaned executions", "count", n)
	}
	return nil
}
