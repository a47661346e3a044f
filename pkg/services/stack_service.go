package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/agentstate"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// StackService manages stack lifecycle: creation with the four agent
// states, the user-facing execution state machine, and cascade deletion.
type StackService struct {
	client *ent.Client
}

// NewStackService creates a new StackService.
func NewStackService(client *ent.Client) *StackService {
	return &StackService{client: client}
}

// ExecutionStatus is the admin view of one stack's orchestration state.
type ExecutionStatus struct {
	StackID         string                     `json:"stack_id"`
	ExecutionState  stack.ExecutionState       `json:"execution_state"`
	Phase           stack.Phase                `json:"phase"`
	TotalCycles     int                        `json:"total_cycles"`
	LastActivityAt  *time.Time                 `json:"last_activity_at,omitempty"`
	LatestExecution *ent.OrchestratorExecution `json:"latest_execution,omitempty"`
}

// CreateStack creates a stack together with its four agent state rows.
func (s *StackService) CreateStack(ctx context.Context, participantName string) (*ent.Stack, error) {
	if participantName == "" {
		return nil, NewValidationError("participant_name", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	st, err := tx.Stack.Create().
		SetID(uuid.NewString()).
		SetParticipantName(participantName).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create stack: %w", err)
	}

	for _, role := range models.AllAgents {
		_, err := tx.AgentState.Create().
			SetID(uuid.NewString()).
			SetStackID(st.ID).
			SetAgentType(agentstate.AgentType(role)).
			SetMemory(models.AgentMemory{ExecutionState: models.AgentIdle}).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s state: %w", role, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit stack creation: %w", err)
	}
	return st, nil
}

// ListStacks returns all stacks, newest first.
func (s *StackService) ListStacks(ctx context.Context) ([]*ent.Stack, error) {
	stacks, err := s.client.Stack.Query().
		Order(ent.Desc(stack.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stacks: %w", err)
	}
	return stacks, nil
}

// GetStack returns one stack by id.
func (s *StackService) GetStack(ctx context.Context, stackID string) (*ent.Stack, error) {
	st, err := s.client.Stack.Get(ctx, stackID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stack: %w", err)
	}
	return st, nil
}

// DeleteStack removes a stack and, through the cascade, everything it owns.
// Shared messages survive so peer conversations stay intact.
func (s *StackService) DeleteStack(ctx context.Context, stackID string) error {
	err := s.client.Stack.DeleteOneID(stackID).Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete stack: %w", err)
	}
	return nil
}

// StartExecution moves an idle stack to running; the next scheduler tick
// picks it up.
func (s *StackService) StartExecution(ctx context.Context, stackID string) error {
	return s.transition(ctx, stackID, stack.ExecutionStateRunning,
		stack.ExecutionStateIdle)
}

// PauseExecution moves a running stack to paused. In-flight cycles finish;
// the orchestrator's own state check stops follow-ups.
func (s *StackService) PauseExecution(ctx context.Context, stackID string) error {
	return s.transition(ctx, stackID, stack.ExecutionStatePaused,
		stack.ExecutionStateRunning)
}

// ResumeExecution moves a paused stack back to running.
func (s *StackService) ResumeExecution(ctx context.Context, stackID string) error {
	return s.transition(ctx, stackID, stack.ExecutionStateRunning,
		stack.ExecutionStatePaused)
}

// StopExecution stops a stack from any state.
func (s *StackService) StopExecution(ctx context.Context, stackID string) error {
	return s.transition(ctx, stackID, stack.ExecutionStateStopped,
		stack.ExecutionStateIdle, stack.ExecutionStateRunning,
		stack.ExecutionStatePaused, stack.ExecutionStateStopped)
}

// transition performs a compare-and-set on the execution state: the update
// only matches when the stack is in one of the allowed source states, so
// two racing admin calls cannot skip a step.
func (s *StackService) transition(ctx context.Context, stackID string, to stack.ExecutionState, from ...stack.ExecutionState) error {
	n, err := s.client.Stack.Update().
		Where(stack.IDEQ(stackID), stack.ExecutionStateIn(from...)).
		SetExecutionState(to).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update execution state: %w", err)
	}
	if n == 0 {
		_, err := s.client.Stack.Get(ctx, stackID)
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get stack: %w", err)
		}
		return fmt.Errorf("%w: stack %s cannot move to %s", ErrInvalidTransition, stackID, to)
	}
	return nil
}

// GetExecutionStatus returns the stack's lifecycle state plus its most
// recent orchestrator execution.
func (s *StackService) GetExecutionStatus(ctx context.Context, stackID string) (*ExecutionStatus, error) {
	st, err := s.GetStack(ctx, stackID)
	if err != nil {
		return nil, err
	}

	latest, err := s.client.OrchestratorExecution.Query().
		Where(orchestratorexecution.StackIDEQ(stackID)).
		Order(ent.Desc(orchestratorexecution.FieldStartedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load latest execution: %w", err)
	}

	return &ExecutionStatus{
		StackID:         st.ID,
		ExecutionState:  st.ExecutionState,
		Phase:           st.Phase,
		TotalCycles:     st.TotalCycles,
		LastActivityAt:  st.LastActivityAt,
		LatestExecution: latest,
	}, nil
}
