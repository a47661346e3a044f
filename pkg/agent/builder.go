package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/artifact"
	"github.com/hackfleet/hackfleet/ent/projectidea"
	"github.com/hackfleet/hackfleet/ent/todo"
	"github.com/hackfleet/hackfleet/pkg/llm"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// MaxArtifactContextBytes bounds how much of the previous artifact is fed
// back to the model as context.
const MaxArtifactContextBytes = 50 * 1024

// builderMaxTokens is larger than the other roles; a full HTML page does
// not fit in the default completion budget.
const builderMaxTokens = 8192

// Builder picks the highest-priority pending todo, asks the model for a
// complete HTML artifact, and appends it as the next version. Only the
// builder ever writes artifacts.
type Builder struct {
	deps
}

func (b *Builder) Type() models.AgentType { return models.AgentBuilder }

type builderReply struct {
	Thinking string `json:"thinking"`
	Results  struct {
		Artifact string `json:"artifact"`
	} `json:"results"`
}

func (b *Builder) Run(ctx context.Context, stackID string) error {
	// Precondition recheck: the todo list may have changed since work
	// detection. No pending todo means the node quietly becomes a no-op.
	task, err := b.db.Todo.Query().
		Where(todo.StackIDEQ(stackID), todo.StatusEQ(todo.StatusPending), todo.PriorityGT(0)).
		Order(ent.Desc(todo.FieldPriority), ent.Asc(todo.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load pending todos: %w", err)
	}

	state, err := b.loadAgentState(ctx, stackID, models.AgentBuilder)
	if err != nil {
		return err
	}

	if err := b.db.Todo.UpdateOneID(task.ID).
		SetStatus(todo.StatusInProgress).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark todo in progress: %w", err)
	}

	latest, err := b.db.Artifact.Query().
		Where(artifact.StackIDEQ(stackID)).
		Order(ent.Desc(artifact.FieldVersion)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to load latest artifact: %w", err)
	}

	idea, err := b.db.ProjectIdea.Query().
		Where(projectidea.StackIDEQ(stackID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to load project idea: %w", err)
	}

	system, user := b.buildPrompt(task, latest, idea)

	callCtx, cancel := context.WithTimeout(ctx, b.cfg.BuilderTimeout)
	defer cancel()
	content, err := b.chatStructured(callCtx, builderSchema, system, user, llm.Options{
		MaxTokens: builderMaxTokens,
	})
	if err != nil {
		return fmt.Errorf("builder llm call failed: %w", err)
	}

	var reply builderReply
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if strings.TrimSpace(reply.Results.Artifact) == "" {
		// The todo stays in_progress; the planner sees it next cycle and
		// decides whether to rewrite or cancel it.
		b.trace(ctx, stackID, models.AgentBuilder, reply.Thinking,
			"build "+truncate(task.Content, 60), "artifactCreated=false")
		return b.saveMemory(ctx, state, state.Memory, reply.Thinking)
	}

	version, err := b.appendArtifact(ctx, stackID, task.ID, reply.Results.Artifact)
	if err != nil {
		return err
	}

	if err := b.saveMemory(ctx, state, state.Memory, reply.Thinking); err != nil {
		return err
	}

	b.trace(ctx, stackID, models.AgentBuilder, reply.Thinking,
		"build "+truncate(task.Content, 60),
		fmt.Sprintf("artifact v%d (%d bytes)", version, len(reply.Results.Artifact)))
	return nil
}

// appendArtifact allocates the next version and completes the todo in one
// transaction. The version read locks the latest row so two writers cannot
// allocate the same number; the unique (stack_id, version) index backstops
// the invariant regardless.
func (b *Builder) appendArtifact(ctx context.Context, stackID, todoID, content string) (int, error) {
	tx, err := b.db.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	prev, err := tx.Artifact.Query().
		Where(artifact.StackIDEQ(stackID)).
		Order(ent.Desc(artifact.FieldVersion)).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		First(ctx)
	version := 1
	switch {
	case err == nil:
		version = prev.Version + 1
	case !ent.IsNotFound(err):
		return 0, fmt.Errorf("failed to read latest artifact version: %w", err)
	}

	_, err = tx.Artifact.Create().
		SetID(uuid.NewString()).
		SetStackID(stackID).
		SetVersion(version).
		SetContent(content).
		SetCreatedBy(string(models.AgentBuilder)).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to create artifact v%d: %w", version, err)
	}

	if err := tx.Todo.UpdateOneID(todoID).
		SetStatus(todo.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to complete todo: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit artifact: %w", err)
	}
	return version, nil
}

func (b *Builder) buildPrompt(task *ent.Todo, latest *ent.Artifact, idea *ent.ProjectIdea) (string, string) {
	system := "You are the builder of a four-agent hackathon team. " +
		"You produce one complete, self-contained HTML page (inline CSS and " +
		"JS allowed, no external resources). Always return the FULL page, " +
		"not a diff. If the task cannot be done, return an empty artifact."

	var sb strings.Builder
	if idea != nil {
		fmt.Fprintf(&sb, "Project: %s - %s\n", idea.Title, idea.Description)
	}
	fmt.Fprintf(&sb, "Task: %s\n", task.Content)

	if latest != nil {
		prev := latest.Content
		if len(prev) > MaxArtifactContextBytes {
			prev = prev[:MaxArtifactContextBytes]
		}
		fmt.Fprintf(&sb, "\nCurrent page (v%d):\n%s\n", latest.Version, prev)
		sb.WriteString("\nApply the task to the current page and return the updated full page.")
	} else {
		sb.WriteString("\nThere is no page yet. Create the first version from scratch.")
	}

	return system, sb.String()
}
