package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/projectidea"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/todo"
	"github.com/hackfleet/hackfleet/ent/usermessage"
	"github.com/hackfleet/hackfleet/pkg/llm"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// Planner decides what the team works on: it upserts the project idea,
// advances the hackathon phase, and rewrites the todo list. Reviewer
// recommendations handed off through planner memory are consumed here.
type Planner struct {
	deps
}

func (p *Planner) Type() models.AgentType { return models.AgentPlanner }

type plannerReply struct {
	Thinking string          `json:"thinking"`
	Actions  []plannerAction `json:"actions"`
}

type plannerAction struct {
	Type        string `json:"type"`
	Content     string `json:"content,omitempty"`
	NewContent  string `json:"new_content,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Phase       string `json:"phase,omitempty"`
}

func (p *Planner) Run(ctx context.Context, stackID string) error {
	st, err := p.db.Stack.Query().Where(stack.IDEQ(stackID)).Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stack %s: %w", stackID, err)
	}
	state, err := p.loadAgentState(ctx, stackID, models.AgentPlanner)
	if err != nil {
		return err
	}

	idea, err := p.db.ProjectIdea.Query().
		Where(projectidea.StackIDEQ(stackID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to load project idea: %w", err)
	}

	todos, err := p.db.Todo.Query().
		Where(todo.StackIDEQ(stackID), todo.StatusIn(todo.StatusPending, todo.StatusInProgress)).
		Order(ent.Desc(todo.FieldPriority), ent.Asc(todo.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load todos: %w", err)
	}

	userMessages, err := p.db.UserMessage.Query().
		Where(usermessage.TeamIDEQ(stackID), usermessage.ProcessedEQ(false)).
		Order(ent.Asc(usermessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load user messages: %w", err)
	}

	system, user := p.buildPrompt(st, idea, todos, userMessages, state.Memory)

	callCtx, cancel := context.WithTimeout(ctx, p.cfg.DefaultTimeout)
	defer cancel()
	content, err := p.chatStructured(callCtx, plannerSchema, system, user, llm.Options{})
	if err != nil {
		return fmt.Errorf("planner llm call failed: %w", err)
	}

	var reply plannerReply
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	summary, err := p.applyActions(ctx, stackID, todos, reply.Actions)
	if err != nil {
		return err
	}

	// Recommendations are consumed by this run even when the model ignored
	// them; keeping them around would re-trigger planner work forever.
	mem := state.Memory
	now := time.Now()
	mem.LastPlanningTime = &now
	mem.ReviewerRecommendations = nil
	mem.RecommendationsTimestamp = nil
	mem.RecommendationsType = ""
	if err := p.saveMemory(ctx, state, mem, reply.Thinking); err != nil {
		return err
	}

	p.trace(ctx, stackID, models.AgentPlanner, reply.Thinking, "plan", summary)
	return nil
}

// applyActions executes the planner's action set in the contractual order:
// clear_all_todos first, then update_project, then update_phase, then the
// remaining todo actions in input order. Todo updates and deletes match by
// exact content string; a miss logs a warning and skips.
func (p *Planner) applyActions(ctx context.Context, stackID string, todos []*ent.Todo, actions []plannerAction) (string, error) {
	byContent := make(map[string]*ent.Todo, len(todos))
	for _, t := range todos {
		byContent[t.Content] = t
	}

	var applied []string

	for _, a := range actions {
		if a.Type != "clear_all_todos" {
			continue
		}
		n, err := p.db.Todo.Delete().Where(todo.StackIDEQ(stackID)).Exec(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to clear todos: %w", err)
		}
		byContent = map[string]*ent.Todo{}
		applied = append(applied, fmt.Sprintf("cleared %d todos", n))
		break
	}

	for _, a := range actions {
		if a.Type != "update_project" {
			continue
		}
		if err := p.upsertProjectIdea(ctx, stackID, a.Title, a.Description); err != nil {
			return "", err
		}
		applied = append(applied, fmt.Sprintf("project %q", a.Title))
	}

	for _, a := range actions {
		if a.Type != "update_phase" {
			continue
		}
		phase := stack.Phase(a.Phase)
		if err := stack.PhaseValidator(phase); err != nil {
			slog.Warn("Planner produced unknown phase, ignoring",
				"stack_id", stackID, "phase", a.Phase)
			continue
		}
		if err := p.db.Stack.UpdateOneID(stackID).SetPhase(phase).Exec(ctx); err != nil {
			return "", fmt.Errorf("failed to update phase: %w", err)
		}
		applied = append(applied, "phase "+a.Phase)
	}

	for _, a := range actions {
		switch a.Type {
		case "create_todo":
			if a.Content == "" {
				slog.Warn("Planner create_todo with empty content, skipping", "stack_id", stackID)
				continue
			}
			create := p.db.Todo.Create().
				SetID(uuid.NewString()).
				SetStackID(stackID).
				SetContent(a.Content).
				SetAssignedBy(string(models.AgentPlanner))
			if a.Priority != nil {
				create.SetPriority(clampPriority(*a.Priority))
			}
			t, err := create.Save(ctx)
			if err != nil {
				return "", fmt.Errorf("failed to create todo: %w", err)
			}
			byContent[t.Content] = t
			applied = append(applied, "create "+truncate(a.Content, 40))

		case "update_todo":
			t, ok := byContent[a.Content]
			if !ok {
				slog.Warn("Planner update_todo matched no todo, skipping",
					"stack_id", stackID, "content", truncate(a.Content, 80))
				continue
			}
			update := p.db.Todo.UpdateOneID(t.ID)
			if a.NewContent != "" {
				update.SetContent(a.NewContent)
			}
			if a.Priority != nil {
				update.SetPriority(clampPriority(*a.Priority))
			}
			updated, err := update.Save(ctx)
			if err != nil {
				return "", fmt.Errorf("failed to update todo: %w", err)
			}
			delete(byContent, a.Content)
			byContent[updated.Content] = updated
			applied = append(applied, "update "+truncate(a.Content, 40))

		case "delete_todo":
			t, ok := byContent[a.Content]
			if !ok {
				slog.Warn("Planner delete_todo matched no todo, skipping",
					"stack_id", stackID, "content", truncate(a.Content, 80))
				continue
			}
			if err := p.db.Todo.DeleteOneID(t.ID).Exec(ctx); err != nil {
				return "", fmt.Errorf("failed to delete todo: %w", err)
			}
			delete(byContent, a.Content)
			applied = append(applied, "delete "+truncate(a.Content, 40))
		}
	}

	if len(applied) == 0 {
		return "no actions", nil
	}
	return strings.Join(applied, "; "), nil
}

func (p *Planner) upsertProjectIdea(ctx context.Context, stackID, title, description string) error {
	existing, err := p.db.ProjectIdea.Query().
		Where(projectidea.StackIDEQ(stackID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = p.db.ProjectIdea.Create().
			SetID(uuid.NewString()).
			SetStackID(stackID).
			SetTitle(title).
			SetDescription(description).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create project idea: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to load project idea: %w", err)
	default:
		_, err = p.db.ProjectIdea.UpdateOneID(existing.ID).
			SetTitle(title).
			SetDescription(description).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update project idea: %w", err)
		}
	}
	return nil
}

func (p *Planner) buildPrompt(st *ent.Stack, idea *ent.ProjectIdea, todos []*ent.Todo, userMessages []*ent.UserMessage, mem models.AgentMemory) (string, string) {
	system := "You are the planner of a four-agent hackathon team. " +
		"You decide the project idea, advance the hackathon phase " +
		"(ideation, building, demo, completed), and maintain the todo list " +
		"the builder works from. Keep the todo list small and concrete; " +
		"every todo must describe one buildable change to a single HTML page."

	var b strings.Builder
	fmt.Fprintf(&b, "Team: %s\nPhase: %s\n", st.ParticipantName, st.Phase)

	if idea != nil {
		fmt.Fprintf(&b, "Project: %s - %s\n", idea.Title, idea.Description)
	} else {
		b.WriteString("Project: none yet. You must pick one (update_project) and create initial todos.\n")
	}

	if len(todos) == 0 {
		b.WriteString("Todos: none pending.\n")
	} else {
		b.WriteString("Todos:\n")
		for _, t := range todos {
			fmt.Fprintf(&b, "- [%s p%d] %s\n", t.Status, t.Priority, t.Content)
		}
	}

	if len(mem.ReviewerRecommendations) > 0 {
		b.WriteString("Reviewer recommendations to address:\n")
		for _, r := range mem.ReviewerRecommendations {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}

	if len(userMessages) > 0 {
		b.WriteString("Recent visitor requests (consider turning these into todos):\n")
		for _, m := range userMessages {
			fmt.Fprintf(&b, "- %s: %s\n", m.SenderName, truncate(m.Content, 200))
		}
	}

	b.WriteString("\nReply with your thinking and the action list for this cycle.")
	return system, b.String()
}

func clampPriority(p int) int {
	if p < 1 {
		return 1
	}
	if p > 10 {
		return 10
	}
	return p
}
