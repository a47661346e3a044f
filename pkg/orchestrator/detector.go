// Package orchestrator implements the per-stack control loop: work
// detection, graph building, wave execution, and the adaptive
// pause/continue decision.
package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/artifact"
	"github.com/hackfleet/hackfleet/ent/agentstate"
	"github.com/hackfleet/hackfleet/ent/message"
	"github.com/hackfleet/hackfleet/ent/projectidea"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/todo"
	"github.com/hackfleet/hackfleet/ent/usermessage"
	"github.com/hackfleet/hackfleet/ent/workdetectioncache"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// Work-detection thresholds.
const (
	plannerStaleAfter  = 5 * time.Minute
	reviewerStaleAfter = 3 * time.Minute
	strategicMinLength = 100
)

// strategicKeywords mark a visitor message as a project-direction request
// the planner should see, not just a question for the communicator.
var strategicKeywords = []string{
	"feature", "add", "change project", "different", "instead", "modify",
}

// WorkContext is the state snapshot work detection runs over. It is fetched
// once per detection with parallel queries; detection itself is pure.
type WorkContext struct {
	Stack           *ent.Stack
	Todos           []*ent.Todo
	UnreadMessages  []*ent.Message
	LatestArtifact  *ent.Artifact
	ProjectIdea     *ent.ProjectIdea
	AgentMemories   map[models.AgentType]models.AgentMemory
	UnprocessedUser []*ent.UserMessage
}

// Detector computes per-agent work status with a short-TTL cache row per
// stack. The cache is advisory: stale rows are ignored, and writes are last
// write wins.
type Detector struct {
	db  *ent.Client
	ttl time.Duration
}

// NewDetector creates a detector over the given client.
func NewDetector(db *ent.Client, ttl time.Duration) *Detector {
	return &Detector{db: db, ttl: ttl}
}

// Detect returns the stack's work status, reusing a live cache row when one
// exists and otherwise computing from a fresh snapshot and re-caching.
func (d *Detector) Detect(ctx context.Context, stackID string) (models.WorkStatus, error) {
	now := time.Now()

	cached, err := d.db.WorkDetectionCache.Query().
		Where(workdetectioncache.StackIDEQ(stackID), workdetectioncache.ValidUntilGT(now)).
		Only(ctx)
	if err == nil {
		return cached.Statuses, nil
	}
	if !ent.IsNotFound(err) {
		return models.WorkStatus{}, fmt.Errorf("failed to read work cache: %w", err)
	}

	wc, err := FetchWorkContext(ctx, d.db, stackID)
	if err != nil {
		return models.WorkStatus{}, err
	}

	status := DetectWork(now, wc)
	if err := d.writeCache(ctx, stackID, status, now); err != nil {
		return models.WorkStatus{}, err
	}
	return status, nil
}

// writeCache upserts the stack's single cache row atomically.
func (d *Detector) writeCache(ctx context.Context, stackID string, status models.WorkStatus, now time.Time) error {
	err := d.db.WorkDetectionCache.Create().
		SetID(uuid.NewString()).
		SetStackID(stackID).
		SetStatuses(status).
		SetComputedAt(now).
		SetValidUntil(now.Add(d.ttl)).
		OnConflictColumns(workdetectioncache.FieldStackID).
		Update(func(u *ent.WorkDetectionCacheUpsert) {
			u.SetStatuses(status)
			u.SetComputedAt(now)
			u.SetValidUntil(now.Add(d.ttl))
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert work cache: %w", err)
	}
	return nil
}

// FetchWorkContext loads the detection snapshot with parallel queries.
func FetchWorkContext(ctx context.Context, db *ent.Client, stackID string) (*WorkContext, error) {
	wc := &WorkContext{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		st, err := db.Stack.Query().Where(stack.IDEQ(stackID)).Only(gctx)
		if err != nil {
			return fmt.Errorf("failed to load stack: %w", err)
		}
		wc.Stack = st
		return nil
	})
	g.Go(func() error {
		todos, err := db.Todo.Query().
			Where(todo.StackIDEQ(stackID)).
			Order(ent.Desc(todo.FieldPriority), ent.Asc(todo.FieldCreatedAt)).
			All(gctx)
		if err != nil {
			return fmt.Errorf("failed to load todos: %w", err)
		}
		wc.Todos = todos
		return nil
	})
	g.Go(func() error {
		msgs, err := db.Message.Query().
			Where(message.Or(
				message.ToStackIDEQ(stackID),
				message.And(message.MessageTypeEQ(message.MessageTypeBroadcast), message.ToStackIDIsNil()),
			)).
			Order(ent.Asc(message.FieldCreatedAt)).
			All(gctx)
		if err != nil {
			return fmt.Errorf("failed to load messages: %w", err)
		}
		for _, m := range msgs {
			if m.FromStackID != nil && *m.FromStackID == stackID {
				continue
			}
			if containsString(m.ReadBy, stackID) {
				continue
			}
			wc.UnreadMessages = append(wc.UnreadMessages, m)
		}
		return nil
	})
	g.Go(func() error {
		latest, err := db.Artifact.Query().
			Where(artifact.StackIDEQ(stackID)).
			Order(ent.Desc(artifact.FieldVersion)).
			First(gctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to load latest artifact: %w", err)
		}
		wc.LatestArtifact = latest
		return nil
	})
	g.Go(func() error {
		idea, err := db.ProjectIdea.Query().
			Where(projectidea.StackIDEQ(stackID)).
			Only(gctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to load project idea: %w", err)
		}
		wc.ProjectIdea = idea
		return nil
	})
	g.Go(func() error {
		states, err := db.AgentState.Query().
			Where(agentstate.StackIDEQ(stackID)).
			All(gctx)
		if err != nil {
			return fmt.Errorf("failed to load agent states: %w", err)
		}
		wc.AgentMemories = make(map[models.AgentType]models.AgentMemory, len(states))
		for _, s := range states {
			wc.AgentMemories[models.AgentType(s.AgentType)] = s.Memory
		}
		return nil
	})
	g.Go(func() error {
		msgs, err := db.UserMessage.Query().
			Where(usermessage.TeamIDEQ(stackID), usermessage.ProcessedEQ(false)).
			Order(ent.Asc(usermessage.FieldCreatedAt)).
			All(gctx)
		if err != nil {
			return fmt.Errorf("failed to load user messages: %w", err)
		}
		wc.UnprocessedUser = msgs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return wc, nil
}

// DetectWork is the pure detection function: same snapshot in, same status
// out. Priorities are independent per agent; 0 means no work.
func DetectWork(now time.Time, wc *WorkContext) models.WorkStatus {
	return models.WorkStatus{
		Agents: map[models.AgentType]models.AgentWork{
			models.AgentPlanner:      detectPlannerWork(now, wc),
			models.AgentBuilder:      detectBuilderWork(wc),
			models.AgentCommunicator: detectCommunicatorWork(wc),
			models.AgentReviewer:     detectReviewerWork(now, wc),
		},
	}
}

func detectPlannerWork(now time.Time, wc *WorkContext) models.AgentWork {
	mem := wc.AgentMemories[models.AgentPlanner]

	if wc.ProjectIdea == nil {
		return work(10, "no project idea")
	}
	if countTodos(wc.Todos, todo.StatusPending) == 0 {
		return work(9, "no pending todos")
	}
	if len(mem.ReviewerRecommendations) > 0 {
		return work(8, "reviewer recommendations pending")
	}
	for _, um := range wc.UnprocessedUser {
		if isStrategic(um.Content) {
			return work(7, "strategic visitor request")
		}
	}
	if mem.LastPlanningTime == nil || now.Sub(*mem.LastPlanningTime) > plannerStaleAfter {
		return work(4, "periodic replan")
	}
	return noWork()
}

func detectBuilderWork(wc *WorkContext) models.AgentWork {
	pending := 0
	urgent := false
	for _, t := range wc.Todos {
		if t.Status != todo.StatusPending || t.Priority <= 0 {
			continue
		}
		pending++
		if t.Priority >= 3 {
			urgent = true
		}
	}
	switch {
	case pending == 0:
		return noWork()
	case urgent:
		return work(8, fmt.Sprintf("%d pending todos (high priority)", pending))
	default:
		return work(6, fmt.Sprintf("%d pending todos", pending))
	}
}

func detectCommunicatorWork(wc *WorkContext) models.AgentWork {
	if len(wc.UnprocessedUser) > 0 {
		return work(10, fmt.Sprintf("%d unanswered visitor messages", len(wc.UnprocessedUser)))
	}
	if len(wc.UnreadMessages) > 0 {
		return work(7, fmt.Sprintf("%d unread peer messages", len(wc.UnreadMessages)))
	}
	return noWork()
}

func detectReviewerWork(now time.Time, wc *WorkContext) models.AgentWork {
	mem := wc.AgentMemories[models.AgentReviewer]

	var lastReview time.Time
	if mem.LastReviewTime != nil {
		lastReview = *mem.LastReviewTime
	}

	completedSince := 0
	for _, t := range wc.Todos {
		if t.Status == todo.StatusCompleted && t.CompletedAt != nil && t.CompletedAt.After(lastReview) {
			completedSince++
		}
	}
	if completedSince >= 2 {
		return work(6, fmt.Sprintf("%d todos completed since last review", completedSince))
	}
	if wc.LatestArtifact != nil && wc.LatestArtifact.CreatedAt.After(lastReview) {
		return work(6, fmt.Sprintf("artifact v%d not yet reviewed", wc.LatestArtifact.Version))
	}
	// The periodic re-review timer only arms after a first review; before
	// that there is nothing the runner could act on anyway.
	if mem.LastReviewTime != nil && now.Sub(lastReview) > reviewerStaleAfter {
		return work(4, "periodic review")
	}
	return noWork()
}

// isStrategic reports whether a visitor message asks for a project-direction
// change rather than a simple question.
func isStrategic(content string) bool {
	if len(content) > strategicMinLength {
		return true
	}
	lower := strings.ToLower(content)
	for _, kw := range strategicKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func countTodos(todos []*ent.Todo, status todo.Status) int {
	n := 0
	for _, t := range todos {
		if t.Status == status {
			n++
		}
	}
	return n
}

func work(priority int, reason string) models.AgentWork {
	return models.AgentWork{HasWork: true, Priority: priority, Reason: reason}
}

func noWork() models.AgentWork {
	return models.AgentWork{}
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
