package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/artifact"
	"github.com/hackfleet/hackfleet/ent/projectidea"
	"github.com/hackfleet/hackfleet/pkg/llm"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// maxStoredRecommendations bounds what the reviewer keeps in its own memory.
const maxStoredRecommendations = 10

// Reviewer audits the newest artifact and hands its recommendations to the
// planner through planner memory. It reviews each artifact version at most
// once.
type Reviewer struct {
	deps
}

func (r *Reviewer) Type() models.AgentType { return models.AgentReviewer }

type reviewerReply struct {
	Thinking string `json:"thinking"`
	Results  struct {
		Recommendations []string `json:"recommendations"`
		Issues          []struct {
			Severity    string `json:"severity"`
			Description string `json:"description"`
		} `json:"issues"`
	} `json:"results"`
}

func (r *Reviewer) Run(ctx context.Context, stackID string) error {
	state, err := r.loadAgentState(ctx, stackID, models.AgentReviewer)
	if err != nil {
		return err
	}

	latest, err := r.db.Artifact.Query().
		Where(artifact.StackIDEQ(stackID)).
		Order(ent.Desc(artifact.FieldVersion)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load latest artifact: %w", err)
	}

	// Each version is reviewed once. The time guard covers the case where
	// the version counter was reset by a stack rebuild.
	mem := state.Memory
	if mem.LastReviewTime != nil && !latest.CreatedAt.After(*mem.LastReviewTime) {
		return nil
	}
	if latest.Version <= mem.LastReviewedVersion {
		return nil
	}

	idea, err := r.db.ProjectIdea.Query().
		Where(projectidea.StackIDEQ(stackID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to load project idea: %w", err)
	}

	system, user := r.buildPrompt(latest, idea)

	callCtx, cancel := context.WithTimeout(ctx, r.cfg.DefaultTimeout)
	defer cancel()
	content, err := r.chatStructured(callCtx, reviewerSchema, system, user, llm.Options{})
	if err != nil {
		return fmt.Errorf("reviewer llm call failed: %w", err)
	}

	var reply reviewerReply
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	now := time.Now()
	recommendations := reply.Results.Recommendations
	stored := recommendations
	if len(stored) > maxStoredRecommendations {
		stored = stored[:maxStoredRecommendations]
	}

	mem.LastReviewTime = &now
	mem.LastReviewedVersion = latest.Version
	mem.LastReviewIssuesCount = len(reply.Results.Issues)
	mem.Recommendations = stored
	if err := r.saveMemory(ctx, state, mem, reply.Thinking); err != nil {
		return err
	}

	if err := r.handOffToPlanner(ctx, stackID, recommendations, now); err != nil {
		return err
	}

	r.trace(ctx, stackID, models.AgentReviewer, reply.Thinking,
		fmt.Sprintf("review artifact v%d", latest.Version),
		fmt.Sprintf("%d recommendations, %d issues", len(recommendations), len(reply.Results.Issues)))
	return nil
}

// handOffToPlanner stores the recommendations in planner memory so the next
// planner cycle sees them as pending work.
func (r *Reviewer) handOffToPlanner(ctx context.Context, stackID string, recommendations []string, now time.Time) error {
	if len(recommendations) == 0 {
		return nil
	}
	planner, err := r.loadAgentState(ctx, stackID, models.AgentPlanner)
	if err != nil {
		return err
	}
	mem := planner.Memory
	mem.ReviewerRecommendations = recommendations
	mem.RecommendationsTimestamp = &now
	mem.RecommendationsType = "hackathon_audit"
	if err := r.saveMemory(ctx, planner, mem, ""); err != nil {
		return fmt.Errorf("failed to hand off recommendations: %w", err)
	}
	return nil
}

func (r *Reviewer) buildPrompt(latest *ent.Artifact, idea *ent.ProjectIdea) (string, string) {
	system := "You are the reviewer of a four-agent hackathon team. " +
		"Audit the team's HTML page like a hackathon judge: correctness, " +
		"polish, and demo impact. Return concrete recommendations the " +
		"planner can turn into todos, and a list of issues with severity."

	var sb strings.Builder
	if idea != nil {
		fmt.Fprintf(&sb, "Project: %s - %s\n", idea.Title, idea.Description)
	}
	content := latest.Content
	if len(content) > MaxArtifactContextBytes {
		content = content[:MaxArtifactContextBytes]
	}
	fmt.Fprintf(&sb, "Artifact v%d:\n%s", latest.Version, content)
	return system, sb.String()
}
