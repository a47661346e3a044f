package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Stack holds the schema definition for the Stack entity.
// A stack is one hackathon team: a participant, four agents, one project,
// and a monotonically versioned artifact series.
type Stack struct {
	ent.Schema
}

// Fields of the Stack.
func (Stack) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stack_id").
			Unique().
			Immutable(),
		field.String("participant_name"),
		field.Enum("phase").
			Values("ideation", "building", "demo", "completed").
			Default("ideation").
			Comment("Hackathon phase, advanced by the planner"),
		field.Enum("execution_state").
			Values("idle", "running", "paused", "stopped").
			Default("idle").
			Comment("User-controlled lifecycle; the scheduler only touches running stacks"),
		field.Time("last_activity_at").
			Optional().
			Nillable().
			Comment("Bumped after every agent node settles"),
		field.Int("total_cycles").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Stack.
func (Stack) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("agent_states", AgentState.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("project_idea", ProjectIdea.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("todos", Todo.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("artifacts", Artifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("traces", AgentTrace.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("user_messages", UserMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("orchestrator_executions", OrchestratorExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("execution_graphs", ExecutionGraph.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("work_detection_cache", WorkDetectionCache.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Stack.
func (Stack) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_state"),
		index.Fields("execution_state", "last_activity_at"),
	}
}
