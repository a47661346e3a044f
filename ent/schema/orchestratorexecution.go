package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrchestratorExecution holds the schema definition for the
// OrchestratorExecution entity. One row per orchestrator cycle; the row in
// status=running doubles as the single-flight lease for its stack.
type OrchestratorExecution struct {
	ent.Schema
}

// Fields of the OrchestratorExecution.
func (OrchestratorExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("stack_id").
			Immutable(),
		field.Enum("status").
			Values("running", "completed", "paused", "failed").
			Default("running"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("decision").
			Optional().
			Comment("continue, pause, or stop"),
		field.Int64("pause_duration_ms").
			Optional().
			Nillable(),
		field.String("graph_summary").
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the OrchestratorExecution.
func (OrchestratorExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stack", Stack.Type).
			Ref("orchestrator_executions").
			Field("stack_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the OrchestratorExecution.
func (OrchestratorExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stack_id", "status"),
		index.Fields("stack_id", "started_at"),
	}
}
